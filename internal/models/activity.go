package models

import "time"

// EntryType categorizes activity log entries for the UI.
type EntryType string

const (
	EntryInfo    EntryType = "info"
	EntrySuccess EntryType = "success"
	EntryError   EntryType = "error"
	EntryWarning EntryType = "warning"
	EntryCamera  EntryType = "camera"
	EntryFilter  EntryType = "filter"
	EntryVLM     EntryType = "vlm"
)

// LogEntry is one row of the bounded activity log surfaced to the UI.
type LogEntry struct {
	ID        uint64    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Type      EntryType `json:"type"`
	Message   string    `json:"message"`
}
