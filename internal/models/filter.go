package models

import "time"

// FilterStatus tracks whether a filter is currently being evaluated.
type FilterStatus string

const (
	FilterStatusIdle       FilterStatus = "idle"
	FilterStatusEvaluating FilterStatus = "evaluating"
)

// Filter is a user-defined yes/no question evaluated against the current
// frame of the selected camera.
type Filter struct {
	ID       string       `json:"id"`
	Prompt   string       `json:"prompt"`
	Order    int          `json:"order"`
	IsActive bool         `json:"is_active"`
	Status   FilterStatus `json:"status"`

	// Result is the verbatim model answer from the last evaluation, empty
	// until the filter has been evaluated at least once.
	Result          string     `json:"result,omitempty"`
	Evaluated       bool       `json:"evaluated"`
	LastEvaluatedAt *time.Time `json:"last_evaluated_at,omitempty"`
}

// FilterResponse is a filter as served to clients, with the presentation
// verdict derived from the raw result text.
type FilterResponse struct {
	Filter
	Verdict Verdict `json:"verdict"`
}

// CreateFilterRequest for POST /api/filters.
type CreateFilterRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

// FilterAlert is published over NATS when an active filter's verdict
// classifies as positive.
type FilterAlert struct {
	FilterID  string    `json:"filter_id"`
	Prompt    string    `json:"prompt"`
	Result    string    `json:"result"`
	CameraID  string    `json:"camera_id"`
	Timestamp time.Time `json:"timestamp"`
}
