package activitylog

import (
	"sync"
	"time"

	"feedwatch-go/internal/models"
)

// Log is an append-only, bounded activity log shared by the pollers, the
// evaluator and the HTTP handlers. Entries carry monotonically increasing
// IDs so clients can poll with a cursor; once the capacity is reached the
// oldest entries are evicted.
type Log struct {
	mu       sync.Mutex
	entries  []models.LogEntry
	capacity int
	nextID   uint64
}

const defaultCapacity = 200

// New creates a log bounded to the given capacity. A non-positive capacity
// falls back to the default.
func New(capacity int) *Log {
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	return &Log{
		entries:  make([]models.LogEntry, 0, capacity),
		capacity: capacity,
		nextID:   1,
	}
}

// Append adds one entry, evicting the oldest if the log is full.
func (l *Log) Append(entryType models.EntryType, message string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry := models.LogEntry{
		ID:        l.nextID,
		Timestamp: time.Now(),
		Type:      entryType,
		Message:   message,
	}
	l.nextID++

	if len(l.entries) >= l.capacity {
		// Shift rather than reslice so the backing array never grows.
		copy(l.entries, l.entries[1:])
		l.entries[len(l.entries)-1] = entry
		return
	}
	l.entries = append(l.entries, entry)
}

// Entries returns all retained entries, oldest first.
func (l *Log) Entries() []models.LogEntry {
	return l.Since(0)
}

// Since returns entries with ID greater than the cursor, oldest first.
func (l *Log) Since(cursor uint64) []models.LogEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]models.LogEntry, 0, len(l.entries))
	for _, e := range l.entries {
		if e.ID > cursor {
			out = append(out, e)
		}
	}
	return out
}

// Len returns the number of retained entries.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
