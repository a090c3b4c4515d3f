package framestore

import (
	"sync"
	"time"
)

// slot holds the latest frame for one camera. Each slot has its own lock so
// one camera's writer never contends with another camera's readers.
type slot struct {
	mu        sync.RWMutex
	frame     []byte
	timestamp time.Time
}

// Store keeps the most recent JPEG frame per camera. One writer per slot
// (that camera's poller), any number of readers (HTTP handlers, the
// evaluator). The slot set is fixed at construction.
type Store struct {
	slots map[string]*slot
}

// New creates a store with one empty slot per camera id.
func New(cameraIDs []string) *Store {
	slots := make(map[string]*slot, len(cameraIDs))
	for _, id := range cameraIDs {
		slots[id] = &slot{}
	}
	return &Store{slots: slots}
}

// Set atomically replaces the slot's frame. Writes carrying a timestamp not
// newer than the stored one are dropped, so the capture time never goes
// backwards. Returns false for unknown slots or stale writes.
func (s *Store) Set(cameraID string, frame []byte, ts time.Time) bool {
	sl, ok := s.slots[cameraID]
	if !ok {
		return false
	}

	sl.mu.Lock()
	defer sl.mu.Unlock()
	if !sl.timestamp.IsZero() && !ts.After(sl.timestamp) {
		return false
	}
	sl.frame = frame
	sl.timestamp = ts
	return true
}

// Get returns a copy of the latest frame and its capture time. ok is false
// when the slot is unknown or no frame has been captured yet.
func (s *Store) Get(cameraID string) (frame []byte, ts time.Time, ok bool) {
	sl, found := s.slots[cameraID]
	if !found {
		return nil, time.Time{}, false
	}

	sl.mu.RLock()
	defer sl.mu.RUnlock()
	if sl.frame == nil {
		return nil, time.Time{}, false
	}
	out := make([]byte, len(sl.frame))
	copy(out, sl.frame)
	return out, sl.timestamp, true
}

// Has reports whether the slot holds a frame, without copying it.
func (s *Store) Has(cameraID string) (time.Time, bool) {
	sl, found := s.slots[cameraID]
	if !found {
		return time.Time{}, false
	}
	sl.mu.RLock()
	defer sl.mu.RUnlock()
	return sl.timestamp, sl.frame != nil
}
