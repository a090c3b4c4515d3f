package filters

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"feedwatch-go/internal/models"
)

var (
	// ErrValidation is returned for bad user input, e.g. an empty prompt.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound is returned for operations on unknown filter ids.
	ErrNotFound = errors.New("filter not found")
)

// Registry is the ordered, mutable set of filters. All operations are atomic
// with respect to each other and to the evaluator's snapshot; order values
// always form a contiguous permutation 0..N-1.
type Registry struct {
	mu      sync.Mutex
	filters []*models.Filter
	nextID  int64
}

func NewRegistry() *Registry {
	return &Registry{nextID: 1}
}

// Add creates a new filter at the end of the ordering. The prompt must be
// non-empty after trimming.
func (r *Registry) Add(prompt string) (models.Filter, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return models.Filter{}, fmt.Errorf("%w: prompt is required", ErrValidation)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	f := &models.Filter{
		ID:       fmt.Sprintf("filter_%d", r.nextID),
		Prompt:   prompt,
		Order:    len(r.filters),
		IsActive: true,
		Status:   models.FilterStatusIdle,
	}
	r.nextID++
	r.filters = append(r.filters, f)
	return *f, nil
}

// Remove deletes a filter and renumbers the remaining orders to stay
// contiguous from 0.
func (r *Registry) Remove(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	r.filters = append(r.filters[:idx], r.filters[idx+1:]...)
	r.renumber()
	return nil
}

// Move swaps a filter with its neighbor in the given direction (-1 up,
// +1 down). Moving past either boundary is a no-op, not an error.
func (r *Registry) Move(id string, direction int) error {
	if direction != -1 && direction != 1 {
		return fmt.Errorf("%w: direction must be -1 or 1", ErrValidation)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	target := idx + direction
	if target < 0 || target >= len(r.filters) {
		return nil
	}
	r.filters[idx], r.filters[target] = r.filters[target], r.filters[idx]
	r.renumber()
	return nil
}

// Toggle flips the active flag. Result and prompt are untouched.
func (r *Registry) Toggle(id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return false, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	r.filters[idx].IsActive = !r.filters[idx].IsActive
	return r.filters[idx].IsActive, nil
}

// List returns filter snapshots sorted by order. The returned slice and its
// elements are copies; callers never observe later mutations.
func (r *Registry) List() []models.Filter {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.Filter, 0, len(r.filters))
	for _, f := range r.filters {
		out = append(out, *f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

// Active returns snapshots of the active filters in evaluation order.
func (r *Registry) Active() []models.Filter {
	all := r.List()
	out := all[:0]
	for _, f := range all {
		if f.IsActive {
			out = append(out, f)
		}
	}
	return out
}

// BeginEvaluation marks a filter as evaluating. A filter removed since the
// evaluator's snapshot is a harmless no-op.
func (r *Registry) BeginEvaluation(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if idx := r.indexOf(id); idx >= 0 {
		r.filters[idx].Status = models.FilterStatusEvaluating
	}
}

// CompleteEvaluation publishes a result and returns the filter to idle. Like
// BeginEvaluation it tolerates the filter having been removed mid-flight.
func (r *Registry) CompleteEvaluation(id, result string, ts time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return
	}
	f := r.filters[idx]
	f.Status = models.FilterStatusIdle
	f.Result = result
	f.Evaluated = true
	f.LastEvaluatedAt = &ts
}

// Count returns the number of filters.
func (r *Registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.filters)
}

func (r *Registry) indexOf(id string) int {
	for i, f := range r.filters {
		if f.ID == id {
			return i
		}
	}
	return -1
}

func (r *Registry) renumber() {
	for i, f := range r.filters {
		f.Order = i
	}
}
