package capture

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"feedwatch-go/internal/config"
	"feedwatch-go/internal/models"
	"feedwatch-go/internal/services/activitylog"
	"feedwatch-go/internal/services/framestore"
	"feedwatch-go/internal/services/recorder"
)

// ErrNotFound is returned for operations on unknown camera ids.
var ErrNotFound = errors.New("camera not found")

// Manager owns the camera slot metadata (enabled flags, display order, the
// selected VLM camera) and runs one poller goroutine per slot. Frame bytes
// live in the frame store; the manager only guards slot metadata.
type Manager struct {
	cfg      *config.Config
	store    *framestore.Store
	activity *activitylog.Log
	recorder *recorder.Service // nil when frame persistence is disabled

	mu        sync.Mutex
	slots     map[string]*models.CameraSlot
	order     []string
	vlmCamera string

	wg sync.WaitGroup
}

// NewManager builds the slot set from configuration. The initial VLM camera
// falls back to the first configured slot when the configured id is unknown.
func NewManager(cfg *config.Config, store *framestore.Store, activity *activitylog.Log, rec *recorder.Service) (*Manager, error) {
	if len(cfg.Cameras) == 0 {
		return nil, fmt.Errorf("no cameras configured")
	}

	slots := make(map[string]*models.CameraSlot, len(cfg.Cameras))
	order := make([]string, 0, len(cfg.Cameras))
	for i, def := range cfg.Cameras {
		slots[def.ID] = &models.CameraSlot{
			ID:      def.ID,
			URL:     def.URL,
			Mode:    models.SourceMode(def.Mode),
			Enabled: def.Enabled,
			Order:   i,
		}
		order = append(order, def.ID)
	}

	vlm := cfg.VLMCamera
	if _, ok := slots[vlm]; !ok {
		log.Warn().Str("camera_id", vlm).Msg("Configured VLM camera unknown, using first slot")
		vlm = order[0]
	}

	return &Manager{
		cfg:       cfg,
		store:     store,
		activity:  activity,
		recorder:  rec,
		slots:     slots,
		order:     order,
		vlmCamera: vlm,
	}, nil
}

// Start launches one poller per slot. Pollers stop when ctx is cancelled;
// Wait blocks until they have all exited.
func (m *Manager) Start(ctx context.Context) {
	m.mu.Lock()
	ids := append([]string(nil), m.order...)
	m.mu.Unlock()

	for _, id := range ids {
		p := newPoller(m, id)
		m.wg.Add(1)
		go func() {
			defer m.wg.Done()
			p.run(ctx)
		}()
	}

	log.Info().
		Int("cameras", len(ids)).
		Dur("interval", m.cfg.CaptureInterval).
		Msg("Camera pollers started")
}

// Wait blocks until all pollers have stopped.
func (m *Manager) Wait() {
	m.wg.Wait()
}

// List returns camera snapshots sorted by display order.
func (m *Manager) List() []models.CameraResponse {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]models.CameraResponse, 0, len(m.order))
	for _, id := range m.order {
		slot := m.slots[id]
		resp := models.CameraResponse{
			ID:       slot.ID,
			URL:      slot.URL,
			Mode:     slot.Mode,
			Enabled:  slot.Enabled,
			Order:    slot.Order,
			Selected: id == m.vlmCamera,
		}
		if ts, has := m.store.Has(id); has {
			t := ts
			resp.HasFrame = true
			resp.FrameTime = &t
		}
		out = append(out, resp)
	}
	return out
}

// Toggle flips a slot's enabled flag and returns the new state.
func (m *Manager) Toggle(id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	slot, ok := m.slots[id]
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	slot.Enabled = !slot.Enabled
	return slot.Enabled, nil
}

// Move swaps a camera with its neighbor in the display order (-1 up, +1
// down). Boundary moves are no-ops.
func (m *Manager) Move(id string, direction int) error {
	if direction != -1 && direction != 1 {
		return fmt.Errorf("direction must be -1 or 1")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	idx := -1
	for i, cid := range m.order {
		if cid == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	target := idx + direction
	if target < 0 || target >= len(m.order) {
		return nil
	}
	m.order[idx], m.order[target] = m.order[target], m.order[idx]
	for i, cid := range m.order {
		m.slots[cid].Order = i
	}
	return nil
}

// SelectVLM switches which camera feeds the filter evaluator. Unknown ids
// are rejected; a disabled slot is accepted, the evaluator skips ticks until
// it has a frame.
func (m *Manager) SelectVLM(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.slots[id]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	m.vlmCamera = id
	return nil
}

// VLMCamera returns the id of the camera currently feeding the evaluator.
func (m *Manager) VLMCamera() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.vlmCamera
}

// Enabled reports a slot's enabled flag; unknown ids read as disabled.
func (m *Manager) Enabled(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	slot, ok := m.slots[id]
	return ok && slot.Enabled
}

func (m *Manager) slotInfo(id string) (url string, mode models.SourceMode) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if slot, ok := m.slots[id]; ok {
		return slot.URL, slot.Mode
	}
	return "", ""
}
