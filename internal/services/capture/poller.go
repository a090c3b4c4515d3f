package capture

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"feedwatch-go/internal/logging"
	"feedwatch-go/internal/models"
)

// poller drives one camera slot: one fetch attempt per tick, frame store
// write on success, prior frame retained on failure. One camera's failure
// or slowness never blocks another camera; each poller is its own goroutine
// with its own HTTP client.
type poller struct {
	m      *Manager
	id     string
	logger zerolog.Logger

	snapClient *http.Client
	stream     *streamReader

	// Success-log sampling. A failure resets the counter so the first
	// success after an outage is always surfaced.
	failing      bool
	successCount int
}

func newPoller(m *Manager, id string) *poller {
	return &poller{
		m:  m,
		id: id,
		snapClient: &http.Client{
			Timeout: m.cfg.CameraTimeout,
		},
		logger: logging.WithCamera(logging.NewServiceLogger("capture"), id),
	}
}

func (p *poller) run(ctx context.Context) {
	ticker := time.NewTicker(p.m.cfg.CaptureInterval)
	defer ticker.Stop()
	defer p.closeStream()

	p.logger.Debug().Msg("Poller started")

	for {
		select {
		case <-ctx.Done():
			p.logger.Debug().Msg("Poller stopping")
			return
		case <-ticker.C:
			p.tick(ctx)
		}
	}
}

// tick performs at most one capture attempt. A disabled slot is a pure
// no-op: no fetch, no per-tick log entry.
func (p *poller) tick(ctx context.Context) {
	if !p.m.Enabled(p.id) {
		// Don't hold a stream connection open while disabled.
		p.closeStream()
		return
	}

	url, mode := p.m.slotInfo(p.id)
	if url == "" {
		return
	}

	var frame []byte
	var ts time.Time
	var err error

	switch mode {
	case models.ModeStream:
		frame, ts, err = p.pullStreamFrame(ctx, url)
		if err == nil && frame == nil {
			// Stream open but nothing drained yet; not a failure.
			return
		}
	default:
		frame, err = fetchSnapshot(ctx, p.snapClient, url)
		ts = time.Now()
	}

	if err != nil {
		p.onFailure(err)
		return
	}

	if !p.m.store.Set(p.id, frame, ts) {
		// Already have this frame (stream drained nothing newer).
		return
	}
	p.onSuccess(frame, ts)
}

// pullStreamFrame returns the latest frame drained from the persistent MJPEG
// reader, opening (or reopening) the stream as needed.
func (p *poller) pullStreamFrame(ctx context.Context, url string) ([]byte, time.Time, error) {
	if p.stream != nil {
		if err := p.stream.Err(); err != nil {
			p.closeStream()
			return nil, time.Time{}, fmt.Errorf("stream broken: %w", err)
		}
		frame, ts := p.stream.Latest()
		return frame, ts, nil
	}

	stream, err := openStream(ctx, url, p.m.cfg.CameraTimeout)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("failed to open stream: %w", err)
	}
	p.stream = stream
	p.logger.Info().Str("url", url).Msg("MJPEG stream opened")

	frame, ts := p.stream.Latest()
	return frame, ts, nil
}

func (p *poller) closeStream() {
	if p.stream != nil {
		p.stream.Close()
		p.stream = nil
	}
}

func (p *poller) onSuccess(frame []byte, ts time.Time) {
	if p.failing || p.successCount%p.sampleEvery() == 0 {
		p.m.activity.Append(models.EntryCamera,
			fmt.Sprintf("Camera %s: captured frame (%d bytes)", p.id, len(frame)))
	}
	if p.failing {
		p.successCount = 0
	}
	p.failing = false
	p.successCount++

	p.logger.Debug().Int("bytes", len(frame)).Time("captured_at", ts).Msg("Frame captured")

	if p.m.recorder != nil {
		if err := p.m.recorder.Persist(p.id, frame, ts); err != nil {
			p.logger.Warn().Err(err).Msg("Failed to persist frame")
		}
	}
}

func (p *poller) onFailure(err error) {
	p.failing = true
	p.successCount = 0
	p.m.activity.Append(models.EntryError, fmt.Sprintf("Camera %s: %v", p.id, err))
	p.logger.Error().Err(err).Msg("Capture failed")
}

func (p *poller) sampleEvery() int {
	if n := p.m.cfg.CaptureLogSample; n > 0 {
		return n
	}
	return 1
}
