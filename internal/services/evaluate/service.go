package evaluate

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"feedwatch-go/internal/config"
	"feedwatch-go/internal/logging"
	"feedwatch-go/internal/models"
	"feedwatch-go/internal/services/activitylog"
	"feedwatch-go/internal/services/capture"
	"feedwatch-go/internal/services/filters"
	"feedwatch-go/internal/services/framestore"
)

// ImageEvaluator answers a filter prompt against one frame.
type ImageEvaluator interface {
	EvaluateImage(ctx context.Context, frame []byte, prompt string) (string, error)
}

// AlertPublisher pushes a payload to a subject. Satisfied by the NATS
// messaging service.
type AlertPublisher interface {
	Publish(subject string, data interface{}) error
}

// Service runs the evaluation loop: every tick it grabs the latest frame of
// the selected camera and evaluates each active filter against it, one model
// call per filter. Filters are evaluated sequentially to keep one request in
// flight toward the vision model at a time.
type Service struct {
	cfg       *config.Config
	cameras   *capture.Manager
	store     *framestore.Store
	registry  *filters.Registry
	activity  *activitylog.Log
	evaluator ImageEvaluator
	alerts    AlertPublisher // nil when alerting is disabled
	logger    zerolog.Logger

	// Avoid logging "no frame yet" every tick during camera outages.
	skipLogged bool

	lastAlert map[string]time.Time
}

func NewService(cfg *config.Config, cameras *capture.Manager, store *framestore.Store, registry *filters.Registry, activity *activitylog.Log, evaluator ImageEvaluator, alerts AlertPublisher) *Service {
	return &Service{
		cfg:       cfg,
		cameras:   cameras,
		store:     store,
		registry:  registry,
		activity:  activity,
		evaluator: evaluator,
		alerts:    alerts,
		logger:    logging.NewServiceLogger("evaluate"),
		lastAlert: make(map[string]time.Time),
	}
}

// Run blocks until ctx is cancelled, ticking at the configured evaluation
// interval. In-flight model calls finish before the loop exits.
func (s *Service) Run(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.EvalInterval)
	defer ticker.Stop()

	s.logger.Info().
		Dur("interval", s.cfg.EvalInterval).
		Str("model", s.cfg.VLMModel).
		Msg("Filter evaluation loop started")

	for {
		select {
		case <-ctx.Done():
			s.logger.Debug().Msg("Evaluation loop stopping")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

// tick evaluates the current snapshot of active filters against the current
// frame of the selected camera. Filters added, removed or reordered during
// the tick are picked up next tick.
func (s *Service) tick(ctx context.Context) {
	cameraID := s.cameras.VLMCamera()
	frame, _, ok := s.store.Get(cameraID)
	if !ok {
		if !s.skipLogged {
			s.activity.Append(models.EntryVLM,
				fmt.Sprintf("Skipping evaluation: no frame from camera %s yet", cameraID))
			s.skipLogged = true
		}
		return
	}
	s.skipLogged = false

	active := s.registry.Active()
	if len(active) == 0 {
		return
	}

	for _, f := range active {
		if ctx.Err() != nil {
			return
		}
		s.evaluateOne(ctx, f, frame, cameraID)
	}
}

func (s *Service) evaluateOne(ctx context.Context, f models.Filter, frame []byte, cameraID string) {
	s.registry.BeginEvaluation(f.ID)

	callCtx, cancel := context.WithTimeout(ctx, s.cfg.VLMTimeout)
	result, err := s.evaluator.EvaluateImage(callCtx, frame, f.Prompt)
	cancel()

	if err != nil {
		// The error becomes the stored result so the UI shows what
		// happened; the remaining filters still run this tick.
		result = fmt.Sprintf("Error: %v", err)
		s.registry.CompleteEvaluation(f.ID, result, time.Now())
		s.activity.Append(models.EntryError,
			fmt.Sprintf("Filter %q: evaluation failed: %v", truncatePrompt(f.Prompt), err))
		s.logger.Error().Err(err).Str("filter_id", f.ID).Msg("Filter evaluation failed")
		return
	}

	s.registry.CompleteEvaluation(f.ID, result, time.Now())

	verdict := models.ClassifyVerdict(result)
	s.activity.Append(models.EntryFilter,
		fmt.Sprintf("Filter %q: %s", truncatePrompt(f.Prompt), result))
	s.logger.Debug().
		Str("filter_id", f.ID).
		Str("verdict", string(verdict)).
		Msg("Filter evaluated")

	if verdict == models.VerdictPositive {
		s.maybeAlert(f, result, cameraID)
	}
}

// maybeAlert publishes a positive verdict, at most once per filter per
// cooldown window.
func (s *Service) maybeAlert(f models.Filter, result, cameraID string) {
	if s.alerts == nil {
		return
	}

	now := time.Now()
	if last, ok := s.lastAlert[f.ID]; ok && now.Sub(last) < s.cfg.AlertsCooldown {
		return
	}
	s.lastAlert[f.ID] = now

	alert := models.FilterAlert{
		FilterID:  f.ID,
		Prompt:    f.Prompt,
		Result:    result,
		CameraID:  cameraID,
		Timestamp: now,
	}
	if err := s.alerts.Publish(s.cfg.AlertsSubject, alert); err != nil {
		s.logger.Warn().Err(err).Str("filter_id", f.ID).Msg("Failed to publish filter alert")
		return
	}
	s.logger.Info().Str("filter_id", f.ID).Msg("Filter alert published")
}

// truncatePrompt keeps activity log messages readable for long prompts.
func truncatePrompt(prompt string) string {
	const max = 60
	if len(prompt) <= max {
		return prompt
	}
	return prompt[:max-3] + "..."
}
