package services

import (
	"context"

	"github.com/rs/zerolog/log"

	"feedwatch-go/internal/config"
	"feedwatch-go/internal/services/activitylog"
	"feedwatch-go/internal/services/capture"
	"feedwatch-go/internal/services/evaluate"
	"feedwatch-go/internal/services/filters"
	"feedwatch-go/internal/services/framestore"
	"feedwatch-go/internal/services/messaging"
	"feedwatch-go/internal/services/recorder"
	"feedwatch-go/internal/services/vlm"
)

// ServiceContainer holds all services
type ServiceContainer struct {
	Config    *config.Config
	Activity  *activitylog.Log
	Frames    *framestore.Store
	Filters   *filters.Registry
	Cameras   *capture.Manager
	Evaluator *evaluate.Service  // nil when no API key is configured
	Messaging *messaging.Service // nil unless alerting is enabled
	Recorder  *recorder.Service  // nil unless frame recording is enabled
}

// NewServiceContainer creates a new service container
func NewServiceContainer(cfg *config.Config) (*ServiceContainer, error) {
	activity := activitylog.New(cfg.ActivityLogCapacity)
	registry := filters.NewRegistry()

	ids := make([]string, 0, len(cfg.Cameras))
	for _, cam := range cfg.Cameras {
		ids = append(ids, cam.ID)
	}
	frames := framestore.New(ids)

	var rec *recorder.Service
	if cfg.RecordEnabled {
		rec = recorder.NewService(cfg)
	}

	cameras, err := capture.NewManager(cfg, frames, activity, rec)
	if err != nil {
		return nil, err
	}

	var msg *messaging.Service
	if cfg.AlertsEnabled {
		msg, err = messaging.NewService(cfg)
		if err != nil {
			// Alerts are best-effort; the monitor still runs without NATS.
			log.Warn().Err(err).Msg("NATS unavailable, filter alerts disabled")
			msg = nil
		}
	}

	var evaluator *evaluate.Service
	vlmClient, err := vlm.NewClient(cfg)
	if err != nil {
		log.Warn().Err(err).Msg("Vision model unavailable, filter evaluation disabled")
	} else {
		var alerts evaluate.AlertPublisher
		if msg != nil {
			alerts = msg
		}
		evaluator = evaluate.NewService(cfg, cameras, frames, registry, activity, vlmClient, alerts)
	}

	return &ServiceContainer{
		Config:    cfg,
		Activity:  activity,
		Frames:    frames,
		Filters:   registry,
		Cameras:   cameras,
		Evaluator: evaluator,
		Messaging: msg,
		Recorder:  rec,
	}, nil
}

// Start launches the camera pollers and, when configured, the evaluation
// loop. Both stop when ctx is cancelled.
func (sc *ServiceContainer) Start(ctx context.Context) {
	sc.Cameras.Start(ctx)
	if sc.Evaluator != nil {
		go sc.Evaluator.Run(ctx)
	}
}

// Shutdown gracefully shuts down all services
func (sc *ServiceContainer) Shutdown(ctx context.Context) error {
	if sc.Cameras != nil {
		sc.Cameras.Wait()
	}

	if sc.Messaging != nil {
		sc.Messaging.Shutdown(ctx)
	}

	return nil
}
