package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"feedwatch-go/internal/api"
	"feedwatch-go/internal/config"
	"feedwatch-go/internal/logging"
	"feedwatch-go/internal/services"
)

// @title FeedWatch Monitor API
// @version 1.0.0
// @description Camera feed monitor that captures frames from IP cameras and evaluates user-defined filters against them with a vision language model
// @BasePath /
func main() {
	// Setup structured logging
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// Load configuration
	cfg := config.Load()

	// Set log level
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Warn().Str("level", cfg.LogLevel).Msg("Invalid log level, using info")
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	// Optionally tee logs into the embedded Logdy web UI
	if cfg.LogdyEnabled {
		if logdyWriter, url, err := logging.StartLogdy(cfg); err == nil {
			console := zerolog.ConsoleWriter{Out: os.Stderr}
			log.Logger = log.Output(zerolog.MultiLevelWriter(console, logdyWriter))
			log.Info().Str("url", url).Msg("Log viewer enabled")
		} else {
			log.Warn().Err(err).Msg("Failed to start Logdy, continuing without it")
		}
	}

	log.Info().
		Str("version", cfg.Version).
		Int("port", cfg.Port).
		Int("cameras", len(cfg.Cameras)).
		Str("vlm_model", cfg.VLMModel).
		Msg("Starting FeedWatch monitor")

	// Build services
	container, err := services.NewServiceContainer(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize services")
	}

	// Pollers and the evaluation loop stop when this context is cancelled
	runCtx, stopWorkers := context.WithCancel(context.Background())
	container.Start(runCtx)

	// Create and start server
	server := api.NewServer(cfg, container)
	server.Setup()

	go func() {
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	stopWorkers()
	if err := container.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Service shutdown failed")
	} else {
		log.Info().Msg("Shutdown complete")
	}
}
