package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"feedwatch-go/internal/config"
	"feedwatch-go/internal/models"
	"feedwatch-go/internal/services/capture"
	"feedwatch-go/internal/services/filters"
)

type SystemHandler struct {
	cfg        *config.Config
	cameras    *capture.Manager
	registry   *filters.Registry
	vlmEnabled bool
	startedAt  time.Time
}

func NewSystemHandler(cfg *config.Config, cameras *capture.Manager, registry *filters.Registry, vlmEnabled bool) *SystemHandler {
	return &SystemHandler{
		cfg:        cfg,
		cameras:    cameras,
		registry:   registry,
		vlmEnabled: vlmEnabled,
		startedAt:  time.Now(),
	}
}

// Info describes the service
// @Summary Service info
// @Description Name, version and top-level endpoints of the monitor
// @Tags system
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *SystemHandler) Info(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": "feedwatch-monitor",
		"version": h.cfg.Version,
		"endpoints": gin.H{
			"health":   "/health",
			"cameras":  "/api/cameras",
			"filters":  "/api/filters",
			"activity": "/api/activity",
			"config":   "/api/config",
		},
	})
}

// Health reports liveness
// @Summary Health check
// @Description Liveness plus camera and filter counts
// @Tags system
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":         "healthy",
		"uptime_seconds": int64(time.Since(h.startedAt).Seconds()),
		"cameras":        len(h.cameras.List()),
		"filters":        h.registry.Count(),
		"vlm_enabled":    h.vlmEnabled,
	})
}

// RuntimeConfig tells clients how the backend is paced
// @Summary Runtime configuration
// @Description Polling intervals, the selected camera and the camera list
// @Tags system
// @Produce json
// @Success 200 {object} models.RuntimeConfigResponse
// @Router /api/config [get]
func (h *SystemHandler) RuntimeConfig(c *gin.Context) {
	c.JSON(http.StatusOK, models.RuntimeConfigResponse{
		CaptureIntervalMS: h.cfg.CaptureInterval.Milliseconds(),
		EvalIntervalMS:    h.cfg.EvalInterval.Milliseconds(),
		VLMCamera:         h.cameras.VLMCamera(),
		VLMModel:          h.cfg.VLMModel,
		Cameras:           h.cameras.List(),
	})
}
