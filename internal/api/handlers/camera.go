package handlers

import (
	"encoding/base64"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"feedwatch-go/internal/models"
	"feedwatch-go/internal/services/capture"
	"feedwatch-go/internal/services/framestore"
)

type CameraHandler struct {
	cameras *capture.Manager
	frames  *framestore.Store
}

func NewCameraHandler(cameras *capture.Manager, frames *framestore.Store) *CameraHandler {
	return &CameraHandler{
		cameras: cameras,
		frames:  frames,
	}
}

// ListCameras lists all camera slots
// @Summary List cameras
// @Description List all camera slots in display order with their state
// @Tags cameras
// @Produce json
// @Success 200 {array} models.CameraResponse
// @Router /api/cameras [get]
func (h *CameraHandler) ListCameras(c *gin.Context) {
	c.JSON(http.StatusOK, h.cameras.List())
}

// GetFrame returns the latest captured frame
// @Summary Get latest frame
// @Description Get the most recent frame of a camera as a base64 data URI
// @Tags cameras
// @Produce json
// @Param id path string true "Camera ID"
// @Success 200 {object} models.FrameResponse
// @Router /api/cameras/{id}/frame [get]
func (h *CameraHandler) GetFrame(c *gin.Context) {
	id := c.Param("id")

	frame, ts, ok := h.frames.Get(id)
	if !ok {
		c.JSON(http.StatusOK, models.FrameResponse{
			Success: false,
			Error:   fmt.Sprintf("No frame available for camera %s", id),
		})
		return
	}
	if !h.cameras.Enabled(id) {
		c.JSON(http.StatusOK, models.FrameResponse{
			Success: false,
			Error:   fmt.Sprintf("Camera %s is disabled", id),
		})
		return
	}

	c.JSON(http.StatusOK, models.FrameResponse{
		Success:   true,
		Image:     "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(frame),
		Timestamp: float64(ts.UnixNano()) / 1e9,
	})
}

// ToggleCamera flips a camera's enabled flag
// @Summary Toggle a camera
// @Description Enable or disable a camera's poller
// @Tags cameras
// @Produce json
// @Param id path string true "Camera ID"
// @Success 200 {object} map[string]bool
// @Failure 404 {object} ErrorResponse
// @Router /api/cameras/{id}/toggle [post]
func (h *CameraHandler) ToggleCamera(c *gin.Context) {
	id := c.Param("id")

	enabled, err := h.cameras.Toggle(id)
	if err != nil {
		respondError(c, err)
		return
	}

	log.Info().Str("camera_id", id).Bool("enabled", enabled).Msg("Camera toggled")
	c.JSON(http.StatusOK, gin.H{"enabled": enabled})
}

// MoveCamera moves a camera in the display order
// @Summary Move a camera
// @Description Swap a camera with its neighbor in the display order
// @Tags cameras
// @Accept json
// @Produce json
// @Param id path string true "Camera ID"
// @Param request body models.MoveRequest true "Direction (-1 up, +1 down)"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/cameras/{id}/move [post]
func (h *CameraHandler) MoveCamera(c *gin.Context) {
	id := c.Param("id")

	var req models.MoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Direction != -1 && req.Direction != 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "direction must be -1 or 1"})
		return
	}

	if err := h.cameras.Move(id, req.Direction); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Camera moved"})
}

// SelectCamera selects the camera feeding the filter evaluator
// @Summary Select the evaluation camera
// @Description Switch which camera's frames the filters are evaluated against
// @Tags cameras
// @Produce json
// @Param id path string true "Camera ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/cameras/{id}/select [post]
func (h *CameraHandler) SelectCamera(c *gin.Context) {
	id := c.Param("id")

	if err := h.cameras.SelectVLM(id); err != nil {
		respondError(c, err)
		return
	}

	log.Info().Str("camera_id", id).Msg("Evaluation camera selected")
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Camera %s selected", id)})
}
