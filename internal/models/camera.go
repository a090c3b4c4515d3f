package models

import "time"

// SourceMode describes how frames are obtained from a camera URL.
type SourceMode string

const (
	ModeSnapshot SourceMode = "snapshot" // one still image per request
	ModeStream   SourceMode = "stream"   // continuous MJPEG stream
)

// String returns the string representation of SourceMode.
func (m SourceMode) String() string {
	return string(m)
}

// IsValid checks if the source mode is valid.
func (m SourceMode) IsValid() bool {
	switch m {
	case ModeSnapshot, ModeStream:
		return true
	default:
		return false
	}
}

// CameraSlot is the metadata for one configured camera. Frame bytes live in
// the frame store, not here; the capture manager owns this struct.
type CameraSlot struct {
	ID      string     `json:"id"`
	URL     string     `json:"url"`
	Mode    SourceMode `json:"mode"`
	Enabled bool       `json:"enabled"`
	Order   int        `json:"order"`
}

// CameraResponse is a camera slot as served to clients.
type CameraResponse struct {
	ID        string     `json:"id"`
	URL       string     `json:"url"`
	Mode      SourceMode `json:"mode"`
	Enabled   bool       `json:"enabled"`
	Order     int        `json:"order"`
	Selected  bool       `json:"selected"` // feeds the filter evaluator
	HasFrame  bool       `json:"has_frame"`
	FrameTime *time.Time `json:"frame_time,omitempty"`
}

// FrameResponse carries the latest captured frame for one camera.
type FrameResponse struct {
	Success   bool    `json:"success"`
	Image     string  `json:"image,omitempty"` // data:image/jpeg;base64,...
	Timestamp float64 `json:"timestamp,omitempty"`
	Error     string  `json:"error,omitempty"`
}

// MoveRequest moves a camera or filter one position up (-1) or down (+1).
type MoveRequest struct {
	Direction int `json:"direction" binding:"required"`
}

// RuntimeConfigResponse tells clients how the backend is paced so they can
// match their polling cadence.
type RuntimeConfigResponse struct {
	CaptureIntervalMS int64            `json:"capture_interval_ms"`
	EvalIntervalMS    int64            `json:"eval_interval_ms"`
	VLMCamera         string           `json:"vlm_camera"`
	VLMModel          string           `json:"vlm_model"`
	Cameras           []CameraResponse `json:"cameras"`
}
