package logging

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func NewServiceLogger(service string) zerolog.Logger {
	return log.With().Str("service", service).Logger()
}

func WithCamera(base zerolog.Logger, cameraID string) zerolog.Logger {
	return base.With().Str("camera_id", cameraID).Logger()
}
