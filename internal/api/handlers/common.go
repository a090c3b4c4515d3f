package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"feedwatch-go/internal/services/capture"
	"feedwatch-go/internal/services/filters"
)

// ErrorResponse is the error body for all endpoints.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse is the generic acknowledgement body.
type SuccessResponse struct {
	Message string `json:"message"`
}

// respondError maps service errors to HTTP statuses: validation failures are
// 400, unknown ids are 404, everything else is 500.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, filters.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, filters.ErrNotFound), errors.Is(err, capture.ErrNotFound):
		status = http.StatusNotFound
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
