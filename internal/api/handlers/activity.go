package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"feedwatch-go/internal/services/activitylog"
)

type ActivityHandler struct {
	activity *activitylog.Log
}

func NewActivityHandler(activity *activitylog.Log) *ActivityHandler {
	return &ActivityHandler{
		activity: activity,
	}
}

// ListActivity returns activity log entries
// @Summary List activity entries
// @Description List retained activity entries, optionally only those after a cursor
// @Tags activity
// @Produce json
// @Param since query int false "Return entries with ID greater than this cursor"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Router /api/activity [get]
func (h *ActivityHandler) ListActivity(c *gin.Context) {
	var since uint64
	if raw := c.Query("since"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "since must be a non-negative integer"})
			return
		}
		since = parsed
	}

	entries := h.activity.Since(since)

	latest := since
	if len(entries) > 0 {
		latest = entries[len(entries)-1].ID
	}

	c.JSON(http.StatusOK, gin.H{
		"entries":   entries,
		"latest_id": latest,
	})
}
