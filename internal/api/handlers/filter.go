package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"feedwatch-go/internal/models"
	"feedwatch-go/internal/services/filters"
)

type FilterHandler struct {
	registry *filters.Registry
}

func NewFilterHandler(registry *filters.Registry) *FilterHandler {
	return &FilterHandler{
		registry: registry,
	}
}

// ListFilters lists all filters
// @Summary List filters
// @Description List all filters in evaluation order with their latest results
// @Tags filters
// @Produce json
// @Success 200 {array} models.FilterResponse
// @Router /api/filters [get]
func (h *FilterHandler) ListFilters(c *gin.Context) {
	list := h.registry.List()
	out := make([]models.FilterResponse, 0, len(list))
	for _, f := range list {
		verdict := models.VerdictIndeterminate
		if f.Evaluated {
			verdict = models.ClassifyVerdict(f.Result)
		}
		out = append(out, models.FilterResponse{Filter: f, Verdict: verdict})
	}
	c.JSON(http.StatusOK, out)
}

// CreateFilter adds a new filter
// @Summary Create a filter
// @Description Add a yes/no prompt to be evaluated against the selected camera
// @Tags filters
// @Accept json
// @Produce json
// @Param request body models.CreateFilterRequest true "Filter prompt"
// @Success 201 {object} models.Filter
// @Failure 400 {object} ErrorResponse
// @Router /api/filters [post]
func (h *FilterHandler) CreateFilter(c *gin.Context) {
	var req models.CreateFilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	f, err := h.registry.Add(req.Prompt)
	if err != nil {
		respondError(c, err)
		return
	}

	log.Info().Str("filter_id", f.ID).Msg("Filter created")
	c.JSON(http.StatusCreated, f)
}

// DeleteFilter removes a filter
// @Summary Delete a filter
// @Description Remove a filter; the remaining filters are renumbered
// @Tags filters
// @Produce json
// @Param id path string true "Filter ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/filters/{id} [delete]
func (h *FilterHandler) DeleteFilter(c *gin.Context) {
	id := c.Param("id")

	if err := h.registry.Remove(id); err != nil {
		respondError(c, err)
		return
	}

	log.Info().Str("filter_id", id).Msg("Filter deleted")
	c.JSON(http.StatusOK, gin.H{"message": "Filter deleted"})
}

// MoveFilter moves a filter in the evaluation order
// @Summary Move a filter
// @Description Swap a filter with its neighbor in the evaluation order
// @Tags filters
// @Accept json
// @Produce json
// @Param id path string true "Filter ID"
// @Param request body models.MoveRequest true "Direction (-1 up, +1 down)"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/filters/{id}/move [post]
func (h *FilterHandler) MoveFilter(c *gin.Context) {
	id := c.Param("id")

	var req models.MoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.registry.Move(id, req.Direction); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Filter moved"})
}

// ToggleFilter flips a filter's active flag
// @Summary Toggle a filter
// @Description Activate or deactivate a filter; its last result is retained
// @Tags filters
// @Produce json
// @Param id path string true "Filter ID"
// @Success 200 {object} map[string]bool
// @Failure 404 {object} ErrorResponse
// @Router /api/filters/{id}/toggle [post]
func (h *FilterHandler) ToggleFilter(c *gin.Context) {
	id := c.Param("id")

	active, err := h.registry.Toggle(id)
	if err != nil {
		respondError(c, err)
		return
	}

	log.Info().Str("filter_id", id).Bool("is_active", active).Msg("Filter toggled")
	c.JSON(http.StatusOK, gin.H{"is_active": active})
}
