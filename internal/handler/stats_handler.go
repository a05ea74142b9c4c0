package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Emmanuel-365/event-app/internal/service"
	"github.com/Emmanuel-365/event-app/pkg/response"
)

// StatsHandler exposes reporting endpoints
type StatsHandler struct {
	stats service.StatsService
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(stats service.StatsService) *StatsHandler {
	return &StatsHandler{stats: stats}
}

// EventStats handles GET /api/v1/events/:id/stats
func (h *StatsHandler) EventStats(c *gin.Context) {
	stats, err := h.stats.EventStats(c.Request.Context(), requester(c), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, stats)
}

// OrganizerStats handles GET /api/v1/stats/organizer
func (h *StatsHandler) OrganizerStats(c *gin.Context) {
	stats, err := h.stats.OrganizerStats(c.Request.Context(), requester(c))
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, stats)
}

// Trending handles GET /api/v1/stats/trending
func (h *StatsHandler) Trending(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	stats, err := h.stats.TrendingEvents(c.Request.Context(), limit)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, stats)
}

// TopLocations handles GET /api/v1/stats/locations
func (h *StatsHandler) TopLocations(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	stats, err := h.stats.TopLocations(c.Request.Context(), limit)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, stats)
}

// BestLocations handles GET /api/v1/stats/recommendations/locations
func (h *StatsHandler) BestLocations(c *gin.Context) {
	stats, err := h.stats.BestLocations(c.Request.Context(), requester(c))
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, stats)
}

// BestMonths handles GET /api/v1/stats/recommendations/months
func (h *StatsHandler) BestMonths(c *gin.Context) {
	stats, err := h.stats.BestMonths(c.Request.Context(), requester(c))
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, stats)
}

// Recommendation handles GET /api/v1/stats/recommendations
func (h *StatsHandler) Recommendation(c *gin.Context) {
	rec, err := h.stats.Recommendation(c.Request.Context(), requester(c))
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, rec)
}

// MonthlyStats handles GET /api/v1/stats/monthly
func (h *StatsHandler) MonthlyStats(c *gin.Context) {
	stats, err := h.stats.SubscriptionsByMonth(c.Request.Context(), requester(c))
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, stats)
}
