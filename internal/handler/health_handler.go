package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Emmanuel-365/event-app/pkg/database"
	"github.com/Emmanuel-365/event-app/pkg/response"
)

// HealthHandler exposes liveness and readiness probes
type HealthHandler struct {
	db *database.Postgres
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db *database.Postgres) *HealthHandler {
	return &HealthHandler{db: db}
}

// Live handles GET /health/live
func (h *HealthHandler) Live(c *gin.Context) {
	response.OK(c, gin.H{"status": "up"})
}

// Ready handles GET /health/ready
func (h *HealthHandler) Ready(c *gin.Context) {
	if err := h.db.Health(c.Request.Context()); err != nil {
		response.Error(c, http.StatusServiceUnavailable, "NOT_READY", "database unreachable")
		return
	}
	response.OK(c, gin.H{"status": "ready"})
}
