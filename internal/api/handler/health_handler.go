package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"planeacion/backend/pkg/response"
)

// ProbeFunc round-trips to the database and returns its clock.
type ProbeFunc func(ctx context.Context) (string, error)

// HealthHandler liveness and readiness
type HealthHandler struct {
	probe  ProbeFunc
	logger *zap.Logger
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(probe ProbeFunc, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{probe: probe, logger: logger}
}

// Health GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	response.OK(c, gin.H{"status": "ok"})
}

// DBCheck GET /db-check
func (h *HealthHandler) DBCheck(c *gin.Context) {
	now, err := h.probe(c.Request.Context())
	if err != nil {
		h.logger.Warn("database probe failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"ok": false})
		return
	}
	response.OK(c, gin.H{"ok": true, "now": now})
}
