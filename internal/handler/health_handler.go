package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandler handles health checks.
type HealthHandler struct{}

// NewHealthHandler creates a new health handler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Check handles GET /health.
func (h *HealthHandler) Check(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}
