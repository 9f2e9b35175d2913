// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sales-dashboard/backend/internal/application/usecase/dashboard"
)

// HealthController handles health check endpoints.
type HealthController struct {
	cacheHealthChecker func() bool
	clock              dashboard.Clock
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string `json:"status"`
	Cache     string `json:"cache"`
	Timestamp string `json:"timestamp"`
}

// NewHealthController creates a new health controller instance.
// cacheHealthChecker may be nil when the cache is disabled.
func NewHealthController(cacheHealthChecker func() bool, clock dashboard.Clock) *HealthController {
	return &HealthController{
		cacheHealthChecker: cacheHealthChecker,
		clock:              clock,
	}
}

// Check handles GET /health requests.
// It returns the current health status of the API and its dependencies.
func (h *HealthController) Check(c *gin.Context) {
	cacheStatus := "disconnected"
	if h.cacheHealthChecker != nil && h.cacheHealthChecker() {
		cacheStatus = "connected"
	}

	response := HealthResponse{
		Status:    "ok",
		Cache:     cacheStatus,
		Timestamp: h.clock.Now().UTC().Format(time.RFC3339),
	}

	c.JSON(http.StatusOK, response)
}
