// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/sales-dashboard/backend/internal/integration/entrypoint/controller"
	"github.com/sales-dashboard/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine              *gin.Engine
	healthController    *controller.HealthController
	dashboardController *controller.DashboardController
	rateLimiter         *middleware.RateLimiter
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	dashboardController *controller.DashboardController,
	rateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		healthController:    healthController,
		dashboardController: dashboardController,
		rateLimiter:         rateLimiter,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Request logging goes through slog in RequestID
	r.engine = gin.New()
	r.engine.Use(gin.Recovery(), middleware.RequestID())

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		if r.dashboardController != nil {
			dashboard := v1.Group("/dashboard")
			if r.rateLimiter != nil {
				dashboard.Use(r.rateLimiter.Middleware())
			}
			dashboard.Use(middleware.ForwardAccessToken())
			{
				dashboard.GET("/sales-chart", r.dashboardController.GetSalesChart)
				dashboard.POST("/sales-chart/shape", r.dashboardController.ShapeChart)
				dashboard.POST("/sales/rollup", r.dashboardController.Rollup)
				dashboard.GET("/kpi", r.dashboardController.GetKPI)
				dashboard.GET("/periods", r.dashboardController.GetPeriods)
				dashboard.GET("/years", r.dashboardController.GetYears)
				dashboard.GET("/relative-day", r.dashboardController.GetRelativeDay)
			}
		}
	}
}
