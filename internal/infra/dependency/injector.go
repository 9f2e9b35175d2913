// Package dependency provides dependency injection for the application.
package dependency

import (
	"github.com/sales-dashboard/backend/config"
	"github.com/sales-dashboard/backend/internal/application/usecase/dashboard"
	"github.com/sales-dashboard/backend/internal/infra/cache"
	"github.com/sales-dashboard/backend/internal/infra/server/router"
	"github.com/sales-dashboard/backend/internal/integration/entrypoint/controller"
	"github.com/sales-dashboard/backend/internal/integration/entrypoint/middleware"
	"github.com/sales-dashboard/backend/internal/integration/upstream"
)

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	Cache       *cache.Redis
	Router      *router.Router
	RateLimiter *middleware.RateLimiter
}

// NewInjector creates a new dependency injector with all dependencies wired.
// redisCache may be nil, in which case sales are always read from upstream.
func NewInjector(cfg *config.Config, redisCache *cache.Redis, clock dashboard.Clock) *Injector {
	// Create repositories
	upstreamClient := upstream.NewClient(cfg.Upstream.BaseURL, cfg.Upstream.Timeout, cfg.Upstream.MaxResponseBytes)

	var salesRepo dashboard.SalesRepository = upstreamClient
	var cacheHealthChecker func() bool
	if redisCache != nil {
		cacheHealthChecker = redisCache.HealthCheck
		if cfg.Cache.Enabled {
			salesRepo = upstream.NewCachedSalesRepository(upstreamClient, redisCache.Client(), cfg.Cache.TTL)
		}
	}

	// Create dashboard use cases
	getSalesChartUseCase := dashboard.NewGetSalesChartUseCase(salesRepo)
	getKPIUseCase := dashboard.NewGetKPIUseCase(upstreamClient, clock, cfg.Dashboard.DefaultTimezone)
	getPeriodsUseCase := dashboard.NewGetPeriodsUseCase(clock, cfg.Dashboard.DefaultTimezone)
	classifier := dashboard.NewRelativeDayClassifier(cfg.Dashboard.StrictLastWeek)

	// Create controllers
	healthController := controller.NewHealthController(cacheHealthChecker, clock)
	dashboardController := controller.NewDashboardController(
		getSalesChartUseCase,
		getKPIUseCase,
		getPeriodsUseCase,
		classifier,
		clock,
	)

	// Create middleware
	rateLimiter := middleware.NewRateLimiterWithConfig(cfg.RateLimit.MaxRequests, cfg.RateLimit.Window)
	if cfg.Server.Environment == "test" {
		rateLimiter.Disable()
	}

	// Create router
	r := router.NewRouter(healthController, dashboardController, rateLimiter)

	return &Injector{
		Config:      cfg,
		Cache:       redisCache,
		Router:      r,
		RateLimiter: rateLimiter,
	}
}
