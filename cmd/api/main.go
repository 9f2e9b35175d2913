// Package main is the entry point for the Sales Dashboard API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/sales-dashboard/backend/config"
	"github.com/sales-dashboard/backend/internal/application/usecase/dashboard"
	"github.com/sales-dashboard/backend/internal/infra/cache"
	"github.com/sales-dashboard/backend/internal/infra/dependency"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Server.LogLevel),
	}))
	slog.SetDefault(logger)

	slog.Info("Starting Sales Dashboard API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"upstream", cfg.Upstream.BaseURL,
	)

	// Initialize cache connection
	var redisCache *cache.Redis
	if cfg.Cache.Enabled {
		conn, err := cache.NewRedisConnection(&cfg.Redis)
		if err != nil {
			slog.Warn("Redis connection failed, running without cache",
				"error", err,
			)
		} else {
			redisCache = conn
			defer func() {
				if err := redisCache.Close(); err != nil {
					slog.Error("Failed to close redis connection", "error", err)
				}
			}()
		}
	}

	injector := dependency.NewInjector(cfg, redisCache, dashboard.SystemClock{})
	engine := injector.Router.Setup(cfg.Server.Environment)

	cleanupCtx, stopCleanup := context.WithCancel(context.Background())
	defer stopCleanup()
	go injector.RateLimiter.RunCleanup(cleanupCtx, cfg.RateLimit.Window)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
