// Package config provides application configuration management.
// It loads configuration from environment variables with sensible defaults.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Redis     RedisConfig
	Cache     CacheConfig
	Upstream  UpstreamConfig
	Dashboard DashboardConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Environment  string
	LogLevel     string
}

// RedisConfig holds Redis configuration.
type RedisConfig struct {
	URL      string
	Password string
	DB       int
}

// CacheConfig holds the upstream sales cache configuration.
type CacheConfig struct {
	Enabled bool
	TTL     time.Duration
}

// UpstreamConfig holds the sales backend API configuration.
type UpstreamConfig struct {
	BaseURL          string
	Timeout          time.Duration
	MaxResponseBytes int64
}

// DashboardConfig holds dashboard behavior configuration.
type DashboardConfig struct {
	DefaultTimezone string
	StrictLastWeek  bool
}

// RateLimitConfig holds the per-client request budget for dashboard routes.
type RateLimitConfig struct {
	MaxRequests int
	Window      time.Duration
}

// Load loads configuration from environment variables.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Host:         getEnv("SERVER_HOST", "0.0.0.0"),
			Port:         getEnvAsInt("SERVER_PORT", 8080),
			ReadTimeout:  getEnvAsDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getEnvAsDuration("SERVER_WRITE_TIMEOUT", 15*time.Second),
			Environment:  getEnv("ENV", "development"),
			LogLevel:     getEnv("LOG_LEVEL", "info"),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", "redis://localhost:6379/0"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Cache: CacheConfig{
			Enabled: getEnvAsBool("CACHE_ENABLED", true),
			TTL:     getEnvAsDuration("CACHE_TTL", 5*time.Minute),
		},
		Upstream: UpstreamConfig{
			BaseURL:          getEnv("UPSTREAM_BASE_URL", "http://localhost:3001/api"),
			Timeout:          getEnvAsDuration("UPSTREAM_TIMEOUT", 10*time.Second),
			MaxResponseBytes: int64(getEnvAsInt("UPSTREAM_MAX_RESPONSE_BYTES", 4<<20)),
		},
		Dashboard: DashboardConfig{
			DefaultTimezone: getEnv("DASHBOARD_DEFAULT_TIMEZONE", "PST"),
			StrictLastWeek:  getEnvAsBool("DASHBOARD_STRICT_LAST_WEEK", false),
		},
		RateLimit: RateLimitConfig{
			MaxRequests: getEnvAsInt("RATE_LIMIT_MAX_REQUESTS", 120),
			Window:      getEnvAsDuration("RATE_LIMIT_WINDOW", 1*time.Minute),
		},
	}
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
