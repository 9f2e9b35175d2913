package dependency

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sales-dashboard/backend/config"
	"github.com/sales-dashboard/backend/internal/infra/cache"
	"github.com/sales-dashboard/backend/internal/integration/entrypoint/controller"
)

type fixedClock struct{}

func (fixedClock) Now() time.Time {
	return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
}

func newConfig(t *testing.T, upstreamURL string) *config.Config {
	t.Helper()
	t.Setenv("ENV", "test")
	t.Setenv("UPSTREAM_BASE_URL", upstreamURL)
	return config.Load()
}

func TestNewInjector_WiresCachedSales(t *testing.T) {
	var calls atomic.Int32
	upstreamServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if r.Header.Get("Authorization") != "Bearer good" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(`[{"year":"2024","data":[{"month":"Jan","value":1}]}]`))
	}))
	defer upstreamServer.Close()

	redisServer := miniredis.RunT(t)
	redisCache := cache.NewRedis(redis.NewClient(&redis.Options{Addr: redisServer.Addr()}))
	defer func() { _ = redisCache.Close() }()

	injector := NewInjector(newConfig(t, upstreamServer.URL), redisCache, fixedClock{})
	engine := injector.Router.Setup("test")

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/sales-chart?frequency=yearly", nil)
		req.Header.Set("Authorization", "Bearer good")
		engine.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
	}
	assert.Equal(t, int32(1), calls.Load())

	// An anonymous caller must not be served the authorized caller's entry.
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/sales-chart?frequency=yearly", nil))
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, int32(2), calls.Load())

	w = httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	var health controller.HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &health))
	assert.Equal(t, "connected", health.Cache)
}

func TestNewInjector_WithoutCache(t *testing.T) {
	var calls atomic.Int32
	upstreamServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(`[]`))
	}))
	defer upstreamServer.Close()

	injector := NewInjector(newConfig(t, upstreamServer.URL), nil, fixedClock{})
	engine := injector.Router.Setup("test")

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/sales-chart?frequency=yearly", nil))
		require.Equal(t, http.StatusOK, w.Code)
	}
	assert.Equal(t, int32(2), calls.Load())

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	var health controller.HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &health))
	assert.Equal(t, "disconnected", health.Cache)
}
