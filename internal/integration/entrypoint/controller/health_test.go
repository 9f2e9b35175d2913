package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthController_Check(t *testing.T) {
	tests := []struct {
		name      string
		checker   func() bool
		wantCache string
	}{
		{name: "cache connected", checker: func() bool { return true }, wantCache: "connected"},
		{name: "cache down", checker: func() bool { return false }, wantCache: "disconnected"},
		{name: "cache disabled", checker: nil, wantCache: "disconnected"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewHealthController(tt.checker, fixedClock{now: testNow})
			engine := gin.New()
			engine.GET("/health", ctrl.Check)

			w := httptest.NewRecorder()
			engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
			require.Equal(t, http.StatusOK, w.Code)

			var resp HealthResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, "ok", resp.Status)
			assert.Equal(t, tt.wantCache, resp.Cache)
			assert.Equal(t, "2024-03-15T17:30:00Z", resp.Timestamp)
		})
	}
}
