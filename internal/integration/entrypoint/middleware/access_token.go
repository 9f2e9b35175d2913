// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sales-dashboard/backend/internal/integration/upstream"
)

const bearerPrefix = "Bearer "

// ForwardAccessToken places the caller's bearer token in the request context
// so the upstream client can present it to the sales backend. The token is not
// validated here; the backend is the authority.
func ForwardAccessToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			c.Next()
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(authHeader, bearerPrefix))
		if token != "" {
			ctx := upstream.WithAccessToken(c.Request.Context(), token)
			c.Request = c.Request.WithContext(ctx)
		}

		c.Next()
	}
}
