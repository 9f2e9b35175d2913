// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader carries the request id in and out.
	RequestIDHeader = "X-Request-ID"
	// RequestIDKey is the gin context key for the request id.
	RequestIDKey ContextKey = "request_id"
)

// ContextKey is a type for context keys.
type ContextKey string

// RequestID tags every request with an id, reusing the caller's when present,
// echoes it in the response and logs the request once it completes.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set(string(RequestIDKey), requestID)
		c.Header(RequestIDHeader, requestID)

		start := time.Now()
		c.Next()

		slog.Info("request completed",
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start).String(),
		)
	}
}

// GetRequestIDFromContext extracts the request id from the Gin context.
func GetRequestIDFromContext(c *gin.Context) (string, bool) {
	requestID, exists := c.Get(string(RequestIDKey))
	if !exists {
		return "", false
	}
	id, ok := requestID.(string)
	return id, ok
}
