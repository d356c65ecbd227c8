package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"moneytracker/internal/logger"
)

const requestIDKey = "requestID"

// RequestID returns the id assigned by RequestLogging.
func RequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

// RequestLogging returns a Gin middleware that logs each request with a request
// ID, method, path, status code, latency, token scope and client IP using Zap.
// A well-formed incoming X-Request-ID is kept.
func RequestLogging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader("X-Request-ID")
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.New().String()
		}
		c.Set(requestIDKey, requestID)
		c.Writer.Header().Set("X-Request-ID", requestID)

		c.Next()

		latency := time.Since(start)
		log := logger.Named("http")
		log.Infow("request",
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency_ms", latency.Milliseconds(),
			"scope", ScopeFrom(c),
			"client_ip", c.ClientIP(),
		)
	}
}
