package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	apperrors "moneytracker/internal/errors"
)

// WidgetKeyMiddleware lets home-screen widgets that cannot hold a JWT read
// the widget summary with a static X-API-Key. Requests that pass carry the
// read-only widget scope.
func WidgetKeyMiddleware(apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if apiKey == "" {
			abortWithError(c, apperrors.ErrWidgetKeyMissing)
			return
		}
		key := c.GetHeader("X-API-Key")
		if subtle.ConstantTimeCompare([]byte(key), []byte(apiKey)) != 1 {
			abortWithError(c, apperrors.ErrInvalidAPIKey)
			return
		}
		SetScope(c, ScopeWidget)
		c.Next()
	}
}
