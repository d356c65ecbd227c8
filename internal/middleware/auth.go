package middleware

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"moneytracker/internal/config"
	apperrors "moneytracker/internal/errors"
)

// Scope is the access level carried by a token.
type Scope string

const (
	// ScopeApp may read and change the snapshot.
	ScopeApp Scope = "app"
	// ScopeWidget may only read.
	ScopeWidget Scope = "widget"
)

const (
	scopeKey = "scope"
	issuer   = "moneytracker-api"
)

// getJWTKey returns the JWT key from configuration
func getJWTKey() []byte {
	return []byte(config.Get().JWTSecret)
}

// JWTClaims represents the claims in the JWT
type JWTClaims struct {
	Scope Scope `json:"scope"`
	jwt.RegisteredClaims
}

// GenerateToken signs a token for scope that expires after the configured
// lifetime. It returns the token and its expiry.
func GenerateToken(scope Scope) (string, time.Time, error) {
	now := time.Now()
	expires := now.Add(config.Get().JWTExpirationDur)
	claims := &JWTClaims{
		Scope: scope,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expires),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    issuer,
			Subject:   string(scope),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(getJWTKey())
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expires, nil
}

// ParseToken validates a signed token and returns its claims.
func ParseToken(tokenString string) (*JWTClaims, error) {
	claims := &JWTClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return getJWTKey(), nil
	}, jwt.WithIssuer(issuer))
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	if claims.Scope != ScopeApp && claims.Scope != ScopeWidget {
		return nil, fmt.Errorf("unknown token scope %q", claims.Scope)
	}
	return claims, nil
}

// AuthMiddleware verifies the JWT token and sets its scope in the context
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortWithError(c, apperrors.WithMessage(apperrors.ErrUnauthorized, "Authorization header is required"))
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			abortWithError(c, apperrors.WithMessage(apperrors.ErrUnauthorized, "Invalid authorization header format"))
			return
		}

		claims, err := ParseToken(parts[1])
		if err != nil {
			abortWithError(c, apperrors.WithMessage(apperrors.ErrUnauthorized, "Invalid or expired token"))
			return
		}

		c.Set(scopeKey, claims.Scope)
		c.Next()
	}
}

// RequireWriteScope rejects state-changing requests made with a read-only
// token. Safe methods pass through.
func RequireWriteScope() gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}

		if ScopeFrom(c) != ScopeApp {
			abortWithError(c, apperrors.ErrReadOnlyScope)
			return
		}
		c.Next()
	}
}

// ScopeFrom returns the scope set by AuthMiddleware, or "" when absent.
func ScopeFrom(c *gin.Context) Scope {
	v, ok := c.Get(scopeKey)
	if !ok {
		return ""
	}
	scope, _ := v.(Scope)
	return scope
}

// SetScope stores scope in the context. Tests use it in place of a token.
func SetScope(c *gin.Context, scope Scope) {
	c.Set(scopeKey, scope)
}
