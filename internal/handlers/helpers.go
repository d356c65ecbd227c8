package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "moneytracker/internal/errors"
	"moneytracker/internal/ledger"
	"moneytracker/internal/middleware"
)

// ErrorDetail represents the inner error object in an error response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// parsePathID returns a non-empty path parameter.
//
//nolint:unparam // param is intentionally generic for reuse across handlers with different path params
func parsePathID(c *gin.Context, param string) (string, error) {
	id := strings.TrimSpace(c.Param(param))
	if id == "" {
		return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid "+param)
	}
	return id, nil
}

// windowQuery binds the optional ?window= query parameter.
type windowQuery struct {
	Window string `form:"window" binding:"omitempty,window"`
}

// parseWindow reads the optional ?window= query parameter.
func parseWindow(c *gin.Context) (ledger.Window, error) {
	var q windowQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "window must be one of 7d, 30d, all")
	}
	w, err := ledger.ParseWindow(q.Window)
	if err != nil {
		return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "window must be one of 7d, 30d, all")
	}
	return w, nil
}

// optionalQuery returns a pointer to the query value, or nil when it is empty.
func optionalQuery(c *gin.Context, key string) *string {
	if v := strings.TrimSpace(c.Query(key)); v != "" {
		return &v
	}
	return nil
}

// respondWithError writes a consistent JSON error response.
func respondWithError(c *gin.Context, err error) {
	middleware.WriteError(c, err)
}
