// Package errors provides custom error types for the moneytracker core and API.
// Every validation rejection and invariant guard failure is reported as an
// AppError, and the operation that produced it leaves the snapshot unchanged.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Is reports whether target is an AppError with the same code, so that
// wrapped copies still match their sentinel.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Authentication & authorization errors.
var (
	ErrUnauthorized       = &AppError{Code: "UNAUTHORIZED", Message: "Authentication required", StatusCode: http.StatusUnauthorized}
	ErrInvalidCredentials = &AppError{Code: "INVALID_CREDENTIALS", Message: "Invalid passphrase", StatusCode: http.StatusUnauthorized}
	ErrReadOnlyScope      = &AppError{Code: "READ_ONLY_SCOPE", Message: "Token scope does not allow changes", StatusCode: http.StatusForbidden}
	ErrInvalidAPIKey      = &AppError{Code: "INVALID_API_KEY", Message: "Invalid or missing API key", StatusCode: http.StatusUnauthorized}
	ErrWidgetKeyMissing   = &AppError{Code: "WIDGET_KEY_NOT_CONFIGURED", Message: "Widget key access is not configured", StatusCode: http.StatusServiceUnavailable}
	ErrAuthNotConfigured  = &AppError{Code: "AUTH_NOT_CONFIGURED", Message: "Token issuance is not configured", StatusCode: http.StatusServiceUnavailable}
)

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// List errors.
var (
	ErrListNotFound = &AppError{Code: "LIST_NOT_FOUND", Message: "List not found", StatusCode: http.StatusNotFound}
)

// Category errors.
var (
	ErrCategoryNotFound   = &AppError{Code: "CATEGORY_NOT_FOUND", Message: "Category not found", StatusCode: http.StatusNotFound}
	ErrCategoryProtected  = &AppError{Code: "CATEGORY_PROTECTED", Message: "Default categories cannot be deleted", StatusCode: http.StatusConflict}
	ErrLastCategory       = &AppError{Code: "LAST_CATEGORY", Message: "The last remaining category cannot be deleted", StatusCode: http.StatusConflict}
	ErrInvalidParent      = &AppError{Code: "INVALID_PARENT_CATEGORY", Message: "Parent must be an existing top-level category", StatusCode: http.StatusBadRequest}
	ErrSelfParentCategory = &AppError{Code: "SELF_PARENT_CATEGORY", Message: "A category cannot be its own parent", StatusCode: http.StatusBadRequest}
)

// Card errors.
var (
	ErrCardNotFound      = &AppError{Code: "CARD_NOT_FOUND", Message: "Card not found", StatusCode: http.StatusNotFound}
	ErrCardBroken        = &AppError{Code: "CARD_BROKEN", Message: "Card is archived", StatusCode: http.StatusConflict}
	ErrCardExhausted     = &AppError{Code: "CARD_EXHAUSTED", Message: "Card has no remaining balance", StatusCode: http.StatusConflict}
	ErrCardLimitExceeded = &AppError{Code: "CARD_LIMIT_EXCEEDED", Message: "Amount exceeds the card's remaining balance", StatusCode: http.StatusConflict}
	ErrCardListMismatch  = &AppError{Code: "CARD_LIST_MISMATCH", Message: "Card belongs to a different list", StatusCode: http.StatusConflict}
)

// Budget errors.
var (
	ErrBudgetNotFound = &AppError{Code: "BUDGET_NOT_FOUND", Message: "Budget not found", StatusCode: http.StatusNotFound}
)
