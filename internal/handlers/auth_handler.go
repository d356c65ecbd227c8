package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	apperrors "moneytracker/internal/errors"
	"moneytracker/internal/logger"
	"moneytracker/internal/middleware"
)

// AuthHandler issues API tokens.
type AuthHandler struct {
	passphraseHash []byte
}

// NewAuthHandler creates a new AuthHandler. passphraseHash is a bcrypt hash;
// when empty, token issuance is disabled.
func NewAuthHandler(passphraseHash string) *AuthHandler {
	return &AuthHandler{passphraseHash: []byte(passphraseHash)}
}

// TokenRequest represents the token request payload
type TokenRequest struct {
	Passphrase string `json:"passphrase" binding:"required"`
	Scope      string `json:"scope" binding:"omitempty,token_scope"`
}

// TokenResponse represents a signed token
type TokenResponse struct {
	Token     string    `json:"token"`
	Scope     string    `json:"scope"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// IssueToken handles token issuance
// @Summary     Issue a token
// @Description Exchange the passphrase for a bearer token. "app" tokens read and write; "widget" tokens only read.
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body TokenRequest true "Passphrase and scope (default app)"
// @Success     200 {object} TokenResponse "Token issued"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Invalid passphrase"
// @Failure     503 {object} ErrorResponse "No passphrase configured"
// @Router      /auth/token [post]
func (h *AuthHandler) IssueToken(c *gin.Context) {
	var req TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	if len(h.passphraseHash) == 0 {
		respondWithError(c, apperrors.ErrAuthNotConfigured)
		return
	}
	if err := bcrypt.CompareHashAndPassword(h.passphraseHash, []byte(req.Passphrase)); err != nil {
		logger.Named("auth").Warnw("token request rejected", "client_ip", c.ClientIP())
		respondWithError(c, apperrors.ErrInvalidCredentials)
		return
	}

	scope := middleware.ScopeApp
	if req.Scope != "" {
		scope = middleware.Scope(req.Scope)
	}

	token, expires, err := middleware.GenerateToken(scope)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	c.JSON(http.StatusOK, TokenResponse{Token: token, Scope: string(scope), ExpiresAt: expires})
}
