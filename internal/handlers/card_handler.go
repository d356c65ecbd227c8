package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "moneytracker/internal/errors"
	"moneytracker/internal/models"
	"moneytracker/internal/services"
)

// CardHandler handles prepaid card requests.
type CardHandler struct {
	cardService services.CardServicer
	listService services.ListServicer
}

// NewCardHandler creates a new CardHandler.
func NewCardHandler(cardService services.CardServicer, listService services.ListServicer) *CardHandler {
	return &CardHandler{cardService: cardService, listService: listService}
}

// CreateCardRequest represents the request payload for creating a card.
type CreateCardRequest struct {
	Name  string  `json:"name" binding:"max=100"`
	Limit float64 `json:"limit" binding:"required,gt=0"`
}

// GetCards handles listing cards with balances.
// @Summary     Get cards
// @Description Cards of a list (the active list by default) with spent, remaining and status
// @Tags        cards
// @Produce     json
// @Security    BearerAuth
// @Param       listId        query string false "List ID (default: active list)"
// @Param       includeBroken query bool   false "Include archived cards"
// @Success     200 {object} CardsResponse "Cards"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /cards [get]
func (h *CardHandler) GetCards(c *gin.Context) {
	listID := c.Query("listId")
	if listID == "" {
		active, err := h.listService.ActiveList()
		if err != nil {
			respondWithError(c, err)
			return
		}
		listID = active.ID
	}

	includeBroken := false
	switch c.Query("includeBroken") {
	case "", "false":
	case "true":
		includeBroken = true
	default:
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "includeBroken must be 'true' or 'false'"))
		return
	}

	c.JSON(http.StatusOK, CardsResponse{Cards: h.cardService.GetCards(listID, includeBroken)})
}

// GetCard handles retrieving a card with its balance.
// @Summary     Get card by ID
// @Tags        cards
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Card ID"
// @Success     200 {object} CardBalanceResponse "Card"
// @Failure     404 {object} ErrorResponse "Card not found"
// @Router      /cards/{id} [get]
func (h *CardHandler) GetCard(c *gin.Context) {
	cardID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	card, err := h.cardService.GetCardByID(cardID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, CardBalanceResponse{Card: card})
}

// CreateCard handles creating a card on the active list.
// @Summary     Create a card
// @Tags        cards
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateCardRequest true "Card details"
// @Success     201 {object} CardResponse "Card created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     403 {object} ErrorResponse "Read-only token"
// @Router      /cards [post]
func (h *CardHandler) CreateCard(c *gin.Context) {
	var req CreateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	card, err := h.cardService.CreateCard(req.Name, req.Limit)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, CardResponse{Card: card})
}

// BreakCard handles archiving a card.
// @Summary     Archive a card
// @Tags        cards
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Card ID"
// @Success     200 {object} CardResponse "Archived card"
// @Failure     404 {object} ErrorResponse "Card not found"
// @Router      /cards/{id}/break [post]
func (h *CardHandler) BreakCard(c *gin.Context) {
	h.transition(c, h.cardService.BreakCard)
}

// RestoreCard handles reactivating an archived card.
// @Summary     Restore a card
// @Tags        cards
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Card ID"
// @Success     200 {object} CardResponse "Restored card"
// @Failure     404 {object} ErrorResponse "Card not found"
// @Router      /cards/{id}/restore [post]
func (h *CardHandler) RestoreCard(c *gin.Context) {
	h.transition(c, h.cardService.RestoreCard)
}

func (h *CardHandler) transition(c *gin.Context, fn func(string) (*models.Card, error)) {
	cardID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	card, err := fn(cardID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, CardResponse{Card: card})
}

// DeleteCard handles deleting a card. Expenses recorded against it are kept.
// @Summary     Delete a card
// @Tags        cards
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Card ID"
// @Success     200 {object} MessageResponse "Card deleted"
// @Failure     404 {object} ErrorResponse "Card not found"
// @Router      /cards/{id} [delete]
func (h *CardHandler) DeleteCard(c *gin.Context) {
	cardID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.cardService.DeleteCard(cardID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Card deleted successfully"})
}
