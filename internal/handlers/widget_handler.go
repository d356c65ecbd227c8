package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "moneytracker/internal/errors"
	"moneytracker/internal/widget"
)

// WidgetHandler serves the home-screen widget summary.
type WidgetHandler struct {
	source widget.Source
}

// NewWidgetHandler creates a new WidgetHandler.
func NewWidgetHandler(source widget.Source) *WidgetHandler {
	return &WidgetHandler{source: source}
}

// GetWidget handles the widget summary
// @Summary     Widget summary
// @Description Active list name, 30-day spend, list budget, top category budgets and active cards
// @Tags        widget
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} widget.Summary "Summary"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /widget [get]
func (h *WidgetHandler) GetWidget(c *gin.Context) {
	summary, err := h.source.Summary(c.Request.Context())
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	c.JSON(http.StatusOK, summary)
}
