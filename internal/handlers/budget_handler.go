package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "moneytracker/internal/errors"
	"moneytracker/internal/models"
	"moneytracker/internal/services"
)

// BudgetHandler handles budget-related requests.
type BudgetHandler struct {
	budgetService services.BudgetServicer
	listService   services.ListServicer
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(budgetService services.BudgetServicer, listService services.ListServicer) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService, listService: listService}
}

// SetBudgetRequest represents the request payload for setting a budget.
// Omitting categoryId targets the list-level budget.
type SetBudgetRequest struct {
	ListID     string             `json:"listId"`
	CategoryID *string            `json:"categoryId"`
	Amount     *float64           `json:"amount" binding:"required"`
	Scope      models.BudgetScope `json:"scope" binding:"omitempty,budget_scope"`
}

// resolveList returns listID, or the active list's id when it is empty.
func (h *BudgetHandler) resolveList(listID string) (string, error) {
	if listID != "" {
		return listID, nil
	}
	active, err := h.listService.ActiveList()
	if err != nil {
		return "", err
	}
	return active.ID, nil
}

// GetBudgets handles listing budget progress for a list.
// @Summary     Get budgets
// @Description Spent vs target for every budget of a list over a window
// @Tags        budgets
// @Produce     json
// @Security    BearerAuth
// @Param       listId query string false "List ID (default: active list)"
// @Param       window query string false "7d, 30d or all (default all)"
// @Success     200 {object} BudgetsResponse "Budget progress"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /budgets [get]
func (h *BudgetHandler) GetBudgets(c *gin.Context) {
	listID, err := h.resolveList(c.Query("listId"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	window, err := parseWindow(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, BudgetsResponse{Budgets: h.budgetService.GetListBudgetProgress(listID, window)})
}

// GetBudgetProgress handles progress for one budget.
// @Summary     Get budget progress
// @Tags        budgets
// @Produce     json
// @Security    BearerAuth
// @Param       listId     query string false "List ID (default: active list)"
// @Param       categoryId query string false "Category ID (omit for the list budget)"
// @Param       window     query string false "7d, 30d or all (default all)"
// @Success     200 {object} BudgetProgressResponse "Budget progress"
// @Failure     404 {object} ErrorResponse "Budget not found"
// @Router      /budgets/progress [get]
func (h *BudgetHandler) GetBudgetProgress(c *gin.Context) {
	listID, err := h.resolveList(c.Query("listId"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	window, err := parseWindow(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	progress, err := h.budgetService.GetBudgetProgress(listID, optionalQuery(c, "categoryId"), window)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, BudgetProgressResponse{Progress: progress})
}

// SetBudget handles creating or replacing a budget.
// @Summary     Set budget
// @Description Upserts the budget for (listId, categoryId); negative amounts are stored as 0
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body SetBudgetRequest true "Budget details"
// @Success     200 {object} BudgetResponse "Saved budget"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "List or category not found"
// @Router      /budgets [put]
func (h *BudgetHandler) SetBudget(c *gin.Context) {
	var req SetBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	listID, err := h.resolveList(req.ListID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	budget, err := h.budgetService.SetBudget(listID, req.CategoryID, *req.Amount, req.Scope)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, BudgetResponse{Budget: budget})
}

// RemoveBudget handles deleting a budget. Removing a missing budget succeeds.
// @Summary     Remove budget
// @Tags        budgets
// @Produce     json
// @Security    BearerAuth
// @Param       listId     query string false "List ID (default: active list)"
// @Param       categoryId query string false "Category ID (omit for the list budget)"
// @Success     200 {object} MessageResponse "Budget removed"
// @Router      /budgets [delete]
func (h *BudgetHandler) RemoveBudget(c *gin.Context) {
	listID, err := h.resolveList(c.Query("listId"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.budgetService.RemoveBudget(listID, optionalQuery(c, "categoryId")); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Budget removed successfully"})
}
