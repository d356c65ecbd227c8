package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "moneytracker/internal/errors"
	"moneytracker/internal/export"
	"moneytracker/internal/logger"
	"moneytracker/internal/pagination"
	"moneytracker/internal/services"
)

// ExpenseHandler handles expense-related requests.
type ExpenseHandler struct {
	expenseService services.ExpenseServicer
}

// NewExpenseHandler creates a new ExpenseHandler.
func NewExpenseHandler(expenseService services.ExpenseServicer) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// CreateExpenseRequest represents the request payload for recording an expense.
type CreateExpenseRequest struct {
	Amount     float64    `json:"amount" binding:"required,gt=0"`
	CategoryID string     `json:"categoryId" binding:"required"`
	Note       string     `json:"note" binding:"max=500"`
	Date       *time.Time `json:"date"`
	CardID     *string    `json:"cardId"`
}

// DeleteExpensesRequest lists the expenses to delete.
type DeleteExpensesRequest struct {
	IDs []string `json:"ids" binding:"required,min=1,dive,required"`
}

// filterFromQuery reads ?listId= and ?window=.
func filterFromQuery(c *gin.Context) (services.ExpenseFilter, error) {
	window, err := parseWindow(c)
	if err != nil {
		return services.ExpenseFilter{}, err
	}
	return services.ExpenseFilter{
		ListID: optionalQuery(c, "listId"),
		Since:  window.Since(time.Now()),
	}, nil
}

// CreateExpense handles recording an expense on the active list.
// @Summary     Create an expense
// @Description Records an expense on the active list; with cardId the card must cover the amount
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateExpenseRequest true "Expense details"
// @Success     201 {object} ExpenseResponse "Expense created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Category or card not found"
// @Failure     409 {object} ErrorResponse "Card archived, exhausted, on another list or over its remaining balance"
// @Router      /expenses [post]
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	var req CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var date time.Time
	if req.Date != nil {
		date = *req.Date
	}

	expense, err := h.expenseService.CreateExpense(req.Amount, req.CategoryID, req.Note, date, req.CardID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ExpenseResponse{Expense: expense})
}

// GetExpenses handles listing expenses, newest inserted first.
// @Summary     Get expenses
// @Tags        expenses
// @Produce     json
// @Security    BearerAuth
// @Param       listId   query string false "Filter by list"
// @Param       window   query string false "7d, 30d or all (default all)"
// @Param       page     query int    false "Page number (default 1)"
// @Param       pageSize query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Expense] "Paginated expenses"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /expenses [get]
func (h *ExpenseHandler) GetExpenses(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	filter, err := filterFromQuery(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.expenseService.GetExpenses(filter, page))
}

// DeleteExpenses handles deleting a set of expenses.
// @Summary     Delete expenses
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body DeleteExpensesRequest true "Expense IDs"
// @Success     200 {object} DeletedResponse "Number deleted"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /expenses [delete]
func (h *ExpenseHandler) DeleteExpenses(c *gin.Context) {
	var req DeleteExpensesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	deleted, err := h.expenseService.DeleteExpenses(req.IDs)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, DeletedResponse{Deleted: deleted})
}

// GetMonthTotal handles the current calendar month total across all lists.
// @Summary     Current month total
// @Tags        expenses
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} TotalResponse "Total"
// @Router      /expenses/month-total [get]
func (h *ExpenseHandler) GetMonthTotal(c *gin.Context) {
	c.JSON(http.StatusOK, TotalResponse{Total: h.expenseService.TotalForCurrentCalendarMonth()})
}

// ExportExpenses handles CSV export.
// @Summary     Export expenses as CSV
// @Tags        expenses
// @Produce     text/csv
// @Security    BearerAuth
// @Param       listId query string false "Filter by list"
// @Param       window query string false "7d, 30d or all (default all)"
// @Success     200 {string} string "CSV"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /expenses/export [get]
func (h *ExpenseHandler) ExportExpenses(c *gin.Context) {
	filter, err := filterFromQuery(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	rows := h.expenseService.ExportRows(filter)
	c.Header("Content-Disposition", `attachment; filename="expenses.csv"`)
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Status(http.StatusOK)
	if err := export.Write(c.Writer, rows); err != nil {
		logger.Get().Errorw("csv export failed", "error", err.Error(), "path", c.Request.URL.Path)
	}
}
