package handlers

import (
	"moneytracker/internal/models"
	"moneytracker/internal/services"
)

// ListResponse wraps a single list.
type ListResponse struct {
	List *models.ExpenseList `json:"list"`
}

// CategoryResponse wraps a single category.
type CategoryResponse struct {
	Category *models.Category `json:"category"`
}

// CategoriesResponse is the category tree.
type CategoriesResponse struct {
	Categories []CategoryNode `json:"categories"`
}

// CardResponse wraps a card after a create or state change.
type CardResponse struct {
	Card *models.Card `json:"card"`
}

// CardBalanceResponse wraps a card with its derived balance.
type CardBalanceResponse struct {
	Card *services.CardBalance `json:"card"`
}

// CardsResponse lists cards with their balances.
type CardsResponse struct {
	Cards []services.CardBalance `json:"cards"`
}

// BudgetResponse wraps a saved budget.
type BudgetResponse struct {
	Budget *models.Budget `json:"budget"`
}

// BudgetsResponse lists budget progress for a list.
type BudgetsResponse struct {
	Budgets []services.BudgetProgress `json:"budgets"`
}

// BudgetProgressResponse wraps the progress of one budget.
type BudgetProgressResponse struct {
	Progress *services.BudgetProgress `json:"progress"`
}

// ExpenseResponse wraps a created expense.
type ExpenseResponse struct {
	Expense *models.Expense `json:"expense"`
}

// DeletedResponse reports how many records were removed.
type DeletedResponse struct {
	Deleted int `json:"deleted"`
}

// TotalResponse carries an aggregate amount.
type TotalResponse struct {
	Total float64 `json:"total"`
}

// MessageResponse represents a simple message response.
type MessageResponse struct {
	Message string `json:"message"`
}
