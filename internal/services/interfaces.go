package services

import (
	"time"

	"moneytracker/internal/export"
	"moneytracker/internal/ledger"
	"moneytracker/internal/models"
	"moneytracker/internal/pagination"
)

// ListServicer defines the contract for the list registry.
type ListServicer interface {
	EnsureDefaultList() (*models.ExpenseList, error)
	AddList(name string) (*models.ExpenseList, error)
	RenameList(listID, name string) (*models.ExpenseList, error)
	SelectList(listID string) error
	ActiveList() (*models.ExpenseList, error)
	GetLists() []models.ExpenseList
}

// CategoryServicer defines the contract for the category registry.
type CategoryServicer interface {
	SeedDefaults() (int, error)
	CreateCategory(name, icon, color string, parentID *string) (*models.Category, error)
	UpdateCategory(category models.Category) (*models.Category, error)
	DeleteCategory(categoryID string) error
	GetCategoryByID(categoryID string) (*models.Category, error)
	GetCategories() []models.Category
	TopLevel() []models.Category
	ChildrenOf(parentID string) []models.Category
}

// CardBalance is a card together with its derived balance.
type CardBalance struct {
	models.Card
	Spent     float64           `json:"spent"`
	Remaining float64           `json:"remaining"`
	Status    ledger.CardStatus `json:"status"`
}

// CardServicer defines the contract for the card ledger.
type CardServicer interface {
	CreateCard(name string, limit float64) (*models.Card, error)
	GetCardByID(cardID string) (*CardBalance, error)
	GetCards(listID string, includeBroken bool) []CardBalance
	Spent(cardID string) (float64, error)
	Remaining(cardID string) (float64, error)
	BreakCard(cardID string) (*models.Card, error)
	RestoreCard(cardID string) (*models.Card, error)
	DeleteCard(cardID string) error
	AutoBreakExhaustedCards() (int, error)
}

// BudgetProgress contains spending vs budget data for one budget over a window.
type BudgetProgress struct {
	BudgetID   string              `json:"budgetId"`
	ListID     string              `json:"listId"`
	CategoryID *string             `json:"categoryId,omitempty"`
	Scope      models.BudgetScope  `json:"scope"`
	Budgeted   float64             `json:"budgeted"`
	Spent      float64             `json:"spent"`
	Remaining  float64             `json:"remaining"`
	Progress   float64             `json:"progress"`
	Status     ledger.BudgetStatus `json:"status"`
	IsSet      bool                `json:"isSet"`
}

// BudgetServicer defines the contract for the budget resolver.
type BudgetServicer interface {
	BudgetFor(listID string, categoryID *string) (*models.Budget, error)
	SetBudget(listID string, categoryID *string, amount float64, scope models.BudgetScope) (*models.Budget, error)
	RemoveBudget(listID string, categoryID *string) error
	Spending(listID string, categoryID *string, since *time.Time) float64
	GetBudgetProgress(listID string, categoryID *string, window ledger.Window) (*BudgetProgress, error)
	GetListBudgetProgress(listID string, window ledger.Window) []BudgetProgress
}

// ExpenseFilter holds optional filter parameters for listing expenses.
type ExpenseFilter struct {
	ListID *string
	Since  *time.Time
}

// ExpenseServicer defines the contract for the expense ledger.
type ExpenseServicer interface {
	CreateExpense(amount float64, categoryID, note string, date time.Time, cardID *string) (*models.Expense, error)
	DeleteExpenses(expenseIDs []string) (int, error)
	FilteredBy(filter ExpenseFilter) []models.Expense
	GetExpenses(filter ExpenseFilter, page pagination.PageRequest) pagination.PageResponse[models.Expense]
	TotalForCurrentCalendarMonth() float64
	ExportRows(filter ExpenseFilter) []export.Row
}
