package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"moneytracker/internal/models"
	"moneytracker/internal/snapshot"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

func mustUpdate(t *testing.T, store *snapshot.Store, fn func(*snapshot.State)) {
	t.Helper()

	err := store.Update(func(s *snapshot.State) error {
		fn(s)
		return nil
	})
	if err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
}

// DefaultListID returns the id of the "General" list.
func DefaultListID(t *testing.T, store *snapshot.Store) string {
	t.Helper()

	var id string
	store.Read(func(s *snapshot.State) {
		if l := s.DefaultList(); l != nil {
			id = l.ID
		}
	})
	if id == "" {
		t.Fatal("store has no default list")
	}
	return id
}

// CreateTestList appends a list with a unique name. It does not change the
// selection.
func CreateTestList(t *testing.T, store *snapshot.Store) *models.ExpenseList {
	t.Helper()

	list := models.ExpenseList{ID: models.NewID(), Name: fmt.Sprintf("List %d", nextID())}
	mustUpdate(t, store, func(s *snapshot.State) {
		s.Lists = append(s.Lists, list)
	})
	return &list
}

// CreateTestCategory appends a category with a unique name. parentID may be nil.
func CreateTestCategory(t *testing.T, store *snapshot.Store, parentID *string) *models.Category {
	t.Helper()

	cat := models.Category{
		ID:       models.NewID(),
		Name:     fmt.Sprintf("Category %d", nextID()),
		Icon:     "tag",
		Color:    "#34C759",
		ParentID: parentID,
	}
	mustUpdate(t, store, func(s *snapshot.State) {
		s.Categories = append(s.Categories, cat)
	})
	return &cat
}

// CreateTestCard creates an active card on the given list.
func CreateTestCard(t *testing.T, store *snapshot.Store, listID string, limit float64) *models.Card {
	t.Helper()

	card := models.Card{
		ID:     models.NewID(),
		Name:   fmt.Sprintf("Card %d", nextID()),
		Limit:  limit,
		ListID: listID,
	}
	mustUpdate(t, store, func(s *snapshot.State) {
		s.Cards = append(s.Cards, card)
	})
	return &card
}

// CreateTestExpense inserts an expense at the head of the collection without
// any card checks. cardID may be nil.
func CreateTestExpense(t *testing.T, store *snapshot.Store, listID, categoryID string, amount float64, date time.Time, cardID *string) *models.Expense {
	t.Helper()

	exp := models.Expense{
		ID:         models.NewID(),
		Amount:     amount,
		CategoryID: categoryID,
		Note:       fmt.Sprintf("expense %d", nextID()),
		Date:       date,
		ListID:     listID,
		CardID:     cardID,
	}
	mustUpdate(t, store, func(s *snapshot.State) {
		s.Expenses = append([]models.Expense{exp}, s.Expenses...)
	})
	return &exp
}

// CreateTestBudget inserts a budget for (listID, categoryID). A nil
// categoryID creates the list-level budget.
func CreateTestBudget(t *testing.T, store *snapshot.Store, listID string, categoryID *string, amount float64) *models.Budget {
	t.Helper()

	scope := models.BudgetScopeList
	if categoryID != nil {
		scope = models.BudgetScopeCategory
	}
	budget := models.Budget{
		ID:         models.NewID(),
		ListID:     listID,
		CategoryID: categoryID,
		Amount:     amount,
		Scope:      scope,
	}
	mustUpdate(t, store, func(s *snapshot.State) {
		s.Budgets = append(s.Budgets, budget)
	})
	return &budget
}
