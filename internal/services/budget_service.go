package services

import (
	"sort"
	"time"

	apperrors "moneytracker/internal/errors"
	"moneytracker/internal/ledger"
	"moneytracker/internal/models"
	"moneytracker/internal/snapshot"
)

// budgetService handles the budget resolver.
type budgetService struct {
	store *snapshot.Store
	now   func() time.Time
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(store *snapshot.Store) BudgetServicer {
	return &budgetService{store: store, now: time.Now}
}

// BudgetFor returns the budget keyed by (listID, categoryID). A nil
// categoryID selects the list-level budget.
func (s *budgetService) BudgetFor(listID string, categoryID *string) (*models.Budget, error) {
	var found *models.Budget
	s.store.Read(func(st *snapshot.State) {
		if i := st.BudgetIndex(listID, categoryID); i >= 0 {
			b := st.Budgets[i]
			found = &b
		}
	})
	if found == nil {
		return nil, apperrors.ErrBudgetNotFound
	}
	return found, nil
}

// SetBudget upserts the budget for (listID, categoryID). Negative amounts are
// clamped to zero.
func (s *budgetService) SetBudget(listID string, categoryID *string, amount float64, scope models.BudgetScope) (*models.Budget, error) {
	if !isFinite(amount) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "budget amount must be a number")
	}
	if amount < 0 {
		amount = 0
	}
	if categoryID != nil && *categoryID == "" {
		categoryID = nil
	}
	if scope == "" {
		scope = models.BudgetScopeList
		if categoryID != nil {
			scope = models.BudgetScopeCategory
		}
	}
	if !scope.Valid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "budget scope must be list or category")
	}

	var saved models.Budget
	err := commit(s.store, func(st *snapshot.State) error {
		if st.List(listID) == nil {
			return apperrors.ErrListNotFound
		}
		if categoryID != nil && st.Category(*categoryID) == nil {
			return apperrors.ErrCategoryNotFound
		}

		if i := st.BudgetIndex(listID, categoryID); i >= 0 {
			st.Budgets[i].Amount = amount
			st.Budgets[i].Scope = scope
			saved = st.Budgets[i]
			return nil
		}

		saved = models.Budget{
			ID:         models.NewID(),
			ListID:     listID,
			CategoryID: categoryID,
			Amount:     amount,
			Scope:      scope,
		}
		st.Budgets = append(st.Budgets, saved)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// RemoveBudget deletes the budget keyed by (listID, categoryID). Removing a
// budget that does not exist is not an error.
func (s *budgetService) RemoveBudget(listID string, categoryID *string) error {
	return commit(s.store, func(st *snapshot.State) error {
		if i := st.BudgetIndex(listID, categoryID); i >= 0 {
			st.Budgets = append(st.Budgets[:i], st.Budgets[i+1:]...)
		}
		return nil
	})
}

// Spending sums expenses of a list, optionally restricted to one category and
// to dates on or after since.
func (s *budgetService) Spending(listID string, categoryID *string, since *time.Time) float64 {
	var total float64
	s.store.Read(func(st *snapshot.State) {
		total = ledger.Spending(st.Expenses, ledger.Filter{ListID: listID, CategoryID: categoryID, Since: since})
	})
	return total
}

func progressOf(b models.Budget, expenses []models.Expense, since *time.Time) BudgetProgress {
	spent := ledger.Spending(expenses, ledger.Filter{ListID: b.ListID, CategoryID: b.CategoryID, Since: since})
	progress := ledger.Progress(spent, b.Amount)
	return BudgetProgress{
		BudgetID:   b.ID,
		ListID:     b.ListID,
		CategoryID: b.CategoryID,
		Scope:      b.Scope,
		Budgeted:   b.Amount,
		Spent:      spent,
		Remaining:  ledger.Remaining(spent, b.Amount),
		Progress:   progress,
		Status:     ledger.ClassifyBudget(progress),
		IsSet:      b.IsSet(),
	}
}

// GetBudgetProgress returns spent vs target for one budget over a window.
func (s *budgetService) GetBudgetProgress(listID string, categoryID *string, window ledger.Window) (*BudgetProgress, error) {
	since := window.Since(s.now())

	var found *BudgetProgress
	s.store.Read(func(st *snapshot.State) {
		if i := st.BudgetIndex(listID, categoryID); i >= 0 {
			p := progressOf(st.Budgets[i], st.Expenses, since)
			found = &p
		}
	})
	if found == nil {
		return nil, apperrors.ErrBudgetNotFound
	}
	return found, nil
}

// GetListBudgetProgress returns progress for every budget of a list: the
// list-level budget first, then category budgets by descending progress.
func (s *budgetService) GetListBudgetProgress(listID string, window ledger.Window) []BudgetProgress {
	since := window.Since(s.now())

	out := []BudgetProgress{}
	s.store.Read(func(st *snapshot.State) {
		for _, b := range st.Budgets {
			if b.ListID == listID {
				out = append(out, progressOf(b, st.Expenses, since))
			}
		}
	})

	sort.SliceStable(out, func(i, j int) bool {
		li, lj := out[i].CategoryID == nil, out[j].CategoryID == nil
		if li != lj {
			return li
		}
		return out[i].Progress > out[j].Progress
	})
	return out
}
