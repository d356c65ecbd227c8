package services

import (
	"time"

	apperrors "moneytracker/internal/errors"
	"moneytracker/internal/export"
	"moneytracker/internal/ledger"
	"moneytracker/internal/logger"
	"moneytracker/internal/models"
	"moneytracker/internal/pagination"
	"moneytracker/internal/snapshot"
)

// expenseService handles the expense ledger.
type expenseService struct {
	store *snapshot.Store
	now   func() time.Time
}

// NewExpenseService creates a new ExpenseServicer.
func NewExpenseService(store *snapshot.Store) ExpenseServicer {
	return &expenseService{store: store, now: time.Now}
}

// CreateExpense records an expense on the active list, at the head of the
// collection. With a card, the card must be able to absorb the amount or
// nothing is inserted; a card the expense exhausts is archived.
func (s *expenseService) CreateExpense(amount float64, categoryID, note string, date time.Time, cardID *string) (*models.Expense, error) {
	if !isFinite(amount) || amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be positive")
	}
	if date.IsZero() {
		date = s.now()
	}
	if cardID != nil && *cardID == "" {
		cardID = nil
	}

	expense := models.Expense{
		ID:         models.NewID(),
		Amount:     amount,
		CategoryID: categoryID,
		Note:       note,
		Date:       date,
		CardID:     cardID,
	}

	var autoBroken bool
	err := commit(s.store, func(st *snapshot.State) error {
		if st.Category(categoryID) == nil {
			return apperrors.ErrCategoryNotFound
		}
		active := st.ActiveList()
		if active == nil {
			return apperrors.ErrListNotFound
		}
		expense.ListID = active.ID

		insert := func() {
			st.Expenses = append([]models.Expense{expense}, st.Expenses...)
		}
		if cardID == nil {
			insert()
			return nil
		}

		var err error
		autoBroken, err = recordExpenseAgainstCard(st, expense.ListID, *cardID, amount, insert)
		return err
	})
	if err != nil {
		return nil, err
	}

	if autoBroken {
		logger.Named("cards").Infow("card exhausted, archived", "card_id", *cardID, "expense_id", expense.ID)
	}
	return &expense, nil
}

// DeleteExpenses removes every expense whose id is in expenseIDs and returns
// how many were removed. Unknown ids are ignored.
func (s *expenseService) DeleteExpenses(expenseIDs []string) (int, error) {
	if len(expenseIDs) == 0 {
		return 0, nil
	}
	ids := make(map[string]bool, len(expenseIDs))
	for _, id := range expenseIDs {
		ids[id] = true
	}

	removed := 0
	err := commit(s.store, func(st *snapshot.State) error {
		kept := st.Expenses[:0]
		for _, e := range st.Expenses {
			if ids[e.ID] {
				removed++
				continue
			}
			kept = append(kept, e)
		}
		st.Expenses = kept
		return nil
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}

func (filter ExpenseFilter) ledgerFilter() ledger.Filter {
	f := ledger.Filter{Since: filter.Since}
	if filter.ListID != nil {
		f.ListID = *filter.ListID
	}
	return f
}

// FilteredBy returns expenses in stored order (newest inserted first) that
// match the list and lower date bound, when given.
func (s *expenseService) FilteredBy(filter ExpenseFilter) []models.Expense {
	f := filter.ledgerFilter()

	out := []models.Expense{}
	s.store.Read(func(st *snapshot.State) {
		for _, e := range st.Expenses {
			if f.Match(e) {
				out = append(out, e)
			}
		}
	})
	return out
}

// GetExpenses returns one page of FilteredBy.
func (s *expenseService) GetExpenses(filter ExpenseFilter, page pagination.PageRequest) pagination.PageResponse[models.Expense] {
	return pagination.Paginate(s.FilteredBy(filter), page)
}

// TotalForCurrentCalendarMonth sums every expense dated on or after the first
// of the current month, across all lists.
func (s *expenseService) TotalForCurrentCalendarMonth() float64 {
	since := ledger.StartOfMonth(s.now())

	var total float64
	s.store.Read(func(st *snapshot.State) {
		total = ledger.Spending(st.Expenses, ledger.Filter{Since: &since})
	})
	return total
}

// ExportRows returns FilteredBy as CSV rows with names resolved.
func (s *expenseService) ExportRows(filter ExpenseFilter) []export.Row {
	var rows []export.Row
	s.store.Read(func(st *snapshot.State) {
		rows = export.Rows(st, filter.ledgerFilter())
	})
	return rows
}
