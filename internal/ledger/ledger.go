// Package ledger holds the aggregation rules shared by the writer and the
// read-only widget: card balances, spend totals, time windows and alert
// thresholds. Everything here is a pure function of the snapshot contents.
package ledger

import (
	"math"
	"time"

	"moneytracker/internal/models"
)

// Epsilon is the tolerance for every "is this card exhausted" comparison.
// It absorbs float error accumulated from repeated additions.
const Epsilon = 1e-4

// CardSpent sums the expenses recorded against the card, across all lists.
func CardSpent(card models.Card, expenses []models.Expense) float64 {
	var total float64
	for _, e := range expenses {
		if e.OnCard(card.ID) {
			total += e.Amount
		}
	}
	return total
}

// CardRemaining returns max(limit - spent, 0).
func CardRemaining(card models.Card, expenses []models.Expense) float64 {
	return math.Max(card.Limit-CardSpent(card, expenses), 0)
}

// IsExhausted reports whether a remaining balance is too small to spend from.
func IsExhausted(remaining float64) bool {
	return remaining <= Epsilon
}

// Filter selects expenses for spend aggregation. Empty fields do not filter.
type Filter struct {
	ListID     string
	CategoryID *string
	Since      *time.Time
}

// Match reports whether e passes the filter.
func (f Filter) Match(e models.Expense) bool {
	if f.ListID != "" && e.ListID != f.ListID {
		return false
	}
	if f.CategoryID != nil && *f.CategoryID != "" && e.CategoryID != *f.CategoryID {
		return false
	}
	if f.Since != nil && e.Date.Before(*f.Since) {
		return false
	}
	return true
}

// Spending sums the amounts of the expenses matching f.
func Spending(expenses []models.Expense, f Filter) float64 {
	var total float64
	for _, e := range expenses {
		if f.Match(e) {
			total += e.Amount
		}
	}
	return total
}
