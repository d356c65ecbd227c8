package ledger

import "math"

// Budget alert thresholds on spent/limit.
const (
	BudgetNearThreshold = 0.9
	BudgetOverThreshold = 1.0
)

// BudgetStatus classifies a budget's progress.
type BudgetStatus string

const (
	BudgetOK   BudgetStatus = "ok"
	BudgetNear BudgetStatus = "near"
	BudgetOver BudgetStatus = "over"
)

// CardStatus classifies a card's remaining balance.
type CardStatus string

const (
	CardOK        CardStatus = "ok"
	CardNearEmpty CardStatus = "near_empty"
	CardEmpty     CardStatus = "empty"
)

// Progress returns spent/limit, or 0 when limit is 0.
func Progress(spent, limit float64) float64 {
	if limit <= 0 {
		return 0
	}
	return spent / limit
}

// Remaining returns max(limit - spent, 0).
func Remaining(spent, limit float64) float64 {
	return math.Max(limit-spent, 0)
}

// ClassifyBudget maps a progress ratio to an alert status.
func ClassifyBudget(progress float64) BudgetStatus {
	switch {
	case progress >= BudgetOverThreshold:
		return BudgetOver
	case progress >= BudgetNearThreshold:
		return BudgetNear
	default:
		return BudgetOK
	}
}

// NearEmptyThreshold returns max(0.1*limit, min(0.25*limit, 10)).
func NearEmptyThreshold(limit float64) float64 {
	return math.Max(0.1*limit, math.Min(0.25*limit, 10))
}

// ClassifyCard maps a card's remaining balance to an alert status. Empty uses
// the same epsilon as exhaustion so float residue does not read as funds.
func ClassifyCard(remaining, limit float64) CardStatus {
	switch {
	case IsExhausted(remaining):
		return CardEmpty
	case remaining <= NearEmptyThreshold(limit):
		return CardNearEmpty
	default:
		return CardOK
	}
}
