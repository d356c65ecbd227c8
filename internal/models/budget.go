package models

// BudgetScope tells whether a budget targets a whole list or one category.
type BudgetScope string

const (
	BudgetScopeList     BudgetScope = "list"
	BudgetScopeCategory BudgetScope = "category"
)

// Valid reports whether s is a known scope.
func (s BudgetScope) Valid() bool {
	return s == BudgetScopeList || s == BudgetScopeCategory
}

// Budget is a spending target. A nil CategoryID marks the list-level budget.
// There is at most one budget per (ListID, CategoryID) pair.
type Budget struct {
	ID         string      `json:"id"`
	ListID     string      `json:"listId"`
	CategoryID *string     `json:"categoryId,omitempty"`
	Amount     float64     `json:"amount"`
	Scope      BudgetScope `json:"scope"`
}

// Matches reports whether the budget is keyed by (listID, categoryID).
func (b Budget) Matches(listID string, categoryID *string) bool {
	if b.ListID != listID {
		return false
	}
	return SameCategory(b.CategoryID, categoryID)
}

// IsSet reports whether the budget has a non-zero target. A zero amount is
// displayed as "no budget".
func (b Budget) IsSet() bool {
	return b.Amount > 0
}

// SameCategory compares two optional category ids, treating nil and "" alike.
func SameCategory(a, b *string) bool {
	av, bv := "", ""
	if a != nil {
		av = *a
	}
	if b != nil {
		bv = *b
	}
	return av == bv
}

// StringPtr returns a pointer to s, or nil when s is empty.
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
