package models

import "strings"

// DefaultListName is the name of the list guaranteed to exist after startup.
const DefaultListName = "General"

// ExpenseList is a named collection that expenses, cards and budgets belong to.
type ExpenseList struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// IsDefault reports whether the list is the "General" list (case-insensitive).
func (l ExpenseList) IsDefault() bool {
	return strings.EqualFold(strings.TrimSpace(l.Name), DefaultListName)
}
