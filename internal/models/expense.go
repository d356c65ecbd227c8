package models

import "time"

// Expense is a single spend record. Expenses are kept newest-inserted first.
type Expense struct {
	ID         string    `json:"id"`
	Amount     float64   `json:"amount"`
	CategoryID string    `json:"categoryId"`
	Note       string    `json:"note"`
	Date       time.Time `json:"date"`
	ListID     string    `json:"listId"`
	CardID     *string   `json:"cardId,omitempty"`
}

// OnCard reports whether the expense was recorded against cardID.
func (e Expense) OnCard(cardID string) bool {
	return e.CardID != nil && *e.CardID == cardID
}
