package models

// DefaultCardName is used when a card is created with a blank name.
const DefaultCardName = "Card"

// Card is a prepaid sub-budget. Expenses recorded against it draw down Limit;
// once exhausted the card is archived ("broken").
type Card struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Limit    float64 `json:"limit"`
	ListID   string  `json:"listId"`
	IsBroken bool    `json:"isBroken"`
}
