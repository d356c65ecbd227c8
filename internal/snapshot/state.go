// Package snapshot owns the shared persisted state: one blob per collection,
// one writer, any number of readers. It decodes older blob shapes through the
// migration chain and keeps every cross-entity reference resolvable.
package snapshot

import (
	"moneytracker/internal/models"
)

// Persisted blob keys.
const (
	KeyLists        = "lists_v1"
	KeySelectedList = "selected_list_v1"
	KeyCategories   = "categories_v1"
	KeyCards        = "cards_v1"
	KeyBudgets      = "budgets_v1"
	KeyExpenses     = "expenses_v1"
)

// Keys lists every blob key in write order.
var Keys = []string{KeyLists, KeySelectedList, KeyCategories, KeyCards, KeyBudgets, KeyExpenses}

// State is the full in-memory snapshot.
type State struct {
	Lists          []models.ExpenseList
	SelectedListID string
	Categories     []models.Category
	Cards          []models.Card
	Budgets        []models.Budget
	Expenses       []models.Expense
}

// Clone copies every collection. Optional id fields are shared pointers; they
// are only ever replaced, never written through.
func (s *State) Clone() *State {
	return &State{
		Lists:          append([]models.ExpenseList(nil), s.Lists...),
		SelectedListID: s.SelectedListID,
		Categories:     append([]models.Category(nil), s.Categories...),
		Cards:          append([]models.Card(nil), s.Cards...),
		Budgets:        append([]models.Budget(nil), s.Budgets...),
		Expenses:       append([]models.Expense(nil), s.Expenses...),
	}
}

// List returns the list with id, or nil.
func (s *State) List(id string) *models.ExpenseList {
	for i := range s.Lists {
		if s.Lists[i].ID == id {
			return &s.Lists[i]
		}
	}
	return nil
}

// ActiveList returns the selected list, falling back to the first list. It is
// nil only before EnsureDefaultList has run on an empty store.
func (s *State) ActiveList() *models.ExpenseList {
	if l := s.List(s.SelectedListID); l != nil {
		return l
	}
	if len(s.Lists) > 0 {
		return &s.Lists[0]
	}
	return nil
}

// DefaultList returns the "General" list, falling back to the first list.
func (s *State) DefaultList() *models.ExpenseList {
	for i := range s.Lists {
		if s.Lists[i].IsDefault() {
			return &s.Lists[i]
		}
	}
	if len(s.Lists) > 0 {
		return &s.Lists[0]
	}
	return nil
}

// Category returns the category with id, or nil.
func (s *State) Category(id string) *models.Category {
	for i := range s.Categories {
		if s.Categories[i].ID == id {
			return &s.Categories[i]
		}
	}
	return nil
}

// Card returns the card with id, or nil.
func (s *State) Card(id string) *models.Card {
	for i := range s.Cards {
		if s.Cards[i].ID == id {
			return &s.Cards[i]
		}
	}
	return nil
}

// BudgetIndex returns the index of the budget keyed by (listID, categoryID),
// or -1.
func (s *State) BudgetIndex(listID string, categoryID *string) int {
	for i := range s.Budgets {
		if s.Budgets[i].Matches(listID, categoryID) {
			return i
		}
	}
	return -1
}

// EnsureDefaultList inserts a "General" list at the head when no list of that
// name exists. It reports whether a list was created.
func (s *State) EnsureDefaultList() bool {
	for _, l := range s.Lists {
		if l.IsDefault() {
			return false
		}
	}
	general := models.ExpenseList{ID: models.NewID(), Name: models.DefaultListName}
	s.Lists = append([]models.ExpenseList{general}, s.Lists...)
	return true
}

// SeedCategories appends every seed category whose id is missing. Existing
// categories, including edited seeds, are left untouched. It returns the
// number of categories inserted.
func (s *State) SeedCategories() int {
	added := 0
	for _, seed := range models.SeedCategories() {
		if s.Category(seed.ID) == nil {
			s.Categories = append(s.Categories, seed)
			added++
		}
	}
	return added
}
