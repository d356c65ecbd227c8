package snapshot

import (
	"moneytracker/internal/models"
)

// ReconcileReport counts the references fixed by Reconcile.
type ReconcileReport struct {
	ExpenseLists      int
	ExpenseCategories int
	CardLists         int
	CategoryParents   int
	BudgetsDropped    int
	SelectionReset    bool
}

// Changed reports whether Reconcile modified anything.
func (r ReconcileReport) Changed() bool {
	return r.ExpenseLists+r.ExpenseCategories+r.CardLists+r.CategoryParents+r.BudgetsDropped > 0 || r.SelectionReset
}

// Reconcile resolves dangling references: expenses and cards on unknown lists
// move to the default list, expenses on unknown categories move to "other",
// parents that are missing or not top-level are cleared, budgets on missing
// lists or categories are dropped, and a stale selection falls back to the
// first list. It is idempotent and expects EnsureDefaultList and
// SeedCategories to have run.
func Reconcile(s *State) ReconcileReport {
	var report ReconcileReport

	def := s.DefaultList()
	lists := make(map[string]bool, len(s.Lists))
	for _, l := range s.Lists {
		lists[l.ID] = true
	}

	topLevel := make(map[string]bool, len(s.Categories))
	for _, c := range s.Categories {
		if c.IsTopLevel() {
			topLevel[c.ID] = true
		}
	}
	for i := range s.Categories {
		c := &s.Categories[i]
		if c.IsTopLevel() {
			continue
		}
		if *c.ParentID == c.ID || !topLevel[*c.ParentID] {
			c.ParentID = nil
			report.CategoryParents++
		}
	}

	categories := make(map[string]bool, len(s.Categories))
	for _, c := range s.Categories {
		categories[c.ID] = true
	}

	for i := range s.Expenses {
		e := &s.Expenses[i]
		if def != nil && !lists[e.ListID] {
			e.ListID = def.ID
			report.ExpenseLists++
		}
		if !categories[e.CategoryID] {
			e.CategoryID = models.CategoryOtherID
			report.ExpenseCategories++
		}
	}

	for i := range s.Cards {
		if def != nil && !lists[s.Cards[i].ListID] {
			s.Cards[i].ListID = def.ID
			report.CardLists++
		}
	}

	kept := s.Budgets[:0:0]
	for _, b := range s.Budgets {
		if !lists[b.ListID] || (b.CategoryID != nil && !categories[*b.CategoryID]) {
			report.BudgetsDropped++
			continue
		}
		kept = append(kept, b)
	}
	s.Budgets = kept

	if s.List(s.SelectedListID) == nil && len(s.Lists) > 0 {
		s.SelectedListID = s.Lists[0].ID
		report.SelectionReset = true
	}

	return report
}
