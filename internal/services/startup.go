package services

import (
	"moneytracker/internal/logger"
	"moneytracker/internal/snapshot"
)

// Startup runs the idempotent ensure steps against a freshly opened store:
// default list, seed categories, reference reconciliation, then archival of
// already-exhausted cards. Each step writes only the blobs it changes, so a
// second run writes nothing.
func Startup(store *snapshot.Store, lists ListServicer, categories CategoryServicer, cards CardServicer) error {
	log := logger.Named("startup")

	if _, err := lists.EnsureDefaultList(); err != nil {
		return err
	}

	seeded, err := categories.SeedDefaults()
	if err != nil {
		return err
	}
	if seeded > 0 {
		log.Infow("seeded default categories", "count", seeded)
	}

	var report snapshot.ReconcileReport
	err = commit(store, func(st *snapshot.State) error {
		report = snapshot.Reconcile(st)
		return nil
	})
	if err != nil {
		return err
	}
	if report.Changed() {
		log.Infow("reconciled snapshot references",
			"expense_lists", report.ExpenseLists,
			"expense_categories", report.ExpenseCategories,
			"card_lists", report.CardLists,
			"category_parents", report.CategoryParents,
			"budgets_dropped", report.BudgetsDropped,
			"selection_reset", report.SelectionReset,
		)
	}

	if _, err := cards.AutoBreakExhaustedCards(); err != nil {
		return err
	}
	return nil
}
