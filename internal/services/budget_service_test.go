package services

import (
	"testing"
	"time"

	"moneytracker/internal/ledger"
	"moneytracker/internal/models"
	"moneytracker/internal/testutil"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestSetBudget(t *testing.T) {
	t.Run("upsert_keeps_one_record", func(t *testing.T) {
		store, _ := testutil.NewTestStore(t)
		svc := NewBudgetService(store)
		listID := testutil.DefaultListID(t, store)
		food := models.CategoryFoodID

		first, err := svc.SetBudget(listID, &food, 100, models.BudgetScopeCategory)
		testutil.AssertNoError(t, err)
		second, err := svc.SetBudget(listID, &food, 250, models.BudgetScopeCategory)
		testutil.AssertNoError(t, err)

		if first.ID != second.ID {
			t.Errorf("expected upsert to keep id %s, got %s", first.ID, second.ID)
		}
		count := 0
		for _, b := range store.Snapshot().Budgets {
			if b.Matches(listID, &food) {
				count++
				if b.Amount != 250 {
					t.Errorf("expected latest amount 250, got %v", b.Amount)
				}
			}
		}
		if count != 1 {
			t.Errorf("expected exactly one budget, got %d", count)
		}
	})

	t.Run("list_and_category_are_distinct_keys", func(t *testing.T) {
		store, _ := testutil.NewTestStore(t)
		svc := NewBudgetService(store)
		listID := testutil.DefaultListID(t, store)
		food := models.CategoryFoodID

		_, err := svc.SetBudget(listID, nil, 1000, models.BudgetScopeList)
		testutil.AssertNoError(t, err)
		_, err = svc.SetBudget(listID, &food, 100, models.BudgetScopeCategory)
		testutil.AssertNoError(t, err)

		list, err := svc.BudgetFor(listID, nil)
		testutil.AssertNoError(t, err)
		if list.Amount != 1000 || list.CategoryID != nil {
			t.Errorf("unexpected list budget %+v", list)
		}
		empty := ""
		same, err := svc.BudgetFor(listID, &empty)
		testutil.AssertNoError(t, err)
		if same.ID != list.ID {
			t.Error("expected empty category id to select the list budget")
		}
	})

	t.Run("negative_clamped", func(t *testing.T) {
		store, _ := testutil.NewTestStore(t)
		svc := NewBudgetService(store)
		listID := testutil.DefaultListID(t, store)

		b, err := svc.SetBudget(listID, nil, -40, "")
		testutil.AssertNoError(t, err)
		if b.Amount != 0 {
			t.Errorf("expected 0, got %v", b.Amount)
		}
		if b.Scope != models.BudgetScopeList {
			t.Errorf("expected derived list scope, got %s", b.Scope)
		}
		if b.IsSet() {
			t.Error("expected zero budget to read as unset")
		}
	})

	t.Run("unknown_refs", func(t *testing.T) {
		store, _ := testutil.NewTestStore(t)
		svc := NewBudgetService(store)
		listID := testutil.DefaultListID(t, store)
		missing := models.NewID()

		_, err := svc.SetBudget(models.NewID(), nil, 10, models.BudgetScopeList)
		testutil.AssertAppError(t, err, "LIST_NOT_FOUND")
		_, err = svc.SetBudget(listID, &missing, 10, models.BudgetScopeCategory)
		testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")
		_, err = svc.SetBudget(listID, nil, 10, "weekly")
		testutil.AssertAppError(t, err, "INVALID_INPUT")

		if len(store.Snapshot().Budgets) != 0 {
			t.Error("expected no budgets")
		}
	})
}

func TestRemoveBudget(t *testing.T) {
	store, _ := testutil.NewTestStore(t)
	svc := NewBudgetService(store)
	listID := testutil.DefaultListID(t, store)
	testutil.CreateTestBudget(t, store, listID, nil, 300)

	testutil.AssertNoError(t, svc.RemoveBudget(listID, nil))
	_, err := svc.BudgetFor(listID, nil)
	testutil.AssertAppError(t, err, "BUDGET_NOT_FOUND")

	testutil.AssertNoError(t, svc.RemoveBudget(listID, nil))
}

func TestSpending(t *testing.T) {
	store, _ := testutil.NewTestStore(t)
	svc := NewBudgetService(store)
	listID := testutil.DefaultListID(t, store)
	other := testutil.CreateTestList(t, store)
	now := time.Now()

	testutil.CreateTestExpense(t, store, listID, models.CategoryFoodID, 10, now, nil)
	testutil.CreateTestExpense(t, store, listID, models.CategoryFunID, 5, now, nil)
	testutil.CreateTestExpense(t, store, listID, models.CategoryFoodID, 7, now.AddDate(0, 0, -40), nil)
	testutil.CreateTestExpense(t, store, other.ID, models.CategoryFoodID, 100, now, nil)

	food := models.CategoryFoodID
	since := now.AddDate(0, 0, -30)

	tests := []struct {
		name       string
		categoryID *string
		since      *time.Time
		want       float64
	}{
		{"all_time_all_categories", nil, nil, 22},
		{"all_time_food", &food, nil, 17},
		{"windowed_all_categories", nil, &since, 15},
		{"windowed_food", &food, &since, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := svc.Spending(listID, tt.categoryID, tt.since); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestGetBudgetProgress(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.Local)

	t.Run("window_bounds", func(t *testing.T) {
		store, _ := testutil.NewTestStore(t)
		svc := NewBudgetService(store).(*budgetService)
		svc.now = fixedClock(now)
		listID := testutil.DefaultListID(t, store)
		testutil.CreateTestBudget(t, store, listID, nil, 100)

		// 7d starts at midnight six days back.
		testutil.CreateTestExpense(t, store, listID, models.CategoryFoodID, 40, time.Date(2026, 3, 9, 0, 0, 0, 0, time.Local), nil)
		testutil.CreateTestExpense(t, store, listID, models.CategoryFoodID, 50, time.Date(2026, 3, 8, 23, 59, 0, 0, time.Local), nil)

		week, err := svc.GetBudgetProgress(listID, nil, ledger.WindowLast7Days)
		testutil.AssertNoError(t, err)
		if week.Spent != 40 {
			t.Errorf("expected 40 in 7d window, got %v", week.Spent)
		}
		if week.Status != ledger.BudgetOK {
			t.Errorf("expected ok, got %s", week.Status)
		}

		all, err := svc.GetBudgetProgress(listID, nil, ledger.WindowAllTime)
		testutil.AssertNoError(t, err)
		if all.Spent != 90 || all.Progress != 0.9 || all.Status != ledger.BudgetNear {
			t.Errorf("unexpected all-time progress %+v", all)
		}
		if all.Remaining != 10 {
			t.Errorf("expected remaining 10, got %v", all.Remaining)
		}
	})

	t.Run("zero_budget_no_division", func(t *testing.T) {
		store, _ := testutil.NewTestStore(t)
		svc := NewBudgetService(store)
		listID := testutil.DefaultListID(t, store)
		testutil.CreateTestBudget(t, store, listID, nil, 0)
		testutil.CreateTestExpense(t, store, listID, models.CategoryFoodID, 40, time.Now(), nil)

		p, err := svc.GetBudgetProgress(listID, nil, ledger.WindowAllTime)
		testutil.AssertNoError(t, err)
		if p.Progress != 0 || p.IsSet {
			t.Errorf("expected unset budget with zero progress, got %+v", p)
		}
	})

	t.Run("list_ordering", func(t *testing.T) {
		store, _ := testutil.NewTestStore(t)
		svc := NewBudgetService(store)
		listID := testutil.DefaultListID(t, store)
		food, fun := models.CategoryFoodID, models.CategoryFunID

		testutil.CreateTestBudget(t, store, listID, &food, 100)
		testutil.CreateTestBudget(t, store, listID, &fun, 10)
		testutil.CreateTestBudget(t, store, listID, nil, 1000)
		testutil.CreateTestExpense(t, store, listID, fun, 12, time.Now(), nil)
		testutil.CreateTestExpense(t, store, listID, food, 20, time.Now(), nil)

		progress := svc.GetListBudgetProgress(listID, ledger.WindowLast30Days)
		if len(progress) != 3 {
			t.Fatalf("expected 3 budgets, got %d", len(progress))
		}
		if progress[0].CategoryID != nil {
			t.Error("expected list budget first")
		}
		if *progress[1].CategoryID != fun || progress[1].Status != ledger.BudgetOver {
			t.Errorf("expected Fun over budget second, got %+v", progress[1])
		}
	})
}
