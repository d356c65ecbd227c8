package ledger

import (
	"math"
	"testing"
	"time"

	"moneytracker/internal/models"
)

func cardID(s string) *string { return &s }

func TestCardBalances(t *testing.T) {
	card := models.Card{ID: "c1", Limit: 100}
	expenses := []models.Expense{
		{ID: "e1", Amount: 30, CardID: cardID("c1"), ListID: "l1"},
		{ID: "e2", Amount: 20, CardID: cardID("c1"), ListID: "l2"},
		{ID: "e3", Amount: 99, CardID: cardID("c2"), ListID: "l1"},
		{ID: "e4", Amount: 5, ListID: "l1"},
	}

	t.Run("spent_sums_matching_card_across_lists", func(t *testing.T) {
		if got := CardSpent(card, expenses); got != 50 {
			t.Errorf("expected 50, got %v", got)
		}
	})

	t.Run("remaining_is_limit_minus_spent", func(t *testing.T) {
		if got := CardRemaining(card, expenses); got != 50 {
			t.Errorf("expected 50, got %v", got)
		}
	})

	t.Run("remaining_never_negative", func(t *testing.T) {
		over := append(expenses, models.Expense{ID: "e5", Amount: 80, CardID: cardID("c1")})
		if got := CardRemaining(card, over); got != 0 {
			t.Errorf("expected 0, got %v", got)
		}
	})

	t.Run("float_residue_counts_as_exhausted", func(t *testing.T) {
		c := models.Card{ID: "c9", Limit: 0.3}
		var tenths []models.Expense
		for i := 0; i < 3; i++ {
			tenths = append(tenths, models.Expense{Amount: 0.1, CardID: cardID("c9")})
		}
		if !IsExhausted(CardRemaining(c, tenths)) {
			t.Errorf("expected card to be exhausted, remaining %v", CardRemaining(c, tenths))
		}
	})
}

func TestSpending(t *testing.T) {
	now := time.Date(2026, 10, 19, 15, 0, 0, 0, time.Local)
	food := models.CategoryFoodID
	expenses := []models.Expense{
		{Amount: 10, CategoryID: food, ListID: "l1", Date: now},
		{Amount: 20, CategoryID: models.CategoryFunID, ListID: "l1", Date: now.AddDate(0, 0, -10)},
		{Amount: 40, CategoryID: food, ListID: "l2", Date: now},
		{Amount: 80, CategoryID: food, ListID: "l1", Date: now.AddDate(0, -2, 0)},
	}

	tests := []struct {
		name   string
		filter Filter
		want   float64
	}{
		{"list_all_time", Filter{ListID: "l1"}, 110},
		{"list_and_category", Filter{ListID: "l1", CategoryID: &food}, 90},
		{"last_7_days", Filter{ListID: "l1", Since: WindowLast7Days.Since(now)}, 10},
		{"last_30_days", Filter{ListID: "l1", Since: WindowLast30Days.Since(now)}, 30},
		{"no_filter", Filter{}, 150},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Spending(expenses, tt.filter); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestWindowSince(t *testing.T) {
	now := time.Date(2026, 10, 19, 15, 30, 0, 0, time.UTC)

	t.Run("seven_days_starts_six_days_before_midnight", func(t *testing.T) {
		got := WindowLast7Days.Since(now)
		want := time.Date(2026, 10, 13, 0, 0, 0, 0, time.UTC)
		if got == nil || !got.Equal(want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("thirty_days", func(t *testing.T) {
		got := WindowLast30Days.Since(now)
		want := time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC)
		if got == nil || !got.Equal(want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("all_time_is_unbounded", func(t *testing.T) {
		if WindowAllTime.Since(now) != nil {
			t.Error("expected nil lower bound")
		}
	})

	t.Run("parse", func(t *testing.T) {
		if w, err := ParseWindow(""); err != nil || w != WindowAllTime {
			t.Errorf("expected all, got %v %v", w, err)
		}
		if _, err := ParseWindow("90d"); err == nil {
			t.Error("expected error for unknown window")
		}
	})

	t.Run("start_of_month", func(t *testing.T) {
		want := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
		if got := StartOfMonth(now); !got.Equal(want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})
}

func TestStatus(t *testing.T) {
	t.Run("progress_zero_limit", func(t *testing.T) {
		if Progress(50, 0) != 0 {
			t.Error("expected 0 progress for zero limit")
		}
	})

	t.Run("budget_thresholds", func(t *testing.T) {
		cases := map[float64]BudgetStatus{0.5: BudgetOK, 0.9: BudgetNear, 0.99: BudgetNear, 1.0: BudgetOver, 1.7: BudgetOver}
		for p, want := range cases {
			if got := ClassifyBudget(p); got != want {
				t.Errorf("progress %v: expected %s, got %s", p, want, got)
			}
		}
	})

	t.Run("near_empty_threshold", func(t *testing.T) {
		cases := map[float64]float64{20: 5, 100: 10, 200: 20, 1000: 100}
		for limit, want := range cases {
			if got := NearEmptyThreshold(limit); math.Abs(got-want) > 1e-9 {
				t.Errorf("limit %v: expected %v, got %v", limit, want, got)
			}
		}
	})

	t.Run("card_classification", func(t *testing.T) {
		if ClassifyCard(0, 100) != CardEmpty {
			t.Error("expected empty")
		}
		if ClassifyCard(10, 100) != CardNearEmpty {
			t.Error("expected near_empty")
		}
		if ClassifyCard(10.5, 100) != CardOK {
			t.Error("expected ok")
		}
	})
}
