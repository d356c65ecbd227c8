// Package widget derives the home-screen summary from the shared snapshot.
// It only reads: the snapshot is loaded, reconciled in memory and discarded.
package widget

import (
	"context"
	"sort"
	"time"

	"moneytracker/internal/kvstore"
	"moneytracker/internal/ledger"
	"moneytracker/internal/snapshot"
)

// TopCategoryCount is the number of category budgets shown.
const TopCategoryCount = 3

// Window is the spend window the widget reports on.
const Window = ledger.WindowLast30Days

// CategoryBudget is one category budget line.
type CategoryBudget struct {
	CategoryID string              `json:"categoryId"`
	Name       string              `json:"name"`
	Icon       string              `json:"icon"`
	Color      string              `json:"color"`
	Limit      float64             `json:"limit"`
	Spent      float64             `json:"spent"`
	Progress   float64             `json:"progress"`
	Status     ledger.BudgetStatus `json:"status"`
}

// CardLine is one active card.
type CardLine struct {
	CardID    string            `json:"cardId"`
	Name      string            `json:"name"`
	Limit     float64           `json:"limit"`
	Remaining float64           `json:"remaining"`
	Status    ledger.CardStatus `json:"status"`
}

// Summary is everything the widget renders.
type Summary struct {
	ListID      string               `json:"listId"`
	ListName    string               `json:"listName"`
	Spent30Days float64              `json:"spent30Days"`
	BudgetLimit *float64             `json:"budgetLimit,omitempty"`
	Progress    float64              `json:"progress"`
	Status      *ledger.BudgetStatus `json:"status,omitempty"`
	Categories  []CategoryBudget     `json:"categories"`
	Cards       []CardLine           `json:"cards"`
	GeneratedAt time.Time            `json:"generatedAt"`
}

// Build derives the summary for the selected list from st.
func Build(st *snapshot.State, now time.Time) Summary {
	summary := Summary{
		Categories:  []CategoryBudget{},
		Cards:       []CardLine{},
		GeneratedAt: now,
	}

	list := st.ActiveList()
	if list == nil {
		return summary
	}
	summary.ListID = list.ID
	summary.ListName = list.Name

	since := Window.Since(now)
	summary.Spent30Days = ledger.Spending(st.Expenses, ledger.Filter{ListID: list.ID, Since: since})

	if i := st.BudgetIndex(list.ID, nil); i >= 0 && st.Budgets[i].IsSet() {
		limit := st.Budgets[i].Amount
		summary.BudgetLimit = &limit
		summary.Progress = ledger.Progress(summary.Spent30Days, limit)
		status := ledger.ClassifyBudget(summary.Progress)
		summary.Status = &status
	}

	summary.Categories = topCategories(st, list.ID, since)
	summary.Cards = activeCards(st)
	return summary
}

func topCategories(st *snapshot.State, listID string, since *time.Time) []CategoryBudget {
	lines := []CategoryBudget{}
	for _, b := range st.Budgets {
		if b.ListID != listID || b.CategoryID == nil || !b.IsSet() {
			continue
		}
		cat := st.Category(*b.CategoryID)
		if cat == nil {
			continue
		}
		spent := ledger.Spending(st.Expenses, ledger.Filter{ListID: listID, CategoryID: b.CategoryID, Since: since})
		progress := ledger.Progress(spent, b.Amount)
		lines = append(lines, CategoryBudget{
			CategoryID: cat.ID,
			Name:       cat.Name,
			Icon:       cat.Icon,
			Color:      cat.Color,
			Limit:      b.Amount,
			Spent:      spent,
			Progress:   progress,
			Status:     ledger.ClassifyBudget(progress),
		})
	}

	sort.SliceStable(lines, func(i, j int) bool {
		return lines[i].Progress > lines[j].Progress
	})
	if len(lines) > TopCategoryCount {
		lines = lines[:TopCategoryCount]
	}
	return lines
}

func activeCards(st *snapshot.State) []CardLine {
	lines := []CardLine{}
	for _, c := range st.Cards {
		if c.IsBroken {
			continue
		}
		remaining := ledger.CardRemaining(c, st.Expenses)
		lines = append(lines, CardLine{
			CardID:    c.ID,
			Name:      c.Name,
			Limit:     c.Limit,
			Remaining: remaining,
			Status:    ledger.ClassifyCard(remaining, c.Limit),
		})
	}

	sort.SliceStable(lines, func(i, j int) bool {
		return lines[i].Remaining < lines[j].Remaining
	})
	return lines
}

// Source produces widget summaries.
type Source interface {
	Summary(ctx context.Context) (Summary, error)
}

// Reader builds summaries straight from a key-value backend without going
// through the writer.
type Reader struct {
	kv  kvstore.Store
	now func() time.Time
}

// NewReader creates a Reader over kv.
func NewReader(kv kvstore.Store) *Reader {
	return &Reader{kv: kv, now: time.Now}
}

// Summary loads the last written snapshot and builds the summary.
func (r *Reader) Summary(ctx context.Context) (Summary, error) {
	st, err := snapshot.Load(ctx, r.kv)
	if err != nil {
		return Summary{}, err
	}
	return Build(st, r.now()), nil
}

// Live builds summaries from the writer's in-memory snapshot.
type Live struct {
	store *snapshot.Store
	now   func() time.Time
}

// NewLive creates a Live source over store.
func NewLive(store *snapshot.Store) *Live {
	return &Live{store: store, now: time.Now}
}

// Summary builds the summary from the current state.
func (l *Live) Summary(_ context.Context) (Summary, error) {
	var summary Summary
	l.store.Read(func(st *snapshot.State) {
		summary = Build(st, l.now())
	})
	return summary, nil
}

var (
	_ Source = (*Reader)(nil)
	_ Source = (*Live)(nil)
)
