package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"moneytracker/internal/ledger"
	"moneytracker/internal/models"
	"moneytracker/internal/testutil"
)

func TestRowsAndWrite(t *testing.T) {
	store, _ := testutil.NewTestStore(t)
	listID := testutil.DefaultListID(t, store)
	other := testutil.CreateTestList(t, store)
	card := testutil.CreateTestCard(t, store, listID, 100)
	date := time.Date(2026, 2, 3, 10, 30, 0, 0, time.UTC)

	testutil.CreateTestExpense(t, store, listID, models.CategoryFoodID, 0.1, date, nil)
	testutil.CreateTestExpense(t, store, listID, models.CategoryFunID, 12, date, &card.ID)
	testutil.CreateTestExpense(t, store, other.ID, models.CategoryFoodID, 99, date, nil)

	rows := Rows(store.Snapshot(), ledger.Filter{ListID: listID})
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Amount != "12.00" || rows[0].Category != "Fun" || rows[0].Card != card.Name {
		t.Errorf("unexpected first row %+v", rows[0])
	}
	if rows[1].Amount != "0.10" || rows[1].List != models.DefaultListName {
		t.Errorf("unexpected second row %+v", rows[1])
	}
	if rows[1].Date != "2026-02-03T10:30:00Z" {
		t.Errorf("unexpected date %s", rows[1].Date)
	}

	var buf bytes.Buffer
	testutil.AssertNoError(t, Write(&buf, rows))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if lines[0] != "id,date,amount,category,list,card,note" {
		t.Errorf("unexpected header %q", lines[0])
	}
	if len(lines) != 3 {
		t.Errorf("expected header and 2 rows, got %d lines", len(lines))
	}

	total, err := Total(rows)
	testutil.AssertNoError(t, err)
	if total.StringFixed(2) != "12.10" {
		t.Errorf("expected 12.10, got %s", total.StringFixed(2))
	}
}

func TestWriteEmpty(t *testing.T) {
	var buf bytes.Buffer
	testutil.AssertNoError(t, Write(&buf, []Row{}))
	if strings.TrimSpace(buf.String()) != "id,date,amount,category,list,card,note" {
		t.Errorf("expected header only, got %q", buf.String())
	}
}
