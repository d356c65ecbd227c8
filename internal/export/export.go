// Package export writes expenses as CSV.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"

	"moneytracker/internal/ledger"
	"moneytracker/internal/snapshot"
)

// Row is one exported expense. Names are resolved; ids of deleted cards are
// kept as-is.
type Row struct {
	ID       string `csv:"id"`
	Date     string `csv:"date"`
	Amount   string `csv:"amount"`
	Category string `csv:"category"`
	List     string `csv:"list"`
	Card     string `csv:"card"`
	Note     string `csv:"note"`
}

// Rows builds export rows for the expenses matching f, in stored order.
func Rows(st *snapshot.State, f ledger.Filter) []Row {
	rows := []Row{}
	for _, e := range st.Expenses {
		if !f.Match(e) {
			continue
		}

		row := Row{
			ID:     e.ID,
			Date:   e.Date.Format(time.RFC3339),
			Amount: decimal.NewFromFloat(e.Amount).StringFixed(2),
			Note:   e.Note,
		}
		if c := st.Category(e.CategoryID); c != nil {
			row.Category = c.Name
		} else {
			row.Category = e.CategoryID
		}
		if l := st.List(e.ListID); l != nil {
			row.List = l.Name
		}
		if e.CardID != nil {
			row.Card = *e.CardID
			if card := st.Card(*e.CardID); card != nil {
				row.Card = card.Name
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// Write marshals rows as CSV with a header line.
func Write(w io.Writer, rows []Row) error {
	if err := gocsv.MarshalCSV(&rows, gocsv.NewSafeCSVWriter(csv.NewWriter(w))); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	return nil
}

// Total sums the exported amounts without float drift.
func Total(rows []Row) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, r := range rows {
		amount, err := decimal.NewFromString(r.Amount)
		if err != nil {
			return decimal.Zero, fmt.Errorf("row %s: %w", r.ID, err)
		}
		total = total.Add(amount)
	}
	return total, nil
}
