package snapshot

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"moneytracker/internal/models"
)

// legacyNamespace seeds deterministic ids for legacy records that were
// persisted without one, so re-running the chain yields the same ids.
var legacyNamespace = uuid.MustParse("6f1c2a9e-3b7d-4e58-9a0c-5d2e8f4b1c73")

func legacyID(kind string, index int, raw []byte) string {
	return uuid.NewSHA1(legacyNamespace, []byte(fmt.Sprintf("%s:%d:%s", kind, index, raw))).String()
}

// DecodeReport describes how the raw blobs were interpreted.
type DecodeReport struct {
	// Reset lists the keys whose blob matched no known shape and was
	// replaced by an empty collection.
	Reset []string
	// LegacyExpenses counts expense records decoded through a legacy shape.
	LegacyExpenses int
}

// Decode builds a State from raw blobs keyed by blob key. Missing keys decode
// as empty. A blob that matches no known shape decodes as empty and is named
// in the report; decoding never fails.
func Decode(raw map[string][]byte) (*State, DecodeReport) {
	var report DecodeReport
	st := &State{}

	reset := func(key string) { report.Reset = append(report.Reset, key) }

	var err error
	if st.Lists, err = decodeLists(raw[KeyLists]); err != nil {
		reset(KeyLists)
	}
	st.SelectedListID = decodeSelected(raw[KeySelectedList])
	if st.Categories, err = decodeCategories(raw[KeyCategories]); err != nil {
		reset(KeyCategories)
	}
	if st.Cards, err = decodeCards(raw[KeyCards]); err != nil {
		reset(KeyCards)
	}
	if st.Budgets, err = decodeBudgets(raw[KeyBudgets]); err != nil {
		reset(KeyBudgets)
	}

	known := make(map[string]bool, len(st.Categories)+5)
	for _, c := range st.Categories {
		known[c.ID] = true
	}
	for _, seed := range models.SeedCategories() {
		known[seed.ID] = true
	}
	if st.Expenses, report.LegacyExpenses, err = decodeExpenses(raw[KeyExpenses], known); err != nil {
		reset(KeyExpenses)
	}

	return st, report
}

// records splits a blob into its array elements. An absent blob is an empty
// collection.
func records(blob []byte) ([]json.RawMessage, error) {
	if len(bytes.TrimSpace(blob)) == 0 {
		return nil, nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(blob, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func decodeLists(blob []byte) ([]models.ExpenseList, error) {
	items, err := records(blob)
	if err != nil {
		return nil, err
	}
	lists := make([]models.ExpenseList, 0, len(items))
	for i, item := range items {
		var l models.ExpenseList
		if err := json.Unmarshal(item, &l); err != nil {
			return nil, err
		}
		if l.ID == "" {
			l.ID = legacyID("list", i, item)
		}
		lists = append(lists, l)
	}
	return lists, nil
}

// decodeSelected accepts a JSON string or, from older writers, the bare id.
func decodeSelected(blob []byte) string {
	blob = bytes.TrimSpace(blob)
	if len(blob) == 0 {
		return ""
	}
	var id string
	if err := json.Unmarshal(blob, &id); err == nil {
		return id
	}
	return string(blob)
}

func decodeCategories(blob []byte) ([]models.Category, error) {
	items, err := records(blob)
	if err != nil {
		return nil, err
	}
	categories := make([]models.Category, 0, len(items))
	for i, item := range items {
		var c models.Category
		if err := json.Unmarshal(item, &c); err != nil {
			return nil, err
		}
		if c.ID == "" {
			c.ID = legacyID("category", i, item)
		}
		if c.ParentID != nil && *c.ParentID == "" {
			c.ParentID = nil
		}
		categories = append(categories, c)
	}
	return categories, nil
}

func decodeCards(blob []byte) ([]models.Card, error) {
	items, err := records(blob)
	if err != nil {
		return nil, err
	}
	cards := make([]models.Card, 0, len(items))
	for i, item := range items {
		var c models.Card
		if err := json.Unmarshal(item, &c); err != nil {
			return nil, err
		}
		if c.ID == "" {
			c.ID = legacyID("card", i, item)
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// decodeBudgets also enforces the (listId, categoryId) uniqueness invariant,
// keeping the first record per key, and derives a missing scope.
func decodeBudgets(blob []byte) ([]models.Budget, error) {
	items, err := records(blob)
	if err != nil {
		return nil, err
	}
	budgets := make([]models.Budget, 0, len(items))
	for i, item := range items {
		var b models.Budget
		if err := json.Unmarshal(item, &b); err != nil {
			return nil, err
		}
		if b.ID == "" {
			b.ID = legacyID("budget", i, item)
		}
		if b.CategoryID != nil && *b.CategoryID == "" {
			b.CategoryID = nil
		}
		if b.Amount < 0 {
			b.Amount = 0
		}
		if !b.Scope.Valid() {
			b.Scope = models.BudgetScopeCategory
			if b.CategoryID == nil {
				b.Scope = models.BudgetScopeList
			}
		}
		duplicate := false
		for _, existing := range budgets {
			if existing.Matches(b.ListID, b.CategoryID) {
				duplicate = true
				break
			}
		}
		if !duplicate {
			budgets = append(budgets, b)
		}
	}
	return budgets, nil
}

// storedExpense accepts the current expense shape and every legacy shape:
// string category keys under "category" or "legacyCategory", category
// objects, and records without listId/cardId.
type storedExpense struct {
	ID             string          `json:"id"`
	Amount         float64         `json:"amount"`
	CategoryID     json.RawMessage `json:"categoryId"`
	Category       json.RawMessage `json:"category"`
	LegacyCategory json.RawMessage `json:"legacyCategory"`
	Note           string          `json:"note"`
	Date           json.RawMessage `json:"date"`
	ListID         *string         `json:"listId"`
	CardID         *string         `json:"cardId"`
}

func decodeExpenses(blob []byte, known map[string]bool) ([]models.Expense, int, error) {
	items, err := records(blob)
	if err != nil {
		return nil, 0, err
	}
	legacy := 0
	expenses := make([]models.Expense, 0, len(items))
	for i, item := range items {
		var se storedExpense
		if err := json.Unmarshal(item, &se); err != nil {
			return nil, 0, err
		}
		date, err := decodeDate(se.Date)
		if err != nil {
			return nil, 0, err
		}

		e := models.Expense{
			ID:         se.ID,
			Amount:     se.Amount,
			CategoryID: resolveCategory(se, known),
			Note:       se.Note,
			Date:       date,
		}
		if e.ID == "" {
			e.ID = legacyID("expense", i, item)
		}
		// Legacy records carry no listId; Reconcile assigns them to the
		// default list once it exists.
		if se.ListID != nil {
			e.ListID = *se.ListID
		}
		if se.CardID != nil && *se.CardID != "" {
			cardID := *se.CardID
			e.CardID = &cardID
		}
		if se.ListID == nil || !isString(se.CategoryID) {
			legacy++
		}
		expenses = append(expenses, e)
	}
	return expenses, legacy, nil
}

// resolveCategory walks the legacy fallbacks in order: categoryId as an id,
// categoryId as a legacy key, a category object's id, category as an id or
// legacy key, legacyCategory as a legacy key, then "other".
func resolveCategory(se storedExpense, known map[string]bool) string {
	for _, raw := range []json.RawMessage{se.CategoryID, se.Category, se.LegacyCategory} {
		if id, ok := categoryFrom(raw, known); ok {
			return id
		}
	}
	return models.CategoryOtherID
}

func categoryFrom(raw json.RawMessage, known map[string]bool) (string, bool) {
	if len(raw) == 0 {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if known[s] {
			return s, true
		}
		return models.LegacyCategoryID(s)
	}
	var obj struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil {
		if known[obj.ID] {
			return obj.ID, true
		}
		return models.LegacyCategoryID(obj.Name)
	}
	return "", false
}

func isString(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) > 0 && raw[0] == '"'
}

// decodeDate accepts RFC 3339 strings and numeric Unix seconds. A missing date
// decodes as the zero time.
func decodeDate(raw json.RawMessage) (time.Time, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" {
		return time.Time{}, nil
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return time.Time{}, err
		}
		t, err := time.Parse(time.RFC3339Nano, strings.TrimSpace(s))
		if err != nil {
			return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
		}
		return t, nil
	}
	var secs float64
	if err := json.Unmarshal(raw, &secs); err != nil {
		return time.Time{}, fmt.Errorf("parse date %s: %w", raw, err)
	}
	whole := int64(secs)
	return time.Unix(whole, int64((secs-float64(whole))*1e9)).UTC(), nil
}

// Encode serialises every collection into its blob. Empty collections encode
// as [] so readers never see null.
func Encode(s *State) (map[string][]byte, error) {
	out := make(map[string][]byte, len(Keys))
	values := map[string]any{
		KeyLists:        nonNil(s.Lists),
		KeySelectedList: s.SelectedListID,
		KeyCategories:   nonNil(s.Categories),
		KeyCards:        nonNil(s.Cards),
		KeyBudgets:      nonNil(s.Budgets),
		KeyExpenses:     nonNil(s.Expenses),
	}
	for _, key := range Keys {
		b, err := json.Marshal(values[key])
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", key, err)
		}
		out[key] = b
	}
	return out, nil
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
