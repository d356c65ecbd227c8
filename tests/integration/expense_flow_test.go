package integration

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"moneytracker/internal/models"
)

func TestExpenseFlow_CardSpendAndAutoBreak(t *testing.T) {
	app := setupApp(t)
	token := app.issueToken(t, "app")

	// Step 1: Create a card with a limit of 30
	card := app.mustCreate(t, "/api/v1/cards", `{"name":"Transit","limit":30}`, token, "card")
	cardID := card["id"].(string)

	spend := func(amount float64) int {
		rec := app.request("POST", "/api/v1/expenses",
			fmt.Sprintf(`{"amount":%g,"categoryId":%q,"cardId":%q}`, amount, models.CategoryTransportID, cardID), token)
		return rec.Code
	}

	// Step 2: Spend 10, leaving 20
	if code := spend(10); code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", code)
	}
	rec := app.request("GET", "/api/v1/cards/"+cardID, "", token)
	balance := parseJSON(t, rec)["card"].(map[string]interface{})
	if balance["remaining"].(float64) != 20 {
		t.Errorf("expected 20 remaining, got %v", balance["remaining"])
	}

	// Step 3: Spending more than remains is rejected
	rec = app.request("POST", "/api/v1/expenses",
		fmt.Sprintf(`{"amount":25,"categoryId":%q,"cardId":%q}`, models.CategoryTransportID, cardID), token)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
	if code := errorCode(t, rec); code != "CARD_LIMIT_EXCEEDED" {
		t.Errorf("expected CARD_LIMIT_EXCEEDED, got %s", code)
	}

	// Step 4: Spending exactly what remains archives the card
	if code := spend(20); code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", code)
	}
	rec = app.request("GET", "/api/v1/cards", "", token)
	if cards := parseJSON(t, rec)["cards"].([]interface{}); len(cards) != 0 {
		t.Errorf("expected no active cards, got %d", len(cards))
	}
	rec = app.request("GET", "/api/v1/cards?includeBroken=true", "", token)
	cards := parseJSON(t, rec)["cards"].([]interface{})
	if len(cards) != 1 || cards[0].(map[string]interface{})["isBroken"] != true {
		t.Fatalf("expected one archived card, got %v", cards)
	}

	// Step 5: Archived cards refuse spending
	rec = app.request("POST", "/api/v1/expenses",
		fmt.Sprintf(`{"amount":1,"categoryId":%q,"cardId":%q}`, models.CategoryTransportID, cardID), token)
	if code := errorCode(t, rec); code != "CARD_BROKEN" {
		t.Errorf("expected CARD_BROKEN, got %s", code)
	}

	// Step 6: A restored but exhausted card still refuses spending
	rec = app.request("POST", "/api/v1/cards/"+cardID+"/restore", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 restoring, got %d", rec.Code)
	}
	rec = app.request("POST", "/api/v1/expenses",
		fmt.Sprintf(`{"amount":1,"categoryId":%q,"cardId":%q}`, models.CategoryTransportID, cardID), token)
	if code := errorCode(t, rec); code != "CARD_EXHAUSTED" {
		t.Errorf("expected CARD_EXHAUSTED, got %s", code)
	}
}

func TestExpenseFlow_ListExportAndDelete(t *testing.T) {
	app := setupApp(t)
	token := app.issueToken(t, "app")

	first := app.mustCreate(t, "/api/v1/expenses",
		fmt.Sprintf(`{"amount":12.5,"categoryId":%q,"note":"lunch"}`, models.CategoryFoodID), token, "expense")
	second := app.mustCreate(t, "/api/v1/expenses",
		fmt.Sprintf(`{"amount":7.25,"categoryId":%q,"note":"cinema"}`, models.CategoryFunID), token, "expense")

	// Step 1: Newest inserted first
	rec := app.request("GET", "/api/v1/expenses", "", token)
	page := parseJSON(t, rec)
	data := page["data"].([]interface{})
	if len(data) != 2 || data[0].(map[string]interface{})["id"] != second["id"] {
		t.Fatalf("expected newest first, got %v", data)
	}
	if page["totalItems"].(float64) != 2 {
		t.Errorf("expected 2 items, got %v", page["totalItems"])
	}

	// Step 2: Month total
	rec = app.request("GET", "/api/v1/expenses/month-total", "", token)
	if parseJSON(t, rec)["total"].(float64) != 19.75 {
		t.Errorf("expected 19.75, got %s", rec.Body.String())
	}

	// Step 3: Export
	rec = app.request("GET", "/api/v1/expenses/export?window=30d", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, ",12.50,Food,General,,lunch") || !strings.Contains(body, ",7.25,Fun,General,,cinema") {
		t.Errorf("unexpected export:\n%s", body)
	}

	// Step 4: Delete one; unknown ids are ignored
	rec = app.request("DELETE", "/api/v1/expenses",
		fmt.Sprintf(`{"ids":[%q,"missing"]}`, first["id"]), token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if parseJSON(t, rec)["deleted"].(float64) != 1 {
		t.Errorf("expected 1 deleted, got %s", rec.Body.String())
	}

	rec = app.request("GET", "/api/v1/expenses", "", token)
	if n := len(parseJSON(t, rec)["data"].([]interface{})); n != 1 {
		t.Errorf("expected 1 expense left, got %d", n)
	}
}

func TestExpenseFlow_Validation(t *testing.T) {
	app := setupApp(t)
	token := app.issueToken(t, "app")

	t.Run("unknown category", func(t *testing.T) {
		rec := app.request("POST", "/api/v1/expenses", `{"amount":5,"categoryId":"nope"}`, token)
		if code := errorCode(t, rec); code != "CATEGORY_NOT_FOUND" {
			t.Errorf("expected CATEGORY_NOT_FOUND, got %s", code)
		}
	})

	t.Run("unknown card", func(t *testing.T) {
		rec := app.request("POST", "/api/v1/expenses",
			fmt.Sprintf(`{"amount":5,"categoryId":%q,"cardId":"nope"}`, models.CategoryFoodID), token)
		if code := errorCode(t, rec); code != "CARD_NOT_FOUND" {
			t.Errorf("expected CARD_NOT_FOUND, got %s", code)
		}
	})
}
