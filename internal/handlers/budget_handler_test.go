package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "moneytracker/internal/errors"
	"moneytracker/internal/ledger"
	"moneytracker/internal/models"
	"moneytracker/internal/services"
)

// --- mock budget service ---

type mockBudgetService struct {
	setBudgetFn             func(listID string, categoryID *string, amount float64, scope models.BudgetScope) (*models.Budget, error)
	removeBudgetFn          func(listID string, categoryID *string) error
	getBudgetProgressFn     func(listID string, categoryID *string, window ledger.Window) (*services.BudgetProgress, error)
	getListBudgetProgressFn func(listID string, window ledger.Window) []services.BudgetProgress
}

func (m *mockBudgetService) BudgetFor(string, *string) (*models.Budget, error) {
	return nil, apperrors.ErrBudgetNotFound
}

func (m *mockBudgetService) SetBudget(listID string, categoryID *string, amount float64, scope models.BudgetScope) (*models.Budget, error) {
	if m.setBudgetFn != nil {
		return m.setBudgetFn(listID, categoryID, amount, scope)
	}
	return &models.Budget{ID: "b1", ListID: listID, CategoryID: categoryID, Amount: amount, Scope: scope}, nil
}

func (m *mockBudgetService) RemoveBudget(listID string, categoryID *string) error {
	if m.removeBudgetFn != nil {
		return m.removeBudgetFn(listID, categoryID)
	}
	return nil
}

func (m *mockBudgetService) Spending(string, *string, *time.Time) float64 { return 0 }

func (m *mockBudgetService) GetBudgetProgress(listID string, categoryID *string, window ledger.Window) (*services.BudgetProgress, error) {
	if m.getBudgetProgressFn != nil {
		return m.getBudgetProgressFn(listID, categoryID, window)
	}
	return &services.BudgetProgress{ListID: listID, CategoryID: categoryID}, nil
}

func (m *mockBudgetService) GetListBudgetProgress(listID string, window ledger.Window) []services.BudgetProgress {
	if m.getListBudgetProgressFn != nil {
		return m.getListBudgetProgressFn(listID, window)
	}
	return []services.BudgetProgress{}
}

var _ services.BudgetServicer = (*mockBudgetService)(nil)

func setupBudgetRouter(handler *BudgetHandler) *gin.Engine {
	r := gin.New()
	r.GET("/budgets", handler.GetBudgets)
	r.GET("/budgets/progress", handler.GetBudgetProgress)
	r.PUT("/budgets", handler.SetBudget)
	r.DELETE("/budgets", handler.RemoveBudget)
	return r
}

func TestBudgetHandler_GetBudgets(t *testing.T) {
	t.Run("uses active list and window", func(t *testing.T) {
		var gotList string
		var gotWindow ledger.Window
		svc := &mockBudgetService{
			getListBudgetProgressFn: func(listID string, window ledger.Window) []services.BudgetProgress {
				gotList, gotWindow = listID, window
				return []services.BudgetProgress{{ListID: listID, Budgeted: 100, Spent: 95, Progress: 0.95, Status: ledger.BudgetNear, IsSet: true}}
			},
		}
		r := setupBudgetRouter(NewBudgetHandler(svc, &mockListService{}))

		rec := doRequest(r, "GET", "/budgets?window=30d", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if gotList != "general" || gotWindow != ledger.WindowLast30Days {
			t.Errorf("unexpected args list=%s window=%s", gotList, gotWindow)
		}
		budgets := parseJSON(t, rec)["budgets"].([]interface{})
		if budgets[0].(map[string]interface{})["status"] != "near" {
			t.Errorf("expected near status, got %v", budgets[0])
		}
	})

	t.Run("returns 400 on bad window", func(t *testing.T) {
		r := setupBudgetRouter(NewBudgetHandler(&mockBudgetService{}, &mockListService{}))

		rec := doRequest(r, "GET", "/budgets?window=90d", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})
}

func TestBudgetHandler_GetBudgetProgress(t *testing.T) {
	t.Run("passes category", func(t *testing.T) {
		var gotCategory *string
		svc := &mockBudgetService{
			getBudgetProgressFn: func(listID string, categoryID *string, _ ledger.Window) (*services.BudgetProgress, error) {
				gotCategory = categoryID
				return &services.BudgetProgress{ListID: listID, CategoryID: categoryID}, nil
			},
		}
		r := setupBudgetRouter(NewBudgetHandler(svc, &mockListService{}))

		rec := doRequest(r, "GET", "/budgets/progress?categoryId=food", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if gotCategory == nil || *gotCategory != "food" {
			t.Errorf("expected food category, got %v", gotCategory)
		}
	})

	t.Run("returns 404 when unset", func(t *testing.T) {
		svc := &mockBudgetService{
			getBudgetProgressFn: func(string, *string, ledger.Window) (*services.BudgetProgress, error) {
				return nil, apperrors.ErrBudgetNotFound
			},
		}
		r := setupBudgetRouter(NewBudgetHandler(svc, &mockListService{}))

		rec := doRequest(r, "GET", "/budgets/progress", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "BUDGET_NOT_FOUND")
	})
}

func TestBudgetHandler_SetBudget(t *testing.T) {
	t.Run("list budget on active list", func(t *testing.T) {
		var gotList string
		var gotCategory *string
		svc := &mockBudgetService{
			setBudgetFn: func(listID string, categoryID *string, amount float64, scope models.BudgetScope) (*models.Budget, error) {
				gotList, gotCategory = listID, categoryID
				return &models.Budget{ID: "b1", ListID: listID, Amount: amount, Scope: models.BudgetScopeList}, nil
			},
		}
		r := setupBudgetRouter(NewBudgetHandler(svc, &mockListService{}))

		rec := doRequest(r, "PUT", "/budgets", `{"amount":500}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotList != "general" || gotCategory != nil {
			t.Errorf("unexpected args list=%s category=%v", gotList, gotCategory)
		}
	})

	t.Run("zero amount is accepted", func(t *testing.T) {
		r := setupBudgetRouter(NewBudgetHandler(&mockBudgetService{}, &mockListService{}))

		rec := doRequest(r, "PUT", "/budgets", `{"amount":0,"categoryId":"food"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("returns 400 without amount", func(t *testing.T) {
		r := setupBudgetRouter(NewBudgetHandler(&mockBudgetService{}, &mockListService{}))

		rec := doRequest(r, "PUT", "/budgets", `{"categoryId":"food"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on unknown scope", func(t *testing.T) {
		r := setupBudgetRouter(NewBudgetHandler(&mockBudgetService{}, &mockListService{}))

		rec := doRequest(r, "PUT", "/budgets", `{"amount":10,"scope":"weekly"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestBudgetHandler_RemoveBudget(t *testing.T) {
	t.Run("returns 200", func(t *testing.T) {
		var gotCategory *string
		svc := &mockBudgetService{
			removeBudgetFn: func(_ string, categoryID *string) error {
				gotCategory = categoryID
				return nil
			},
		}
		r := setupBudgetRouter(NewBudgetHandler(svc, &mockListService{}))

		rec := doRequest(r, "DELETE", "/budgets?categoryId=food", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if gotCategory == nil || *gotCategory != "food" {
			t.Errorf("expected food, got %v", gotCategory)
		}
	})
}
