package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"moneytracker/internal/config"
	"moneytracker/internal/handlers"
	"moneytracker/internal/kvstore"
	"moneytracker/internal/logger"
	"moneytracker/internal/middleware"
	"moneytracker/internal/services"
	"moneytracker/internal/snapshot"
	"moneytracker/internal/validator"
	"moneytracker/internal/widget"
)

const (
	testPassphrase = "correct horse battery staple"
	testWidgetKey  = "widget-test-key"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	KV     *kvstore.Memory
	Store  *snapshot.Store
	Router *gin.Engine
}

var passphraseHash string

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
	config.Set(&config.Config{JWTSecret: "integration-secret", JWTExpirationDur: time.Hour})

	hash, err := bcrypt.GenerateFromPassword([]byte(testPassphrase), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	passphraseHash = string(hash)
}

// setupApp creates a full application stack over a fresh in-memory backend.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	kv := kvstore.NewMemory()
	return setupAppOn(t, kv)
}

// setupAppOn opens the stack over an existing backend, as a restart would.
func setupAppOn(t *testing.T, kv *kvstore.Memory) *testApp {
	t.Helper()

	store, err := snapshot.Open(context.Background(), kv)
	if err != nil {
		t.Fatalf("failed to open snapshot: %v", err)
	}

	// Services
	listService := services.NewListService(store)
	categoryService := services.NewCategoryService(store)
	cardService := services.NewCardService(store)
	budgetService := services.NewBudgetService(store)
	expenseService := services.NewExpenseService(store)

	if err := services.Startup(store, listService, categoryService, cardService); err != nil {
		t.Fatalf("startup failed: %v", err)
	}

	// Handlers
	authHandler := handlers.NewAuthHandler(passphraseHash)
	listHandler := handlers.NewListHandler(listService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	cardHandler := handlers.NewCardHandler(cardService, listService)
	budgetHandler := handlers.NewBudgetHandler(budgetService, listService)
	expenseHandler := handlers.NewExpenseHandler(expenseService)
	widgetHandler := handlers.NewWidgetHandler(widget.NewLive(store))

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	router.GET("/api/widget", middleware.WidgetKeyMiddleware(testWidgetKey), widgetHandler.GetWidget)

	v1 := router.Group("/api/v1")
	v1.POST("/auth/token", authHandler.IssueToken)

	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())
	protected.Use(middleware.RequireWriteScope())

	protected.GET("/widget", widgetHandler.GetWidget)

	lists := protected.Group("/lists")
	lists.GET("", listHandler.GetLists)
	lists.POST("", listHandler.CreateList)
	lists.PUT("/selected", listHandler.SelectList)
	lists.PUT("/:id", listHandler.RenameList)

	categories := protected.Group("/categories")
	categories.GET("", categoryHandler.GetCategories)
	categories.POST("", categoryHandler.CreateCategory)
	categories.GET("/:id", categoryHandler.GetCategoryByID)
	categories.PUT("/:id", categoryHandler.UpdateCategory)
	categories.DELETE("/:id", categoryHandler.DeleteCategory)

	cards := protected.Group("/cards")
	cards.GET("", cardHandler.GetCards)
	cards.POST("", cardHandler.CreateCard)
	cards.GET("/:id", cardHandler.GetCard)
	cards.DELETE("/:id", cardHandler.DeleteCard)
	cards.POST("/:id/break", cardHandler.BreakCard)
	cards.POST("/:id/restore", cardHandler.RestoreCard)

	budgets := protected.Group("/budgets")
	budgets.GET("", budgetHandler.GetBudgets)
	budgets.GET("/progress", budgetHandler.GetBudgetProgress)
	budgets.PUT("", budgetHandler.SetBudget)
	budgets.DELETE("", budgetHandler.RemoveBudget)

	expenses := protected.Group("/expenses")
	expenses.GET("", expenseHandler.GetExpenses)
	expenses.POST("", expenseHandler.CreateExpense)
	expenses.DELETE("", expenseHandler.DeleteExpenses)
	expenses.GET("/month-total", expenseHandler.GetMonthTotal)
	expenses.GET("/export", expenseHandler.ExportExpenses)

	return &testApp{KV: kv, Store: store, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// errorCode returns the error code of an error response.
func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	errObj, ok := parseJSON(t, rec)["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error response, got %s", rec.Body.String())
	}
	return errObj["code"].(string)
}

// issueToken exchanges the test passphrase for a token of the given scope.
func (app *testApp) issueToken(t *testing.T, scope string) string {
	t.Helper()
	rec := app.request("POST", "/api/v1/auth/token",
		fmt.Sprintf(`{"passphrase":%q,"scope":%q}`, testPassphrase, scope), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("token request failed: %d %s", rec.Code, rec.Body.String())
	}
	return parseJSON(t, rec)["token"].(string)
}

// mustCreate posts body to path and returns the named object of the response.
func (app *testApp) mustCreate(t *testing.T, path, body, token, key string) map[string]interface{} {
	t.Helper()
	rec := app.request("POST", path, body, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("POST %s: expected 201, got %d: %s", path, rec.Code, rec.Body.String())
	}
	return parseJSON(t, rec)[key].(map[string]interface{})
}
