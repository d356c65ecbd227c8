package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"golang.org/x/sync/errgroup"

	"moneytracker/internal/config"
	"moneytracker/internal/database"
	"moneytracker/internal/handlers"
	"moneytracker/internal/logger"
	"moneytracker/internal/middleware"
	"moneytracker/internal/services"
	"moneytracker/internal/snapshot"
	"moneytracker/internal/validator"
	"moneytracker/internal/widget"

	_ "moneytracker/internal/docs" // Import swagger docs
)

// @title           Moneytracker API
// @version         1.0
// @description     Personal expense tracker: expense lists, categories, prepaid cards and budgets.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if appConfig.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	validator.Register()

	// Open the snapshot backend
	kv, err := database.OpenKV(ctx, appConfig)
	if err != nil {
		return fmt.Errorf("failed to open %s store: %w", appConfig.StoreBackend, err)
	}
	defer func() {
		if err := kv.Close(); err != nil {
			log.Warnf("store close error: %v", err)
		}
	}()

	store, err := snapshot.Open(ctx, kv, snapshot.WithWriteTimeout(appConfig.StoreTimeout))
	if err != nil {
		return fmt.Errorf("failed to load snapshot: %w", err)
	}

	// Initialize services
	listService := services.NewListService(store)
	categoryService := services.NewCategoryService(store)
	cardService := services.NewCardService(store)
	budgetService := services.NewBudgetService(store)
	expenseService := services.NewExpenseService(store)

	if err := services.Startup(store, listService, categoryService, cardService); err != nil {
		return fmt.Errorf("startup ensure steps failed: %w", err)
	}

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(appConfig.PassphraseHash)
	listHandler := handlers.NewListHandler(listService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	cardHandler := handlers.NewCardHandler(cardService, listService)
	budgetHandler := handlers.NewBudgetHandler(budgetService, listService)
	expenseHandler := handlers.NewExpenseHandler(expenseService)
	widgetHandler := handlers.NewWidgetHandler(widget.NewLive(store))

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(cors.New(cors.Config{
		AllowOrigins:  appConfig.CORSAllowOrigins,
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", "X-API-Key", "X-Request-ID"},
		ExposeHeaders: []string{"Content-Length", "Content-Disposition", "X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}))

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Static-key widget access
	router.GET("/api/widget", middleware.WidgetKeyMiddleware(appConfig.WidgetAPIKey), widgetHandler.GetWidget)

	// API v1 group
	v1 := router.Group("/api/v1")

	// Public routes
	v1.POST("/auth/token", authHandler.IssueToken)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())
	protected.Use(middleware.RequireWriteScope())

	protected.GET("/widget", widgetHandler.GetWidget)

	// List routes
	lists := protected.Group("/lists")
	lists.GET("", listHandler.GetLists)
	lists.POST("", listHandler.CreateList)
	lists.PUT("/selected", listHandler.SelectList)
	lists.PUT("/:id", listHandler.RenameList)

	// Category routes
	categories := protected.Group("/categories")
	categories.GET("", categoryHandler.GetCategories)
	categories.POST("", categoryHandler.CreateCategory)
	categories.GET("/:id", categoryHandler.GetCategoryByID)
	categories.PUT("/:id", categoryHandler.UpdateCategory)
	categories.DELETE("/:id", categoryHandler.DeleteCategory)

	// Card routes
	cards := protected.Group("/cards")
	cards.GET("", cardHandler.GetCards)
	cards.POST("", cardHandler.CreateCard)
	cards.GET("/:id", cardHandler.GetCard)
	cards.DELETE("/:id", cardHandler.DeleteCard)
	cards.POST("/:id/break", cardHandler.BreakCard)
	cards.POST("/:id/restore", cardHandler.RestoreCard)

	// Budget routes
	budgets := protected.Group("/budgets")
	budgets.GET("", budgetHandler.GetBudgets)
	budgets.GET("/progress", budgetHandler.GetBudgetProgress)
	budgets.PUT("", budgetHandler.SetBudget)
	budgets.DELETE("", budgetHandler.RemoveBudget)

	// Expense routes
	expenses := protected.Group("/expenses")
	expenses.GET("", expenseHandler.GetExpenses)
	expenses.POST("", expenseHandler.CreateExpense)
	expenses.DELETE("", expenseHandler.DeleteExpenses)
	expenses.GET("/month-total", expenseHandler.GetMonthTotal)
	expenses.GET("/export", expenseHandler.ExportExpenses)

	srv := &http.Server{
		Addr:              ":" + appConfig.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Infof("Starting moneytracker server on port %s (store: %s)", appConfig.Port, appConfig.StoreBackend)
		log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
