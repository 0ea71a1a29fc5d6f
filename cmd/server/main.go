package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"expense-tracker-api/internal/config"
	"expense-tracker-api/internal/database"
	"expense-tracker-api/internal/handlers"
	custommiddleware "expense-tracker-api/internal/middleware"
	"expense-tracker-api/internal/models"
	"expense-tracker-api/internal/repositories"
	"expense-tracker-api/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Load .env file for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	// Setup structured logging
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()

	db, err := database.Initialize(cfg)
	if err != nil {
		logger.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}

	// Repositories
	categoryRepo := repositories.NewCategoryRepository(db)
	expenseRepo := repositories.NewTransactionRepository(db, models.KindExpense)
	incomeRepo := repositories.NewTransactionRepository(db, models.KindIncome)
	reportRepo := repositories.NewReportRepository(db)

	// Services
	categoryService := services.NewCategoryService(categoryRepo)
	expenseService := services.NewTransactionService(expenseRepo, categoryRepo)
	incomeService := services.NewTransactionService(incomeRepo, categoryRepo)
	reportService := services.NewReportService(reportRepo)

	// Handlers
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	expenseHandler := handlers.NewTransactionHandler(expenseService)
	incomeHandler := handlers.NewTransactionHandler(incomeService)
	dashboardHandler := handlers.NewDashboardHandler(reportService)
	healthHandler := handlers.NewHealthCheckHandler(db)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = custommiddleware.CustomHTTPErrorHandler

	// Middleware
	e.Use(custommiddleware.RequestID())
	e.Use(custommiddleware.PanicRecovery())
	e.Use(custommiddleware.SecurityHeaders())
	e.Use(custommiddleware.RateLimiterWithConfig(cfg.Server.RateLimitPerSec, cfg.Server.RateLimitBurst))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderContentType, custommiddleware.TraceIDHeader},
	}))

	// Routes
	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api")

	categoryGroup := api.Group("/categories")
	categoryGroup.GET("/", categoryHandler.ListCategories)
	categoryGroup.POST("/", categoryHandler.CreateCategory)
	categoryGroup.PUT("/:id", categoryHandler.UpdateCategory)
	categoryGroup.DELETE("/:id", categoryHandler.DeleteCategory)

	registerTransactionRoutes(api.Group("/expenses"), expenseHandler)
	registerTransactionRoutes(api.Group("/income"), incomeHandler)

	dashboardGroup := api.Group("/dashboard")
	dashboardGroup.GET("/summary", dashboardHandler.GetSummary)
	dashboardGroup.GET("/monthly-trend", dashboardHandler.GetMonthlyTrend)

	// Graceful shutdown handling
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info("Shutdown signal received", "signal", sig.String())

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := e.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", "error", err)
		}
		cancel()
	}()

	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	addr := ":" + cfg.Server.Port
	logger.Info("Starting expense tracker server", "addr", addr, "environment", cfg.Server.Environment)
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", "error", err, "addr", addr)
		os.Exit(1)
	}

	<-ctx.Done()
	logger.Info("Server stopped gracefully")
}

func registerTransactionRoutes(g *echo.Group, h *handlers.TransactionHandler) {
	g.GET("/", h.ListTransactions)
	g.POST("/", h.CreateTransaction)
	g.GET("/:id", h.GetTransaction)
	g.PUT("/:id", h.UpdateTransaction)
	g.DELETE("/:id", h.DeleteTransaction)
}
