package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"spendtrack/internal/api"
	"spendtrack/internal/api/handlers"
	"spendtrack/internal/repository"
	"spendtrack/internal/service"
	"spendtrack/pkg/auth"
	"spendtrack/pkg/config"
	"spendtrack/pkg/logger"
	"spendtrack/pkg/postgres"

	"go.uber.org/zap"
)

// @title Spendtrack API
// @version 1.0
// @description Personal expense tracking service: categories, expenses, and monthly dashboards

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting spendtrack service")

	ctx := context.Background()
	if err := postgres.RunMigrations(ctx, &cfg.Database, appLogger); err != nil {
		appLogger.Fatal("Failed to run migrations", zap.Error(err))
	}

	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Repositories
	userRepo := repository.NewUserRepository(db, appLogger)
	categoryRepo := repository.NewCategoryRepository(db, appLogger)
	expenseRepo := repository.NewExpenseRepository(db, appLogger)

	// JWT manager
	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Expiration, cfg.JWT.RefreshExp)

	// Services
	authService := service.NewAuthService(userRepo, jwtManager, appLogger)
	categoryService := service.NewCategoryService(categoryRepo, appLogger)
	expenseService := service.NewExpenseService(expenseRepo, appLogger)
	seederService := service.NewSeederService(categoryService, appLogger)
	dashboardService := service.NewDashboardService(expenseService, categoryService, appLogger)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService, appLogger)
	categoryHandler := handlers.NewCategoryHandler(categoryService, seederService, appLogger)
	expenseHandler := handlers.NewExpenseHandler(expenseService, appLogger)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService, appLogger)

	app := api.SetupRouter(authHandler, categoryHandler, expenseHandler, dashboardHandler, jwtManager, appLogger)

	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
