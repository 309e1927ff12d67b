// Seeds the default category set for a user given on the command line:
//
//	go run ./cmd/seed <user-id>
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"spendtrack/internal/repository"
	"spendtrack/internal/service"
	"spendtrack/pkg/config"
	"spendtrack/pkg/logger"
	"spendtrack/pkg/postgres"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: seed <user-id>")
		os.Exit(2)
	}

	userID, err := uuid.Parse(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid user id %q: %v\n", os.Args[1], err)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	ctx := context.Background()
	if err := postgres.RunMigrations(ctx, &cfg.Database, appLogger); err != nil {
		appLogger.Fatal("Failed to run migrations", zap.Error(err))
	}

	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	categoryRepo := repository.NewCategoryRepository(db, appLogger)
	categoryService := service.NewCategoryService(categoryRepo, appLogger)
	seeder := service.NewSeederService(categoryService, appLogger)

	appLogger.Info("Seeding categories", zap.String("user_id", userID.String()))

	added, err := seeder.Seed(ctx, userID)
	if err != nil {
		appLogger.Fatal("Seeding failed", zap.Error(err))
	}

	appLogger.Info("Seeding completed", zap.Int("added", added))
}
