// Seeds the demo property catalogue into postgres.
package main

import (
	"context"
	"os"

	"briks_webapp/internal/logger"
	"briks_webapp/internal/storage"
	"briks_webapp/internal/storage/postgres"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		logger.Fatal("DATABASE_URL is not set")
	}

	ctx := context.Background()
	store, err := postgres.Connect(ctx, dsn)
	if err != nil {
		logger.Fatal("database connect failed", "error", err)
	}
	defer store.Close()

	if err := storage.SeedDemoCatalogue(ctx, store); err != nil {
		logger.Fatal("seed failed", "error", err)
	}
	logger.Info("demo catalogue seeded")
}
