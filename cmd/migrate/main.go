// Applies the postgres schema. Safe to rerun.
package main

import (
	"context"
	"os"

	"briks_webapp/internal/logger"
	"briks_webapp/internal/storage/postgres"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		logger.Fatal("DATABASE_URL is not set")
	}

	ctx := context.Background()
	db, err := pgxpool.New(ctx, dsn)
	if err != nil {
		logger.Fatal("create database pool", "error", err)
	}
	defer db.Close()

	if err := postgres.Migrate(ctx, db); err != nil {
		logger.Fatal("apply schema", "error", err)
	}
	logger.Info("schema applied")
}
