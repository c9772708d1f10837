// Package postgres is the relational storage backend, selected when
// DATABASE_URL is set. It implements the same contract as the in-memory
// store; the schema lives in schema.go and is applied by cmd/migrate.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"briks_webapp/internal/storage"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	db *pgxpool.Pool
}

var _ storage.Store = (*Store)(nil)

// Connect opens a pool and verifies the connection.
func Connect(ctx context.Context, dsn string) (*Store, error) {
	db, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("create database pool: %w", err)
	}
	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &Store{db: db}, nil
}

// NewStore wraps an existing pool (used by cmd/seed and integration tests).
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) Ping(ctx context.Context) error { return s.db.Ping(ctx) }

func (s *Store) Close() { s.db.Close() }

func joinSet(set []string) string {
	out := set[0]
	for _, s := range set[1:] {
		out += ", " + s
	}
	return out
}

// mapErr translates driver errors into storage sentinel errors.
func mapErr(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return storage.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == "users_wallet_address_key" {
		return storage.ErrWalletTaken
	}
	return err
}
