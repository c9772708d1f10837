// Package storage defines the persistence contract shared by the in-memory
// and postgres backends. All state mutations go through a Store; services
// never touch a backend directly.
package storage

import (
	"context"
	"errors"

	"briks_webapp/internal/domain"

	"github.com/shopspring/decimal"
)

var (
	// ErrNotFound is returned for lookups and updates on unknown ids.
	ErrNotFound = errors.New("record not found")
	// ErrWalletTaken is returned when a create would duplicate a wallet
	// address. Uniqueness is enforced here, not left to callers.
	ErrWalletTaken = errors.New("wallet address already registered")
)

// UserUpdate is a partial update; nil fields are left untouched.
type UserUpdate struct {
	Username             *string
	BriksBalance         *decimal.Decimal
	NetWorth             *decimal.Decimal
	Rank                 *decimal.Decimal
	HasCompletedTutorial *bool
}

// PropertyUpdate is a partial update; nil fields are left untouched.
// ClearOwner takes precedence over OwnerID and returns the listing to the
// marketplace.
type PropertyUpdate struct {
	OwnerID    *string
	ClearOwner bool
	Condition  *decimal.Decimal
}

type UserStore interface {
	GetUser(ctx context.Context, id string) (*domain.User, error)
	GetUserByWallet(ctx context.Context, walletAddress string) (*domain.User, error)
	// CreateUser fills in the id, creation timestamp and per-field defaults.
	CreateUser(ctx context.Context, u *domain.User) error
	UpdateUser(ctx context.Context, id string, upd UserUpdate) (*domain.User, error)
	// ListUsersByNetWorth returns up to limit users, richest first.
	ListUsersByNetWorth(ctx context.Context, limit int) ([]domain.User, error)
}

type PropertyStore interface {
	GetProperty(ctx context.Context, id string) (*domain.Property, error)
	// ListProperties returns all listings, or only unowned ones when
	// onlyAvailable is set.
	ListProperties(ctx context.Context, onlyAvailable bool) ([]domain.Property, error)
	ListPropertiesByOwner(ctx context.Context, ownerID string) ([]domain.Property, error)
	CreateProperty(ctx context.Context, p *domain.Property) error
	UpdateProperty(ctx context.Context, id string, upd PropertyUpdate) (*domain.Property, error)
}

type TransactionStore interface {
	CreateTransaction(ctx context.Context, t *domain.Transaction) error
	ListTransactionsByUser(ctx context.Context, userID string, limit int) ([]domain.Transaction, error)
}

// Store is the full persistence surface of the app.
type Store interface {
	UserStore
	PropertyStore
	TransactionStore

	Ping(ctx context.Context) error
	Close()
}
