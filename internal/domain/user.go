package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// User is a player account. Wallet address is set on first connect and is
// unique across users; a nil wallet means the account was created through a
// secondary path and has not been linked yet.
type User struct {
	ID                   string          `db:"id" json:"id"`
	WalletAddress        *string         `db:"wallet_address" json:"walletAddress"`
	Username             *string         `db:"username" json:"username"`
	BriksBalance         decimal.Decimal `db:"briks_balance" json:"briksBalance"`
	NetWorth             decimal.Decimal `db:"net_worth" json:"netWorth"`
	Rank                 decimal.Decimal `db:"rank" json:"rank"`
	HasCompletedTutorial bool            `db:"has_completed_tutorial" json:"hasCompletedTutorial"`
	CreatedAt            time.Time       `db:"created_at" json:"createdAt"`
}

// Defaults applied when a user record is created without explicit values.
var (
	DefaultBriksBalance = decimal.NewFromInt(15000)
	DefaultNetWorth     = decimal.Zero
	DefaultRank         = decimal.NewFromInt(999)
)
