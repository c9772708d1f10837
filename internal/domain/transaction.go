package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction types. RentPayment exists in the schema but nothing emits it
// yet; rent collection has not shipped.
const (
	TxPurchase    = "purchase"
	TxSale        = "sale"
	TxRentPayment = "rent_payment"
)

// Transaction is an append-only trade record. PropertyID is nil for
// transactions that are not tied to a listing.
type Transaction struct {
	ID         string          `db:"id" json:"id"`
	UserID     string          `db:"user_id" json:"userId"`
	PropertyID *string         `db:"property_id" json:"propertyId"`
	Type       string          `db:"type" json:"type"`
	Amount     decimal.Decimal `db:"amount" json:"amount"`
	CreatedAt  time.Time       `db:"created_at" json:"createdAt"`
}
