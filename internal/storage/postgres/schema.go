package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Schema is applied by cmd/migrate. Statements are idempotent so reruns are
// safe.
const Schema = `
CREATE TABLE IF NOT EXISTS users (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	wallet_address TEXT UNIQUE,
	username TEXT,
	briks_balance NUMERIC NOT NULL DEFAULT 15000,
	net_worth NUMERIC NOT NULL DEFAULT 0,
	rank NUMERIC NOT NULL DEFAULT 999,
	has_completed_tutorial BOOLEAN NOT NULL DEFAULT FALSE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS properties (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	name TEXT NOT NULL,
	location TEXT NOT NULL,
	property_type TEXT NOT NULL,
	rarity TEXT NOT NULL,
	price NUMERIC NOT NULL,
	briks_price NUMERIC NOT NULL,
	income NUMERIC NOT NULL,
	demand NUMERIC NOT NULL,
	condition NUMERIC NOT NULL DEFAULT 100,
	image_url TEXT,
	features TEXT[],
	bedrooms NUMERIC,
	bathrooms NUMERIC,
	sqft NUMERIC,
	year_built NUMERIC,
	monthly_income NUMERIC,
	annual_roi NUMERIC,
	owner_id UUID REFERENCES users(id),
	listing_date TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_properties_owner ON properties(owner_id);

CREATE TABLE IF NOT EXISTS transactions (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	user_id UUID NOT NULL REFERENCES users(id),
	property_id UUID REFERENCES properties(id),
	type TEXT NOT NULL,
	amount NUMERIC NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_transactions_user ON transactions(user_id);
`

// Migrate applies the schema to the connected database.
func Migrate(ctx context.Context, db *pgxpool.Pool) error {
	_, err := db.Exec(ctx, Schema)
	return err
}
