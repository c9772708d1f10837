package postgres

import (
	"context"
	"os"
	"testing"

	"briks_webapp/internal/domain"
	"briks_webapp/internal/storage"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// Integration tests run against a real database. Set TEST_DATABASE_URL to
// enable them; the schema is applied on every run and is idempotent.
func testStore(t *testing.T) *Store {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping postgres integration test")
	}

	ctx := context.Background()
	store, err := Connect(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(store.Close)

	require.NoError(t, Migrate(ctx, store.db))
	return store
}

func TestUserRoundtrip(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	wallet := "0x" + uuid.NewString()
	username := "Player_test"
	u := &domain.User{WalletAddress: &wallet, Username: &username}
	require.NoError(t, store.CreateUser(ctx, u))
	require.NotEmpty(t, u.ID)
	require.Equal(t, "15000", u.BriksBalance.String())

	byWallet, err := store.GetUserByWallet(ctx, wallet)
	require.NoError(t, err)
	require.Equal(t, u.ID, byWallet.ID)

	dup := &domain.User{WalletAddress: &wallet}
	require.ErrorIs(t, store.CreateUser(ctx, dup), storage.ErrWalletTaken)

	balance := decimal.RequireFromString("10000")
	updated, err := store.UpdateUser(ctx, u.ID, storage.UserUpdate{BriksBalance: &balance})
	require.NoError(t, err)
	require.True(t, updated.BriksBalance.Equal(balance))
	require.Equal(t, wallet, *updated.WalletAddress)

	_, err = store.GetUser(ctx, uuid.NewString())
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestPropertyOwnershipRoundtrip(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	wallet := "0x" + uuid.NewString()
	u := &domain.User{WalletAddress: &wallet}
	require.NoError(t, store.CreateUser(ctx, u))

	p := &domain.Property{
		Name:         "Integration Test Lot",
		Location:     "Downtown Core",
		PropertyType: "Residential",
		Rarity:       "Common",
		Price:        decimal.RequireFromString("100000"),
		BriksPrice:   decimal.RequireFromString("10000"),
		Income:       decimal.RequireFromString("1000"),
		Demand:       decimal.RequireFromString("50"),
		Features:     []string{"Large Yard", "Modern Kitchen"},
	}
	require.NoError(t, store.CreateProperty(ctx, p))
	require.NotEmpty(t, p.ID)

	loaded, err := store.GetProperty(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, p.Name, loaded.Name)
	require.Equal(t, []string{"Large Yard", "Modern Kitchen"}, loaded.Features)
	require.True(t, loaded.Condition.Equal(decimal.RequireFromString("100")))
	require.Nil(t, loaded.OwnerID)

	owned, err := store.UpdateProperty(ctx, p.ID, storage.PropertyUpdate{OwnerID: &u.ID})
	require.NoError(t, err)
	require.Equal(t, u.ID, *owned.OwnerID)

	mine, err := store.ListPropertiesByOwner(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)

	cleared, err := store.UpdateProperty(ctx, p.ID, storage.PropertyUpdate{ClearOwner: true})
	require.NoError(t, err)
	require.Nil(t, cleared.OwnerID)
}

func TestTransactionRoundtrip(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	wallet := "0x" + uuid.NewString()
	u := &domain.User{WalletAddress: &wallet}
	require.NoError(t, store.CreateUser(ctx, u))

	p := &domain.Property{
		Name:         "Integration Test Lot",
		Location:     "Downtown Core",
		PropertyType: "Residential",
		Rarity:       "Common",
		Price:        decimal.RequireFromString("100000"),
		BriksPrice:   decimal.RequireFromString("10000"),
		Income:       decimal.RequireFromString("1000"),
		Demand:       decimal.RequireFromString("50"),
	}
	require.NoError(t, store.CreateProperty(ctx, p))

	tx := &domain.Transaction{
		UserID:     u.ID,
		PropertyID: &p.ID,
		Type:       domain.TxPurchase,
		Amount:     decimal.RequireFromString("10000"),
	}
	require.NoError(t, store.CreateTransaction(ctx, tx))
	require.NotEmpty(t, tx.ID)

	txs, err := store.ListTransactionsByUser(ctx, u.ID, 10)
	require.NoError(t, err)
	require.Len(t, txs, 1)
	require.Equal(t, domain.TxPurchase, txs[0].Type)
	require.True(t, txs[0].Amount.Equal(tx.Amount))
}
