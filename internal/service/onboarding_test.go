package service

import (
	"context"
	"strings"
	"testing"

	"briks_webapp/internal/storage/memory"

	"github.com/stretchr/testify/require"
)

func TestConnectWalletCreatesPlayer(t *testing.T) {
	svc := NewOnboardingService(memory.NewStore())
	ctx := context.Background()

	user, err := svc.ConnectWallet(ctx, "0xabc")
	require.NoError(t, err)
	require.NotEmpty(t, user.ID)
	require.Equal(t, "0xabc", *user.WalletAddress)
	require.NotNil(t, user.Username)
	require.True(t, strings.HasPrefix(*user.Username, "Player_"))
	require.Equal(t, "15000", user.BriksBalance.String())
	require.True(t, user.NetWorth.IsZero())
	require.Equal(t, "999", user.Rank.String())
	require.False(t, user.HasCompletedTutorial)
}

func TestConnectWalletIsIdempotent(t *testing.T) {
	svc := NewOnboardingService(memory.NewStore())
	ctx := context.Background()

	first, err := svc.ConnectWallet(ctx, "0xabc")
	require.NoError(t, err)
	second, err := svc.ConnectWallet(ctx, "0xabc")
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)

	other, err := svc.ConnectWallet(ctx, "0xdef")
	require.NoError(t, err)
	require.NotEqual(t, first.ID, other.ID)
}

func TestConnectWalletRequiresAddress(t *testing.T) {
	svc := NewOnboardingService(memory.NewStore())

	_, err := svc.ConnectWallet(context.Background(), "")
	require.ErrorIs(t, err, ErrWalletRequired)
}

func TestCompleteTutorial(t *testing.T) {
	store := memory.NewStore()
	svc := NewOnboardingService(store)
	ctx := context.Background()

	user, err := svc.ConnectWallet(ctx, "0xabc")
	require.NoError(t, err)

	updated, err := svc.CompleteTutorial(ctx, user.ID)
	require.NoError(t, err)
	require.True(t, updated.HasCompletedTutorial)

	reloaded, err := store.GetUser(ctx, user.ID)
	require.NoError(t, err)
	require.True(t, reloaded.HasCompletedTutorial)

	_, err = svc.CompleteTutorial(ctx, "missing")
	require.ErrorIs(t, err, ErrUserNotFound)
}
