package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"briks_webapp/internal/domain"
	"briks_webapp/internal/logger"
	"briks_webapp/internal/storage"
)

// OnboardingService handles first-contact flows: wallet connect-or-create
// and the tutorial completion flag.
type OnboardingService struct {
	store storage.Store
}

func NewOnboardingService(store storage.Store) *OnboardingService {
	return &OnboardingService{store: store}
}

// ConnectWallet returns the user linked to the wallet address, creating a
// fresh account with default balances on first contact. Connecting the same
// address twice always resolves to the same user.
func (s *OnboardingService) ConnectWallet(ctx context.Context, walletAddress string) (*domain.User, error) {
	if walletAddress == "" {
		return nil, ErrWalletRequired
	}

	user, err := s.store.GetUserByWallet(ctx, walletAddress)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("connect wallet: lookup: %w", err)
	}

	username := fmt.Sprintf("Player_%d", rand.Intn(10000))
	user = &domain.User{
		WalletAddress: &walletAddress,
		Username:      &username,
		BriksBalance:  domain.DefaultBriksBalance,
		NetWorth:      domain.DefaultNetWorth,
		Rank:          domain.DefaultRank,
	}
	if err := s.store.CreateUser(ctx, user); err != nil {
		// Lost a create race against a concurrent connect for the same
		// address; the winner's record is the account.
		if errors.Is(err, storage.ErrWalletTaken) {
			return s.store.GetUserByWallet(ctx, walletAddress)
		}
		return nil, fmt.Errorf("connect wallet: create: %w", err)
	}

	logger.Info("new player registered", "user_id", user.ID, "username", username)
	return user, nil
}

// CompleteTutorial marks the tutorial as done for the user.
func (s *OnboardingService) CompleteTutorial(ctx context.Context, userID string) (*domain.User, error) {
	done := true
	user, err := s.store.UpdateUser(ctx, userID, storage.UserUpdate{HasCompletedTutorial: &done})
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	return user, err
}
