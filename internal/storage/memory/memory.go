// Package memory is the default storage backend: plain maps behind a single
// RWMutex. Every read copies the record out, so callers can never mutate
// shared state without going back through the store.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"briks_webapp/internal/domain"
	"briks_webapp/internal/storage"

	"github.com/google/uuid"
)

type Store struct {
	mu           sync.RWMutex
	users        map[string]domain.User
	properties   map[string]domain.Property
	transactions map[string]domain.Transaction

	now func() time.Time
}

var _ storage.Store = (*Store)(nil)

func NewStore() *Store {
	return &Store{
		users:        map[string]domain.User{},
		properties:   map[string]domain.Property{},
		transactions: map[string]domain.Transaction{},
		now:          time.Now,
	}
}

func (s *Store) GetUser(_ context.Context, id string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &u, nil
}

func (s *Store) GetUserByWallet(_ context.Context, walletAddress string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.userByWalletLocked(walletAddress)
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &u, nil
}

func (s *Store) userByWalletLocked(walletAddress string) (domain.User, bool) {
	for _, u := range s.users {
		if u.WalletAddress != nil && *u.WalletAddress == walletAddress {
			return u, true
		}
	}
	return domain.User{}, false
}

func (s *Store) CreateUser(_ context.Context, u *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if u.WalletAddress != nil {
		if _, taken := s.userByWalletLocked(*u.WalletAddress); taken {
			return storage.ErrWalletTaken
		}
	}

	u.ID = uuid.NewString()
	u.CreatedAt = s.now()
	if u.BriksBalance.IsZero() {
		u.BriksBalance = domain.DefaultBriksBalance
	}
	if u.Rank.IsZero() {
		u.Rank = domain.DefaultRank
	}

	s.users[u.ID] = *u
	return nil
}

func (s *Store) UpdateUser(_ context.Context, id string, upd storage.UserUpdate) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	if upd.Username != nil {
		u.Username = upd.Username
	}
	if upd.BriksBalance != nil {
		u.BriksBalance = *upd.BriksBalance
	}
	if upd.NetWorth != nil {
		u.NetWorth = *upd.NetWorth
	}
	if upd.Rank != nil {
		u.Rank = *upd.Rank
	}
	if upd.HasCompletedTutorial != nil {
		u.HasCompletedTutorial = *upd.HasCompletedTutorial
	}

	s.users[id] = u
	return &u, nil
}

func (s *Store) ListUsersByNetWorth(_ context.Context, limit int) ([]domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]domain.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool {
		if !users[i].NetWorth.Equal(users[j].NetWorth) {
			return users[i].NetWorth.GreaterThan(users[j].NetWorth)
		}
		return users[i].CreatedAt.Before(users[j].CreatedAt)
	})
	if limit > 0 && limit < len(users) {
		users = users[:limit]
	}
	return users, nil
}

func (s *Store) GetProperty(_ context.Context, id string) (*domain.Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.properties[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &p, nil
}

func (s *Store) ListProperties(_ context.Context, onlyAvailable bool) ([]domain.Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	props := make([]domain.Property, 0, len(s.properties))
	for _, p := range s.properties {
		if onlyAvailable && p.OwnerID != nil {
			continue
		}
		props = append(props, p)
	}
	sortProperties(props)
	return props, nil
}

func (s *Store) ListPropertiesByOwner(_ context.Context, ownerID string) ([]domain.Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var props []domain.Property
	for _, p := range s.properties {
		if p.OwnerID != nil && *p.OwnerID == ownerID {
			props = append(props, p)
		}
	}
	sortProperties(props)
	return props, nil
}

func (s *Store) CreateProperty(_ context.Context, p *domain.Property) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = uuid.NewString()
	p.ListingDate = s.now()
	if p.Condition.IsZero() {
		p.Condition = domain.DefaultCondition
	}

	s.properties[p.ID] = *p
	return nil
}

func (s *Store) UpdateProperty(_ context.Context, id string, upd storage.PropertyUpdate) (*domain.Property, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.properties[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	switch {
	case upd.ClearOwner:
		p.OwnerID = nil
	case upd.OwnerID != nil:
		p.OwnerID = upd.OwnerID
	}
	if upd.Condition != nil {
		p.Condition = *upd.Condition
	}

	s.properties[id] = p
	return &p, nil
}

func (s *Store) CreateTransaction(_ context.Context, t *domain.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t.ID = uuid.NewString()
	t.CreatedAt = s.now()

	s.transactions[t.ID] = *t
	return nil
}

func (s *Store) ListTransactionsByUser(_ context.Context, userID string, limit int) ([]domain.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var txs []domain.Transaction
	for _, t := range s.transactions {
		if t.UserID == userID {
			txs = append(txs, t)
		}
	}
	sort.Slice(txs, func(i, j int) bool {
		if !txs[i].CreatedAt.Equal(txs[j].CreatedAt) {
			return txs[i].CreatedAt.After(txs[j].CreatedAt)
		}
		return txs[i].ID < txs[j].ID
	})
	if limit > 0 && limit < len(txs) {
		txs = txs[:limit]
	}
	return txs, nil
}

func (s *Store) Ping(context.Context) error { return nil }

func (s *Store) Close() {}

// listing order: newest first, id as a tiebreaker so results are stable
// within a single timestamp.
func sortProperties(props []domain.Property) {
	sort.Slice(props, func(i, j int) bool {
		if !props[i].ListingDate.Equal(props[j].ListingDate) {
			return props[i].ListingDate.After(props[j].ListingDate)
		}
		return props[i].ID < props[j].ID
	})
}
