package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"briks_webapp/internal/domain"
	"briks_webapp/internal/logger"
	"briks_webapp/internal/storage"

	"github.com/shopspring/decimal"
)

// saleRate is the fraction of the $BRIKS price returned on liquidation:
// selling always costs the player 10%.
var saleRate = decimal.RequireFromString("0.9")

// MarketEvent describes a completed marketplace action, published to the
// live feed after a trade commits.
type MarketEvent struct {
	Kind       string          `json:"kind"`
	PropertyID string          `json:"propertyId"`
	UserID     string          `json:"userId"`
	Amount     decimal.Decimal `json:"amount"`
}

const (
	EventPropertyPurchased = "property_purchased"
	EventPropertySold      = "property_sold"
	EventPropertyListed    = "property_listed"
)

// EventPublisher pushes market events to connected clients. Implemented by
// the ws hub; nil disables publishing.
type EventPublisher interface {
	PublishMarketEvent(evt MarketEvent)
}

// TradingService executes purchases and sales. Each property's
// check-then-mutate sequence runs under a per-property mutex so two
// concurrent purchases cannot both observe it as available.
type TradingService struct {
	store  storage.Store
	events EventPublisher

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewTradingService(store storage.Store, events EventPublisher) *TradingService {
	return &TradingService{
		store:  store,
		events: events,
		locks:  map[string]*sync.Mutex{},
	}
}

// propertyLock returns the mutex serializing trades for one property. Locks
// are never discarded; the set is bounded by the size of the catalogue.
func (s *TradingService) propertyLock(propertyID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[propertyID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[propertyID] = l
	}
	return l
}

// Purchase transfers an available property to the buyer. The buyer pays the
// $BRIKS price from their balance; net worth grows by the cash price.
func (s *TradingService) Purchase(ctx context.Context, propertyID, userID string) error {
	l := s.propertyLock(propertyID)
	l.Lock()
	defer l.Unlock()

	prop, user, err := s.lookup(ctx, propertyID, userID)
	if err != nil {
		return err
	}
	if prop.OwnerID != nil {
		return ErrAlreadyOwned
	}
	if user.BriksBalance.LessThan(prop.BriksPrice) {
		return ErrInsufficientBalance
	}

	if _, err := s.store.UpdateProperty(ctx, propertyID, storage.PropertyUpdate{OwnerID: &userID}); err != nil {
		return fmt.Errorf("purchase: assign owner: %w", err)
	}

	newBalance := user.BriksBalance.Sub(prop.BriksPrice)
	newNetWorth := user.NetWorth.Add(prop.Price)
	if _, err := s.store.UpdateUser(ctx, userID, storage.UserUpdate{
		BriksBalance: &newBalance,
		NetWorth:     &newNetWorth,
	}); err != nil {
		return fmt.Errorf("purchase: update buyer: %w", err)
	}

	tx := &domain.Transaction{
		UserID:     userID,
		PropertyID: &propertyID,
		Type:       domain.TxPurchase,
		Amount:     prop.BriksPrice,
	}
	if err := s.store.CreateTransaction(ctx, tx); err != nil {
		return fmt.Errorf("purchase: record transaction: %w", err)
	}

	PurchasesTotal.Inc()
	logger.Info("property purchased",
		"property_id", propertyID, "user_id", userID, "briks_price", prop.BriksPrice.String())
	s.publish(MarketEvent{
		Kind:       EventPropertyPurchased,
		PropertyID: propertyID,
		UserID:     userID,
		Amount:     prop.BriksPrice,
	})
	return nil
}

// Sell returns the caller's property to the marketplace for 90% of its
// $BRIKS price. Net worth drops by the full cash price, not the proceeds:
// the haircut is a liquidation penalty, while net worth tracks property
// value.
func (s *TradingService) Sell(ctx context.Context, propertyID, userID string) error {
	l := s.propertyLock(propertyID)
	l.Lock()
	defer l.Unlock()

	prop, user, err := s.lookup(ctx, propertyID, userID)
	if err != nil {
		return err
	}
	if prop.OwnerID == nil || *prop.OwnerID != userID {
		return ErrNotOwner
	}

	proceeds := prop.BriksPrice.Mul(saleRate)

	if _, err := s.store.UpdateProperty(ctx, propertyID, storage.PropertyUpdate{ClearOwner: true}); err != nil {
		return fmt.Errorf("sell: clear owner: %w", err)
	}

	newBalance := user.BriksBalance.Add(proceeds)
	newNetWorth := user.NetWorth.Sub(prop.Price)
	if _, err := s.store.UpdateUser(ctx, userID, storage.UserUpdate{
		BriksBalance: &newBalance,
		NetWorth:     &newNetWorth,
	}); err != nil {
		return fmt.Errorf("sell: update seller: %w", err)
	}

	tx := &domain.Transaction{
		UserID:     userID,
		PropertyID: &propertyID,
		Type:       domain.TxSale,
		Amount:     proceeds,
	}
	if err := s.store.CreateTransaction(ctx, tx); err != nil {
		return fmt.Errorf("sell: record transaction: %w", err)
	}

	SalesTotal.Inc()
	logger.Info("property sold",
		"property_id", propertyID, "user_id", userID, "proceeds", proceeds.String())
	s.publish(MarketEvent{
		Kind:       EventPropertySold,
		PropertyID: propertyID,
		UserID:     userID,
		Amount:     proceeds,
	})
	return nil
}

// ListProperty creates a new marketplace listing and announces it.
func (s *TradingService) ListProperty(ctx context.Context, prop *domain.Property) error {
	if err := s.store.CreateProperty(ctx, prop); err != nil {
		return fmt.Errorf("list property: %w", err)
	}
	s.publish(MarketEvent{
		Kind:       EventPropertyListed,
		PropertyID: prop.ID,
		Amount:     prop.BriksPrice,
	})
	return nil
}

// lookup resolves both trade parties, translating missing ids into the
// client-facing not-found errors. The property is checked first; its error
// wins when both are unknown.
func (s *TradingService) lookup(ctx context.Context, propertyID, userID string) (*domain.Property, *domain.User, error) {
	prop, err := s.store.GetProperty(ctx, propertyID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil, ErrPropertyNotFound
	} else if err != nil {
		return nil, nil, fmt.Errorf("lookup property: %w", err)
	}
	user, err := s.store.GetUser(ctx, userID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil, ErrUserNotFound
	} else if err != nil {
		return nil, nil, fmt.Errorf("lookup user: %w", err)
	}
	return prop, user, nil
}

func (s *TradingService) publish(evt MarketEvent) {
	if s.events != nil {
		s.events.PublishMarketEvent(evt)
	}
}
