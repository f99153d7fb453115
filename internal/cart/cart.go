// Package cart implements the shopping cart: an ordered collection of items
// keyed by product id, persisted whole to the cart slot on every mutation.
package cart

import (
	"context"
	"fmt"
	"sync"

	"funky-fusion/internal/domain"
	"funky-fusion/internal/storage"

	"go.uber.org/zap"
)

// DeliveryCost is the flat delivery fee, in rupees, applied to any non-empty
// cart regardless of item count or weight.
const DeliveryCost = 150

// Store holds the active cart. All methods are synchronous; mutations write
// the whole snapshot through to the slot store before returning. Handlers run
// on concurrent goroutines, so the mutex serializes every read and mutation.
type Store struct {
	store  storage.Store
	logger *zap.Logger

	mu    sync.Mutex
	items []domain.CartItem
}

// NewStore loads the saved cart from the cart slot. A missing or malformed
// snapshot falls back to an empty cart.
func NewStore(ctx context.Context, store storage.Store, logger *zap.Logger) *Store {
	s := &Store{
		store:  store,
		logger: logger,
		items:  []domain.CartItem{},
	}

	var saved []domain.CartItem
	if storage.Load(ctx, store, storage.SlotCart, &saved, logger) && saved != nil {
		s.items = saved
	}

	return s
}

// Items returns a copy of the cart contents in insertion order.
func (s *Store) Items() []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]domain.CartItem, len(s.items))
	copy(items, s.items)
	return items
}

// Add puts a product in the cart. If the product is already present its
// quantity is incremented by one, clamped to the stock ceiling recorded when
// the entry was first added; the incoming item's stock value is ignored for
// existing entries. A new entry always starts at quantity 1 no matter what
// quantity the input carries.
func (s *Store) Add(ctx context.Context, item domain.CartItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == item.ID {
			s.items[i].Quantity = min(s.items[i].Quantity+1, s.items[i].Stock)
			return s.persist(ctx)
		}
	}

	item.Quantity = 1
	s.items = append(s.items, item)
	return s.persist(ctx)
}

// Remove deletes the entry with the given product id. Removing an absent id
// is a no-op.
func (s *Store) Remove(ctx context.Context, productID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == productID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return s.persist(ctx)
		}
	}
	return nil
}

// UpdateQuantity sets an entry's quantity to min(quantity, stock). No floor
// is enforced here; keeping the quantity at 1 or above is the caller's job.
// An absent id is a no-op.
func (s *Store) UpdateQuantity(ctx context.Context, productID, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == productID {
			s.items[i].Quantity = min(quantity, s.items[i].Stock)
			return s.persist(ctx)
		}
	}
	return nil
}

// Clear empties the cart.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = []domain.CartItem{}
	return s.persist(ctx)
}

// Subtotal is the sum of price * quantity over all entries.
func (s *Store) Subtotal() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.subtotal()
}

// DeliveryFee is the flat fee for a non-empty cart and zero for an empty one.
func (s *Store) DeliveryFee() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deliveryFee()
}

// Total is Subtotal plus DeliveryFee.
func (s *Store) Total() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.subtotal() + s.deliveryFee()
}

func (s *Store) subtotal() int {
	subtotal := 0
	for _, item := range s.items {
		subtotal += item.LineTotal()
	}
	return subtotal
}

func (s *Store) deliveryFee() int {
	if len(s.items) > 0 {
		return DeliveryCost
	}
	return 0
}

func (s *Store) persist(ctx context.Context) error {
	if err := s.store.Set(ctx, storage.SlotCart, s.items); err != nil {
		s.logger.Error("Failed to persist cart", zap.Error(err))
		return fmt.Errorf("failed to persist cart: %w", err)
	}
	return nil
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
