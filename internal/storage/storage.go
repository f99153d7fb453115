// Package storage provides the durable key-value slot store backing the
// storefront. Each slot holds one JSON document and every write replaces the
// whole value, mirroring the original local-storage layout.
package storage

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

// Slot names. The full backend state is exactly these six documents.
const (
	SlotUser      = "user"      // current authenticated user, absent when anonymous
	SlotCart      = "cart"      // active cart items
	SlotOrders    = "orders"    // current user's order history (projection, rebuilt on login)
	SlotUsers     = "users"     // all registered credentials, email unique
	SlotAllOrders = "allOrders" // every order ever placed
	SlotLastOrder = "lastOrder" // most recently completed order, read by the confirmation view
)

var (
	// ErrNotFound is returned by Get when a slot holds no value.
	ErrNotFound = errors.New("storage: slot not found")
)

// Store is a durable slot store with JSON values. Set always replaces the
// whole slot; there is no partial write.
type Store interface {
	Get(ctx context.Context, slot string, dest interface{}) error
	Set(ctx context.Context, slot string, value interface{}) error
	Delete(ctx context.Context, slot string) error
	Close() error
}

// Load reads a slot into dest, treating a missing or malformed value as
// absent: dest is left at its zero value, the problem is logged, and false is
// returned. Read paths must fail soft rather than crash a view.
func Load(ctx context.Context, s Store, slot string, dest interface{}, logger *zap.Logger) bool {
	err := s.Get(ctx, slot, dest)
	if err == nil {
		return true
	}
	if !errors.Is(err, ErrNotFound) {
		logger.Warn("Discarding unreadable slot value",
			zap.String("slot", slot),
			zap.Error(err),
		)
	}
	return false
}
