// Package checkout assembles immutable orders from the cart, the shipping
// form and the session, and owns the lastOrder slot read by the confirmation
// view.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"funky-fusion/internal/account"
	"funky-fusion/internal/cart"
	"funky-fusion/internal/domain"
	"funky-fusion/internal/storage"
	"funky-fusion/internal/validation"

	"go.uber.org/zap"
)

var (
	// ErrEmptyCart is returned when checkout is attempted with nothing in
	// the cart.
	ErrEmptyCart = errors.New("checkout: cart is empty")

	// ErrNoLastOrder is returned when the confirmation view asks for an
	// order but none was placed; the caller redirects home.
	ErrNoLastOrder = errors.New("checkout: no completed order")
)

// ValidationError carries the per-field messages for a rejected shipping
// form. No state is mutated when it is returned.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("checkout: invalid shipping details (%d fields)", len(e.Fields))
}

// Service coordinates order placement across the cart and account stores.
type Service struct {
	store   storage.Store
	cart    *cart.Store
	account *account.Store
	logger  *zap.Logger

	// now and draw are swappable for tests.
	now  func() time.Time
	draw func() int
}

// NewService creates a checkout service over the shared slot store.
func NewService(store storage.Store, cartStore *cart.Store, accountStore *account.Store, logger *zap.Logger) *Service {
	return &Service{
		store:   store,
		cart:    cartStore,
		account: accountStore,
		logger:  logger,
		now:     time.Now,
		draw:    func() int { return 100000 + rand.Intn(900000) },
	}
}

// PlaceOrder validates the shipping form, snapshots the cart and totals,
// persists the order and clears the cart. The returned order is what the
// confirmation view will read back from the lastOrder slot. A storage
// failure surfaces as an error and leaves the cart intact so the shopper can
// retry.
func (s *Service) PlaceOrder(ctx context.Context, form domain.ShippingDetails) (domain.Order, error) {
	if fields := validation.ShippingDetailsErrors(form); len(fields) > 0 {
		return domain.Order{}, &ValidationError{Fields: fields}
	}

	items := s.cart.Items()
	if len(items) == 0 {
		return domain.Order{}, ErrEmptyCart
	}

	// One draw serves both id and order number.
	number := fmt.Sprintf("FF-%06d", s.draw())
	placedAt := s.now().UTC()

	order := domain.Order{
		ID:              number,
		OrderNumber:     number,
		Date:            placedAt,
		OrderDate:       placedAt,
		Items:           items,
		Subtotal:        s.cart.Subtotal(),
		DeliveryCost:    s.cart.DeliveryFee(),
		Total:           s.cart.Total(),
		Status:          domain.OrderStatusProcessing,
		ShippingDetails: form,
	}

	if err := s.store.Set(ctx, storage.SlotLastOrder, order); err != nil {
		return domain.Order{}, fmt.Errorf("failed to persist order: %w", err)
	}

	if _, authenticated := s.account.CurrentUser(); authenticated {
		if err := s.account.AddOrder(ctx, order); err != nil {
			return domain.Order{}, err
		}
	} else {
		if err := s.account.RecordGuestOrder(ctx, order); err != nil {
			return domain.Order{}, err
		}
	}

	if err := s.cart.Clear(ctx); err != nil {
		return domain.Order{}, err
	}

	s.logger.Info("Order placed",
		zap.String("order_number", order.OrderNumber),
		zap.Int("total", order.Total),
	)

	return order, nil
}

// LastOrder reads back the most recently completed order for the
// confirmation view.
func (s *Service) LastOrder(ctx context.Context) (domain.Order, error) {
	var order domain.Order
	if !storage.Load(ctx, s.store, storage.SlotLastOrder, &order, s.logger) || order.OrderNumber == "" {
		return domain.Order{}, ErrNoLastOrder
	}
	return order, nil
}
