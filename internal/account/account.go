// Package account manages the session: the current user, their order history
// projection, and the durable users and allOrders tables. The session state
// machine is anonymous -> authenticated (login or signup) -> anonymous
// (logout), with no token or expiry concept; an authenticated session
// persists across restarts until an explicit logout.
package account

import (
	"context"
	"fmt"
	"sync"

	"funky-fusion/internal/domain"
	"funky-fusion/internal/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// BcryptCost is the cost factor used when hashing signup passwords.
const BcryptCost = 10

// Store holds the session and mediates all access to the users and allOrders
// tables. Email uniqueness is the only integrity constraint on the users
// table. The mutex serializes whole operations, so a login racing a checkout
// cannot interleave their table read-modify-write cycles.
type Store struct {
	store  storage.Store
	logger *zap.Logger

	mu     sync.Mutex
	user   *domain.User
	orders []domain.Order
}

// NewStore restores the persisted session. A missing or unreadable user slot
// leaves the session anonymous.
func NewStore(ctx context.Context, store storage.Store, logger *zap.Logger) *Store {
	s := &Store{
		store:  store,
		logger: logger,
		orders: []domain.Order{},
	}

	var user domain.User
	if storage.Load(ctx, store, storage.SlotUser, &user, logger) && user.ID != "" {
		s.user = &user

		var orders []domain.Order
		if storage.Load(ctx, store, storage.SlotOrders, &orders, logger) && orders != nil {
			s.orders = orders
		}
	}

	return s
}

// CurrentUser returns the authenticated user, if any.
func (s *Store) CurrentUser() (domain.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return domain.User{}, false
	}
	return *s.user, true
}

// Orders returns the authenticated user's order history.
func (s *Store) Orders() []domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ordersCopy()
}

func (s *Store) ordersCopy() []domain.Order {
	orders := make([]domain.Order, len(s.orders))
	copy(orders, s.orders)
	return orders
}

// OrderByNumber finds an order in the current history by its public order
// number. Not found is a normal outcome.
func (s *Store) OrderByNumber(number string) (domain.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, o := range s.orders {
		if o.OrderNumber == number {
			return o, true
		}
	}
	return domain.Order{}, false
}

// Login authenticates against the users table. On success the session user is
// set (credential stripped) and the order history is rebuilt from allOrders
// by matching shipping email. A failed login returns false and leaves all
// state untouched.
func (s *Store) Login(ctx context.Context, email, password string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var users []domain.Credential
	storage.Load(ctx, s.store, storage.SlotUsers, &users, s.logger)

	for _, cred := range users {
		if cred.Email != email {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)) != nil {
			continue
		}

		user := cred.User
		orders := s.ordersForEmail(ctx, email)

		if err := s.persistSession(ctx, &user, orders); err != nil {
			return false, err
		}

		s.user = &user
		s.orders = orders
		s.logger.Info("User logged in", zap.String("user_id", user.ID))
		return true, nil
	}

	return false, nil
}

// Signup registers a new user and logs them in. It returns false without
// touching the users table when the email is already registered; the match is
// a case-sensitive exact comparison.
func (s *Store) Signup(ctx context.Context, name, email, password string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var users []domain.Credential
	storage.Load(ctx, s.store, storage.SlotUsers, &users, s.logger)

	for _, cred := range users {
		if cred.Email == email {
			return false, nil
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return false, fmt.Errorf("failed to hash password: %w", err)
	}

	cred := domain.Credential{
		User: domain.User{
			ID:    uuid.New().String(),
			Name:  name,
			Email: email,
		},
		PasswordHash: string(hash),
	}

	users = append(users, cred)
	if err := s.store.Set(ctx, storage.SlotUsers, users); err != nil {
		return false, fmt.Errorf("failed to persist users: %w", err)
	}

	user := cred.User
	if err := s.persistSession(ctx, &user, []domain.Order{}); err != nil {
		return false, err
	}

	s.user = &user
	s.orders = []domain.Order{}
	s.logger.Info("User signed up", zap.String("user_id", user.ID))
	return true, nil
}

// Logout clears the session. The durable users and allOrders tables are not
// touched.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Delete(ctx, storage.SlotUser); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	if err := s.store.Set(ctx, storage.SlotOrders, []domain.Order{}); err != nil {
		return fmt.Errorf("failed to clear order history: %w", err)
	}

	s.user = nil
	s.orders = []domain.Order{}
	return nil
}

// UpdateProfile merges the patch into the session user and the matching
// users-table record, found by id. It returns false when no user is
// authenticated.
func (s *Store) UpdateProfile(ctx context.Context, patch domain.ProfilePatch) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return false, nil
	}

	updated := patch.Apply(*s.user)

	var users []domain.Credential
	storage.Load(ctx, s.store, storage.SlotUsers, &users, s.logger)
	for i := range users {
		if users[i].ID == s.user.ID {
			users[i].User = patch.Apply(users[i].User)
		}
	}

	if err := s.store.Set(ctx, storage.SlotUsers, users); err != nil {
		return false, fmt.Errorf("failed to persist users: %w", err)
	}
	if err := s.store.Set(ctx, storage.SlotUser, updated); err != nil {
		return false, fmt.Errorf("failed to persist session: %w", err)
	}

	s.user = &updated
	return true, nil
}

// AddOrder appends an order to the session history and to the global
// allOrders table. Duplicate order ids are not checked.
func (s *Store) AddOrder(ctx context.Context, order domain.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var all []domain.Order
	storage.Load(ctx, s.store, storage.SlotAllOrders, &all, s.logger)
	all = append(all, order)

	if err := s.store.Set(ctx, storage.SlotAllOrders, all); err != nil {
		return fmt.Errorf("failed to persist order table: %w", err)
	}

	orders := append(s.ordersCopy(), order)
	if err := s.store.Set(ctx, storage.SlotOrders, orders); err != nil {
		return fmt.Errorf("failed to persist order history: %w", err)
	}

	s.orders = orders
	return nil
}

// RecordGuestOrder appends an order only to the global allOrders table, for
// checkouts placed without a session. The order is picked up later if its
// shipping email ever logs in.
func (s *Store) RecordGuestOrder(ctx context.Context, order domain.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var all []domain.Order
	storage.Load(ctx, s.store, storage.SlotAllOrders, &all, s.logger)
	all = append(all, order)

	if err := s.store.Set(ctx, storage.SlotAllOrders, all); err != nil {
		return fmt.Errorf("failed to persist order table: %w", err)
	}
	return nil
}

func (s *Store) ordersForEmail(ctx context.Context, email string) []domain.Order {
	var all []domain.Order
	storage.Load(ctx, s.store, storage.SlotAllOrders, &all, s.logger)

	orders := []domain.Order{}
	for _, o := range all {
		if o.ShippingDetails.Email == email {
			orders = append(orders, o)
		}
	}
	return orders
}

func (s *Store) persistSession(ctx context.Context, user *domain.User, orders []domain.Order) error {
	if err := s.store.Set(ctx, storage.SlotUser, user); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}
	if err := s.store.Set(ctx, storage.SlotOrders, orders); err != nil {
		return fmt.Errorf("failed to persist order history: %w", err)
	}
	return nil
}
