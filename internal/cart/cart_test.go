package cart

import (
	"context"
	"sync"
	"testing"

	"funky-fusion/internal/domain"
	"funky-fusion/internal/storage"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestStore(t *testing.T) (*Store, *storage.MemoryStore) {
	t.Helper()
	mem := storage.NewMemoryStore()
	return NewStore(context.Background(), mem, zap.NewNop()), mem
}

func testItem(id, price, stock int) domain.CartItem {
	return domain.CartItem{
		ID:    id,
		Name:  "Test Item",
		Price: price,
		Image: "/images/test.jpeg",
		Stock: stock,
	}
}

func TestProperty_RepeatedAddClampsToStock(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("n adds of one product yield quantity min(n, stock) and a single entry", prop.ForAll(
		func(stock int, adds int) bool {
			s, _ := newTestStore(t)
			ctx := context.Background()

			for i := 0; i < adds; i++ {
				if err := s.Add(ctx, testItem(101, 1200, stock)); err != nil {
					return false
				}
			}

			items := s.Items()
			if len(items) != 1 {
				return false
			}

			want := adds
			if stock < adds {
				want = stock
			}
			return items[0].Quantity == want
		},
		gen.IntRange(1, 20),
		gen.IntRange(1, 40),
	))

	properties.Property("the cart never holds two entries for the same product id", prop.ForAll(
		func(ids []int) bool {
			s, _ := newTestStore(t)
			ctx := context.Background()

			for _, id := range ids {
				if err := s.Add(ctx, testItem(id, 500, 10)); err != nil {
					return false
				}
			}

			seen := map[int]bool{}
			for _, item := range s.Items() {
				if seen[item.ID] {
					return false
				}
				seen[item.ID] = true
			}
			return true
		},
		gen.SliceOf(gen.IntRange(100, 110)),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestProperty_UpdateQuantityClampsToStock(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("update always yields min(q, stock)", prop.ForAll(
		func(stock int, quantity int) bool {
			s, _ := newTestStore(t)
			ctx := context.Background()

			if err := s.Add(ctx, testItem(205, 800, stock)); err != nil {
				return false
			}
			if err := s.UpdateQuantity(ctx, 205, quantity); err != nil {
				return false
			}

			want := quantity
			if stock < quantity {
				want = stock
			}
			return s.Items()[0].Quantity == want
		},
		gen.IntRange(1, 30),
		gen.IntRange(1, 60),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestProperty_TotalsIdentity(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("total equals subtotal plus delivery fee for every cart state", prop.ForAll(
		func(prices []int) bool {
			s, _ := newTestStore(t)
			ctx := context.Background()

			for i, price := range prices {
				if err := s.Add(ctx, testItem(100+i, price, 5)); err != nil {
					return false
				}
			}

			if s.Total() != s.Subtotal()+s.DeliveryFee() {
				return false
			}
			if len(prices) == 0 {
				return s.DeliveryFee() == 0
			}
			return s.DeliveryFee() == DeliveryCost
		},
		gen.SliceOf(gen.IntRange(50, 2000)),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestAddIgnoresIncomingQuantityAndStock(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	// A new entry starts at 1 no matter what quantity the input carries.
	item := testItem(101, 1200, 3)
	item.Quantity = 99
	require.NoError(t, s.Add(ctx, item))
	assert.Equal(t, 1, s.Items()[0].Quantity)

	// Repeat adds clamp against the stock recorded at first add, not the
	// stock on the incoming item.
	bigger := testItem(101, 1200, 50)
	for i := 0; i < 10; i++ {
		require.NoError(t, s.Add(ctx, bigger))
	}
	assert.Equal(t, 3, s.Items()[0].Quantity)
	assert.Equal(t, 3, s.Items()[0].Stock)
}

func TestRemove(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Add(ctx, testItem(101, 1200, 5)))
	require.NoError(t, s.Add(ctx, testItem(201, 850, 5)))

	require.NoError(t, s.Remove(ctx, 101))
	require.Len(t, s.Items(), 1)
	assert.Equal(t, 201, s.Items()[0].ID)

	// Removing an absent id is a no-op.
	require.NoError(t, s.Remove(ctx, 999))
	assert.Len(t, s.Items(), 1)
}

func TestUpdateQuantityAbsentIDIsNoOp(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Add(ctx, testItem(101, 1200, 5)))
	require.NoError(t, s.UpdateQuantity(ctx, 999, 3))

	assert.Equal(t, 1, s.Items()[0].Quantity)
}

func TestCartPersistsAcrossRestarts(t *testing.T) {
	mem := storage.NewMemoryStore()
	ctx := context.Background()

	s := NewStore(ctx, mem, zap.NewNop())
	require.NoError(t, s.Add(ctx, testItem(101, 1200, 5)))
	require.NoError(t, s.Add(ctx, testItem(101, 1200, 5)))
	require.NoError(t, s.Add(ctx, testItem(301, 1400, 2)))

	reloaded := NewStore(ctx, mem, zap.NewNop())
	require.Len(t, reloaded.Items(), 2)
	assert.Equal(t, 2, reloaded.Items()[0].Quantity)
	assert.Equal(t, reloaded.Subtotal()+DeliveryCost, reloaded.Total())
}

func TestMalformedSnapshotFallsBackToEmptyCart(t *testing.T) {
	mem := storage.NewMemoryStore()
	mem.SetRaw(storage.SlotCart, []byte(`{"definitely": "not a cart"`))

	s := NewStore(context.Background(), mem, zap.NewNop())
	assert.Empty(t, s.Items())
	assert.Equal(t, 0, s.Total())
}

func TestClear(t *testing.T) {
	s, mem := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Add(ctx, testItem(101, 1200, 5)))
	require.NoError(t, s.Clear(ctx))

	assert.Empty(t, s.Items())
	assert.Equal(t, 0, s.DeliveryFee())

	// The cleared snapshot is persisted too.
	var saved []domain.CartItem
	require.NoError(t, mem.Get(ctx, storage.SlotCart, &saved))
	assert.Empty(t, saved)
}

func TestConcurrentMutationsStaySerialized(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	const (
		goroutines   = 8
		addsPerGoro  = 5
		stockCeiling = 100
	)

	// Handlers run on separate goroutines; adds racing reads must neither
	// corrupt the slice nor produce duplicate entries.
	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < addsPerGoro; i++ {
				if err := s.Add(ctx, testItem(101, 1200, stockCeiling)); err != nil {
					t.Error(err)
					return
				}
				s.Total()
				s.Items()
			}
		}()
	}
	wg.Wait()

	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, goroutines*addsPerGoro, items[0].Quantity)
	assert.Equal(t, items[0].Quantity*1200+DeliveryCost, s.Total())
}
