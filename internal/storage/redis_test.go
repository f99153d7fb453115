package storage

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRedisStoreWithClient(client, "funkyfusion"), mr
}

func TestRedisStoreRoundTrip(t *testing.T) {
	store, mr := newTestRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, SlotUser, map[string]string{"id": "u1", "email": "jane@example.com"}))

	var got map[string]string
	require.NoError(t, store.Get(ctx, SlotUser, &got))
	assert.Equal(t, "jane@example.com", got["email"])

	// Values land under the configured key prefix.
	assert.True(t, mr.Exists("funkyfusion:user"))
}

func TestRedisStoreMissingSlot(t *testing.T) {
	store, _ := newTestRedisStore(t)

	var dest map[string]string
	err := store.Get(context.Background(), SlotCart, &dest)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisStoreDelete(t *testing.T) {
	store, mr := newTestRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, SlotLastOrder, map[string]int{"total": 3350}))
	require.NoError(t, store.Delete(ctx, SlotLastOrder))

	assert.False(t, mr.Exists("funkyfusion:lastOrder"))

	var dest map[string]int
	assert.ErrorIs(t, store.Get(ctx, SlotLastOrder, &dest), ErrNotFound)
}

func TestRedisStoreMalformedPayload(t *testing.T) {
	store, mr := newTestRedisStore(t)

	require.NoError(t, mr.Set("funkyfusion:orders", "not json"))

	var dest []string
	err := store.Get(context.Background(), SlotOrders, &dest)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}
