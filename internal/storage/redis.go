package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore persists slots as JSON strings in Redis. Keys are prefixed so a
// shared instance can host other workloads.
type RedisStore struct {
	client    *redis.Client
	keyPrefix string
}

// NewRedisStore connects to Redis and verifies the connection before
// returning the store.
func NewRedisStore(addr, password string, db int, keyPrefix string) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisStore{client: client, keyPrefix: keyPrefix}, nil
}

// NewRedisStoreWithClient wraps an existing client. Tests use this with
// miniredis.
func NewRedisStoreWithClient(client *redis.Client, keyPrefix string) *RedisStore {
	return &RedisStore{client: client, keyPrefix: keyPrefix}
}

func (r *RedisStore) key(slot string) string {
	return fmt.Sprintf("%s:%s", r.keyPrefix, slot)
}

func (r *RedisStore) Get(ctx context.Context, slot string, dest interface{}) error {
	raw, err := r.client.Get(ctx, r.key(slot)).Result()
	if err == redis.Nil {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to read slot %q: %w", slot, err)
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return fmt.Errorf("failed to decode slot %q: %w", slot, err)
	}
	return nil
}

func (r *RedisStore) Set(ctx context.Context, slot string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode slot %q: %w", slot, err)
	}
	if err := r.client.Set(ctx, r.key(slot), raw, 0).Err(); err != nil {
		return fmt.Errorf("failed to write slot %q: %w", slot, err)
	}
	return nil
}

func (r *RedisStore) Delete(ctx context.Context, slot string) error {
	if err := r.client.Del(ctx, r.key(slot)).Err(); err != nil {
		return fmt.Errorf("failed to delete slot %q: %w", slot, err)
	}
	return nil
}

func (r *RedisStore) Close() error {
	return r.client.Close()
}
