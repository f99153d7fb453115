package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// MemoryStore is an in-process Store. It round-trips values through JSON so
// its behavior matches the durable backends, including surfacing malformed
// payloads seeded by tests.
type MemoryStore struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{slots: make(map[string][]byte)}
}

func (m *MemoryStore) Get(ctx context.Context, slot string, dest interface{}) error {
	m.mu.RLock()
	raw, ok := m.slots[slot]
	m.mu.RUnlock()

	if !ok {
		return ErrNotFound
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("failed to decode slot %q: %w", slot, err)
	}
	return nil
}

func (m *MemoryStore) Set(ctx context.Context, slot string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode slot %q: %w", slot, err)
	}

	m.mu.Lock()
	m.slots[slot] = raw
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Delete(ctx context.Context, slot string) error {
	m.mu.Lock()
	delete(m.slots, slot)
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Close() error {
	return nil
}

// SetRaw stores an already encoded payload without validation. Tests use it
// to simulate corrupted slot data.
func (m *MemoryStore) SetRaw(slot string, raw []byte) {
	m.mu.Lock()
	m.slots[slot] = raw
	m.mu.Unlock()
}
