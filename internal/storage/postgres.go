package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// PostgresStore persists slots as rows in the kv_slots table, one jsonb value
// per slot. Writes upsert the whole document, keeping the replace-on-write
// contract.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore wraps an already connected database. The kv_slots table is
// created by the goose migrations.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (p *PostgresStore) Get(ctx context.Context, slot string, dest interface{}) error {
	query := `SELECT value FROM kv_slots WHERE slot = $1`

	var raw []byte
	err := p.db.QueryRowContext(ctx, query, slot).Scan(&raw)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to read slot %q: %w", slot, err)
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("failed to decode slot %q: %w", slot, err)
	}
	return nil
}

func (p *PostgresStore) Set(ctx context.Context, slot string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode slot %q: %w", slot, err)
	}

	query := `
		INSERT INTO kv_slots (slot, value, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (slot) DO UPDATE SET value = $2, updated_at = $3
	`

	if _, err := p.db.ExecContext(ctx, query, slot, raw, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to write slot %q: %w", slot, err)
	}
	return nil
}

func (p *PostgresStore) Delete(ctx context.Context, slot string) error {
	query := `DELETE FROM kv_slots WHERE slot = $1`

	if _, err := p.db.ExecContext(ctx, query, slot); err != nil {
		return fmt.Errorf("failed to delete slot %q: %w", slot, err)
	}
	return nil
}

// Close is a no-op; the database connection is owned by the server.
func (p *PostgresStore) Close() error {
	return nil
}
