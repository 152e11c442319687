package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"margent-backend/internal/domain"
)

type postgresStore struct {
	db *sqlx.DB
}

// NewPostgresStore returns a Store backed by a single kv_store table in
// Postgres. Each blob is one jsonb row; a Set is a single upsert, so the
// store-level write stays a one-blob swap.
func NewPostgresStore(db *sqlx.DB) Store {
	return &postgresStore{db: db}
}

// EnsureSchema creates the kv_store table when it does not exist yet.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS kv_store (
			key TEXT PRIMARY KEY,
			value JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`

	if _, err := db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("%w: create kv_store: %v", domain.ErrStorage, err)
	}
	return nil
}

func (s *postgresStore) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	query := `SELECT value FROM kv_store WHERE key = $1`

	err := s.db.GetContext(ctx, &value, query, key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("key %q: %w", key, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: postgres get %q: %v", domain.ErrStorage, key, err)
	}
	return value, nil
}

func (s *postgresStore) Set(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`

	if _, err := s.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("%w: postgres set %q: %v", domain.ErrStorage, key, err)
	}
	return nil
}
