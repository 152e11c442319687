package config

import (
	"context"
	"fmt"

	"margent-backend/internal/store"
)

// NewStore opens the key-value store selected by STORE_DRIVER. The
// returned closer releases the underlying connection.
func NewStore(cfg *Config) (store.Store, func() error, error) {
	switch cfg.StoreDriver {
	case "redis":
		client, err := NewRedisClient(cfg.RedisURL)
		if err != nil {
			return nil, nil, fmt.Errorf("connect redis: %w", err)
		}
		return store.NewRedisStore(client, cfg.StorePrefix), client.Close, nil

	case "postgres":
		db, err := NewPostgresDB(cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("connect postgres: %w", err)
		}
		if err := store.EnsureSchema(context.Background(), db); err != nil {
			db.Close()
			return nil, nil, err
		}
		return store.NewPostgresStore(db), db.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}
