package store

import "context"

// Store is a key-value store of named, opaque JSON blobs. One blob per
// collection; the store performs no schema validation and last write wins.
type Store interface {
	// Get returns the blob stored under key, domain.ErrNotFound when the
	// key is absent, or a wrapped domain.ErrStorage on medium failure.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set replaces the blob stored under key. Failures are reported as a
	// wrapped domain.ErrStorage and never panic.
	Set(ctx context.Context, key string, value []byte) error
}
