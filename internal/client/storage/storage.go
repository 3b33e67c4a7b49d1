// Package storage is the client's durable key-value store, the terminal
// analog of the browser's localStorage. It holds exactly two kinds of state:
// the session token and the theme preference.
package storage

import "context"

// Well-known keys. Everything else in the store is unused.
const (
	KeyToken    = "token"
	KeyDarkMode = "dark_mode"
)

// Repository is a small durable key-value store.
//
// Contract:
//   - Get returns (nil, nil) for a missing key, never an error.
//   - Set upserts.
//   - Delete and Clear are idempotent.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
