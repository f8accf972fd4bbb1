// Package session implements the persisted session store: a small key-value
// table surviving restarts. It holds exactly two keys today, the auth token
// and the serialized cart.
package session

import "context"

// Persisted keys.
const (
	KeyToken = "token"
	KeyCart  = "cart"
)

// Store is the persisted session store. Get returns nil (no error) for an
// absent key.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
