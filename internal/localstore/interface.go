// Package localstore persists PromptLab state as a flat key/value table:
// JSON-encoded values under fixed string keys. There is no locking across
// processes; a single active writer is assumed.
package localstore

import "context"

// Repository is the key/value surface the stores build on.
type Repository interface {
	// Get returns the value stored under key, or common.ErrNotFound when
	// the key has no value.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
