// Package cache stores rendered figures keyed by a digest of the graph
// that produced them.
//
// Rendering is deterministic, so a graph's serialized form fully determines
// its figure: the cache key is the SHA-256 of the request payload and an
// entry never has to be invalidated, only expired. Three backends share one
// interface: a file cache for the CLI, a redis cache for the server, and a
// null cache that disables caching entirely.
package cache

import (
	"context"
	"time"
)

// Cache stores opaque byte values under string keys with an optional TTL.
// A zero TTL stores the entry without expiration.
type Cache interface {
	// Get returns the cached value and whether the key was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores the value under the key.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes the key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}
