package cache

import (
	"context"
	"time"
)

// KeySet records keys that expire after a TTL.
// It backs event idempotency and access token revocation.
type KeySet interface {
	// Add inserts key if absent. It returns false when the key was already present.
	Add(ctx context.Context, key string, ttl time.Duration) (bool, error)

	// Contains reports whether key is present and not expired
	Contains(ctx context.Context, key string) (bool, error)

	// Close releases resources owned by the set
	Close() error
}
