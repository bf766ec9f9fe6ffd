package cache

import (
	"context"
	"time"

	"github.com/assettrack/backend/internal/domain/shared"
)

// IdempotencyStore remembers processed event IDs in a KeySet
type IdempotencyStore struct {
	set KeySet
}

// NewIdempotencyStore wraps set
func NewIdempotencyStore(set KeySet) *IdempotencyStore {
	return &IdempotencyStore{set: set}
}

// MarkProcessed returns true the first time eventID is seen within ttl
func (s *IdempotencyStore) MarkProcessed(ctx context.Context, eventID string, ttl time.Duration) (bool, error) {
	return s.set.Add(ctx, eventID, ttl)
}

// IsProcessed checks if an event has already been processed
func (s *IdempotencyStore) IsProcessed(ctx context.Context, eventID string) (bool, error) {
	return s.set.Contains(ctx, eventID)
}

// Close closes the underlying set
func (s *IdempotencyStore) Close() error {
	return s.set.Close()
}

var _ shared.IdempotencyStore = (*IdempotencyStore)(nil)
