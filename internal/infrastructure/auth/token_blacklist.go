package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/assettrack/backend/internal/infrastructure/cache"
)

// TokenBlacklist revokes access tokens before they expire (on logout)
type TokenBlacklist interface {
	// Revoke blacklists a token's JTI; ttl should be the token's remaining lifetime
	Revoke(ctx context.Context, jti string, ttl time.Duration) error

	// IsRevoked checks if a token's JTI is blacklisted
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// KeySetBlacklist stores revoked JTIs in a cache.KeySet (Redis or in-memory)
type KeySetBlacklist struct {
	set cache.KeySet
}

// NewTokenBlacklist creates a blacklist on set
func NewTokenBlacklist(set cache.KeySet) *KeySetBlacklist {
	return &KeySetBlacklist{set: set}
}

// NewInMemoryTokenBlacklist creates a process-local blacklist
func NewInMemoryTokenBlacklist() *KeySetBlacklist {
	return NewTokenBlacklist(cache.NewMemoryKeySet())
}

// Revoke adds the JTI. A token that has already expired needs no entry.
func (b *KeySetBlacklist) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if jti == "" || ttl <= 0 {
		return nil
	}
	if _, err := b.set.Add(ctx, jti, ttl); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

// IsRevoked checks if a token's JTI is in the blacklist
func (b *KeySetBlacklist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	revoked, err := b.set.Contains(ctx, jti)
	if err != nil {
		return false, fmt.Errorf("failed to check token blacklist: %w", err)
	}
	return revoked, nil
}

// Close releases the underlying set
func (b *KeySetBlacklist) Close() error {
	return b.set.Close()
}

var _ TokenBlacklist = (*KeySetBlacklist)(nil)
