package cache

import (
	"context"
	"fmt"

	"github.com/assettrack/backend/internal/infrastructure/config"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Key prefixes for the sets the server creates
const (
	PrefixEventIdempotency = "assettrack:event:processed:"
	PrefixRevokedTokens    = "assettrack:token:revoked:"
)

// Backend hands out key sets on Redis when it is reachable and in memory otherwise
type Backend struct {
	client                *redis.Client
	logger                *zap.Logger
	allowInMemoryFallback bool
}

// BackendOption is a functional option for configuring the backend
type BackendOption func(*Backend)

// WithLogger sets the logger for the backend
func WithLogger(logger *zap.Logger) BackendOption {
	return func(b *Backend) {
		b.logger = logger
	}
}

// WithInMemoryFallback controls whether an unreachable Redis is tolerated (default true)
func WithInMemoryFallback(allow bool) BackendOption {
	return func(b *Backend) {
		b.allowInMemoryFallback = allow
	}
}

// OpenBackend connects to Redis, falling back to memory when allowed
func OpenBackend(ctx context.Context, cfg config.RedisConfig, opts ...BackendOption) (*Backend, error) {
	b := &Backend{
		logger:                zap.NewNop(),
		allowInMemoryFallback: true,
	}
	for _, opt := range opts {
		opt(b)
	}

	client, err := Connect(ctx, cfg)
	if err == nil {
		b.client = client
		b.logger.Info("using Redis key sets", zap.String("addr", client.Options().Addr))
		return b, nil
	}

	if !b.allowInMemoryFallback {
		return nil, fmt.Errorf("redis required but unavailable: %w", err)
	}

	b.logger.Warn("Redis unavailable, falling back to in-memory key sets; "+
		"revoked tokens and processed events are not shared between instances",
		zap.Error(err),
	)
	return b, nil
}

// NewInMemoryBackend returns a backend that never touches Redis
func NewInMemoryBackend() *Backend {
	return &Backend{logger: zap.NewNop()}
}

// UsesRedis reports whether sets are backed by Redis
func (b *Backend) UsesRedis() bool {
	return b.client != nil
}

// Client returns the Redis client, nil in memory mode
func (b *Backend) Client() *redis.Client {
	return b.client
}

// KeySet returns a set whose keys live under prefix
func (b *Backend) KeySet(prefix string) KeySet {
	if b.client != nil {
		return NewRedisKeySet(b.client, prefix)
	}
	return NewMemoryKeySet()
}

// Close closes the Redis client if one is open
func (b *Backend) Close() error {
	if b.client == nil {
		return nil
	}
	return b.client.Close()
}
