package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/assettrack/backend/internal/infrastructure/config"
	"github.com/redis/go-redis/v9"
)

// Connect opens a Redis client and verifies it with a PING
func Connect(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     10,
		MinIdleConns: 2,
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}

// RedisKeySet stores keys with SET NX EX under a prefix.
// The client is shared, so Close leaves it open.
type RedisKeySet struct {
	client    *redis.Client
	keyPrefix string
}

// NewRedisKeySet creates a key set on an existing client
func NewRedisKeySet(client *redis.Client, keyPrefix string) *RedisKeySet {
	return &RedisKeySet{client: client, keyPrefix: keyPrefix}
}

// Add sets the key only if it does not exist yet
func (s *RedisKeySet) Add(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	ok, err := s.client.SetNX(ctx, s.keyPrefix+key, "1", ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to add key %q: %w", key, err)
	}
	return ok, nil
}

// Contains checks whether the key exists
func (s *RedisKeySet) Contains(ctx context.Context, key string) (bool, error) {
	n, err := s.client.Exists(ctx, s.keyPrefix+key).Result()
	if err != nil {
		return false, fmt.Errorf("failed to look up key %q: %w", key, err)
	}
	return n > 0, nil
}

// Close is a no-op; the owner of the client closes it
func (s *RedisKeySet) Close() error {
	return nil
}

var _ KeySet = (*RedisKeySet)(nil)
