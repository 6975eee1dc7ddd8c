package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// MarketCache implements ports.MarketCache using Redis. Snapshots are
// stored with a short TTL; staleness is bounded by the TTL and nothing
// ever invalidates entries explicitly.
type MarketCache struct {
	client *goredis.Client
	prefix string
}

// NewMarketCache creates a new Redis-backed market snapshot cache.
func NewMarketCache(client *goredis.Client) *MarketCache {
	return &MarketCache{
		client: client,
		prefix: "market:snapshot:",
	}
}

// Get retrieves a cached snapshot payload by key.
// Returns nil, nil if the key does not exist.
func (c *MarketCache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis market get: %w", err)
	}
	return val, nil
}

// Set stores a snapshot payload with TTL.
func (c *MarketCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := c.client.Set(ctx, c.prefix+key, value, ttl).Err()
	if err != nil {
		return fmt.Errorf("redis market set: %w", err)
	}
	return nil
}
