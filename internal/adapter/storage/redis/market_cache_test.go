package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarketCache_SetAndGet(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	cache := NewMarketCache(client)
	ctx := context.Background()

	key := "limit=100"
	value := []byte(`[{"kind":"provider","virtual_id":"provider-grid-east"}]`)

	// Get before set => nil
	result, err := cache.Get(ctx, key)
	assert.NoError(t, err)
	assert.Nil(t, result)

	// Set
	err = cache.Set(ctx, key, value, 2*time.Second)
	require.NoError(t, err)

	// Get after set
	result, err = cache.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, value, result)
}

func TestMarketCache_TTLExpiry(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	cache := NewMarketCache(client)
	ctx := context.Background()

	err := cache.Set(ctx, "limit=50", []byte(`[]`), 1*time.Second)
	require.NoError(t, err)

	// Fast-forward time in miniredis
	s.FastForward(2 * time.Second)

	result, err := cache.Get(ctx, "limit=50")
	assert.NoError(t, err)
	assert.Nil(t, result, "expired snapshot should return nil")
}

func TestMarketCache_KeysAreNamespaced(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	cache := NewMarketCache(client)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "limit=100", []byte(`[]`), time.Minute))
	assert.True(t, s.Exists("market:snapshot:limit=100"))
}
