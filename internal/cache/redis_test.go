package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkoval/fifa-rivals/pkg/logger"
)

func newTestCache(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewRedisCacheFromClient(client, logger.Nop()), mr
}

func TestRedisCache_SetGet(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, KeyFullStats, `{"totalMatches":3}`, time.Minute))

	val, err := c.Get(ctx, KeyFullStats)
	require.NoError(t, err)
	assert.Equal(t, `{"totalMatches":3}`, val)
}

func TestRedisCache_GetMissing(t *testing.T) {
	c, _ := newTestCache(t)

	val, err := c.Get(context.Background(), "nope")
	require.NoError(t, err)
	assert.Equal(t, "", val)
}

func TestRedisCache_Del(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, KeyFullStats, "cached", time.Minute))
	require.NoError(t, c.Del(ctx, KeyFullStats))

	val, err := c.Get(ctx, KeyFullStats)
	require.NoError(t, err)
	assert.Equal(t, "", val)

	// Deleting nothing is a no-op.
	require.NoError(t, c.Del(ctx))
}

func TestRedisCache_TTLExpiry(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, KeyFullStats, "cached", time.Minute))
	mr.FastForward(2 * time.Minute)

	val, err := c.Get(ctx, KeyFullStats)
	require.NoError(t, err)
	assert.Equal(t, "", val)
}
