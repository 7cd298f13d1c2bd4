package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := NewRedisClient(RedisOptions{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisCache(client, time.Minute), mr
}

func TestRedisCache(t *testing.T) {
	ctx := context.Background()
	c, mr := newTestCache(t)
	require.NoError(t, c.Ping(ctx))

	var categories []string
	ok, err := c.Get(ctx, KeyCategories, &categories)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, KeyCategories, []string{"mobile", "web"}))
	assert.True(t, mr.Exists("catalog:categories"))
	assert.Equal(t, time.Minute, mr.TTL("catalog:categories"))

	ok, err = c.Get(ctx, KeyCategories, &categories)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{"mobile", "web"}, categories)

	require.NoError(t, c.Set(ctx, KeyStats, map[string]float64{"performance": 91.5}))
	require.NoError(t, c.Delete(ctx, AggregateKeys...))
	assert.False(t, mr.Exists("catalog:categories"))
	assert.False(t, mr.Exists("catalog:stats"))
}

func TestRedisCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c, mr := newTestCache(t)

	require.NoError(t, c.Set(ctx, KeyTechStack, []string{"go"}))
	mr.FastForward(2 * time.Minute)

	var stack []string
	ok, err := c.Get(ctx, KeyTechStack, &stack)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisCacheDecodeError(t *testing.T) {
	ctx := context.Background()
	c, mr := newTestCache(t)
	require.NoError(t, mr.Set("catalog:stats", "not-json"))

	var out map[string]float64
	_, err := c.Get(ctx, KeyStats, &out)
	assert.Error(t, err)
}

func TestNop(t *testing.T) {
	var c Cache = Nop{}
	ok, err := c.Get(context.Background(), KeyStats, nil)
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, c.Set(context.Background(), KeyStats, 1))
	assert.NoError(t, c.Delete(context.Background(), AggregateKeys...))
}
