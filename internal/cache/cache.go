// Package cache holds the catalog aggregate cache.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"client-portal-backend/internal/metrics"

	"github.com/redis/go-redis/v9"
)

// Aggregate keys of the public catalog
const (
	KeyCategories = "categories"
	KeyTechStack  = "tech-stack"
	KeyStats      = "stats"
)

// AggregateKeys lists every key dropped when the catalog changes
var AggregateKeys = []string{KeyCategories, KeyTechStack, KeyStats}

// Cache stores JSON encoded values by key
type Cache interface {
	// Get decodes the cached value into dest and reports whether it was present
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any) error
	Delete(ctx context.Context, keys ...string) error
}

// RedisCache is a Cache backed by redis
type RedisCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// RedisOptions configures the redis connection
type RedisOptions struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// NewRedisClient opens a redis client
func NewRedisClient(opts RedisOptions) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
}

// NewRedisCache wraps a client. Keys are namespaced under "catalog:".
func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, prefix: "catalog:", ttl: ttl}
}

func (c *RedisCache) key(k string) string {
	return c.prefix + k
}

// Get reads and decodes a cached value
func (c *RedisCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	raw, err := c.client.Get(ctx, c.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		metrics.IncrementCacheLookup(key, "miss")
		return false, nil
	}
	if err != nil {
		metrics.IncrementCacheLookup(key, "error")
		return false, fmt.Errorf("cache get %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		metrics.IncrementCacheLookup(key, "error")
		return false, fmt.Errorf("cache decode %s: %w", key, err)
	}
	metrics.IncrementCacheLookup(key, "hit")
	return true, nil
}

// Set encodes and stores a value with the configured TTL
func (c *RedisCache) Set(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache encode %s: %w", key, err)
	}
	if err := c.client.Set(ctx, c.key(key), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set %s: %w", key, err)
	}
	return nil
}

// Delete drops keys
func (c *RedisCache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = c.key(k)
	}
	if err := c.client.Del(ctx, full...).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

// Ping checks the redis connection
func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Nop never holds anything. Used when REDIS_ADDR is empty.
type Nop struct{}

func (Nop) Get(context.Context, string, any) (bool, error) { return false, nil }
func (Nop) Set(context.Context, string, any) error         { return nil }
func (Nop) Delete(context.Context, ...string) error        { return nil }
