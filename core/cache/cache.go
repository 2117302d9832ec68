package cache

import (
	"context"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache is a thin wrapper around a Redis client. A nil *Cache is valid and
// behaves as a permanent miss, so callers never need to branch on whether
// caching is enabled.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// New connects to Redis and verifies the connection with a ping.
func New(cfg Config) (*Cache, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return &Cache{
		client: client,
		ttl:    time.Duration(cfg.TTLSeconds) * time.Second,
	}, nil
}

// Get returns the cached payload for key, or an error on miss.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, error) {
	if c == nil {
		return nil, redis.Nil
	}
	return c.client.Get(ctx, key).Bytes()
}

// Set stores the payload under key with the configured TTL.
func (c *Cache) Set(ctx context.Context, key string, value []byte) error {
	if c == nil {
		return nil
	}
	return c.client.Set(ctx, key, value, c.ttl).Err()
}

// Delete removes the key. Used to invalidate a headword after merge/delete.
func (c *Cache) Delete(ctx context.Context, key string) error {
	if c == nil {
		return nil
	}
	return c.client.Del(ctx, key).Err()
}

// Close releases the underlying client.
func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}

// WordKey generates the cache key for a canonical word lookup.
// Format: "word:<headword>" with the headword lowercased.
func WordKey(headword string) string {
	return "word:" + strings.ToLower(headword)
}
