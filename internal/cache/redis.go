// Package cache keeps downloaded pages in Redis so repeated lookups skip the network
package cache

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// KeyPrefix namespaces page keys
	KeyPrefix = "nba:page:"
	// DefaultTTL is how long a page stays cached
	DefaultTTL = 6 * time.Hour
)

// PageCache stores page bodies keyed by URL
type PageCache struct {
	client *redis.Client
	ttl    time.Duration
}

// New returns a PageCache that uses the given Redis client. A zero ttl means DefaultTTL
func New(client *redis.Client, ttl time.Duration) *PageCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &PageCache{client: client, ttl: ttl}
}

// Key returns the Redis key for a URL
func Key(url string) string {
	sum := sha1.Sum([]byte(url))
	return KeyPrefix + hex.EncodeToString(sum[:])
}

// Get returns the cached body for url; ok is false on a miss
func (c *PageCache) Get(ctx context.Context, url string) (string, bool, error) {
	body, err := c.client.Get(ctx, Key(url)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get page: %w", err)
	}
	return body, true, nil
}

// Set stores a body for url with the cache TTL
func (c *PageCache) Set(ctx context.Context, url, body string) error {
	if err := c.client.Set(ctx, Key(url), body, c.ttl).Err(); err != nil {
		return fmt.Errorf("set page: %w", err)
	}
	return nil
}

// Ping checks the Redis connection
func (c *PageCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
