// Package cache stores rendered page bodies in Redis, keyed by logical page
// identity.
package cache

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"github.com/redis/go-redis/v9"
)

const defaultTTL = 24 * time.Hour

// PageKey maps a logical page name to its cache key.
func PageKey(page string) string {
	return "page:" + page
}

func New(rdb *redis.Client) *Cache {
	return &Cache{rdb: rdb, ttl: defaultTTL}
}

type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

// Get returns the cached body for key, or nil on a miss.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "cache get")
	}
	return b, nil
}

func (c *Cache) Set(ctx context.Context, key string, body []byte) error {
	if err := c.rdb.Set(ctx, key, body, c.ttl).Err(); err != nil {
		return errors.Wrap(err, "cache set")
	}
	return nil
}

// Invalidate drops the cached body for key. Missing keys are not an error.
func (c *Cache) Invalidate(ctx context.Context, key string) error {
	if err := c.rdb.Del(ctx, key).Err(); err != nil {
		return errors.Wrap(err, "cache invalidate")
	}
	return nil
}
