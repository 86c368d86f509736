package cache

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// Cache is a thin optional wrapper; a nil *Cache is a no-op so callers
// never branch on whether redis is configured.
type Cache struct {
	client *redis.Client
}

func New(addr string) *Cache {
	if addr == "" {
		return nil
	}
	return &Cache{
		client: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

func (c *Cache) Get(ctx context.Context, key string) (string, bool) {
	if c == nil {
		return "", false
	}
	val, err := c.client.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

func (c *Cache) Set(ctx context.Context, key, value string, ttl time.Duration) {
	if c == nil {
		return
	}
	c.client.Set(ctx, key, value, ttl)
}
