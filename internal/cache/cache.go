// Package cache holds the Redis-backed cache of list responses. A nil
// *ListCache is valid and disables caching, so the handlers never need to
// know whether Redis is configured.
package cache

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	KindClients    = "clients"
	KindDevelopers = "developers"
)

type ListCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// New returns nil when redisURL is empty or unparseable; callers treat a
// nil cache as a no-op and read straight from the store.
func New(redisURL string) *ListCache {
	if redisURL == "" {
		return nil
	}
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("cache disabled, bad REDIS_URL: %v", err)
		return nil
	}
	return &ListCache{
		rdb: redis.NewClient(opt),
		ttl: 30 * time.Second,
	}
}

func key(kind string) string {
	return "clientdesk:list:" + kind
}

func (c *ListCache) Get(ctx context.Context, kind string) ([]byte, bool) {
	if c == nil {
		return nil, false
	}
	body, err := c.rdb.Get(ctx, key(kind)).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("cache get %s: %v", kind, err)
		}
		return nil, false
	}
	return body, true
}

func (c *ListCache) Set(ctx context.Context, kind string, body []byte) {
	if c == nil {
		return
	}
	if err := c.rdb.Set(ctx, key(kind), body, c.ttl).Err(); err != nil {
		log.Printf("cache set %s: %v", kind, err)
	}
}

// Invalidate drops the cached list for a kind. Every successful mutation of
// that kind must call it before the response is written.
func (c *ListCache) Invalidate(ctx context.Context, kind string) {
	if c == nil {
		return
	}
	if err := c.rdb.Del(ctx, key(kind)).Err(); err != nil {
		log.Printf("cache invalidate %s: %v", kind, err)
	}
}
