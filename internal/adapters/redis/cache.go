// Package redis caches rendered notation in Redis. The symbol engine
// itself keeps no state between parses; caching is strictly an adapter
// concern for the HTTP service.
package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	backend "github.com/redis/go-redis/v9"

	"github.com/notatehq/notate/pkg/symbol"
)

// Cache stores expression renderings keyed by format and expression
// hash. Rendering is deterministic for a fixed engine, so entries never
// need invalidation beyond TTL expiry after symbol packs change.
type Cache struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

type Option func(*Cache)

// WithTTL sets the expiration for cached renderings.
func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) {
		c.ttl = ttl
	}
}

// WithPrefix sets the key prefix.
func WithPrefix(prefix string) Option {
	return func(c *Cache) {
		c.prefix = prefix
	}
}

// New creates a render cache with its own Redis client.
func New(address, password string, db int, opts ...Option) *Cache {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a render cache from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Cache {
	cache := &Cache{
		client: client,
		prefix: "notate:render:",
		ttl:    0, // no expiration by default
	}

	for _, opt := range opts {
		opt(cache)
	}

	return cache
}

func (c *Cache) key(f symbol.Format, expr string) string {
	sum := sha256.Sum256([]byte(expr))
	return c.prefix + f.String() + ":" + hex.EncodeToString(sum[:])
}

// Get returns the cached rendering for (format, expr). The second
// return reports a hit; a miss is not an error.
func (c *Cache) Get(ctx context.Context, f symbol.Format, expr string) (string, bool, error) {
	val, err := c.client.Get(ctx, c.key(f, expr)).Result()
	if err != nil {
		if err == backend.Nil {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to get from redis: %w", err)
	}
	return val, true, nil
}

// Set stores the rendering for (format, expr).
func (c *Cache) Set(ctx context.Context, f symbol.Format, expr, code string) error {
	if err := c.client.Set(ctx, c.key(f, expr), code, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save to redis: %w", err)
	}
	return nil
}

// Close closes the redis client.
func (c *Cache) Close() error {
	return c.client.Close()
}
