package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/quickcart/commerce-platform/internal/api/metrics"
	"github.com/quickcart/commerce-platform/internal/core/domain"
)

const productCacheTTL = 5 * time.Minute

// ProductCache caches single-product lookups in Redis.
// Key format: product:<id>, value is the JSON-encoded product.
// Cache failures are logged and treated as misses; the store stays authoritative.
type ProductCache struct {
	client *redis.Client
	log    zerolog.Logger
}

// NewProductCache creates a ProductCache wrapping the given Redis client.
func NewProductCache(client *redis.Client, log zerolog.Logger) *ProductCache {
	return &ProductCache{client: client, log: log}
}

func (c *ProductCache) Get(ctx context.Context, id string) (*domain.Product, bool) {
	raw, err := c.client.Get(ctx, c.key(id)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warn().Err(err).Str("product_id", id).Msg("product cache read failed")
		}
		metrics.ProductCacheTotal.WithLabelValues("miss").Inc()
		return nil, false
	}

	var p domain.Product
	if err := json.Unmarshal(raw, &p); err != nil {
		c.log.Warn().Err(err).Str("product_id", id).Msg("product cache entry corrupt")
		metrics.ProductCacheTotal.WithLabelValues("miss").Inc()
		return nil, false
	}

	metrics.ProductCacheTotal.WithLabelValues("hit").Inc()
	return &p, true
}

func (c *ProductCache) Set(ctx context.Context, p *domain.Product) {
	raw, err := json.Marshal(p)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, c.key(p.ID), raw, productCacheTTL).Err(); err != nil {
		c.log.Warn().Err(err).Str("product_id", p.ID).Msg("product cache write failed")
	}
}

func (c *ProductCache) Invalidate(ctx context.Context, id string) {
	if err := c.client.Del(ctx, c.key(id)).Err(); err != nil {
		c.log.Warn().Err(err).Str("product_id", id).Msg("product cache invalidation failed")
	}
}

func (c *ProductCache) key(id string) string {
	return "product:" + id
}
