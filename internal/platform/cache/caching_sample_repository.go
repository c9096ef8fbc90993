// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"stock_chart/internal/feature/series/domain/entity"
	"stock_chart/internal/feature/series/usecase"
)

// TTLFunc returns how long a freshly cached entry should live.
type TTLFunc func() time.Duration

// CachingSampleRepository decorates a SampleRepository with Redis caching.
// One key holds the whole series of a symbol.
type CachingSampleRepository struct {
	inner     usecase.SampleRepository
	rdb       *redis.Client
	ttl       TTLFunc
	namespace string
}

// NewCachingSampleRepository decorates a SampleRepository with Redis caching.
// A nil ttl defaults to 5 minutes and an empty namespace to "series".
// A nil client disables caching.
func NewCachingSampleRepository(rdb *redis.Client, ttl TTLFunc, inner usecase.SampleRepository, namespace string) *CachingSampleRepository {
	if ttl == nil {
		ttl = func() time.Duration { return 5 * time.Minute }
	}
	if namespace == "" {
		namespace = "series"
	}
	return &CachingSampleRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Replace writes through to the inner repository and invalidates the symbol's key.
func (c *CachingSampleRepository) Replace(ctx context.Context, symbol string, samples []entity.Sample) error {
	if err := c.inner.Replace(ctx, symbol, samples); err != nil {
		return err
	}
	if c.rdb == nil {
		return nil
	}
	_ = c.rdb.Del(ctx, c.cacheKey(symbol)).Err() // Best effort: the next read refills
	return nil
}

// Find returns the series from cache, falling back to the inner repository.
// Empty results are not cached.
func (c *CachingSampleRepository) Find(ctx context.Context, symbol string) ([]entity.Sample, error) {
	if c.rdb == nil {
		return c.inner.Find(ctx, symbol)
	}

	key := c.cacheKey(symbol)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Sample
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	out, err := c.inner.Find(ctx, symbol)
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return out, nil
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl()).Err()
	}
	return out, nil
}

func (c *CachingSampleRepository) cacheKey(symbol string) string {
	return c.namespace + ":" + safe(symbol)
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
