// ABOUTME: In-memory result cache built on patrickmn/go-cache
// ABOUTME: Process-local caching with TTL support and automatic cleanup

package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"prixmalin-api/core/domain"
	coreerrors "prixmalin-api/core/errors"
)

// MemoryCache implements the ResultCache interface using an in-process store.
// Entries are stored as JSON so cached lists stay isolated from callers.
type MemoryCache struct {
	cache *gocache.Cache
	ttl   time.Duration
}

// NewMemoryCache creates a new in-memory result cache. Expired entries
// are purged every ttl.
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{
		cache: gocache.New(ttl, ttl),
		ttl:   ttl,
	}
}

func cacheKey(query, store string) string {
	return strings.ToLower(strings.TrimSpace(query)) + ":" + store
}

// Get retrieves the cached product list for (query, store).
func (c *MemoryCache) Get(ctx context.Context, query, store string) ([]domain.Product, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	val, found := c.cache.Get(cacheKey(query, store))
	if !found {
		return nil, coreerrors.ErrCacheMiss
	}

	data, ok := val.([]byte)
	if !ok {
		return nil, fmt.Errorf("unexpected cache value type %T", val)
	}

	var products []domain.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("failed to decode cache entry: %w", err)
	}

	return products, nil
}

// Set upserts the product list for (query, store).
func (c *MemoryCache) Set(ctx context.Context, query, store string, products []domain.Product) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	data, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("failed to encode cache entry: %w", err)
	}

	c.cache.Set(cacheKey(query, store), data, c.ttl)
	return nil
}

// Close is a no-op for the in-memory backend.
func (c *MemoryCache) Close() error {
	return nil
}
