// ABOUTME: Redis result cache using go-redis with ReJSON documents
// ABOUTME: Provides distributed caching with TTL support and connection pooling

package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/nitishm/go-rejson/v4"
	"github.com/redis/go-redis/v9"

	"prixmalin-api/core/domain"
	coreerrors "prixmalin-api/core/errors"
	"prixmalin-api/pkg/config"
)

// RedisCache implements the ResultCache interface using Redis.
// Product lists are stored as JSON documents via the ReJSON module so
// entries stay inspectable with plain redis tooling.
type RedisCache struct {
	client  *redis.Client
	handler *rejson.Handler
	ttl     time.Duration
}

// NewRedisCache creates a new Redis result cache instance
func NewRedisCache(cfg config.RedisConfig, ttl time.Duration) (*RedisCache, error) {
	if cfg.Address == "" {
		return nil, errors.New("redis address cannot be empty")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	handler := rejson.NewReJSONHandler()
	handler.SetGoRedisClient(client)

	return &RedisCache{
		client:  client,
		handler: handler,
		ttl:     ttl,
	}, nil
}

func cacheKey(query, store string) string {
	return "search:" + strings.ToLower(strings.TrimSpace(query)) + ":" + store
}

// Get retrieves the cached product list for (query, store).
func (c *RedisCache) Get(ctx context.Context, query, store string) ([]domain.Product, error) {
	val, err := c.handler.JSONGet(cacheKey(query, store), ".")
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, coreerrors.ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to get key from redis: %w", err)
	}

	data, ok := val.([]byte)
	if !ok {
		return nil, fmt.Errorf("unexpected redis value type %T", val)
	}

	var products []domain.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("failed to decode cache entry: %w", err)
	}

	return products, nil
}

// Set upserts the product list for (query, store) and refreshes its TTL.
func (c *RedisCache) Set(ctx context.Context, query, store string, products []domain.Product) error {
	key := cacheKey(query, store)

	if _, err := c.handler.JSONSet(key, ".", products); err != nil {
		return fmt.Errorf("failed to set key in redis: %w", err)
	}

	if c.ttl > 0 {
		if err := c.client.Expire(ctx, key, c.ttl).Err(); err != nil {
			return fmt.Errorf("failed to set expiration: %w", err)
		}
	}

	return nil
}

// Close closes the Redis connection
func (c *RedisCache) Close() error {
	return c.client.Close()
}
