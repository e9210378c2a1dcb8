package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/thrishank/jup-ag-sdk/internal/models"
)

const priceKeyPrefix = "price:"

// RedisCache is a short-TTL cache for token prices served by the facade.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(addr string, ttl time.Duration) *RedisCache {
	return &RedisCache{
		client: redis.NewClient(&redis.Options{
			Addr: addr,
			DB:   0,
		}),
		ttl: ttl,
	}
}

// GetPrice returns the cached price for a mint, or ok=false on a miss.
func (r *RedisCache) GetPrice(ctx context.Context, mint string) (models.PriceUpdate, bool, error) {
	data, err := r.client.Get(ctx, priceKeyPrefix+mint).Bytes()
	if err == redis.Nil {
		return models.PriceUpdate{}, false, nil
	}
	if err != nil {
		return models.PriceUpdate{}, false, fmt.Errorf("redis get: %w", err)
	}

	var update models.PriceUpdate
	if err := json.Unmarshal(data, &update); err != nil {
		return models.PriceUpdate{}, false, fmt.Errorf("corrupt price entry for %s: %w", mint, err)
	}
	return update, true, nil
}

// SetPrice stores a price update under the cache TTL.
func (r *RedisCache) SetPrice(ctx context.Context, update models.PriceUpdate) error {
	data, err := json.Marshal(update)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, priceKeyPrefix+update.Mint, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (r *RedisCache) Close() error {
	return r.client.Close()
}
