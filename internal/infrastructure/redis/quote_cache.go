package redis

import (
	"context"
	"encoding/json"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/openfinedu/carfin/internal/application/dto"
	"github.com/openfinedu/carfin/internal/domain/model"
)

// quoteTTL keeps cached quotes around long enough for a user session without
// letting the keyspace grow unbounded.
const quoteTTL = 24 * time.Hour

// QuoteCache caches calculation results in Redis, serialized as the same JSON
// the API returns.
type QuoteCache struct {
	client *goredis.Client
}

// NewQuoteCache creates a Redis-backed quote cache.
func NewQuoteCache(addr string) *QuoteCache {
	return &QuoteCache{
		client: goredis.NewClient(&goredis.Options{Addr: addr}),
	}
}

// Get returns a cached result. Any Redis or decode error is treated as a
// miss; the engine will simply recompute.
func (c *QuoteCache) Get(ctx context.Context, key string) (model.CalculationResult, bool) {
	raw, err := c.client.Get(ctx, key).Result()
	if err != nil {
		return model.CalculationResult{}, false
	}

	var cached dto.QuoteResponse
	if err := json.Unmarshal([]byte(raw), &cached); err != nil {
		return model.CalculationResult{}, false
	}
	return cached.ToResult(), true
}

// Set stores a result with a TTL.
func (c *QuoteCache) Set(ctx context.Context, key string, result model.CalculationResult) error {
	raw, err := json.Marshal(dto.FromResult(result))
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, raw, quoteTTL).Err()
}

// Close releases the underlying client.
func (c *QuoteCache) Close() error {
	return c.client.Close()
}
