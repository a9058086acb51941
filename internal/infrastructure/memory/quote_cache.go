package memory

import (
	"context"
	"sync"

	"github.com/openfinedu/carfin/internal/domain/model"
)

// QuoteCache is the in-process fallback cache, used when no Redis address is
// configured.
type QuoteCache struct {
	mu     sync.RWMutex
	quotes map[string]model.CalculationResult
}

// NewQuoteCache creates an empty in-process quote cache.
func NewQuoteCache() *QuoteCache {
	return &QuoteCache{
		quotes: make(map[string]model.CalculationResult),
	}
}

// Get returns a cached result.
func (c *QuoteCache) Get(_ context.Context, key string) (model.CalculationResult, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	res, ok := c.quotes[key]
	return res, ok
}

// Set stores a result.
func (c *QuoteCache) Set(_ context.Context, key string, result model.CalculationResult) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.quotes[key] = result
	return nil
}
