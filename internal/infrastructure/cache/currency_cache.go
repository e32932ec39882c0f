// Package cache provides an expiring currency cache and a caching currency repository
package cache

import (
	"context"
	"sync"
	"time"

	"github.com/damon-houk/rate-enrichment/internal/domain/entity"
)

// CacheEntry represents a cached currency with its insertion time
type CacheEntry struct {
	Currency  entity.Currency
	Timestamp time.Time
}

// CurrencyCache provides a thread-safe in-memory cache of currencies by ID
type CurrencyCache struct {
	cache      map[int]CacheEntry
	expiration time.Duration
	mutex      sync.RWMutex
}

// NewCurrencyCache creates a new currency cache
func NewCurrencyCache(expiration time.Duration) *CurrencyCache {
	if expiration <= 0 {
		expiration = 24 * time.Hour
	}

	return &CurrencyCache{
		cache:      make(map[int]CacheEntry),
		expiration: expiration,
	}
}

// Get retrieves a currency from the cache if available and not expired
func (c *CurrencyCache) Get(id int) (entity.Currency, bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	entry, exists := c.cache[id]
	if !exists || time.Since(entry.Timestamp) > c.expiration {
		return entity.Currency{}, false
	}

	return entry.Currency, true
}

// Put stores a currency in the cache
func (c *CurrencyCache) Put(currency entity.Currency) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.cache[currency.ID] = CacheEntry{
		Currency:  currency,
		Timestamp: time.Now(),
	}
}

// Size returns the number of items in the cache
func (c *CurrencyCache) Size() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	return len(c.cache)
}

// CleanExpired removes expired entries from the cache
func (c *CurrencyCache) CleanExpired() int {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	count := 0
	now := time.Now()

	for id, entry := range c.cache {
		if now.Sub(entry.Timestamp) > c.expiration {
			delete(c.cache, id)
			count++
		}
	}

	return count
}

// RunCleanup calls CleanExpired every interval until ctx is done. onClean,
// when not nil, receives the number of entries removed by each pass.
func (c *CurrencyCache) RunCleanup(ctx context.Context, interval time.Duration, onClean func(removed int)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed := c.CleanExpired()
			if onClean != nil {
				onClean(removed)
			}
		}
	}
}
