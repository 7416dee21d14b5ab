package exchange

import (
	"sync"
	"time"
)

// rateCache is a basic thread-safe in-memory cache for exchange rates
type rateCache struct {
	data map[string]cacheItem
	mu   sync.RWMutex
}

type cacheItem struct {
	rate       float64
	expiryTime time.Time
}

func newRateCache() *rateCache {
	return &rateCache{
		data: make(map[string]cacheItem),
	}
}

func (c *rateCache) get(key string) (float64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	item, found := c.data[key]
	if !found {
		return 0, false
	}
	if time.Now().After(item.expiryTime) {
		return 0, false
	}
	return item.rate, true
}

func (c *rateCache) set(key string, rate float64, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.data[key] = cacheItem{
		rate:       rate,
		expiryTime: time.Now().Add(ttl),
	}
}
