package food

import (
	"fmt"
	"sync"
	"time"

	"github.com/tkloetzk/mealplanner-sub001/domain"
)

const DefaultCatalogTTL = 5 * time.Minute

type (
	// CatalogCache keeps listing results in memory. Any catalog write must
	// call Invalidate.
	CatalogCache interface {
		Get(key string) (domain.GetFoodsResponse, bool)
		Set(key string, value domain.GetFoodsResponse)
		Invalidate()
	}

	cacheEntry struct {
		value    domain.GetFoodsResponse
		storedAt time.Time
	}

	catalogCache struct {
		mu      sync.RWMutex
		ttl     time.Duration
		now     func() time.Time
		entries map[string]cacheEntry
	}
)

// NewCatalogCache builds a cache whose entries expire ttl after being stored,
// measured with now.
func NewCatalogCache(ttl time.Duration, now func() time.Time) CatalogCache {
	if now == nil {
		now = time.Now
	}
	return &catalogCache{
		ttl:     ttl,
		now:     now,
		entries: make(map[string]cacheEntry),
	}
}

func (c *catalogCache) Get(key string) (domain.GetFoodsResponse, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	if !ok || c.now().Sub(e.storedAt) >= c.ttl {
		return domain.GetFoodsResponse{}, false
	}
	return e.value, true
}

func (c *catalogCache) Set(key string, value domain.GetFoodsResponse) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{value: value, storedAt: c.now()}
}

func (c *catalogCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]cacheEntry)
}

func listingKey(category string, page, limit int) string {
	return fmt.Sprintf("%s|%d|%d", category, page, limit)
}
