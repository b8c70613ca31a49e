package pipeline

import (
	"sync"
	"time"

	"dianjobs/internal"
)

// Cache memoizes one normalized result set behind a fixed freshness
// window. It is owned by the caller; there is no package-level state.
type Cache struct {
	mu        sync.Mutex
	ttl       time.Duration
	records   []internal.NormalizedRecord
	fetchedAt time.Time
	now       func() time.Time
}

func NewCache(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &Cache{ttl: ttl, now: time.Now}
}

// Get returns the cached set while it is fresh, with ok=false once the
// window has elapsed or nothing has been stored yet.
func (c *Cache) Get() ([]internal.NormalizedRecord, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.records == nil || c.now().Sub(c.fetchedAt) >= c.ttl {
		return nil, false
	}
	return c.records, true
}

func (c *Cache) Set(records []internal.NormalizedRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.records = records
	c.fetchedAt = c.now()
}

func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.records = nil
	c.fetchedAt = time.Time{}
}
