package portfolio

import (
	"sync"
	"time"
)

// PayloadCache is an in-memory cache of the published payload with TTL.
// Admin mutations invalidate it so the public page re-reads on the next
// request.
type PayloadCache struct {
	mu      sync.RWMutex
	payload Payload
	loaded  bool
	fetched time.Time
	ttl     time.Duration
	catalog *Catalog
}

// NewPayloadCache creates a PayloadCache backed by the given catalog.
func NewPayloadCache(catalog *Catalog, ttl time.Duration) *PayloadCache {
	return &PayloadCache{catalog: catalog, ttl: ttl}
}

func (c *PayloadCache) valid() bool {
	return c.loaded && time.Since(c.fetched) < c.ttl
}

// Invalidate clears the cache so the next read triggers a fresh load.
func (c *PayloadCache) Invalidate() {
	c.mu.Lock()
	c.loaded = false
	c.mu.Unlock()
}

// Payload returns the cached published payload, reloading when stale.
// It tries a read lock first; only takes a write lock if a reload is needed.
func (c *PayloadCache) Payload() Payload {
	c.mu.RLock()
	if c.valid() {
		p := c.payload
		c.mu.RUnlock()
		return p
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.valid() {
		c.payload = c.catalog.PublishedPayload()
		c.loaded = true
		c.fetched = time.Now()
	}
	return c.payload
}
