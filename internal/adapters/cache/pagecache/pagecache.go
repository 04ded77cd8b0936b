package pagecache

import (
	"sync/atomic"
	"time"
)

type entry struct {
	storedAt time.Time
	body     []byte
}

// Cache keeps a single rendered page for a limited time
type Cache struct {
	ttl     time.Duration
	now     func() time.Time
	current atomic.Pointer[entry]
}

// New creates a Cache. A ttl of zero or less disables caching.
func New(ttl time.Duration) *Cache {
	return NewWithClock(ttl, time.Now)
}

// NewWithClock creates a Cache reading time from now
func NewWithClock(ttl time.Duration, now func() time.Time) *Cache {
	return &Cache{
		ttl: ttl,
		now: now,
	}
}

// Get returns the stored page while it is fresh
func (c *Cache) Get() ([]byte, bool) {
	if c == nil || c.ttl <= 0 {
		return nil, false
	}
	e := c.current.Load()
	if e == nil || c.now().Sub(e.storedAt) >= c.ttl {
		return nil, false
	}
	return e.body, true
}

// Put stores body as the current page. The slice must not be modified afterwards.
func (c *Cache) Put(body []byte) {
	if c == nil || c.ttl <= 0 {
		return
	}
	c.current.Store(&entry{storedAt: c.now(), body: body})
}
