package fragment

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Key identifies a cached fragment: the component type plus a caller-supplied
// uniqueness token that disambiguates multiple placements of the same logical
// component on one page.
type Key struct {
	Type string
	UID  string
}

// String renders the key in "type#uid" form.
func (k Key) String() string {
	return k.Type + "#" + k.UID
}

// CacheOption customises cache construction.
type CacheOption func(*Cache)

// WithTTL bounds the lifetime of cached fragments. Zero (the default) keeps
// entries until overwritten; there is no explicit invalidation API.
func WithTTL(ttl time.Duration) CacheOption {
	return func(c *Cache) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// WithClock overrides the time source, mainly for tests.
func WithClock(now func() time.Time) CacheOption {
	return func(c *Cache) {
		if now != nil {
			c.now = now
		}
	}
}

// WithCacheLogger injects a logger for cache diagnostics.
func WithCacheLogger(log zerolog.Logger) CacheOption {
	return func(c *Cache) {
		c.log = log
	}
}

// Cache stores rendered fragments across requests. It is safe for concurrent
// readers and writers; independent requests that miss on the same key simply
// render redundantly, which is acceptable because renders are idempotent.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
	ttl     time.Duration
	now     func() time.Time
	log     zerolog.Logger
}

type cacheEntry struct {
	fragment string
	expires  time.Time
}

// NewCache constructs an empty fragment cache.
func NewCache(options ...CacheOption) *Cache {
	c := &Cache{
		entries: make(map[string]cacheEntry),
		now:     time.Now,
		log:     zerolog.Nop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	return c
}

// Get returns the cached fragment for key, reporting whether a live entry
// was present. Expired entries behave as absent.
func (c *Cache) Get(key Key) (string, bool) {
	if c == nil {
		return "", false
	}
	c.mu.RLock()
	entry, ok := c.entries[key.String()]
	c.mu.RUnlock()
	if !ok {
		return "", false
	}
	if !entry.expires.IsZero() && c.now().After(entry.expires) {
		c.mu.Lock()
		delete(c.entries, key.String())
		c.mu.Unlock()
		c.log.Debug().Str("key", key.String()).Msg("fragment expired")
		return "", false
	}
	return entry.fragment, true
}

// Put stores fragment under key, overwriting any previous entry.
func (c *Cache) Put(key Key, fragment string) {
	if c == nil {
		return
	}
	entry := cacheEntry{fragment: fragment}
	if c.ttl > 0 {
		entry.expires = c.now().Add(c.ttl)
	}
	c.mu.Lock()
	c.entries[key.String()] = entry
	c.mu.Unlock()
}

// Len reports the number of stored entries, including any not yet reaped
// expired ones.
func (c *Cache) Len() int {
	if c == nil {
		return 0
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
