// Package cache implements the bounded, time-limited store of previously
// accepted translations.
package cache

import (
	"container/list"
	"sync"
	"time"

	"github.com/linara-sh/linara/internal/domain"
	"github.com/linara-sh/linara/internal/ports"
)

// MemoryCache keys entries by the exact raw input text. Insertion order is
// tracked explicitly with a linked list so eviction is truly oldest-first
// rather than depending on map iteration order. Expired entries are ignored
// on lookup, not actively purged; the size bound reclaims them eventually.
//
// Cache state lives and dies with the process.
type MemoryCache struct {
	mu         sync.Mutex
	entries    map[string]*list.Element
	order      *list.List // front = oldest inserted
	ttl        time.Duration
	maxEntries int
	now        func() time.Time
}

// NewMemoryCache builds a cache with the given TTL and entry bound,
// falling back to the defaults (300s, 100 entries) for non-positive values.
func NewMemoryCache(ttl time.Duration, maxEntries int) *MemoryCache {
	if ttl <= 0 {
		ttl = domain.DefaultCacheTTL
	}
	if maxEntries <= 0 {
		maxEntries = domain.DefaultMaxCacheEntries
	}
	return &MemoryCache{
		entries:    make(map[string]*list.Element),
		order:      list.New(),
		ttl:        ttl,
		maxEntries: maxEntries,
		now:        time.Now,
	}
}

// Get implements ports.TranslationCache. An entry at or past its TTL behaves
// as a miss.
func (c *MemoryCache) Get(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.entries[key]
	if !ok {
		return "", false
	}
	entry := elem.Value.(*domain.CacheEntry)
	if c.now().Sub(entry.CreatedAt) >= c.ttl {
		return "", false
	}
	return entry.Command, true
}

// Put implements ports.TranslationCache. Overwriting a key counts as a fresh
// insertion for eviction purposes. When the bound is exceeded the
// oldest-inserted entries are removed until the size returns to the bound.
func (c *MemoryCache) Put(key, command string) {
	if key == "" {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.entries[key]; ok {
		c.order.Remove(elem)
		delete(c.entries, key)
	}

	c.entries[key] = c.order.PushBack(&domain.CacheEntry{
		Key:       key,
		Command:   command,
		CreatedAt: c.now(),
	})

	for len(c.entries) > c.maxEntries {
		oldest := c.order.Front()
		if oldest == nil {
			break
		}
		c.order.Remove(oldest)
		delete(c.entries, oldest.Value.(*domain.CacheEntry).Key)
	}
}

// Len reports the number of stored entries, including not-yet-reclaimed
// expired ones.
func (c *MemoryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

var _ ports.TranslationCache = (*MemoryCache)(nil)
