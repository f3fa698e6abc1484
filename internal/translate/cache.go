package translate

import (
	"fmt"
	"sync"

	"github.com/vmarik/lingo/internal/lang"
	"github.com/vmarik/lingo/internal/lexicon"
)

// DefaultCacheCapacity bounds the translation cache when no capacity is
// configured.
const DefaultCacheCapacity = 1000

// CacheKey builds the memoization key for a translation request. Text is
// normalized so trivially different spellings share an entry.
func CacheKey(src, dst lang.Code, text string) string {
	return fmt.Sprintf("%s-%s-%s", src, dst, lexicon.Normalize(text))
}

// Cache is a bounded in-memory translation cache. When full, inserting a new
// key evicts the insertion-oldest entry. Safe for concurrent use. Entries do
// not survive restarts.
type Cache struct {
	mu       sync.Mutex
	capacity int
	entries  map[string]string
	order    []string
}

// NewCache returns a cache bounded to capacity entries; a non-positive
// capacity falls back to DefaultCacheCapacity.
func NewCache(capacity int) *Cache {
	if capacity <= 0 {
		capacity = DefaultCacheCapacity
	}
	return &Cache{
		capacity: capacity,
		entries:  make(map[string]string, capacity),
	}
}

// Get returns the cached translation for key.
func (c *Cache) Get(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.entries[key]
	return v, ok
}

// Put stores a translation, evicting the oldest entry if at capacity.
// Overwriting an existing key keeps its original insertion position.
func (c *Cache) Put(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; exists {
		c.entries[key] = value
		return
	}
	if len(c.entries) >= c.capacity {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}
	c.entries[key] = value
	c.order = append(c.order, key)
}

// Clear empties the cache.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]string, c.capacity)
	c.order = nil
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
