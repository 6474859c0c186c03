package auto

import "sync"

// Cache memoizes synthesized decoders per type name. It lives for the life of
// its owner (the default instance for the process) and never evicts: the
// keyspace is the set of distinct types the program decodes, which is static.
//
// Concurrent first use of the same type may synthesize twice; decoders are
// pure and idempotent so the duplicate work is merely wasteful, and the last
// writer wins.
type Cache struct {
	mu sync.RWMutex
	m  map[string]anyDecoder
}

// NewCache returns an empty decoder cache.
func NewCache() *Cache { return &Cache{m: map[string]anyDecoder{}} }

var defaultCache = NewCache()

func (c *Cache) lookup(key string) (anyDecoder, bool) {
	c.mu.RLock()
	d, ok := c.m[key]
	c.mu.RUnlock()
	return d, ok
}

func (c *Cache) store(key string, d anyDecoder) {
	c.mu.Lock()
	c.m[key] = d
	c.mu.Unlock()
}

// Len reports the number of cached decoders.
func (c *Cache) Len() int {
	c.mu.RLock()
	n := len(c.m)
	c.mu.RUnlock()
	return n
}
