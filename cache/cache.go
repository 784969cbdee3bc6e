// Package cache contains caches built on top of the containers of this module.
//
// The types provided by the package are generic building blocks. They do not
// make opinionated choices on how synchronization should be handled, which
// makes them unsafe to use concurrently from multiple goroutines.
package cache

// Interface is the interface implemented by caches.
type Interface[K comparable, V any] interface {
	// Returns the number of items in the cache.
	Len() int

	// Inserts an item in the cache, returning the previous value associated
	// with the cache key.
	Insert(key K, value V) (previous V, replaced bool)

	// Returns the value associated with the given key in the cache.
	Lookup(key K) (value V, found bool)

	// Deletes an item from the cache.
	Delete(key K) (value V, deleted bool)

	// Evicts an item from the cache.
	Evict() (key K, value V, evicted bool)

	// Calls f for each entry in the cache. If f returns false, iteration
	// stops.
	Range(f func(K, V) bool)
}

var (
	_ Interface[string, int] = (*Cache[string, int])(nil)
	_ Interface[string, int] = (*FIFO[string, int])(nil)
)

// Stats contains counters tracking usage of a cache.
type Stats struct {
	Inserts   int64
	Updates   int64
	Deletes   int64
	Lookups   int64
	Hits      int64
	Evictions int64
}

// Cache wraps an underlying caching implementation, counting how it is used.
//
// When no backend was installed by a call to Init, an unbounded FIFO is
// created on the first insert.
type Cache[K comparable, V any] struct {
	stats   Stats
	backend Interface[K, V]
}

// Init installs backend as the cache implementation and resets the counters.
func (c *Cache[K, V]) Init(backend Interface[K, V]) {
	c.stats = Stats{}
	c.backend = backend
}

func (c *Cache[K, V]) Len() int {
	if c.backend == nil {
		return 0
	}
	return c.backend.Len()
}

func (c *Cache[K, V]) Insert(key K, value V) (previous V, replaced bool) {
	if c.backend == nil {
		c.backend = NewFIFO[K, V]()
	}
	if previous, replaced = c.backend.Insert(key, value); replaced {
		c.stats.Updates++
	} else {
		c.stats.Inserts++
	}
	return previous, replaced
}

func (c *Cache[K, V]) Lookup(key K) (value V, found bool) {
	if c.backend == nil {
		return value, found
	}
	c.stats.Lookups++
	if value, found = c.backend.Lookup(key); found {
		c.stats.Hits++
	}
	return value, found
}

func (c *Cache[K, V]) Delete(key K) (value V, deleted bool) {
	if c.backend == nil {
		return value, deleted
	}
	if value, deleted = c.backend.Delete(key); deleted {
		c.stats.Deletes++
	}
	return value, deleted
}

func (c *Cache[K, V]) Evict() (key K, value V, evicted bool) {
	if c.backend == nil {
		return key, value, evicted
	}
	if key, value, evicted = c.backend.Evict(); evicted {
		c.stats.Evictions++
	}
	return key, value, evicted
}

func (c *Cache[K, V]) Range(f func(K, V) bool) {
	if c.backend != nil {
		c.backend.Range(f)
	}
}

// Stats returns a snapshot of the cache counters.
func (c *Cache[K, V]) Stats() Stats { return c.stats }
