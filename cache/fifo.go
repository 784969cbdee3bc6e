package cache

import "github.com/segmentio/containers/list"

// FIFO is an Interface implementation which evicts entries in the order they
// were inserted, regardless of how often they are looked up.
//
// Keys are queued in a singly-linked list with the most recent insert at the
// head. Inserts run in constant time, evictions and deletes walk the queue.
//
// The zero-value is a valid, unbounded cache.
type FIFO[K comparable, V any] struct {
	config Config
	values map[K]V
	queue  list.List[K]
}

// NewFIFO constructs a new FIFO cache, using the list of options passed as
// arguments to configure it.
func NewFIFO[K comparable, V any](options ...Option) *FIFO[K, V] {
	fifo := new(FIFO[K, V])
	fifo.config.Apply(options...)
	return fifo
}

func (fifo *FIFO[K, V]) Len() int {
	return fifo.queue.Len()
}

func (fifo *FIFO[K, V]) Insert(key K, value V) (previous V, replaced bool) {
	if fifo.values == nil {
		fifo.values = make(map[K]V)
	}
	if previous, replaced = fifo.values[key]; replaced {
		fifo.values[key] = value
		return previous, replaced
	}
	if limit := fifo.config.Capacity; limit > 0 {
		for fifo.queue.Len() >= limit {
			fifo.Evict()
		}
	}
	fifo.values[key] = value
	fifo.queue.InsertAtHead(key)
	return previous, replaced
}

func (fifo *FIFO[K, V]) Lookup(key K) (value V, found bool) {
	value, found = fifo.values[key]
	return value, found
}

func (fifo *FIFO[K, V]) Delete(key K) (value V, deleted bool) {
	if value, deleted = fifo.values[key]; !deleted {
		return value, deleted
	}
	index := -1
	fifo.queue.Range(func(i int, k K) bool {
		if k == key {
			index = i
			return false
		}
		return true
	})
	if _, err := fifo.queue.RemoveFromIndex(index); err != nil {
		// The key is in the map, so it must have been queued.
		panic(err)
	}
	delete(fifo.values, key)
	return value, deleted
}

func (fifo *FIFO[K, V]) Evict() (key K, value V, evicted bool) {
	if key, evicted = fifo.queue.RemoveFromTail(); evicted {
		value = fifo.values[key]
		delete(fifo.values, key)
	}
	return key, value, evicted
}

func (fifo *FIFO[K, V]) Range(f func(K, V) bool) {
	fifo.queue.Range(func(_ int, key K) bool {
		return f(key, fifo.values[key])
	})
}
