// Package cache provides a size-bounded, concurrency-safe LRU used to memoize
// processed sheet content for the life of the process.
package cache

import (
	"container/list"
	"errors"
	"sync"
)

type LRUCache[K comparable, V any] struct {
	mu        sync.Mutex
	maxBytes  int64
	size      int64
	sizeOf    func(K, V) int64
	evictList *list.List
	items     map[K]*list.Element
}

type entry[K comparable, V any] struct {
	key   K
	value V
	size  int64
}

// New returns a cache that evicts least recently used entries once the sum
// of sizeOf over all entries exceeds maxBytes.
func New[K comparable, V any](maxBytes int64, sizeOf func(K, V) int64) (*LRUCache[K, V], error) {
	if maxBytes <= 0 {
		return nil, errors.New("cache size must be positive")
	}
	if sizeOf == nil {
		sizeOf = func(K, V) int64 { return 1 }
	}
	return &LRUCache[K, V]{
		maxBytes:  maxBytes,
		sizeOf:    sizeOf,
		evictList: list.New(),
		items:     make(map[K]*list.Element),
	}, nil
}

// StringSize measures string keys and values by their byte length.
func StringSize(k, v string) int64 {
	return int64(len(k) + len(v))
}

func (c *LRUCache[K, V]) Get(key K) (value V, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ele, hit := c.items[key]; hit {
		c.evictList.MoveToFront(ele)
		return ele.Value.(*entry[K, V]).value, true
	}
	return
}

// Put stores value under key. A value larger than the whole budget is not
// stored.
func (c *LRUCache[K, V]) Put(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	size := c.sizeOf(key, value)
	if ele, hit := c.items[key]; hit {
		c.removeElement(ele)
	}
	if size > c.maxBytes {
		return
	}

	ele := c.evictList.PushFront(&entry[K, V]{key: key, value: value, size: size})
	c.items[key] = ele
	c.size += size

	for c.size > c.maxBytes {
		c.removeOldest()
	}
}

func (c *LRUCache[K, V]) Remove(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ele, hit := c.items[key]; hit {
		c.removeElement(ele)
	}
}

func (c *LRUCache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.evictList.Len()
}

// SizeOf is the current total size of all entries.
func (c *LRUCache[K, V]) SizeOf() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.size
}

func (c *LRUCache[K, V]) removeOldest() {
	ele := c.evictList.Back()
	if ele != nil {
		c.removeElement(ele)
	}
}

func (c *LRUCache[K, V]) removeElement(e *list.Element) {
	c.evictList.Remove(e)
	kv := e.Value.(*entry[K, V])
	c.size -= kv.size
	delete(c.items, kv.key)
}
