package filter

import (
	"container/list"
	"sync"
)

// lruCache keeps the most recently compiled filters, keyed by expression.
// Safe for concurrent use.
type lruCache[V any] struct {
	mu       sync.Mutex
	capacity int
	recency  *list.List // front is most recent
	byKey    map[string]*list.Element
}

type cached[V any] struct {
	key   string
	value V
}

func newLRUCache[V any](capacity int) *lruCache[V] {
	return &lruCache[V]{
		capacity: capacity,
		recency:  list.New(),
		byKey:    map[string]*list.Element{},
	}
}

// Get returns the cached value and marks it most recently used
func (c *lruCache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.byKey[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.recency.MoveToFront(el)
	return el.Value.(*cached[V]).value, true
}

// Put stores value under key. Past capacity the least recently used entry goes.
func (c *lruCache[V]) Put(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.byKey[key]; ok {
		el.Value.(*cached[V]).value = value
		c.recency.MoveToFront(el)
		return
	}

	c.byKey[key] = c.recency.PushFront(&cached[V]{key: key, value: value})
	for c.recency.Len() > c.capacity {
		last := c.recency.Back()
		c.recency.Remove(last)
		delete(c.byKey, last.Value.(*cached[V]).key)
	}
}

func (c *lruCache[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	clear(c.byKey)
	c.recency.Init()
}

func (c *lruCache[V]) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.byKey)
}
