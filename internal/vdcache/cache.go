package vdcache

import (
	"container/list"
	"sync"
)

// Capacity is the fixed maximum number of cached conversions. It is set
// at construction and not reconfigurable at runtime.
const Capacity = 32

// Cache is a mutex-guarded LRU map from fingerprint to converted text.
// It lives for the process lifetime and is shared across concurrent
// tool calls.
type Cache struct {
	mu      sync.Mutex
	entries map[string]*list.Element
	order   *list.List // front is most recently used
}

type entry struct {
	key   string
	value string
}

// New creates an empty cache with the fixed capacity.
func New() *Cache {
	return &Cache{
		entries: make(map[string]*list.Element, Capacity),
		order:   list.New(),
	}
}

// Get returns the cached text for key. A hit marks the entry most
// recently used; a miss has no side effect.
func (c *Cache) Get(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.entries[key]
	if !ok {
		return "", false
	}
	c.order.MoveToFront(el)
	return el.Value.(*entry).value, true
}

// Put inserts or overwrites the text for key, marking it most recently
// used. Inserting a new key at capacity evicts exactly the least
// recently used entry first.
func (c *Cache) Put(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.entries[key]; ok {
		el.Value.(*entry).value = value
		c.order.MoveToFront(el)
		return
	}

	if len(c.entries) >= Capacity {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.entries, oldest.Value.(*entry).key)
	}
	c.entries[key] = c.order.PushFront(&entry{key: key, value: value})
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
