// Package cache provides the process-wide result cache used to memoize
// summarizer calls.
package cache

import (
	"container/list"
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"
)

// Entry holds a cached value together with its expiry time. A zero
// ExpiresAt means the entry never expires.
type Entry struct {
	Value     any       `json:"value"`
	ExpiresAt time.Time `json:"expires_at"`
}

// LRU is a thread-safe fixed-capacity cache. A zero TTL disables expiry.
type LRU struct {
	mu       sync.Mutex
	capacity int
	ttl      time.Duration
	items    map[string]*list.Element
	order    *list.List
}

type node struct {
	key string
	ent Entry
}

// NewLRU creates a cache holding at most capacity entries.
func NewLRU(capacity int, ttl time.Duration) *LRU {
	return &LRU{
		capacity: capacity,
		ttl:      ttl,
		items:    make(map[string]*list.Element, capacity),
		order:    list.New(),
	}
}

// Get retrieves a value, refreshing its recency. Expired entries are
// dropped on access.
func (c *LRU) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.items[key]
	if !ok {
		return nil, false
	}
	ent := elem.Value.(*node).ent
	if !ent.ExpiresAt.IsZero() && time.Now().After(ent.ExpiresAt) {
		c.order.Remove(elem)
		delete(c.items, key)
		return nil, false
	}
	c.order.MoveToFront(elem)
	return ent.Value, true
}

// Set adds or updates a value, evicting the least recently used entry
// when the cache is full.
func (c *LRU) Set(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ent := Entry{Value: value}
	if c.ttl > 0 {
		ent.ExpiresAt = time.Now().Add(c.ttl)
	}

	if elem, ok := c.items[key]; ok {
		c.order.MoveToFront(elem)
		elem.Value.(*node).ent = ent
		return
	}

	elem := c.order.PushFront(&node{key: key, ent: ent})
	c.items[key] = elem

	if c.order.Len() > c.capacity {
		oldest := c.order.Back()
		if oldest != nil {
			c.order.Remove(oldest)
			delete(c.items, oldest.Value.(*node).key)
		}
	}
}

// Len reports the number of live entries.
func (c *LRU) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// Dump returns a snapshot of the cache suitable for persistence.
func (c *LRU) Dump() map[string]Entry {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make(map[string]Entry, c.order.Len())
	for elem := c.order.Front(); elem != nil; elem = elem.Next() {
		n := elem.Value.(*node)
		out[n.key] = n.ent
	}
	return out
}

// Restore loads previously dumped entries, skipping expired ones.
func (c *LRU) Restore(entries map[string]Entry) {
	now := time.Now()
	for key, ent := range entries {
		if !ent.ExpiresAt.IsZero() && now.After(ent.ExpiresAt) {
			continue
		}
		c.Set(key, ent.Value)
	}
}

// HashKey returns the cache key for a text: its SHA-256 hex digest.
func HashKey(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}
