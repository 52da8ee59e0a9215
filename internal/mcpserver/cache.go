package mcpserver

import (
	"container/list"
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/erraggy/oasdecode/parser"
)

// lruCache is a mutex-guarded LRU cache whose entries also expire after a
// per-entry TTL. The list runs from most to least recently used.
type lruCache[V any] struct {
	mu      sync.Mutex
	order   *list.List
	index   map[string]*list.Element
	maxSize int

	hits, misses atomic.Int64
	sweeping     atomic.Bool
}

type lruEntry[V any] struct {
	key       string
	value     V
	expiresAt time.Time
}

func newLRUCache[V any](maxSize int) *lruCache[V] {
	return &lruCache[V]{
		order:   list.New(),
		index:   make(map[string]*list.Element),
		maxSize: max(maxSize, 1),
	}
}

// specCache holds decoded documents for the life of the server process.
// File inputs are keyed by absolute path and mtime, content by its SHA-256.
var specCache = newLRUCache[*parser.ParseResult](cfg.CacheMaxSize)

// get returns the live value for key and marks it most recently used.
// An expired entry is removed and reported as a miss.
func (c *lruCache[V]) get(key string) (v V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	el, ok := c.index[key]
	if !ok {
		c.misses.Add(1)
		return v
	}
	e := el.Value.(*lruEntry[V])
	if time.Now().After(e.expiresAt) {
		c.remove(el)
		c.misses.Add(1)
		return v
	}
	c.order.MoveToFront(el)
	c.hits.Add(1)
	return e.value
}

// putWithTTL stores value under key, evicting the least recently used entry
// when the cache is full.
func (c *lruCache[V]) putWithTTL(key string, value V, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry := &lruEntry[V]{key: key, value: value, expiresAt: time.Now().Add(ttl)}
	if el, ok := c.index[key]; ok {
		el.Value = entry
		c.order.MoveToFront(el)
		return
	}
	for c.order.Len() >= c.maxSize {
		c.remove(c.order.Back())
	}
	c.index[key] = c.order.PushFront(entry)
}

// remove drops el. The caller holds c.mu.
func (c *lruCache[V]) remove(el *list.Element) {
	c.order.Remove(el)
	delete(c.index, el.Value.(*lruEntry[V]).key)
}

// sweep removes every expired entry.
func (c *lruCache[V]) sweep() {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := time.Now()
	for el := c.order.Front(); el != nil; {
		next := el.Next()
		if now.After(el.Value.(*lruEntry[V]).expiresAt) {
			c.remove(el)
		}
		el = next
	}
}

// startSweeper sweeps every interval until ctx is done. Only one sweeper
// runs at a time; later calls return immediately while it is running.
func (c *lruCache[V]) startSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 || !c.sweeping.CompareAndSwap(false, true) {
		return
	}
	go func() {
		defer c.sweeping.Store(false)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				c.sweep()
			}
		}
	}()
}

// reset empties the cache and its counters.
func (c *lruCache[V]) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.order.Init()
	clear(c.index)
	c.hits.Store(0)
	c.misses.Store(0)
}

func (c *lruCache[V]) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// stats returns the hit and miss counts since the last reset.
func (c *lruCache[V]) stats() (hits, misses int64) {
	return c.hits.Load(), c.misses.Load()
}
