package cache

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"foodcourt/internal/metrics"
)

// Namespaces used by the services. Keys are "{namespace}:{id}".
// Single-entity views and list views live in separate namespaces: entity
// ids come from request paths, so a list key sharing their namespace
// could be shadowed by a crafted id.
const (
	NamespaceOrders      = "orders"
	NamespaceOrderLists  = "orderLists"
	NamespaceMenuItems   = "menuItems"
	NamespaceMenuLists   = "menuLists"
	NamespaceRestaurants = "restaurants"
)

// Cache is a process-local read-through response cache. It is a
// performance aid only: callers run authorization on every request and
// never cache the decision, and mutations write through or evict so
// in-process reads observe their own writes.
type Cache struct {
	lru *expirable.LRU[string, interface{}]
}

func New(size int, ttl time.Duration) *Cache {
	return &Cache{
		lru: expirable.NewLRU[string, interface{}](size, nil, ttl),
	}
}

func (c *Cache) key(namespace, id string) string {
	return namespace + ":" + id
}

func (c *Cache) Get(namespace, id string) (interface{}, bool) {
	v, ok := c.lru.Get(c.key(namespace, id))
	if ok {
		metrics.CacheHits.WithLabelValues(namespace).Inc()
	} else {
		metrics.CacheMisses.WithLabelValues(namespace).Inc()
	}
	return v, ok
}

// GetOrLoad serves a typed hit or populates the entry from the loader.
// A cached value of the wrong type is treated as a miss and replaced;
// loader errors are returned without caching.
func GetOrLoad[T any](c *Cache, namespace, id string, load func() (T, error)) (T, error) {
	if v, ok := c.Get(namespace, id); ok {
		if typed, ok := v.(T); ok {
			return typed, nil
		}
	}

	value, err := load()
	if err != nil {
		var zero T
		return zero, err
	}

	c.lru.Add(c.key(namespace, id), value)
	return value, nil
}

func (c *Cache) Put(namespace, id string, value interface{}) {
	c.lru.Add(c.key(namespace, id), value)
}

// Invalidate evicts one or more entries in a namespace. Cross-key
// coherence (a menu write evicting its restaurant's list, an order write
// evicting the per-user list) is expressed by passing the related ids.
func (c *Cache) Invalidate(namespace string, ids ...string) {
	for _, id := range ids {
		c.lru.Remove(c.key(namespace, id))
	}
}
