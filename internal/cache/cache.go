// Package cache keeps the most recently served products in memory so that
// catalog reads do not hit the database on every request.
package cache

import (
	"sync"
	"time"

	"mbg-project/internal/metric"
	"mbg-project/internal/models"
)

type cacheItem struct {
	data      *models.Product
	expiresAt int64
}

type ProductCache struct {
	items             map[string]cacheItem
	defaultExpiration time.Duration
	cleanupInterval   time.Duration
	sync.RWMutex
	done chan struct{}
}

func NewProductCache(defaultExpiration, cleanupInterval time.Duration) *ProductCache {
	c := &ProductCache{
		items:             make(map[string]cacheItem),
		defaultExpiration: defaultExpiration,
		cleanupInterval:   cleanupInterval,
		done:              make(chan struct{}),
	}

	// janitor goroutine evicting expired entries
	go c.gc()

	return c
}

func (ch *ProductCache) Set(id string, product *models.Product) {
	ch.Lock()
	defer ch.Unlock()
	_, exists := ch.items[id]
	expiration := time.Now().Add(ch.defaultExpiration).UnixNano()
	ch.items[id] = cacheItem{
		data:      product,
		expiresAt: expiration,
	}
	if !exists {
		metric.CacheSize.Inc()
	}
}

func (ch *ProductCache) Get(id string) (*models.Product, bool) {
	ch.RLock()
	defer ch.RUnlock()

	res, ok := ch.items[id]
	if !ok {
		return nil, false
	}

	// present but expired counts as a miss
	if time.Now().UnixNano() > res.expiresAt {
		return nil, false
	}

	return res.data, true
}

// Delete drops an entry eagerly, used when a product is updated or removed so
// stale stock figures do not outlive the write.
func (ch *ProductCache) Delete(id string) {
	ch.Lock()
	defer ch.Unlock()
	if _, exists := ch.items[id]; exists {
		delete(ch.items, id)
		metric.CacheSize.Dec()
	}
}

func (ch *ProductCache) gc() {
	ticker := time.NewTicker(ch.cleanupInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ch.done:
			return
		case <-ticker.C:
			ch.Lock()
			now := time.Now().UnixNano()
			for key, item := range ch.items {
				if now > item.expiresAt {
					metric.CacheSize.Dec()
					delete(ch.items, key)
				}
			}
			ch.Unlock()
		}
	}
}

func (ch *ProductCache) Stop() {
	close(ch.done)
}
