package data

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"sync"
	"time"
)

// cacheEntry represents a cached price API response.
type cacheEntry struct {
	days      []PriceDay
	expiresAt time.Time
}

// ResponseCache provides opt-in in-memory caching for price API responses,
// mostly to keep local iteration from hammering the upstream API. Enabled
// via ENABLE_PRICE_CACHE=true; TTL configurable via PRICE_CACHE_TTL.
type ResponseCache struct {
	mu    sync.RWMutex
	store map[string]cacheEntry
	ttl   time.Duration
}

var globalCache *ResponseCache
var cacheOnce sync.Once

// GetCache returns the global cache instance if caching is enabled,
// nil otherwise.
func GetCache() *ResponseCache {
	if os.Getenv("ENABLE_PRICE_CACHE") != "true" {
		return nil
	}

	cacheOnce.Do(func() {
		ttl := 1 * time.Hour
		if ttlStr := os.Getenv("PRICE_CACHE_TTL"); ttlStr != "" {
			if parsed, err := time.ParseDuration(ttlStr); err == nil {
				ttl = parsed
			}
		}

		globalCache = &ResponseCache{
			store: make(map[string]cacheEntry),
			ttl:   ttl,
		}

		go globalCache.cleanup()
	})

	return globalCache
}

// Get retrieves a cached response if available and not expired.
func (c *ResponseCache) Get(key string) ([]PriceDay, bool) {
	if c == nil {
		return nil, false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.store[key]
	if !exists || time.Now().After(entry.expiresAt) {
		return nil, false
	}
	return entry.days, true
}

// Set stores a response in the cache.
func (c *ResponseCache) Set(key string, days []PriceDay) {
	if c == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.store[key] = cacheEntry{
		days:      days,
		expiresAt: time.Now().Add(c.ttl),
	}
}

// cleanup periodically removes expired entries.
func (c *ResponseCache) cleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		c.mu.Lock()
		now := time.Now()
		for key, entry := range c.store {
			if now.After(entry.expiresAt) {
				delete(c.store, key)
			}
		}
		c.mu.Unlock()
	}
}

// GenerateCacheKey creates a deterministic cache key for one fetch.
func GenerateCacheKey(zone string, start, end time.Time) string {
	keyStr := fmt.Sprintf("%s:%s:%s",
		zone,
		start.Format("2006-01-02"),
		end.Format("2006-01-02"),
	)
	hash := sha256.Sum256([]byte(keyStr))
	return hex.EncodeToString(hash[:])
}
