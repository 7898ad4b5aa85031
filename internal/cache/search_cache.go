package cache

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/mira-tools/hybridrank/internal/constants"
)

// QueryResult mirrors hybridrank.Result without importing the engine
// package, the same way the teacher's cache avoided a circular import on
// its database package.
type QueryResult struct {
	Display string  `json:"display"`
	Score   float64 `json:"score"`
}

// QueryOptions captures the parameters that affect a query's outcome, used
// to build a cache key.
type QueryOptions struct {
	Threshold float64 `json:"threshold"`
	Limit     int     `json:"limit"`
}

// QueryCache provides caching for ranked-search results.
type QueryCache struct {
	cache     *LRUCache
	enabled   bool
	keyPrefix string
}

// NewQueryCache creates a new query result cache.
func NewQueryCache(capacity int, ttl time.Duration) *QueryCache {
	return &QueryCache{
		cache:     NewLRUCache(capacity, ttl),
		enabled:   true,
		keyPrefix: "query:",
	}
}

// Get retrieves cached results for a query.
func (qc *QueryCache) Get(query string, options QueryOptions) ([]QueryResult, bool) {
	if !qc.enabled {
		return nil, false
	}

	key := qc.generateCacheKey(query, options)
	if value, found := qc.cache.Get(key); found {
		if results, ok := value.([]QueryResult); ok {
			return results, true
		}
	}

	return nil, false
}

// Put stores results for a query.
func (qc *QueryCache) Put(query string, options QueryOptions, results []QueryResult) {
	if !qc.enabled || len(results) == 0 {
		return
	}

	key := qc.generateCacheKey(query, options)

	cached := make([]QueryResult, len(results))
	copy(cached, results)

	qc.cache.Put(key, cached)
}

// Invalidate removes all cached results (called when the index is rebuilt).
func (qc *QueryCache) Invalidate() {
	qc.cache.Clear()
}

// InvalidatePattern removes cached results whose key contains pattern.
func (qc *QueryCache) InvalidatePattern(pattern string) int {
	keys := qc.cache.Keys()
	removed := 0

	for _, key := range keys {
		if strings.Contains(key, pattern) {
			if qc.cache.Delete(key) {
				removed++
			}
		}
	}

	return removed
}

// Enable enables or disables the cache.
func (qc *QueryCache) Enable(enabled bool) {
	qc.enabled = enabled
}

// IsEnabled returns whether the cache is enabled.
func (qc *QueryCache) IsEnabled() bool {
	return qc.enabled
}

// Stats returns cache statistics.
func (qc *QueryCache) Stats() CacheStats {
	return qc.cache.Stats()
}

// Size returns the current cache size.
func (qc *QueryCache) Size() int {
	return qc.cache.Size()
}

// CleanupExpired removes expired entries.
func (qc *QueryCache) CleanupExpired() int {
	return qc.cache.CleanupExpired()
}

// generateCacheKey creates a unique cache key for the query and options.
func (qc *QueryCache) generateCacheKey(query string, options QueryOptions) string {
	normalizedQuery := strings.ToLower(strings.TrimSpace(query))

	keyData := struct {
		Query   string       `json:"query"`
		Options QueryOptions `json:"options"`
	}{
		Query:   normalizedQuery,
		Options: options,
	}

	jsonData, err := json.Marshal(keyData)
	if err != nil {
		return fmt.Sprintf("%s%s:%d", qc.keyPrefix, normalizedQuery, options.Limit)
	}

	hash := sha256.Sum256(jsonData)
	return fmt.Sprintf("%s%x", qc.keyPrefix, hash)
}

// CacheManager manages the query cache instance.
type CacheManager struct {
	queryCache *QueryCache
	enabled    bool
}

// NewCacheManager creates a new cache manager.
func NewCacheManager() *CacheManager {
	return &CacheManager{
		queryCache: NewQueryCache(
			constants.DefaultCacheCapacity,
			constants.DefaultCacheTTL,
		),
		enabled: true,
	}
}

// GetQueryCache returns the query cache instance.
func (cm *CacheManager) GetQueryCache() *QueryCache {
	return cm.queryCache
}

// Enable enables or disables all caches.
func (cm *CacheManager) Enable(enabled bool) {
	cm.enabled = enabled
	cm.queryCache.Enable(enabled)
}

// IsEnabled returns whether caching is enabled.
func (cm *CacheManager) IsEnabled() bool {
	return cm.enabled
}

// InvalidateAll clears all caches.
func (cm *CacheManager) InvalidateAll() {
	cm.queryCache.Invalidate()
}

// GetStats returns statistics for all caches.
func (cm *CacheManager) GetStats() map[string]CacheStats {
	return map[string]CacheStats{
		"query": cm.queryCache.Stats(),
	}
}

// CleanupExpired removes expired entries from all caches.
func (cm *CacheManager) CleanupExpired() map[string]int {
	return map[string]int{
		"query": cm.queryCache.CleanupExpired(),
	}
}
