package metrics

import (
	"fmt"
	"time"
)

// PerformanceMonitor tracks application performance metrics
type PerformanceMonitor struct {
	collector *MetricsCollector
	enabled   bool
}

// NewPerformanceMonitor creates a new performance monitor
func NewPerformanceMonitor() *PerformanceMonitor {
	return &PerformanceMonitor{
		collector: NewMetricsCollector(),
		enabled:   true,
	}
}

// Enable enables or disables performance monitoring
func (pm *PerformanceMonitor) Enable(enabled bool) {
	pm.enabled = enabled
}

// IsEnabled returns whether performance monitoring is enabled
func (pm *PerformanceMonitor) IsEnabled() bool {
	return pm.enabled
}

// RecordSearchOperation records metrics for a single Index.Search call.
func (pm *PerformanceMonitor) RecordSearchOperation(duration time.Duration, resultCount int, cacheHit bool, queryLength int) {
	if !pm.enabled {
		return
	}

	searchTimer := pm.collector.Timer("search_duration", map[string]string{
		"cache_hit": fmt.Sprintf("%t", cacheHit),
	})
	searchTimer.Histogram().Observe(float64(duration.Nanoseconds()) / 1e6) // milliseconds

	resultGauge := pm.collector.Gauge("search_results", nil)
	resultGauge.Set(float64(resultCount))

	queryLengthHist := pm.collector.Histogram("query_length", nil)
	queryLengthHist.Observe(float64(queryLength))

	searchCounter := pm.collector.Counter("searches_total", map[string]string{
		"cache_hit": fmt.Sprintf("%t", cacheHit),
	})
	searchCounter.Inc()

	if cacheHit {
		pm.collector.Counter("cache_hits_total", nil).Inc()
	} else {
		pm.collector.Counter("cache_misses_total", nil).Inc()
	}
}

// RecordBuildOperation records metrics for an Index build: how long it
// took, how many corpus rows went in, and the resulting pool and
// n-gram-index sizes (Index.Size and Index.LibSize).
func (pm *PerformanceMonitor) RecordBuildOperation(duration time.Duration, rowCount, poolSize, gramCount int) {
	if !pm.enabled {
		return
	}

	buildTimer := pm.collector.Timer("build_duration", nil)
	buildTimer.Histogram().Observe(float64(duration.Nanoseconds()) / 1e6) // milliseconds

	pm.collector.Gauge("build_rows", nil).Set(float64(rowCount))
	pm.collector.Gauge("build_pool_size", nil).Set(float64(poolSize))
	pm.collector.Gauge("build_gram_count", nil).Set(float64(gramCount))

	pm.collector.Counter("builds_total", nil).Inc()
}

// SearchStats summarizes the search and build metrics recorded so far.
type SearchStats struct {
	SearchCount    int64
	MeanSearchMs   float64
	P50SearchMs    float64
	P95SearchMs    float64
	CacheHitRatio  float64
	LastPoolSize   float64
	LastGramCount  float64
	LastBuildMs    float64
}

// Stats reads back the metrics recorded by RecordSearchOperation and
// RecordBuildOperation so far.
func (pm *PerformanceMonitor) Stats() SearchStats {
	searchHist := pm.collector.Timer("search_duration", map[string]string{"cache_hit": "true"}).Histogram()
	missHist := pm.collector.Timer("search_duration", map[string]string{"cache_hit": "false"}).Histogram()

	hits := pm.collector.Counter("cache_hits_total", nil).Value()
	misses := pm.collector.Counter("cache_misses_total", nil).Value()

	var ratio float64
	if total := hits + misses; total > 0 {
		ratio = float64(hits) / float64(total)
	}

	return SearchStats{
		SearchCount:   searchHist.Count() + missHist.Count(),
		MeanSearchMs:  (searchHist.Sum() + missHist.Sum()) / maxOne(searchHist.Count()+missHist.Count()),
		P50SearchMs:   missHist.Percentile(50),
		P95SearchMs:   missHist.Percentile(95),
		CacheHitRatio: ratio,
		LastPoolSize:  pm.collector.Gauge("build_pool_size", nil).Value(),
		LastGramCount: pm.collector.Gauge("build_gram_count", nil).Value(),
		LastBuildMs:   pm.collector.Timer("build_duration", nil).Histogram().Mean(),
	}
}

func maxOne(n int64) float64 {
	if n == 0 {
		return 1
	}
	return float64(n)
}

// String returns a one-line human-readable summary of the stats.
func (s SearchStats) String() string {
	return fmt.Sprintf("searches=%d mean=%.2fms p50=%.2fms p95=%.2fms cache_hit_ratio=%.2f pool=%d grams=%d last_build=%.2fms",
		s.SearchCount, s.MeanSearchMs, s.P50SearchMs, s.P95SearchMs, s.CacheHitRatio,
		int64(s.LastPoolSize), int64(s.LastGramCount), s.LastBuildMs)
}

// Global performance monitor instance
var defaultMonitor = NewPerformanceMonitor()

// RecordSearchOperation records a search against the package-level
// default monitor.
func RecordSearchOperation(duration time.Duration, resultCount int, cacheHit bool, queryLength int) {
	defaultMonitor.RecordSearchOperation(duration, resultCount, cacheHit, queryLength)
}

// RecordBuildOperation records an index build against the package-level
// default monitor.
func RecordBuildOperation(duration time.Duration, rowCount, poolSize, gramCount int) {
	defaultMonitor.RecordBuildOperation(duration, rowCount, poolSize, gramCount)
}

// Stats returns the package-level default monitor's accumulated stats.
func Stats() SearchStats {
	return defaultMonitor.Stats()
}

// EnablePerformanceMonitoring enables or disables the package-level
// default monitor.
func EnablePerformanceMonitoring(enabled bool) {
	defaultMonitor.Enable(enabled)
}
