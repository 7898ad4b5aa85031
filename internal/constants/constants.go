// Package constants defines application-wide constants and configuration values.
//
// This package centralizes all constant values used throughout the
// hybridrank application including:
//   - Ranking engine defaults (gram size, threshold, limit)
//   - The exact-match scoring sentinel
//   - Cache configuration values
//   - Outer-layer typo-suggestion parameters
//   - File size and query length limits
package constants

import "time"

// Ranking engine defaults.
const (
	DefaultGramSize  = 3
	DefaultThreshold = 0.0
	DefaultLimit     = 5

	// ExactMatchScore is the sentinel score a display key receives when the
	// query is literally its own name (normalized form match plus a raw
	// score above ExactMatchRawThreshold).
	ExactMatchScore = 100.0

	// ExactMatchRawThreshold is the raw per-term score bar a candidate
	// must clear before it is eligible for exact-match promotion.
	ExactMatchRawThreshold = 0.999
)

// Query and history defaults.
const (
	DefaultHistorySize = 100
)

// Outer-layer typo-suggestion constants (sahilm/fuzzy, kept outside the
// core ranking engine).
const (
	DefaultMaxSuggestions    = 3
	FuzzySuggestionThreshold = -20
)

// Cache settings.
const (
	DefaultCacheTTL      = 5 * time.Minute
	DefaultCacheCapacity = 1000 // Number of cached query results
)

// File size limits.
const (
	MaxQueryLength = 1000 // Maximum query length in characters
)
