package constants

import (
	"testing"
	"time"
)

func TestRankingEngineDefaults(t *testing.T) {
	if DefaultGramSize < 2 {
		t.Errorf("DefaultGramSize = %d, expected at least 2", DefaultGramSize)
	}

	if DefaultThreshold < 0 || DefaultThreshold > 1 {
		t.Errorf("DefaultThreshold = %v, expected within [0,1]", DefaultThreshold)
	}

	if DefaultLimit <= 0 {
		t.Errorf("DefaultLimit = %d, expected positive value", DefaultLimit)
	}
}

func TestExactMatchScoreSentinel(t *testing.T) {
	if ExactMatchScore <= 1.0 {
		t.Errorf("ExactMatchScore = %v, expected a sentinel well above the [0,1] fused-score range", ExactMatchScore)
	}

	if ExactMatchRawThreshold <= 0.9 || ExactMatchRawThreshold >= 1.0 {
		t.Errorf("ExactMatchRawThreshold = %v, expected a bar near but below 1.0", ExactMatchRawThreshold)
	}
}

func TestHistoryDefaults(t *testing.T) {
	if DefaultHistorySize <= 0 {
		t.Errorf("DefaultHistorySize = %d, expected positive value", DefaultHistorySize)
	}
}

func TestSuggestionDefaults(t *testing.T) {
	if DefaultMaxSuggestions <= 0 {
		t.Errorf("DefaultMaxSuggestions = %d, expected positive value", DefaultMaxSuggestions)
	}

	if FuzzySuggestionThreshold >= 0 {
		t.Errorf("FuzzySuggestionThreshold = %d, expected a negative sahilm/fuzzy score bar", FuzzySuggestionThreshold)
	}
}

func TestCacheSettings(t *testing.T) {
	if DefaultCacheTTL <= 0 {
		t.Errorf("DefaultCacheTTL = %v, expected positive duration", DefaultCacheTTL)
	}

	if DefaultCacheTTL > time.Hour {
		t.Errorf("DefaultCacheTTL = %v, expected reasonable duration (<=1 hour)", DefaultCacheTTL)
	}

	expectedTTL := 5 * time.Minute
	if DefaultCacheTTL != expectedTTL {
		t.Errorf("DefaultCacheTTL = %v, expected %v", DefaultCacheTTL, expectedTTL)
	}

	if DefaultCacheCapacity <= 0 {
		t.Errorf("DefaultCacheCapacity = %d, expected positive value", DefaultCacheCapacity)
	}
}

func TestFileSizeLimits(t *testing.T) {
	if MaxQueryLength <= 0 {
		t.Errorf("MaxQueryLength = %d, expected positive value", MaxQueryLength)
	}

	if MaxQueryLength < 100 {
		t.Errorf("MaxQueryLength = %d, expected at least 100 characters", MaxQueryLength)
	}

	if MaxQueryLength > 10000 {
		t.Errorf("MaxQueryLength = %d, expected reasonable limit (<=10000)", MaxQueryLength)
	}
}
