package testutil

import (
	"runtime"
	"testing"
	"time"

	"github.com/mira-tools/hybridrank/internal/hybridrank"
)

// TestHelper provides generic timeout and panic-assertion helpers.
type TestHelper struct {
	t *testing.T
}

// NewTestHelper creates a TestHelper bound to t.
func NewTestHelper(t *testing.T) *TestHelper {
	return &TestHelper{t: t}
}

// WithTimeout runs testFunc and fails t if it doesn't return within timeout.
func (th *TestHelper) WithTimeout(timeout time.Duration, testFunc func()) {
	th.t.Helper()
	done := make(chan struct{})

	go func() {
		defer close(done)
		testFunc()
	}()

	select {
	case <-done:
	case <-time.After(timeout):
		th.t.Fatalf("test timed out after %v", timeout)
	}
}

// ExpectPanic fails t if testFunc does not panic.
func (th *TestHelper) ExpectPanic(testFunc func()) {
	th.t.Helper()
	defer func() {
		if r := recover(); r == nil {
			th.t.Error("expected a panic, but none occurred")
		}
	}()
	testFunc()
}

// ExpectNoPanic fails t if testFunc panics.
func (th *TestHelper) ExpectNoPanic(testFunc func()) {
	th.t.Helper()
	defer func() {
		if r := recover(); r != nil {
			th.t.Errorf("unexpected panic: %v", r)
		}
	}()
	testFunc()
}

// IndexHelper bundles build/search assertions against a hybridrank.Index.
type IndexHelper struct{}

// NewIndexHelper creates an IndexHelper.
func NewIndexHelper() *IndexHelper {
	return &IndexHelper{}
}

// BuildTestIndex builds an index from rows with a sensible default
// BuildConfig, failing t on any build error.
func (ih *IndexHelper) BuildTestIndex(t *testing.T, rows []Row) *hybridrank.Index {
	t.Helper()
	ix, err := hybridrank.Build(rows, hybridrank.BuildConfig{GramSize: 2})
	if err != nil {
		t.Fatalf("failed to build test index: %v", err)
	}
	return ix
}

// AssertContainsDisplay fails t unless results contains an entry whose
// Display equals want.
func AssertContainsDisplay(t *testing.T, results []hybridrank.Result, want string) {
	t.Helper()
	for _, r := range results {
		if r.Display == want {
			return
		}
	}
	t.Errorf("expected results to contain display %q, got %+v", want, results)
}

// AssertScoreRange fails t unless minScore <= score <= maxScore.
func AssertScoreRange(t *testing.T, score, minScore, maxScore float64) {
	t.Helper()
	if score < minScore || score > maxScore {
		t.Errorf("expected score in range [%f, %f], got %f", minScore, maxScore, score)
	}
}

// AssertResultCount fails t unless len(results) equals expected.
func AssertResultCount(t *testing.T, results []hybridrank.Result, expected int) {
	t.Helper()
	if len(results) != expected {
		t.Errorf("expected %d results, got %d", expected, len(results))
	}
}

// BenchmarkHelper runs repeated Search calls against a pre-built index.
type BenchmarkHelper struct {
	index *hybridrank.Index
}

// NewBenchmarkHelper creates a BenchmarkHelper for ix.
func NewBenchmarkHelper(ix *hybridrank.Index) *BenchmarkHelper {
	return &BenchmarkHelper{index: ix}
}

// BenchmarkSearch runs b.N searches for query with the given limit.
func (bh *BenchmarkHelper) BenchmarkSearch(b *testing.B, query string, limit int) {
	for i := 0; i < b.N; i++ {
		bh.index.Search(query, 0, limit)
	}
}

// MeasureMemoryUsage runs testFunc and returns the heap size before and
// after, forcing a GC on both sides to reduce noise.
func MeasureMemoryUsage(testFunc func()) (before, after uint64) {
	var m runtime.MemStats

	runtime.GC()
	runtime.ReadMemStats(&m)
	before = m.Alloc

	testFunc()

	runtime.GC()
	runtime.ReadMemStats(&m)
	after = m.Alloc

	return before, after
}
