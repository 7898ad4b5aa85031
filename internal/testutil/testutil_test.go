package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mira-tools/hybridrank/internal/hybridrank"
)

func TestGetSampleRows(t *testing.T) {
	rows := GetSampleRows()
	if len(rows) == 0 {
		t.Fatal("expected sample rows, got none")
	}
}

func TestCreateLargeTestCorpus(t *testing.T) {
	rows := CreateLargeTestCorpus(50)
	if len(rows) != 50 {
		t.Fatalf("expected 50 rows, got %d", len(rows))
	}
	if rows[0].Display == rows[1].Display {
		t.Error("expected variant suffixes to differentiate rows")
	}
}

func TestCreateMinimalTestCorpus(t *testing.T) {
	rows := CreateMinimalTestCorpus()
	if len(rows) < 2 {
		t.Fatalf("minimal corpus must satisfy the Build row floor, got %d", len(rows))
	}
}

func TestCreateEmptyTestCorpus(t *testing.T) {
	rows := CreateEmptyTestCorpus()
	if len(rows) != 0 {
		t.Fatalf("expected an empty corpus, got %d rows", len(rows))
	}
}

func TestSaveCorpusRoundTrips(t *testing.T) {
	dir, cleanup := CreateTempDir()
	defer cleanup()

	rows := []Row{
		{Display: "apple", Aliases: []string{"aple"}, Weights: map[int]float64{1: 0.5}},
		{Display: "banana"},
	}

	path := filepath.Join(dir, "corpus.yml")
	if err := SaveCorpus(rows, path); err != nil {
		t.Fatalf("failed to save corpus: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read back corpus: %v", err)
	}
	if len(data) == 0 {
		t.Error("expected non-empty corpus file")
	}
}

func TestTestHelperExpectPanic(t *testing.T) {
	th := NewTestHelper(t)
	th.ExpectPanic(func() {
		panic("boom")
	})
}

func TestTestHelperExpectNoPanic(t *testing.T) {
	th := NewTestHelper(t)
	th.ExpectNoPanic(func() {})
}

func TestTestHelperWithTimeout(t *testing.T) {
	th := NewTestHelper(t)
	th.WithTimeout(time.Second, func() {})
}

func TestIndexHelperBuildTestIndex(t *testing.T) {
	ih := NewIndexHelper()
	ix := ih.BuildTestIndex(t, CreateDefaultTestCorpus())

	results := ix.Search("git", 0, 5)
	AssertContainsDisplay(t, results, "commit changes with message")
}

func TestAssertScoreRange(t *testing.T) {
	AssertScoreRange(t, 50, 0, 100)
}

func TestAssertResultCount(t *testing.T) {
	AssertResultCount(t, []hybridrank.Result{{Display: "a", Score: 1}}, 1)
}

func TestDataGeneratorProducesReproducibleRows(t *testing.T) {
	g1 := NewDataGeneratorWithSeed(42)
	g2 := NewDataGeneratorWithSeed(42)

	rows1 := g1.GenerateRandomRows(10)
	rows2 := g2.GenerateRandomRows(10)

	for i := range rows1 {
		if rows1[i].Display != rows2[i].Display {
			t.Fatalf("expected identical displays at index %d for the same seed, got %q vs %q", i, rows1[i].Display, rows2[i].Display)
		}
	}
}

func TestDataGeneratorEdgeCaseRows(t *testing.T) {
	g := NewDataGenerator()
	rows := g.GenerateEdgeCaseRows()
	if len(rows) == 0 {
		t.Fatal("expected edge-case rows, got none")
	}
}

func TestDataGeneratorStressTestData(t *testing.T) {
	g := NewDataGeneratorWithSeed(7)
	rows, queries := g.GenerateStressTestData(20, 5)
	if len(rows) != 20 {
		t.Fatalf("expected 20 rows, got %d", len(rows))
	}
	if len(queries) != 5 {
		t.Fatalf("expected 5 queries, got %d", len(queries))
	}
}
