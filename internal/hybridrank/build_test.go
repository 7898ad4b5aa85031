package hybridrank

import "testing"

func TestBuildRejectsSmallGramSize(t *testing.T) {
	rows := []Row{{Display: "apple"}, {Display: "banana"}}
	_, err := Build(rows, BuildConfig{GramSize: 1})
	if err != ErrInvalidConfig {
		t.Fatalf("expected ErrInvalidConfig for GramSize < 2, got %v", err)
	}
}

func TestBuildRejectsTooFewRows(t *testing.T) {
	rows := []Row{{Display: "apple"}}
	ix, err := Build(rows, BuildConfig{GramSize: 3})
	if err != ErrInvalidConfig {
		t.Fatalf("expected ErrInvalidConfig for < 2 rows, got %v", err)
	}
	if ix.Indexed() {
		t.Fatalf("expected a non-indexed Index on InvalidConfig")
	}
	if got := ix.Search("apple", 0, 5); got != nil {
		t.Fatalf("expected empty search results from a non-indexed Index, got %v", got)
	}
}

func TestBuildSkipsEmptyDisplayRows(t *testing.T) {
	rows := []Row{
		{Display: "apple"},
		{Display: "   "}, // skipped: empty after trim
		{Display: "banana"},
	}
	ix, err := Build(rows, BuildConfig{GramSize: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ix.Size() != 2 {
		t.Fatalf("expected 2 search terms after skipping the blank row, got %d", ix.Size())
	}
}

func TestBuildZeroWeightDropsPair(t *testing.T) {
	rows := []Row{
		{Display: "apple", Weights: map[int]float64{0: 0}},
		{Display: "banana"},
	}
	ix, err := Build(rows, BuildConfig{GramSize: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	results := ix.Search("apple", 0, 5)
	for _, r := range results {
		if r.Display == "apple" {
			t.Fatalf("expected apple to be dropped by its zero display weight, found it in results")
		}
	}
}

func TestBuildAliasResolvesToDisplay(t *testing.T) {
	rows := []Row{
		{Display: "apple", Aliases: []string{"aple"}},
		{Display: "banana"},
	}
	ix, err := Build(rows, BuildConfig{GramSize: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	results := ix.Search("aple", 0, 5)
	if len(results) == 0 || results[0].Display != "apple" {
		t.Fatalf("expected alias %q to resolve to display %q, got %v", "aple", "apple", results)
	}
}

func TestBuildClassificationRespectsGramSize(t *testing.T) {
	rows := []Row{
		{Display: "cat"},      // len 3, short for g=3 (threshold 6)
		{Display: "category"}, // len 8, long for g=3
	}
	ix, err := Build(rows, BuildConfig{GramSize: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ix.LibSize() == 0 {
		t.Fatalf("expected category's grams to populate the n-gram index")
	}
}
