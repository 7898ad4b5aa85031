package testutil

import (
	"fmt"
	"math/rand"
)

// TestQuery pairs a query string with the expectations a test wants to
// assert against its results.
type TestQuery struct {
	Query            string
	ExpectedResults  int
	MinScore         float64
	MaxScore         float64
	ShouldContain    []string
	ShouldNotContain []string
}

// DataGenerator produces randomized rows and queries from a seeded RNG,
// for stress and fuzz testing the ranking engine.
type DataGenerator struct {
	rng *rand.Rand
}

// NewDataGenerator creates a DataGenerator with the fixed seed 1, so it
// produces the same sequence on every run.
func NewDataGenerator() *DataGenerator {
	return &DataGenerator{rng: rand.New(rand.NewSource(1))}
}

// NewDataGeneratorWithSeed creates a DataGenerator with a fixed seed, for
// reproducible test runs.
func NewDataGeneratorWithSeed(seed int64) *DataGenerator {
	return &DataGenerator{rng: rand.New(rand.NewSource(seed))}
}

var wordBank = []string{
	"apple", "banana", "cherry", "date", "elderberry", "fig", "grape",
	"honeydew", "kiwi", "lemon", "mango", "nectarine", "orange", "papaya",
	"quince", "raspberry", "strawberry", "tangerine", "ugli", "vanilla",
}

func (g *DataGenerator) randomWord() string {
	return wordBank[g.rng.Intn(len(wordBank))]
}

// GenerateRandomRows generates count rows with random display names and
// zero to two aliases each.
func (g *DataGenerator) GenerateRandomRows(count int) []Row {
	rows := make([]Row, count)
	for i := 0; i < count; i++ {
		display := fmt.Sprintf("%s %s %d", g.randomWord(), g.randomWord(), i)
		aliasCount := g.rng.Intn(3)
		aliases := make([]string, aliasCount)
		for j := range aliases {
			aliases[j] = g.randomWord()
		}
		rows[i] = Row{Display: display, Aliases: aliases}
	}
	return rows
}

// GenerateEdgeCaseRows returns rows covering boundary conditions: an
// empty display (skipped by Build), whitespace-only display, a very long
// display, duplicate displays, and unicode content.
func (g *DataGenerator) GenerateEdgeCaseRows() []Row {
	return []Row{
		{Display: ""},
		{Display: "   "},
		{Display: "a"},
		{Display: "duplicate entry"},
		{Display: "duplicate entry"},
		{Display: "café résumé naïve"},
		{Display: fmt.Sprintf("%0200d", 0)},
	}
}

// GenerateTestQueries generates count queries drawn from the word bank,
// each expecting at least one result.
func (g *DataGenerator) GenerateTestQueries(count int) []TestQuery {
	queries := make([]TestQuery, count)
	for i := 0; i < count; i++ {
		queries[i] = TestQuery{
			Query:           g.randomWord(),
			ExpectedResults: 1,
			MinScore:        0,
			MaxScore:        100,
		}
	}
	return queries
}

// GenerateStressTestData generates a matched pair of a large row corpus
// and a batch of queries for load testing Build and Search.
func (g *DataGenerator) GenerateStressTestData(rowCount, queryCount int) ([]Row, []TestQuery) {
	return g.GenerateRandomRows(rowCount), g.GenerateTestQueries(queryCount)
}
