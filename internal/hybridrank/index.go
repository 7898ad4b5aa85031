package hybridrank

import "sync"

// Index is the immutable, built-once result of Build. The zero value
// (indexed == false) answers every Search with an empty slice — the
// NotIndexed disposition.
type Index struct {
	indexed  bool
	pool     *Pool
	alias    *AliasMap
	class    *Classification
	ngrams   *NgramIndex
	gramSize int
	longest  int

	validChars *ValidCharSet
}

// Search returns up to limit ranked display keys for query, with scores in
// [0, 1] or exactly 100 for an exact match. threshold filters on the raw
// per-term score from the edit-distance/n-gram kernels, not the weighted
// fused score (§4.6, §9 open question — the raw-score comparison is
// preserved deliberately). A limit of 0 means "no limit".
//
// Search never fails: it returns nil if the index was never built, the
// normalized query is empty and not the wildcard, or nothing clears
// threshold.
func (ix *Index) Search(query string, threshold float64, limit int) []Result {
	if ix == nil || !ix.indexed {
		return nil
	}

	if query == "" || query == "*" {
		entryScore := make(map[TermID]float64)
		fuseWildcard(entryScore, ix.alias)
		return selectTopK(entryScore, ix.pool, limit)
	}

	normalizedQuery := normalizeTerm(query, ix.validChars)
	if normalizedQuery == "" {
		return nil
	}

	var scoreShort, scoreLong map[TermID]float64
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		scoreShort = scoreShortPath(ix.pool, ix.class, normalizedQuery, ix.gramSize, ix.longest)
	}()
	go func() {
		defer wg.Done()
		if len([]rune(normalizedQuery)) >= ix.gramSize {
			scoreLong = scoreLongPath(ix.ngrams, normalizedQuery, ix.gramSize)
		}
	}()
	wg.Wait()

	entryScore := make(map[TermID]float64)
	fuseInto(entryScore, scoreShort, threshold, ix.alias, ix.pool, normalizedQuery, ix.validChars)
	fuseInto(entryScore, scoreLong, threshold, ix.alias, ix.pool, normalizedQuery, ix.validChars)

	if len(entryScore) == 0 {
		return nil
	}
	return selectTopK(entryScore, ix.pool, limit)
}

// Size returns the number of search terms with at least one resolvable
// display key (the number of entries in AliasMap).
func (ix *Index) Size() int {
	if ix == nil || !ix.indexed {
		return 0
	}
	return ix.alias.size()
}

// LibSize returns the number of distinct grams in the n-gram index.
func (ix *Index) LibSize() int {
	if ix == nil || !ix.indexed {
		return 0
	}
	return ix.ngrams.libSize()
}

// Indexed reports whether the index was successfully built.
func (ix *Index) Indexed() bool {
	return ix != nil && ix.indexed
}
