package hybridrank

import "github.com/cespare/xxhash/v2"

// gramKey is a fixed-width digest of a length-g character window. Using a
// hash instead of the raw substring keeps posting-list keys a constant
// size regardless of gram size, at the cost of tolerating (rare) hash
// collisions as a false-positive source, per the Gram entity's contract.
type gramKey uint64

// hashGram hashes one gram; s is the whole g-rune window, already cut out
// by the caller.
func hashGram(s string) gramKey {
	return gramKey(xxhash.Sum64String(s))
}

// NgramIndex maps a gram to the sorted, deduplicated set of long-term
// TermIds whose normalized string contains that gram at least once.
type NgramIndex struct {
	gramSize int
	postings map[gramKey][]TermID
}

func newNgramIndex(gramSize int) *NgramIndex {
	return &NgramIndex{
		gramSize: gramSize,
		postings: make(map[gramKey][]TermID),
	}
}

// grams returns the gram keys of s in left-to-right order, duplicates kept.
// Runes are used (not bytes) so multi-byte characters are not split mid
// gram.
func grams(s string, g int) []gramKey {
	runes := []rune(s)
	if len(runes) < g {
		return nil
	}
	out := make([]gramKey, 0, len(runes)-g+1)
	for i := 0; i+g <= len(runes); i++ {
		out = append(out, hashGram(string(runes[i:i+g])))
	}
	return out
}

// insert adds term's grams to the index, deduplicating so a gram repeating
// inside term still yields exactly one membership (invariant 3).
func (idx *NgramIndex) insert(term string, id TermID) {
	seen := make(map[gramKey]bool)
	for _, gk := range grams(term, idx.gramSize) {
		if seen[gk] {
			continue
		}
		seen[gk] = true
		idx.postings[gk] = append(idx.postings[gk], id)
	}
}

// postingsFor returns the (unordered) posting list for a gram key, or nil
// if the gram was never indexed.
func (idx *NgramIndex) postingsFor(gk gramKey) []TermID {
	return idx.postings[gk]
}

// libSize returns the number of distinct grams in the index.
func (idx *NgramIndex) libSize() int {
	return len(idx.postings)
}
