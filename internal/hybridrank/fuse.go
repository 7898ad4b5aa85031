package hybridrank

// exactMatchScore is the sentinel applied when a display key's normalized
// form equals the normalized query and its raw score cleared the
// near-1.0 bar. It deliberately lies outside [0, 1] so callers can
// distinguish a promoted exact match from an ordinary fused score.
const exactMatchScore = 100.0

// exactMatchRawThreshold is the raw-score bar a (searchTerm, rawScore) pair
// must clear before its display keys are eligible for exact-match
// promotion.
const exactMatchRawThreshold = 0.999

// fuseInto merges raw per-search-term scores into entryScore, keyed by
// display-key TermID. Entries below threshold are discarded before
// weighting. This is called once for scoreShort and once for scoreLong, in
// that order; both passes write through max, so the final result does not
// depend on which path ran first (§5 ordering guarantee).
func fuseInto(entryScore map[TermID]float64, raw map[TermID]float64, threshold float64, alias *AliasMap, pool *Pool, normalizedQuery string, vc *ValidCharSet) {
	for searchTerm, rawScore := range raw {
		if rawScore < threshold {
			continue
		}
		for _, display := range alias.displaysFor(searchTerm) {
			weighted := alias.weight(searchTerm, display) * rawScore
			if weighted > entryScore[display] {
				entryScore[display] = weighted
			}

			if rawScore > exactMatchRawThreshold {
				displayNormalized := normalizeTerm(pool.String(display), vc)
				if displayNormalized == normalizedQuery {
					entryScore[display] = exactMatchScore
				}
			}
		}
	}
}

// fuseWildcard fills entryScore for the "*"/empty query: every display key
// that maps to itself (via its own row's display entry) gets its
// self-weight as a score; every other key gets no entry. Ties are left to
// the top-K selector.
func fuseWildcard(entryScore map[TermID]float64, alias *AliasMap) {
	for display, weight := range alias.selfWeight {
		entryScore[display] = weight
	}
}
