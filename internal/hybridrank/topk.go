package hybridrank

import "sort"

// Result is a single ranked display-key returned by Search. Score is in
// [0, 1], or exactly 100 for an exact-match promotion (§4.6).
type Result struct {
	Display string
	Score   float64
}

type scoredEntry struct {
	display TermID
	score   float64
}

// selectTopK collects entryScore into ranked (displayKey, score) pairs,
// descending by score, ties broken by ascending TermID for determinism. A
// limit of 0 means "no limit".
func selectTopK(entryScore map[TermID]float64, pool *Pool, limit int) []Result {
	if len(entryScore) == 0 {
		return nil
	}

	entries := make([]scoredEntry, 0, len(entryScore))
	for display, score := range entryScore {
		entries = append(entries, scoredEntry{display, score})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].score != entries[j].score {
			return entries[i].score > entries[j].score
		}
		return entries[i].display < entries[j].display
	})

	if limit > 0 && limit < len(entries) {
		entries = entries[:limit]
	}

	results := make([]Result, len(entries))
	for i, e := range entries {
		results[i] = Result{Display: pool.String(e.display), Score: e.score}
	}
	return results
}
