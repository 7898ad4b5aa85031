package hybridrank

// scoreLongPath produces n-gram overlap scores by probing the NgramIndex
// with the query's grams. Returns nil if |q| < gramSize — the short path
// alone handles the query in that case.
func scoreLongPath(idx *NgramIndex, query string, gramSize int) map[TermID]float64 {
	queryGrams := grams(query, gramSize)
	if len(queryGrams) == 0 {
		return nil
	}

	raw := make(map[TermID]int)
	for _, gk := range queryGrams {
		for _, id := range idx.postingsFor(gk) {
			raw[id]++
		}
	}
	if len(raw) == 0 {
		return nil
	}

	n := float64(len(queryGrams))
	scores := make(map[TermID]float64, len(raw))
	for id, count := range raw {
		scores[id] = float64(count) / n
	}
	return scores
}
