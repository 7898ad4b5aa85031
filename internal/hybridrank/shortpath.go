package hybridrank

import (
	"runtime"
	"sync"
)

// scoreShortPath runs the edit-distance kernel (C5) across the scan set S
// in parallel shards and returns scoreShort : TermID -> match/|q|.
//
// S is shortSet, unless |q| <= gramSize, in which case S is shortSet union
// longSet — the n-gram path becomes unreliable for very short queries and
// the scorer falls back to a full scan.
func scoreShortPath(pool *Pool, class *Classification, query string, gramSize, longest int) map[TermID]float64 {
	var scanSet []TermID
	if len([]rune(query)) <= gramSize {
		scanSet = make([]TermID, 0, len(class.shortIDs)+len(class.longIDs))
		scanSet = append(scanSet, class.shortIDs...)
		scanSet = append(scanSet, class.longIDs...)
	} else {
		scanSet = class.shortIDs
	}

	if len(scanSet) == 0 {
		return nil
	}

	workers := runtime.NumCPU()
	if workers < 1 {
		workers = 1
	}
	if workers > len(scanSet) {
		workers = len(scanSet)
	}

	shardSize := (len(scanSet) + workers - 1) / workers
	results := make([]map[TermID]float64, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * shardSize
		end := start + shardSize
		if start >= len(scanSet) {
			break
		}
		if end > len(scanSet) {
			end = len(scanSet)
		}

		wg.Add(1)
		go func(shard []TermID, slot int) {
			defer wg.Done()
			scratch := NewScratch(longest)
			local := make(map[TermID]float64, len(shard))
			for _, id := range shard {
				local[id] = editSimilarity(query, pool.String(id), scratch)
			}
			results[slot] = local
		}(scanSet[start:end], w)
	}
	wg.Wait()

	// Shards are keyed by disjoint TermID ranges, so merging is a plain
	// union — no conflict resolution needed.
	merged := make(map[TermID]float64, len(scanSet))
	for _, shard := range results {
		for id, score := range shard {
			merged[id] = score
		}
	}
	return merged
}
