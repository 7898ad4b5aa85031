package hybridrank

import "sort"

// Classification partitions search-term TermIds into a short set (edit
// distance only) and a long set (n-gram eligible), per invariant 5: a
// search term is long iff its normalized length is at least 2*gramSize.
type Classification struct {
	shortIDs []TermID // ascending, for deterministic iteration
	longIDs  []TermID // ascending
	isLong   map[TermID]bool
}

// classify partitions searchTermIDs (not display-only ids) using pool and
// gramSize. Output slices are sorted ascending by TermID so downstream
// sharding sees a stable, reproducible order.
func classify(pool *Pool, searchTermIDs []TermID, gramSize int) *Classification {
	c := &Classification{
		isLong: make(map[TermID]bool, len(searchTermIDs)),
	}
	threshold := 2 * gramSize
	for _, id := range searchTermIDs {
		if len([]rune(pool.String(id))) >= threshold {
			c.longIDs = append(c.longIDs, id)
			c.isLong[id] = true
		} else {
			c.shortIDs = append(c.shortIDs, id)
		}
	}
	sort.Slice(c.shortIDs, func(i, j int) bool { return c.shortIDs[i] < c.shortIDs[j] })
	sort.Slice(c.longIDs, func(i, j int) bool { return c.longIDs[i] < c.longIDs[j] })
	return c
}
