package hybridrank

// Pool interns normalized strings and assigns each a dense, stable TermID.
// It is the sole owner of string storage for an Index; every other
// structure (AliasMap, WeightMap, NgramIndex, Classification) is keyed by
// TermID rather than by pointer, so nothing in the built Index can be
// invalidated by later mutation of the source strings.
type Pool struct {
	strings []string
	index   map[string]TermID
}

// newPool creates an empty pool with room for the expected number of
// distinct strings.
func newPool(sizeHint int) *Pool {
	if sizeHint < 0 {
		sizeHint = 0
	}
	return &Pool{
		strings: make([]string, 0, sizeHint),
		index:   make(map[string]TermID, sizeHint),
	}
}

// intern returns the TermID for s, assigning a new one on first sight.
func (p *Pool) intern(s string) TermID {
	if id, ok := p.index[s]; ok {
		return id
	}
	id := TermID(len(p.strings))
	p.strings = append(p.strings, s)
	p.index[s] = id
	return id
}

// lookup returns the TermID for s without interning it.
func (p *Pool) lookup(s string) (TermID, bool) {
	id, ok := p.index[s]
	return id, ok
}

// String returns the normalized string for id. Callers must not retain the
// returned value beyond the Index's lifetime without copying — it borrows
// from the pool's backing array.
func (p *Pool) String(id TermID) string {
	if id < 0 || int(id) >= len(p.strings) {
		return ""
	}
	return p.strings[id]
}

// Len returns the number of distinct interned strings.
func (p *Pool) Len() int {
	return len(p.strings)
}
