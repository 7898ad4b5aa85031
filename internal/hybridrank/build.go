package hybridrank

import (
	"sort"
	"strings"
)

// Row is one input record: a display key plus zero or more aliases, each
// optionally weighted. Weights is keyed by cell index — 0 for the
// display's own weight, 1..len(Aliases) for the corresponding alias — and
// defaults to 1.0 for any index not present. A weight of exactly 0.0 drops
// that (alias, display) pair from the built index (ZeroWeight
// disposition).
type Row struct {
	Display string
	Aliases []string
	Weights map[int]float64
}

func (r Row) weightFor(cell int) float64 {
	if r.Weights == nil {
		return 1.0
	}
	if w, ok := r.Weights[cell]; ok {
		return w
	}
	return 1.0
}

// BuildConfig controls gram size and the character set escapeBlank uses
// during normalization. Zero-value GramSize is rejected; a nil ValidChars
// falls back to defaultValidChars().
type BuildConfig struct {
	GramSize   int
	ValidChars *ValidCharSet
	Logger     Logger
}

// Build constructs an immutable Index from rows. It rejects the request
// (InvalidConfig) only when GramSize < 2 or len(rows) < 2; otherwise it
// silently skips malformed rows (empty-after-trim display) and returns a
// populated — possibly small — Index. Build is total: it either succeeds
// (possibly with zero entries) or returns a non-indexed Index alongside
// ErrInvalidConfig.
func Build(rows []Row, cfg BuildConfig) (*Index, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = noopLogger{}
	}
	vc := cfg.ValidChars
	if vc == nil {
		vc = defaultValidChars()
	}

	if cfg.GramSize < 2 || len(rows) < 2 {
		return &Index{indexed: false}, ErrInvalidConfig
	}

	// Transient string-keyed accumulation, per §4.1: "Register" accumulates
	// entries in upperKey -> list-of-displays and upperKey -> (display ->
	// weight) maps. Kept as plain strings here; TermIDs are assigned only
	// after every row has been processed, so the pool's dense enumeration
	// order never depends on a particular row's position.
	type pendingEntry struct {
		display string // trimmed, original case
		weight  float64
		isSelf  bool // true iff this entry is the row's own display->display registration
	}
	pending := make(map[string][]pendingEntry) // upperKey -> entries

	register := func(upperKey, display string, weight float64, isSelf bool) {
		if upperKey == "" {
			return
		}
		pending[upperKey] = append(pending[upperKey], pendingEntry{display: display, weight: weight, isSelf: isSelf})
	}

	for _, row := range rows {
		display := strings.TrimSpace(row.Display)
		if display == "" {
			logger.Printf("hybridrank: skipping row with empty display")
			continue
		}

		upperKey := normalizeTerm(display, vc)
		if w := row.weightFor(0); w != 0 && upperKey != "" {
			register(upperKey, display, w, true)
		}

		for i, alias := range row.Aliases {
			uQ := normalizeTerm(alias, vc)
			if uQ == "" {
				continue
			}
			if w := row.weightFor(i + 1); w != 0 {
				register(uQ, display, w, false)
			}
		}
	}

	// Build the pool: union of every search-term key and every display
	// string that appears, deduplicated. TermID assignment walks the
	// pending keys in sorted order rather than map iteration order, so
	// build(rows) produces the same pool (and so the same tie-break
	// ordering on equal scores) every time for the same rows.
	upperKeys := make([]string, 0, len(pending))
	for upperKey := range pending {
		upperKeys = append(upperKeys, upperKey)
	}
	sort.Strings(upperKeys)

	pool := newPool(len(pending) * 2)
	for _, upperKey := range upperKeys {
		pool.intern(upperKey)
		for _, e := range pending[upperKey] {
			pool.intern(e.display)
		}
	}

	alias := newAliasMap()
	searchTermIDs := make([]TermID, 0, len(upperKeys))
	longest := 0
	for _, upperKey := range upperKeys {
		searchID, _ := pool.lookup(upperKey)
		searchTermIDs = append(searchTermIDs, searchID)
		if l := len(upperKey); l > longest {
			longest = l
		}
		for _, e := range pending[upperKey] {
			displayID, _ := pool.lookup(e.display)
			if l := len(e.display); l > longest {
				longest = l
			}
			alias.add(searchID, displayID, e.weight)
			if e.isSelf {
				alias.addSelf(displayID, e.weight)
			}
		}
	}

	class := classify(pool, searchTermIDs, cfg.GramSize)

	ngramIdx := newNgramIndex(cfg.GramSize)
	for _, id := range class.longIDs {
		ngramIdx.insert(pool.String(id), id)
	}

	return &Index{
		indexed:  true,
		pool:     pool,
		alias:    alias,
		class:    class,
		ngrams:   ngramIdx,
		gramSize: cfg.GramSize,
		longest:  longest,
		validChars: vc,
	}, nil
}
