// Package hybridrank implements an in-memory approximate string-search index
// tuned for autocomplete-style lookups over moderately large dictionaries.
//
// A corpus of (display-key, alias, weight) rows is compiled once into an
// immutable Index via Build. Queries then fan out across two scoring
// kernels — a Levenshtein-based edit-distance path for short terms and an
// n-gram overlap path for long terms — whose per-term scores are fused,
// weighted, and reduced to a ranked top-K list of display keys.
//
// The index is read-only after Build: concurrent Search calls share it
// through a plain pointer, and the only per-query mutable state (scratch
// Levenshtein rows, per-shard score maps) lives on the call stack.
package hybridrank

// TermID is a dense, zero-based identifier for a normalized string in the
// pool. It is stable for the lifetime of the Index that produced it.
type TermID int32

// invalidTermID marks "no such term" in contexts where TermID can't use -1
// directly (e.g. as a map zero value would collide with TermID 0).
const invalidTermID TermID = -1
