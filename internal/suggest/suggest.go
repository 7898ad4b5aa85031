// Package suggest offers "did you mean?" typo suggestions over a corpus's
// display keys using sahilm/fuzzy. It sits entirely outside
// internal/hybridrank: its scores never feed the ranking engine's fusion,
// weighting, or exact-match logic, and it does no stemming or synonym
// expansion of its own.
package suggest

import (
	"github.com/mira-tools/hybridrank/internal/constants"
	"github.com/mira-tools/hybridrank/internal/hybridrank"

	"github.com/sahilm/fuzzy"
)

// Suggester proposes alternate display keys for a query that returned no
// ranked results.
type Suggester struct {
	displays []string
}

// NewSuggester builds a Suggester from a corpus's rows, collecting every
// row's display key and aliases as candidate terms.
func NewSuggester(rows []hybridrank.Row) *Suggester {
	seen := make(map[string]bool)
	var displays []string
	for _, row := range rows {
		if row.Display != "" && !seen[row.Display] {
			seen[row.Display] = true
			displays = append(displays, row.Display)
		}
		for _, alias := range row.Aliases {
			if alias != "" && !seen[alias] {
				seen[alias] = true
				displays = append(displays, alias)
			}
		}
	}
	return &Suggester{displays: displays}
}

// Suggest returns up to maxSuggestions display keys fuzzy-matching query,
// filtered to matches whose score clears constants.FuzzySuggestionThreshold.
// A maxSuggestions of 0 uses constants.DefaultMaxSuggestions.
func (s *Suggester) Suggest(query string, maxSuggestions int) []string {
	if maxSuggestions <= 0 {
		maxSuggestions = constants.DefaultMaxSuggestions
	}

	matches := fuzzy.Find(query, s.displays)

	var suggestions []string
	for _, match := range matches {
		if match.Score < constants.FuzzySuggestionThreshold {
			continue
		}
		suggestions = append(suggestions, s.displays[match.Index])
		if len(suggestions) >= maxSuggestions {
			break
		}
	}

	return suggestions
}
