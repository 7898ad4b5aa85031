package hybridrank

import "strings"

// ValidCharSet decides which characters survive escapeBlank. Characters not
// in the set are replaced with a space, so a following trim can collapse
// boundary noise left by stripped punctuation.
type ValidCharSet struct {
	allowed map[rune]bool
}

// defaultValidChars accepts ASCII letters, ASCII digits, and a small set of
// punctuation that commonly appears inside search terms (spaces, hyphens,
// underscores, dots, apostrophes, ampersands, slashes). It is deliberately permissive — the set exists to strip control
// and formatting noise, not to enforce a strict alphabet.
func defaultValidChars() *ValidCharSet {
	vc := &ValidCharSet{allowed: make(map[rune]bool, 96)}
	for r := 'a'; r <= 'z'; r++ {
		vc.allowed[r] = true
	}
	for r := 'A'; r <= 'Z'; r++ {
		vc.allowed[r] = true
	}
	for r := '0'; r <= '9'; r++ {
		vc.allowed[r] = true
	}
	for _, r := range " -_.'&/" {
		vc.allowed[r] = true
	}
	return vc
}

// NewValidCharSet builds a ValidCharSet from an explicit allowed-rune list.
// Pass it to BuildConfig.ValidChars to replace the default before Build —
// changing it after Build is undefined, per the escapeBlank contract.
func NewValidCharSet(allowed string) *ValidCharSet {
	vc := &ValidCharSet{allowed: make(map[rune]bool, len(allowed))}
	for _, r := range allowed {
		vc.allowed[r] = true
	}
	return vc
}

func (vc *ValidCharSet) isValid(r rune) bool {
	if vc == nil {
		return true
	}
	return vc.allowed[r]
}

// escapeBlank replaces every rune not in vc with a space.
func escapeBlank(s string, vc *ValidCharSet) string {
	if vc == nil {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if vc.isValid(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}
	return b.String()
}

// normalizeTerm applies the build-time normalization pipeline: trim,
// escapeBlank, trim again (to absorb boundary noise introduced by the
// escape pass), uppercase.
func normalizeTerm(s string, vc *ValidCharSet) string {
	s = strings.TrimSpace(s)
	s = escapeBlank(s, vc)
	s = strings.TrimSpace(s)
	return strings.ToUpper(s)
}
