package domain

import (
	"strings"
)

// NormalizeWriting prepares a word writing for comparison:
// trims leading/trailing whitespace and lowercases. Diacritics, hyphens,
// and apostrophes are preserved.
func NormalizeWriting(writing string) string {
	return strings.ToLower(strings.TrimSpace(writing))
}

// NormalizeWritings maps NormalizeWriting over a slice, dropping entries
// that normalize to the empty string, and returns the result as a set.
func NormalizeWritings(writings []string) map[string]struct{} {
	set := make(map[string]struct{}, len(writings))
	for _, w := range writings {
		n := NormalizeWriting(w)
		if n == "" {
			continue
		}
		set[n] = struct{}{}
	}
	return set
}
