// Package fold implements the case- and accent-insensitive matching used by
// every search in the data layer.
package fold

import (
	"strings"
	"unicode"

	"github.com/sahilm/fuzzy"
	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// String removes diacritics and applies Unicode case folding, so "Ö" and
// "o" compare equal. Nonspacing marks (Mn) are what NFD splits accents into.
func String(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC, cases.Fold())
	out, _, err := transform.String(t, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return out
}

// Contains reports whether needle occurs in haystack after folding both.
// An empty needle matches nothing.
func Contains(haystack, needle string) bool {
	needle = String(strings.TrimSpace(needle))
	if needle == "" {
		return false
	}
	return strings.Contains(String(haystack), needle)
}

// Rank returns the indexes of up to limit candidates that fuzzily match
// query, best first.
func Rank(query string, candidates []string, limit int) []int {
	matches := fuzzy.Find(String(query), foldAll(candidates))

	out := make([]int, 0, min(limit, len(matches)))
	for _, m := range matches {
		if len(out) == limit {
			break
		}
		out = append(out, m.Index)
	}
	return out
}

func foldAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = String(s)
	}
	return out
}
