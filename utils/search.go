package utils

import (
	"strings"

	"github.com/mozillazg/go-unidecode"
)

// NormalizeSearch folds a string for accent-insensitive matching, so a
// query for "joao" finds "João".
func NormalizeSearch(s string) string {
	return strings.ToLower(strings.TrimSpace(unidecode.Unidecode(s)))
}

// MatchesSearch reports whether the haystack contains the query after
// both are folded. An empty query matches everything.
func MatchesSearch(haystack, query string) bool {
	q := NormalizeSearch(query)
	if q == "" {
		return true
	}
	return strings.Contains(NormalizeSearch(haystack), q)
}
