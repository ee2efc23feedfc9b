// internal/quickaccess/suggest.go
package quickaccess

import (
	"context"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

const (
	minSuggestQuery = 2
	maxSuggestions  = 5
)

// Suggest matches query against favorites then recents (case-insensitive
// substring), de-duplicated, at most five results.
func (s *Store) Suggest(ctx context.Context, query string) []string {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < minSuggestQuery {
		return []string{}
	}
	fold := cases.Fold()
	q := fold.String(query)

	seen := make(map[string]bool)
	out := make([]string, 0, maxSuggestions)
	all := append(s.Favorites.List(ctx), s.Recents.List(ctx)...)
	for _, c := range all {
		k := fold.String(c)
		if seen[k] {
			continue
		}
		seen[k] = true
		if strings.Contains(k, q) {
			out = append(out, c)
			if len(out) == maxSuggestions {
				break
			}
		}
	}
	return out
}
