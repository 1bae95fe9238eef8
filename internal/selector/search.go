package selector

import (
	"strings"

	"golang.org/x/text/cases"
)

// SearchOptions tunes Search.
type SearchOptions struct {
	// Freeform appends one synthetic item per comma-separated token when the
	// query holds more than one token.
	Freeform bool
}

// Search returns the items whose value or label contains the query, ignoring
// case. A blank query matches nothing. With Freeform enabled the parsed
// freeform tokens are appended, and the result is deduplicated by value.
func Search(items []Item, query string, opts SearchOptions) []Item {
	q := strings.TrimSpace(query)
	if q == "" {
		return nil
	}

	fold := cases.Fold()
	needle := fold.String(q)

	var results []Item
	for _, it := range items {
		if matchesFolded(fold, it, needle) {
			results = append(results, it)
		}
	}

	if opts.Freeform {
		for _, token := range ParseFreeform(query) {
			results = append(results, syntheticItem(token))
		}
	}

	return Dedupe(results)
}

// Matches reports whether query is a case-insensitive substring of the item's
// value or label. A blank query never matches.
func Matches(item Item, query string) bool {
	q := strings.TrimSpace(query)
	if q == "" {
		return false
	}
	fold := cases.Fold()
	return matchesFolded(fold, item, fold.String(q))
}

func matchesFolded(fold cases.Caser, item Item, needle string) bool {
	return strings.Contains(fold.String(item.Value), needle) ||
		strings.Contains(fold.String(item.Label), needle)
}

// Dedupe keeps the first item for each value and drops later repeats.
func Dedupe(items []Item) []Item {
	if len(items) == 0 {
		return items
	}
	seen := make(map[string]struct{}, len(items))
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if _, ok := seen[it.Value]; ok {
			continue
		}
		seen[it.Value] = struct{}{}
		out = append(out, it)
	}
	return out
}
