package selector

import (
	"strings"

	"github.com/dlclark/regexp2"
)

// freeformToken matches a quoted span or a run of characters that are not
// quotes, commas or whitespace, but only when a comma or the end of the
// query follows. The lookahead is why this is regexp2 and not regexp.
var freeformToken = regexp2.MustCompile(`(".*?"|[^",\s]+)(?=\s*,|\s*$)`, regexp2.None)

// ParseFreeform splits a comma-separated query into freeform entries.
//
// Typographic double quotes are normalised first, so “a, b” behaves like
// "a, b". Surrounding quotes and whitespace are stripped from each token and
// empty tokens dropped. Malformed quoting degrades to whatever tokens can
// still be found.
//
// A single token yields nil: a lone word is already covered by the plain
// substring match.
func ParseFreeform(query string) []string {
	normalized := strings.NewReplacer("“", `"`, "”", `"`).Replace(query)

	var tokens []string
	m, _ := freeformToken.FindStringMatch(normalized)
	for m != nil {
		raw := strings.TrimPrefix(m.String(), `"`)
		raw = strings.TrimSuffix(raw, `"`)
		if t := strings.TrimSpace(raw); t != "" {
			tokens = append(tokens, t)
		}
		m, _ = freeformToken.FindNextMatch(m)
	}

	if len(tokens) <= 1 {
		return nil
	}
	return tokens
}
