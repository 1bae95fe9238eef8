package selector

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFreeform(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"quoted span keeps its comma", `a, "b, c", d`, []string{"a", "b, c", "d"}},
		{"single token yields nothing", "single", nil},
		{"single quoted token yields nothing", `"only one"`, nil},
		{"typographic quotes", "“x, y”, z", []string{"x, y", "z"}},
		{"no spaces around commas", "a,b,c", []string{"a", "b", "c"}},
		{"trailing whitespace before comma", "a  ,  b  ", []string{"a", "b"}},
		{"unterminated quote degrades", `"a, b`, []string{"a", "b"}},
		{"empty quoted token dropped", `"", a`, nil},
		{"only separators", " , , ", nil},
		{"word must sit right before a delimiter", "hello world, foo", []string{"world", "foo"}},
		{"inner whitespace inside quotes trimmed", `"  a ", b`, []string{"a", "b"}},
		{"quoted span runs to a delimited quote", `"x" y", z`, []string{`x" y`, "z"}},
		{"quoted span at the end", `a, "b c"`, []string{"a", "b c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseFreeform(tt.query))
		})
	}
}

func TestParseFreeform_QuotedSpanDoesNotCrossLines(t *testing.T) {
	got := ParseFreeform("\"a\nb\", c, d")
	// The quote cannot close across the newline, so only the bare runs survive.
	assert.Equal(t, []string{"c", "d"}, got)
}
