package tokenizer

import (
	"github.com/jamesainslie/go-datetok/pattern"
)

// SplitRelative splits input at every relative-expression match, keeping the
// matched expressions and the text between them (including empty strings at
// the edges) in input order.
//
// keepFormatting is accepted for symmetry with Split and has no effect.
func SplitRelative(c *pattern.Compiled, input string, keepFormatting bool) []string {
	if input == "" {
		return nil
	}
	if c == nil || c.SplitRelativePattern() == nil {
		return []string{input}
	}

	off := runeOffsets(input)
	var out []string
	last := 0

	m, err := c.SplitRelativePattern().FindRunesMatch([]rune(input))
	for err == nil && m != nil {
		out = append(out, input[off[last]:off[m.Index]], groupText(input, off, m.GroupByNumber(1)))
		last = m.Index + m.Length
		m, err = c.SplitRelativePattern().FindNextMatch(m)
	}
	return append(out, input[off[last]:])
}
