package tokenizer

import (
	"strings"
	"unicode"

	"github.com/dlclark/regexp2"

	"github.com/jamesainslie/go-datetok/pattern"
	"github.com/jamesainslie/go-datetok/table"
)

// Split partitions input into recognized tokens and the literal runs between
// them, in input order. With keepFormatting the segments concatenate back to
// input exactly; without it, segments holding neither a letter nor a number
// are dropped unless they are table.AlwaysKeep punctuation.
//
// A nil c (patterns unavailable) yields input as a single literal segment.
func Split(c *pattern.Compiled, input string, keepFormatting bool) []string {
	if input == "" {
		return nil
	}

	re := splitPattern(c)
	runes := []rune(input)
	off := runeOffsets(input)
	var out []string
	cursor := 0

	for re != nil && cursor < len(runes) {
		m, err := re.FindRunesMatchStartingAt(runes, cursor)
		if err != nil || m == nil {
			break
		}
		unparsed := m.GroupByNumber(1)
		known := m.GroupByNumber(2)
		rest := m.GroupByNumber(3)

		if seg := groupText(input, off, unparsed); seg != "" && shouldCapture(seg, keepFormatting) {
			out = append(out, seg)
		}
		if seg := groupText(input, off, known); shouldCapture(seg, keepFormatting) {
			out = append(out, seg)
		}
		cursor = rest.Index
	}

	if cursor < len(runes) {
		if tail := input[off[cursor]:]; shouldCapture(tail, keepFormatting) {
			out = append(out, tail)
		}
	}
	return out
}

// runeOffsets maps rune indexes, as counted by []rune(s), to byte offsets in
// s. An invalid byte counts as one rune. The final element is len(s).
func runeOffsets(s string) []int {
	off := make([]int, 0, len(s)+1)
	for i := range s {
		off = append(off, i)
	}
	return append(off, len(s))
}

// groupText returns the bytes of input covered by g, so segments keep the
// input's exact bytes even where it is not valid UTF-8.
func groupText(input string, off []int, g *regexp2.Group) string {
	return input[off[g.Index]:off[g.Index+g.Length]]
}

func splitPattern(c *pattern.Compiled) *regexp2.Regexp {
	if c == nil {
		return nil
	}
	return c.SplitPattern()
}

// shouldCapture decides whether a segment survives when formatting is not
// kept.
func shouldCapture(segment string, keepFormatting bool) bool {
	if keepFormatting || table.IsAlwaysKeep(segment) {
		return true
	}
	return strings.IndexFunc(segment, isWordRune) >= 0
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.IsMark(r)
}
