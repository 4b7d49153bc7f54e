// Package pattern compiles a token table into the longest-match-first regular
// expressions used to split and validate input, and caches them per
// configuration profile and locale.
package pattern

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/dlclark/regexp2"
)

// options for every compiled pattern. Singleline lets '.' cross newlines so
// the remainder group always reaches the end of the input.
const options = regexp2.IgnoreCase | regexp2.Singleline

// Source is the raw material for a Compiled. Words and Relative may contain
// duplicates and empty strings; both are removed before compilation.
type Source struct {
	Words         []string
	Relative      []string
	NoWordSpacing bool
}

// Compiled holds the artifacts derived from one Source. It is immutable and
// safe for concurrent use.
type Compiled struct {
	words         []string
	relative      []string
	split         *regexp2.Regexp
	splitRelative *regexp2.Regexp
	matchRelative *regexp2.Regexp
	noWordSpacing bool
}

// Compile sorts the source strings and builds every pattern.
func Compile(src Source) (*Compiled, error) {
	c := &Compiled{
		words:         SortByLength(src.Words),
		relative:      SortByLength(src.Relative),
		noWordSpacing: src.NoWordSpacing,
	}

	var err error
	if c.split, err = compileSplit(c.words, c.noWordSpacing); err != nil {
		return nil, fmt.Errorf("split pattern: %w", err)
	}

	if len(c.relative) == 0 {
		return c, nil
	}
	group := alternation(c.relative)
	if c.splitRelative, err = compileSplitRelative(group, c.noWordSpacing); err != nil {
		return nil, fmt.Errorf("split-relative pattern: %w", err)
	}
	if c.matchRelative, err = regexp2.Compile(`^(`+group+`)$`, options); err != nil {
		return nil, fmt.Errorf("match-relative pattern: %w", err)
	}
	return c, nil
}

// compileSplit builds the three-group split pattern: unparsed prefix, known
// word, remainder. \G pins each attempt to the splitter's cursor while \b
// still sees the rune before it.
func compileSplit(words []string, noWordSpacing bool) (*regexp2.Regexp, error) {
	if len(words) == 0 {
		return nil, nil
	}
	group := alternation(words)
	expr := `\G(.*?\b)(` + group + `)(\b.*)$`
	if noWordSpacing {
		expr = `\G(.*?)(` + group + `)(.*)$`
	}
	return regexp2.Compile(expr, options)
}

func compileSplitRelative(group string, noWordSpacing bool) (*regexp2.Regexp, error) {
	expr := `(?<=\b)(` + group + `)(?=\b)`
	if noWordSpacing {
		expr = `(` + group + `)`
	}
	return regexp2.Compile(expr, options)
}

func alternation(words []string) string {
	escaped := make([]string, len(words))
	for i, w := range words {
		escaped[i] = regexp2.Escape(w)
	}
	return strings.Join(escaped, "|")
}

// SortByLength returns the distinct non-empty strings of words, longest
// first by rune count, ties in lexicographic order. Alternations built from
// this order prefer the longest token at any position.
func SortByLength(words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if w != "" {
			out = append(out, w)
		}
	}
	slices.Sort(out)
	out = slices.Compact(out)
	slices.SortStableFunc(out, func(a, b string) int {
		return cmp.Compare(utf8.RuneCountInString(b), utf8.RuneCountInString(a))
	})
	return out
}

// Words returns the sorted word list. The slice must not be modified.
func (c *Compiled) Words() []string { return c.words }

// RelativeStrings returns the sorted relative strings. The slice must not be
// modified.
func (c *Compiled) RelativeStrings() []string { return c.relative }

// SplitPattern returns the split pattern, or nil for an empty word list.
func (c *Compiled) SplitPattern() *regexp2.Regexp { return c.split }

// SplitRelativePattern returns the delimiter-capturing relative pattern, or
// nil when the locale has no relative strings.
func (c *Compiled) SplitRelativePattern() *regexp2.Regexp { return c.splitRelative }

// MatchRelativePattern returns the whole-string relative pattern, or nil when
// the locale has no relative strings.
func (c *Compiled) MatchRelativePattern() *regexp2.Regexp { return c.matchRelative }

// NoWordSpacing reports whether boundary assertions were omitted.
func (c *Compiled) NoWordSpacing() bool { return c.noWordSpacing }
