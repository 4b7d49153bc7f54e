package tokenizer

import (
	"unicode"

	"github.com/jamesainslie/go-datetok/pattern"
)

// Membership reports whether a token is a recognized surface string.
type Membership interface {
	Contains(token string) bool
}

// AreTokensValid reports whether every token is a whole relative expression,
// a recognized word, or a run of decimal digits. An empty slice is valid.
func AreTokensValid(c *pattern.Compiled, words Membership, tokens []string) bool {
	for _, token := range tokens {
		if matchesRelative(c, token) || words.Contains(token) || isDigits(token) {
			continue
		}
		return false
	}
	return true
}

func matchesRelative(c *pattern.Compiled, token string) bool {
	if c == nil || c.MatchRelativePattern() == nil {
		return false
	}
	ok, err := c.MatchRelativePattern().MatchString(token)
	return err == nil && ok
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
