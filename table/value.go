// Package table builds a locale's token table, the surface-string to
// token-kind mapping the splitter matches against, and its unicode-normalized
// variant.
package table

import "fmt"

// Kind tags what a recognized surface string means.
type Kind uint8

const (
	// Skip marks a recognized word with no meaning of its own ("the").
	Skip Kind = iota
	// Pertain marks a connector word ("of" in "3rd of June").
	Pertain
	// Semantic marks a translation of a fixed class; Value.Text is the class.
	Semantic
	// Literal marks a parser token kept verbatim; Value.Text is its canonical form.
	Literal
)

func (k Kind) String() string {
	switch k {
	case Skip:
		return "skip"
	case Pertain:
		return "pertain"
	case Semantic:
		return "semantic"
	case Literal:
		return "literal"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Value is the entry stored for a surface string.
type Value struct {
	Kind Kind
	Text string
}

// Valueless reports whether the token carries no translation.
func (v Value) Valueless() bool {
	return v.Kind == Skip || v.Kind == Pertain
}

func (v Value) String() string {
	if v.Valueless() {
		return v.Kind.String()
	}
	return v.Kind.String() + "(" + v.Text + ")"
}

// AlwaysKeep lists punctuation that is never dropped by the splitter, even
// when formatting is not preserved.
var AlwaysKeep = []string{"+", ":", ".", " ", "-", "/"}

// ParserTokens are tokens the downstream date parser understands natively.
var ParserTokens = []string{"am", "pm", "a", "p", "UTC", "GMT", "Z"}

// IsAlwaysKeep reports whether s is one of AlwaysKeep.
func IsAlwaysKeep(s string) bool {
	for _, k := range AlwaysKeep {
		if s == k {
			return true
		}
	}
	return false
}
