package table

import (
	"errors"
	"fmt"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jamesainslie/go-datetok/locale"
)

// Form selects how table keys are normalized.
type Form string

const (
	// FormNone leaves keys untouched.
	FormNone Form = ""
	// FormNFKC applies compatibility decomposition followed by canonical
	// composition. Case is preserved.
	FormNFKC Form = "nfkc"
	// FormFoldMarks applies compatibility decomposition and removes nonspacing
	// marks, without recomposing: "février" becomes "fevrier".
	FormFoldMarks Form = "fold"
)

// ErrUnknownForm is returned by ParseForm for an unrecognized name.
var ErrUnknownForm = errors.New("table: unknown normalization form")

// ParseForm maps a form name to a Form. "none" and "" both mean FormNone.
func ParseForm(name string) (Form, error) {
	switch name {
	case "", "none":
		return FormNone, nil
	case string(FormNFKC):
		return FormNFKC, nil
	case string(FormFoldMarks):
		return FormFoldMarks, nil
	default:
		return FormNone, fmt.Errorf("%w: %q", ErrUnknownForm, name)
	}
}

// Apply normalizes s. Callers that normalize a table should normalize their
// input text with the same form.
func (f Form) Apply(s string) string {
	switch f {
	case FormNFKC:
		return norm.NFKC.String(s)
	case FormFoldMarks:
		out, _, err := transform.String(foldMarks(), s)
		if err != nil {
			return s
		}
		return out
	default:
		return s
	}
}

func foldMarks() transform.Transformer {
	return transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))
}

// Normalize returns a copy of t whose keys are replaced by their normalized
// form. The overlay is carried over unchanged. It also returns the source
// keys that were dropped.
//
// Keys are visited in lexicographic order. A key whose normalized form is
// itself, or is neither another source key nor already written in this pass,
// is rewritten to the normalized key. Any other key is deferred: a deferred
// key that is one of the locale's skip or pertain words is then written over
// whatever holds its normalized slot, and every other deferred key is dropped.
func Normalize(t *Table, info *locale.Info, form Form) (*Table, []string) {
	out := newTable(t.overlay)
	if form == FormNone {
		for k, v := range t.entries {
			out.entries[k] = v
		}
		return out, nil
	}

	keys := t.Keys()
	normalized := make(map[string]string, len(keys))
	owner := make(map[string]struct{}, len(keys))
	var deferred []string

	for _, key := range keys {
		n := form.Apply(key)
		normalized[key] = n
		if n != key {
			if _, collides := t.entries[n]; collides {
				deferred = append(deferred, key)
				continue
			}
			if _, taken := owner[n]; taken {
				deferred = append(deferred, key)
				continue
			}
		}
		out.entries[n] = t.entries[key]
		owner[n] = struct{}{}
	}

	protected := protectedWords(info)
	var dropped []string
	for _, key := range deferred {
		if _, ok := protected[key]; ok {
			out.entries[normalized[key]] = t.entries[key]
			continue
		}
		dropped = append(dropped, key)
	}
	return out, dropped
}

// protectedWords returns the lowercased skip and pertain words of info.
func protectedWords(info *locale.Info) map[string]struct{} {
	lower := cases.Lower(language.Und)
	out := make(map[string]struct{}, len(info.Skip)+len(info.Pertain))
	for _, w := range info.Skip {
		out[lower.String(w)] = struct{}{}
	}
	for _, w := range info.Pertain {
		out[lower.String(w)] = struct{}{}
	}
	return out
}
