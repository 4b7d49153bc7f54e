package table

import (
	"iter"
	"maps"
	"slices"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jamesainslie/go-datetok/locale"
)

// Table maps lowercase surface strings to token values. It also carries an
// overlay of extra skip strings from the active settings profile, which
// membership and lookup treat as present even when absent from the table.
//
// A Table is not modified after construction and is safe for concurrent reads.
type Table struct {
	entries map[string]Value
	overlay []string
	skipSet map[string]struct{}
}

// Build constructs the token table for info. Insertion order sets precedence;
// a later insert replaces an earlier one with the same key:
//
//  1. skip words
//  2. pertain words
//  3. semantic class variants, in locale.Classes order
//  4. AlwaysKeep punctuation
//  5. ParserTokens, keyed by their lowercase form
func Build(info *locale.Info, overlay []string) *Table {
	t := newTable(overlay)
	lower := cases.Lower(language.Und)

	for _, w := range info.Skip {
		t.entries[lower.String(w)] = Value{Kind: Skip}
	}
	for _, w := range info.Pertain {
		t.entries[lower.String(w)] = Value{Kind: Pertain}
	}
	for _, c := range locale.Classes() {
		variants, ok := info.Variants(c)
		if !ok {
			continue
		}
		for _, w := range variants {
			t.entries[lower.String(w)] = Value{Kind: Semantic, Text: string(c)}
		}
	}
	for _, tok := range AlwaysKeep {
		t.entries[tok] = Value{Kind: Literal, Text: tok}
	}
	for _, tok := range ParserTokens {
		t.entries[lower.String(tok)] = Value{Kind: Literal, Text: tok}
	}
	return t
}

func newTable(overlay []string) *Table {
	t := &Table{
		entries: make(map[string]Value),
		overlay: slices.Clone(overlay),
		skipSet: make(map[string]struct{}, len(overlay)),
	}
	for _, s := range overlay {
		t.skipSet[s] = struct{}{}
	}
	return t
}

// Contains reports whether key is recognized, either as a table entry or as
// an overlay skip string.
func (t *Table) Contains(key string) bool {
	if _, ok := t.skipSet[key]; ok {
		return true
	}
	_, ok := t.entries[key]
	return ok
}

// Lookup returns the value for key. Overlay strings shadow table entries and
// always resolve to Skip.
func (t *Table) Lookup(key string) (Value, bool) {
	if _, ok := t.skipSet[key]; ok {
		return Value{Kind: Skip}, true
	}
	v, ok := t.entries[key]
	return v, ok
}

// Entry returns the value stored in the table proper, ignoring the overlay.
func (t *Table) Entry(key string) (Value, bool) {
	v, ok := t.entries[key]
	return v, ok
}

// Keys returns the table keys (overlay excluded) in lexicographic order.
func (t *Table) Keys() []string {
	return slices.Sorted(maps.Keys(t.entries))
}

// Overlay returns the overlay skip strings in configuration order.
func (t *Table) Overlay() []string {
	return slices.Clone(t.overlay)
}

// All yields every recognized surface string: overlay strings first, then
// table keys. A string present in both is yielded twice.
func (t *Table) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, s := range t.overlay {
			if !yield(s) {
				return
			}
		}
		for _, k := range t.Keys() {
			if !yield(k) {
				return
			}
		}
	}
}

// Entries returns a copy of the table proper.
func (t *Table) Entries() map[string]Value {
	return maps.Clone(t.entries)
}

// Len returns the number of table entries, overlay excluded.
func (t *Table) Len() int {
	return len(t.entries)
}
