package table

import (
	"maps"
	"slices"
	"strings"

	"github.com/jamesainslie/go-datetok/locale"
)

// markerStripper removes the parentheses that mark optional segments in
// relative-type variants.
var markerStripper = strings.NewReplacer("(", "", ")", "")

// StripMarkers removes optional-segment markers from a relative variant.
func StripMarkers(s string) string {
	return markerStripper.Replace(s)
}

// Relative maps relative-expression surface strings to their canonical unit.
type Relative struct {
	entries map[string]string
}

// BuildRelative collects every relative-type variant of info. Units are
// visited in lexicographic order, so when two variants strip to the same
// string the unit sorting last wins.
func BuildRelative(info *locale.Info) *Relative {
	r := &Relative{entries: make(map[string]string)}
	for _, unit := range info.RelativeUnits() {
		for _, variant := range info.RelativeType[unit] {
			r.entries[StripMarkers(variant)] = unit
		}
	}
	return r
}

// Lookup returns the canonical unit for a surface string.
func (r *Relative) Lookup(s string) (string, bool) {
	unit, ok := r.entries[s]
	return unit, ok
}

// Keys returns the surface strings in lexicographic order.
func (r *Relative) Keys() []string {
	return slices.Sorted(maps.Keys(r.entries))
}

// Len returns the number of surface strings.
func (r *Relative) Len() int {
	return len(r.entries)
}
