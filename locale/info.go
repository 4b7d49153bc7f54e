// Package locale describes the per-language date vocabulary consumed by the
// token dictionary, and loads it from YAML files or protobuf Struct snapshots.
package locale

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

// ErrMissingName indicates a locale definition without a name.
var ErrMissingName = errors.New("locale: missing name")

// Class is one of the fixed semantic word classes a locale may translate.
type Class string

// Fixed semantic classes, in table insertion order.
const (
	Monday    Class = "monday"
	Tuesday   Class = "tuesday"
	Wednesday Class = "wednesday"
	Thursday  Class = "thursday"
	Friday    Class = "friday"
	Saturday  Class = "saturday"
	Sunday    Class = "sunday"
	January   Class = "january"
	February  Class = "february"
	March     Class = "march"
	April     Class = "april"
	May       Class = "may"
	June      Class = "june"
	July      Class = "july"
	August    Class = "august"
	September Class = "september"
	October   Class = "october"
	November  Class = "november"
	December  Class = "december"
	Year      Class = "year"
	Month     Class = "month"
	Week      Class = "week"
	Day       Class = "day"
	Hour      Class = "hour"
	Minute    Class = "minute"
	Second    Class = "second"
	Ago       Class = "ago"
	In        Class = "in"
	AM        Class = "am"
	PM        Class = "pm"
)

var classes = []Class{
	Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday,
	January, February, March, April, May, June, July, August,
	September, October, November, December,
	Year, Month, Week, Day, Hour, Minute, Second,
	Ago, In, AM, PM,
}

// Classes returns the fixed semantic classes in insertion order.
func Classes() []Class {
	return slices.Clone(classes)
}

// IsClass reports whether name is one of the fixed semantic classes.
func IsClass(name string) bool {
	return slices.Contains(classes, Class(name))
}

// Info is a locale's date vocabulary. Absent optional fields are empty; no
// other validation is applied.
type Info struct {
	Name    string
	Skip    []string
	Pertain []string

	// Words holds surface variants per semantic class. A class without a key
	// is absent from the locale.
	Words map[Class][]string

	// RelativeType maps a canonical relative unit (e.g. "1 day ago") to its
	// surface variants. Variants may carry parenthesised optional segments.
	RelativeType map[string][]string

	// NoWordSpacing is set for scripts without whitespace between words.
	NoWordSpacing bool
}

// Validate reports structural problems that would make the locale unusable
// as a cache key.
func (i *Info) Validate() error {
	if i == nil || i.Name == "" {
		return ErrMissingName
	}
	return nil
}

// Variants returns the surface variants of class c and whether the class is
// present.
func (i *Info) Variants(c Class) ([]string, bool) {
	v, ok := i.Words[c]
	return v, ok
}

// RelativeUnits returns the canonical relative units in lexicographic order.
func (i *Info) RelativeUnits() []string {
	return slices.Sorted(maps.Keys(i.RelativeType))
}

func (i *Info) String() string {
	return fmt.Sprintf("locale(%s)", i.Name)
}
