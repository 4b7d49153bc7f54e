package datetok

import "errors"

// Sentinel errors for conditions callers may need to handle differently.
var (
	// ErrUnknownToken indicates a strict lookup of a string the dictionary
	// does not recognize.
	ErrUnknownToken = errors.New("datetok: unknown token")

	// ErrNilLocale indicates a dictionary was requested without a locale.
	ErrNilLocale = errors.New("datetok: nil locale")
)
