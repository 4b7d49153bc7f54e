// Package datetok provides a locale-aware token dictionary and string
// tokenizer for natural-language date extraction.
//
// # Quick Start
//
//	info, err := locale.LoadYAML("locales/en.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	dict, err := datetok.New(info, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	tokens := dict.Split("the monday meeting", true)
//	// ["the", " ", "monday", " ", "meeting"]
//
// # Configuration
//
// A Config supplies extra always-skip tokens and a registry key that
// partitions the compiled pattern cache. A nil Config means settings.Default,
// whose only extra token is "t". Profiles are usually loaded from TOML with
// settings.Load.
//
// # Normalization
//
// NewNormalized applies NFKC to table keys, so fullwidth "ｍａｙ" is stored as
// "may". WithNormalizationForm(table.FormFoldMarks) additionally strips
// combining marks, so "février" is recognized as "fevrier". Apply
// Dictionary.Normalize to input text before splitting it with such a
// dictionary. Keys that would collide after normalization are resolved
// deterministically; skip and pertain words always survive.
//
// # Thread Safety
//
// Dictionary is safe for concurrent use. Compiled patterns are built lazily
// on first use and shared through a process-wide cache, configurable via
// WithCache.
package datetok
