package locale

import (
	"errors"
	"fmt"
	"slices"
)

// Document keys shared by every locale encoding.
const (
	keyName          = "name"
	keySkip          = "skip"
	keyPertain       = "pertain"
	keyRelativeType  = "relative-type"
	keyNoWordSpacing = "no_word_spacing"
)

// FromMap builds an Info from a generic decoded document. Keys that are not
// part of the token vocabulary (date order, simplifications, ...) are ignored.
//
// no_word_spacing is honoured only when its value is the string "True"; a
// boolean true, "true" or "yes" all leave the flag unset.
func FromMap(doc map[string]any) (*Info, error) {
	info := &Info{
		Words:        make(map[Class][]string),
		RelativeType: make(map[string][]string),
	}

	var errs []error
	for key, raw := range doc {
		var err error
		switch {
		case key == keyName:
			info.Name, err = scalar(raw)
		case key == keySkip:
			info.Skip, err = stringList(raw)
		case key == keyPertain:
			info.Pertain, err = stringList(raw)
		case key == keyRelativeType:
			info.RelativeType, err = relativeType(raw)
		case key == keyNoWordSpacing:
			s, ok := raw.(string)
			info.NoWordSpacing = ok && s == "True"
		case IsClass(key):
			var words []string
			words, err = stringList(raw)
			info.Words[Class(key)] = words
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", key, err))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	if err := info.Validate(); err != nil {
		return nil, err
	}
	return info, nil
}

// ToMap is the inverse of FromMap. Lists are emitted as []any so the result
// can be handed to encoders that only accept generic values.
func ToMap(info *Info) map[string]any {
	doc := map[string]any{keyName: info.Name}
	if info.Skip != nil {
		doc[keySkip] = anyList(info.Skip)
	}
	if info.Pertain != nil {
		doc[keyPertain] = anyList(info.Pertain)
	}
	for _, c := range classes {
		if words, ok := info.Words[c]; ok {
			doc[string(c)] = anyList(words)
		}
	}
	relative := make(map[string]any, len(info.RelativeType))
	for unit, variants := range info.RelativeType {
		relative[unit] = anyList(variants)
	}
	doc[keyRelativeType] = relative
	if info.NoWordSpacing {
		doc[keyNoWordSpacing] = "True"
	}
	return doc
}

func scalar(raw any) (string, error) {
	switch v := raw.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case bool, int, int64, uint64, float64:
		return fmt.Sprint(v), nil
	default:
		return "", fmt.Errorf("expected scalar, got %T", raw)
	}
}

func stringList(raw any) ([]string, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case []any:
		out := make([]string, 0, len(v))
		for i, item := range v {
			s, err := scalar(item)
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
			out = append(out, s)
		}
		return out, nil
	case []string:
		return slices.Clone(v), nil
	default:
		s, err := scalar(raw)
		if err != nil {
			return nil, err
		}
		return []string{s}, nil
	}
}

func relativeType(raw any) (map[string][]string, error) {
	out := make(map[string][]string)
	if raw == nil {
		return out, nil
	}
	m, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("expected mapping, got %T", raw)
	}
	for unit, variants := range m {
		list, err := stringList(variants)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", unit, err)
		}
		out[unit] = list
	}
	return out, nil
}

func anyList(in []string) []any {
	out := make([]any, len(in))
	for i, s := range in {
		out[i] = s
	}
	return out
}
