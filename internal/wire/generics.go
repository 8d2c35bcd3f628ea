package wire

import (
	"encoding/json"
	"fmt"
)

// Enum decodes a required enumerated string field through parse.
// Unknown wire values are rejected; absence is an error.
func Enum[T ~string](d *Decoder, field string, parse func(string) (T, error)) T {
	raw, ok := d.lookup(field)
	if !ok {
		d.missing(field)
		var zero T
		return zero
	}
	s := d.decodeString(field, raw)
	if d.err != nil {
		var zero T
		return zero
	}
	v, err := parse(s)
	if err != nil {
		d.fail(field, err)
		var zero T
		return zero
	}
	return v
}

// EnumOr decodes an enumerated string field that carries a declared
// default. The default absorbs both absence and unrecognized tags;
// only a wire value that is not a string fails. Enum stays the strict
// variant for default-less fields.
func EnumOr[T ~string](d *Decoder, field string, def T, parse func(string) (T, error)) T {
	raw, ok := d.lookup(field)
	if !ok {
		return def
	}
	s := d.decodeString(field, raw)
	if d.err != nil {
		return def
	}
	v, err := parse(s)
	if err != nil {
		return def
	}
	return v
}

// EnumKeys decodes an object field whose keys are enumerated strings
// and whose values are counters. Unknown keys are rejected; absence
// decodes to an empty map.
func EnumKeys[T ~string](d *Decoder, field string, parse func(string) (T, error)) map[T]int {
	out := map[T]int{}
	for k, v := range d.IntMap(field) {
		key, err := parse(k)
		if err != nil {
			d.fail(field, fmt.Errorf("key %q: %w", k, err))
			return map[T]int{}
		}
		out[key] = v
	}
	if d.err != nil {
		return map[T]int{}
	}
	return out
}

// ModelList decodes an array of nested records, empty when absent.
func ModelList[T any](d *Decoder, field string) []T {
	out := []T{}
	raw, ok := d.lookup(field)
	if !ok {
		return out
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		d.fail(field, fmt.Errorf("expected array: %w", err))
		return []T{}
	}
	for i, item := range items {
		var v T
		if err := json.Unmarshal(item, &v); err != nil {
			d.fail(field, fmt.Errorf("element %d: %w", i, err))
			return []T{}
		}
		out = append(out, v)
	}
	return out
}

// ModelPtr decodes an optional nested record, nil when absent.
func ModelPtr[T any](d *Decoder, field string) *T {
	raw, ok := d.lookup(field)
	if !ok {
		return nil
	}
	v := new(T)
	if err := json.Unmarshal(raw, v); err != nil {
		d.fail(field, err)
		return nil
	}
	return v
}
