package wire

import "encoding/json"

// Deep-copy helpers backing the models' Clone methods. Cloned values
// share no mutable state with their source, so mutating a clone can
// never leak into the original.

// ClonePtr copies a pointed-to scalar into a fresh pointer.
func ClonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// CloneStrings copies a string slice.
func CloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}

// CloneFloats32 copies an embedding vector.
func CloneFloats32(s []float32) []float32 {
	if s == nil {
		return nil
	}
	out := make([]float32, len(s))
	copy(out, s)
	return out
}

// CloneAnyMap deep-copies an opaque JSON object, recursing into
// nested objects and arrays.
func CloneAnyMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneAny(v)
	}
	return out
}

func cloneAny(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return CloneAnyMap(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = cloneAny(e)
		}
		return out
	default:
		// Scalars from encoding/json (string, float64, bool, nil,
		// json.Number) are immutable.
		return t
	}
}

// CloneStringMap copies a string-valued map.
func CloneStringMap(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// CloneIntMap copies a counter map.
func CloneIntMap(m map[string]int) map[string]int {
	if m == nil {
		return nil
	}
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// CloneFloatMap copies a score map.
func CloneFloatMap(m map[string]float64) map[string]float64 {
	if m == nil {
		return nil
	}
	out := make(map[string]float64, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// CloneCounts copies a map keyed by an enumerated string type.
func CloneCounts[T ~string](m map[T]int) map[T]int {
	if m == nil {
		return nil
	}
	out := make(map[T]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// CloneStringsMap copies a map of string slices.
func CloneStringsMap(m map[string][]string) map[string][]string {
	if m == nil {
		return nil
	}
	out := make(map[string][]string, len(m))
	for k, v := range m {
		out[k] = CloneStrings(v)
	}
	return out
}

// CloneRaw copies an opaque payload.
func CloneRaw(r json.RawMessage) json.RawMessage {
	if r == nil {
		return nil
	}
	out := make(json.RawMessage, len(r))
	copy(out, r)
	return out
}
