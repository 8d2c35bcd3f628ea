// Package wire implements the JSON wire contract shared by every model:
// per-field lookup with declared defaults, numeric coercion, ISO-8601
// timestamps, microsecond durations, and decode errors that name the
// offending model and field.
package wire

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"time"

	xerrors "github.com/omnidex-ai/omnidex/client/internal/errors"
)

// Decoder reads one JSON object field by field. Accessors without a
// suffix are required; Or-variants substitute a declared default when
// the key is absent; Opt-variants return nil for absent fields.
// JSON null is treated the same as an absent key.
//
// The first failure wins: subsequent accessors return zero values and
// Err reports the original cause.
type Decoder struct {
	model string
	raw   map[string]json.RawMessage
	err   error
}

// NewDecoder parses data as a JSON object for the named model.
func NewDecoder(model string, data []byte) (*Decoder, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, xerrors.NewDecode(model, "", fmt.Errorf("expected JSON object: %w", err))
	}
	if raw == nil {
		return nil, xerrors.NewDecode(model, "", fmt.Errorf("expected JSON object, got null"))
	}
	return &Decoder{model: model, raw: raw}, nil
}

// Err returns the first decode failure, or nil.
func (d *Decoder) Err() error { return d.err }

func (d *Decoder) fail(field string, reason error) {
	if d.err != nil {
		return
	}
	// Nested model failures already carry model/field context.
	if _, ok := xerrors.AsError(reason); ok {
		d.err = reason
		return
	}
	d.err = xerrors.NewDecode(d.model, field, reason)
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// lookup returns the raw value and whether the field is present and non-null.
func (d *Decoder) lookup(field string) (json.RawMessage, bool) {
	raw, ok := d.raw[field]
	if !ok || isNull(raw) {
		return nil, false
	}
	return raw, true
}

func (d *Decoder) missing(field string) {
	d.fail(field, fmt.Errorf("required field is missing"))
}

// ------------------------------
// Scalars
// ------------------------------

func (d *Decoder) decodeString(field string, raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		d.fail(field, fmt.Errorf("expected string: %w", err))
		return ""
	}
	return s
}

// String reads a required string field.
func (d *Decoder) String(field string) string {
	raw, ok := d.lookup(field)
	if !ok {
		d.missing(field)
		return ""
	}
	return d.decodeString(field, raw)
}

// StringOr reads an optional string field with a declared default.
func (d *Decoder) StringOr(field, def string) string {
	raw, ok := d.lookup(field)
	if !ok {
		return def
	}
	return d.decodeString(field, raw)
}

// OptString reads an optional string field, nil when absent.
func (d *Decoder) OptString(field string) *string {
	raw, ok := d.lookup(field)
	if !ok {
		return nil
	}
	s := d.decodeString(field, raw)
	if d.err != nil {
		return nil
	}
	return &s
}

func (d *Decoder) decodeBool(field string, raw json.RawMessage) bool {
	var b bool
	if err := json.Unmarshal(raw, &b); err != nil {
		d.fail(field, fmt.Errorf("expected boolean: %w", err))
		return false
	}
	return b
}

// Bool reads a required boolean field.
func (d *Decoder) Bool(field string) bool {
	raw, ok := d.lookup(field)
	if !ok {
		d.missing(field)
		return false
	}
	return d.decodeBool(field, raw)
}

// BoolOr reads an optional boolean field with a declared default.
func (d *Decoder) BoolOr(field string, def bool) bool {
	raw, ok := d.lookup(field)
	if !ok {
		return def
	}
	return d.decodeBool(field, raw)
}

// number parses a JSON number token preserving its literal form.
func (d *Decoder) number(field string, raw json.RawMessage) (json.Number, bool) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var n json.Number
	if err := dec.Decode(&n); err != nil {
		d.fail(field, fmt.Errorf("expected number: %w", err))
		return "", false
	}
	return n, true
}

func (d *Decoder) decodeInt64(field string, raw json.RawMessage) int64 {
	n, ok := d.number(field, raw)
	if !ok {
		return 0
	}
	if v, err := n.Int64(); err == nil {
		return v
	}
	// Integral floats coerce (5.0 -> 5); fractional values do not.
	f, err := n.Float64()
	if err != nil {
		d.fail(field, fmt.Errorf("expected integer, got %q", n.String()))
		return 0
	}
	if f != math.Trunc(f) {
		d.fail(field, fmt.Errorf("expected integer, got fractional %q", n.String()))
		return 0
	}
	return int64(f)
}

// Int reads a required integer field, coercing integral floats.
func (d *Decoder) Int(field string) int {
	return int(d.Int64(field))
}

// IntOr reads an optional integer field with a declared default.
func (d *Decoder) IntOr(field string, def int) int {
	raw, ok := d.lookup(field)
	if !ok {
		return def
	}
	return int(d.decodeInt64(field, raw))
}

// OptInt reads an optional integer field, nil when absent.
func (d *Decoder) OptInt(field string) *int {
	raw, ok := d.lookup(field)
	if !ok {
		return nil
	}
	v := int(d.decodeInt64(field, raw))
	if d.err != nil {
		return nil
	}
	return &v
}

// Int64 reads a required 64-bit counter field, coercing integral floats.
func (d *Decoder) Int64(field string) int64 {
	raw, ok := d.lookup(field)
	if !ok {
		d.missing(field)
		return 0
	}
	return d.decodeInt64(field, raw)
}

// Int64Or reads an optional 64-bit counter field with a declared default.
func (d *Decoder) Int64Or(field string, def int64) int64 {
	raw, ok := d.lookup(field)
	if !ok {
		return def
	}
	return d.decodeInt64(field, raw)
}

func (d *Decoder) decodeFloat(field string, raw json.RawMessage) float64 {
	n, ok := d.number(field, raw)
	if !ok {
		return 0
	}
	f, err := n.Float64()
	if err != nil {
		d.fail(field, fmt.Errorf("expected number, got %q", n.String()))
		return 0
	}
	return f
}

// Float reads a required float field; integer wire values coerce.
func (d *Decoder) Float(field string) float64 {
	raw, ok := d.lookup(field)
	if !ok {
		d.missing(field)
		return 0
	}
	return d.decodeFloat(field, raw)
}

// FloatOr reads an optional float field with a declared default.
func (d *Decoder) FloatOr(field string, def float64) float64 {
	raw, ok := d.lookup(field)
	if !ok {
		return def
	}
	return d.decodeFloat(field, raw)
}

// OptFloat reads an optional float field, nil when absent.
func (d *Decoder) OptFloat(field string) *float64 {
	raw, ok := d.lookup(field)
	if !ok {
		return nil
	}
	f := d.decodeFloat(field, raw)
	if d.err != nil {
		return nil
	}
	return &f
}

// ------------------------------
// Timestamps and durations
// ------------------------------

func (d *Decoder) decodeTime(field string, raw json.RawMessage) time.Time {
	s := d.decodeString(field, raw)
	if d.err != nil {
		return time.Time{}
	}
	t, err := ParseTime(s)
	if err != nil {
		d.fail(field, err)
		return time.Time{}
	}
	return t
}

// Time reads a required ISO-8601 timestamp field.
func (d *Decoder) Time(field string) time.Time {
	raw, ok := d.lookup(field)
	if !ok {
		d.missing(field)
		return time.Time{}
	}
	return d.decodeTime(field, raw)
}

// OptTime reads an optional ISO-8601 timestamp field, nil when absent.
func (d *Decoder) OptTime(field string) *time.Time {
	raw, ok := d.lookup(field)
	if !ok {
		return nil
	}
	t := d.decodeTime(field, raw)
	if d.err != nil {
		return nil
	}
	return &t
}

// Micros reads a required duration field carried as integer microseconds.
func (d *Decoder) Micros(field string) Duration {
	return Duration(d.Int64(field) * int64(time.Microsecond))
}

// OptMicros reads an optional microsecond duration field, nil when absent.
func (d *Decoder) OptMicros(field string) *Duration {
	raw, ok := d.lookup(field)
	if !ok {
		return nil
	}
	v := Duration(d.decodeInt64(field, raw) * int64(time.Microsecond))
	if d.err != nil {
		return nil
	}
	return &v
}

// ------------------------------
// Collections (absent decodes to empty, never nil)
// ------------------------------

// Strings reads a string array field, empty when absent.
func (d *Decoder) Strings(field string) []string {
	out := []string{}
	raw, ok := d.lookup(field)
	if !ok {
		return out
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		d.fail(field, fmt.Errorf("expected string array: %w", err))
		return []string{}
	}
	return out
}

// Floats32 reads a numeric vector field, empty when absent.
func (d *Decoder) Floats32(field string) []float32 {
	out := []float32{}
	raw, ok := d.lookup(field)
	if !ok {
		return out
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		d.fail(field, fmt.Errorf("expected number array: %w", err))
		return []float32{}
	}
	return out
}

// AnyMap reads an opaque JSON object field, empty when absent.
func (d *Decoder) AnyMap(field string) map[string]any {
	out := map[string]any{}
	raw, ok := d.lookup(field)
	if !ok {
		return out
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		d.fail(field, fmt.Errorf("expected object: %w", err))
		return map[string]any{}
	}
	return out
}

// StringMap reads a string-valued object field, empty when absent.
func (d *Decoder) StringMap(field string) map[string]string {
	out := map[string]string{}
	raw, ok := d.lookup(field)
	if !ok {
		return out
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		d.fail(field, fmt.Errorf("expected object of strings: %w", err))
		return map[string]string{}
	}
	return out
}

// IntMap reads a counter-valued object field, empty when absent.
func (d *Decoder) IntMap(field string) map[string]int {
	out := map[string]int{}
	raw, ok := d.lookup(field)
	if !ok {
		return out
	}
	var nums map[string]json.Number
	if err := json.Unmarshal(raw, &nums); err != nil {
		d.fail(field, fmt.Errorf("expected object of integers: %w", err))
		return map[string]int{}
	}
	for k, n := range nums {
		v, err := coerceInt64(n)
		if err != nil {
			d.fail(field, fmt.Errorf("key %q: %w", k, err))
			return map[string]int{}
		}
		out[k] = int(v)
	}
	return out
}

// FloatMap reads a score-valued object field, empty when absent.
func (d *Decoder) FloatMap(field string) map[string]float64 {
	out := map[string]float64{}
	raw, ok := d.lookup(field)
	if !ok {
		return out
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		d.fail(field, fmt.Errorf("expected object of numbers: %w", err))
		return map[string]float64{}
	}
	return out
}

// StringsMap reads an object whose values are string arrays, empty when absent.
func (d *Decoder) StringsMap(field string) map[string][]string {
	out := map[string][]string{}
	raw, ok := d.lookup(field)
	if !ok {
		return out
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		d.fail(field, fmt.Errorf("expected object of string arrays: %w", err))
		return map[string][]string{}
	}
	return out
}

// Raw reads an opaque payload field verbatim, nil when absent.
func (d *Decoder) Raw(field string) json.RawMessage {
	raw, ok := d.lookup(field)
	if !ok {
		return nil
	}
	return CloneRaw(raw)
}

// ------------------------------
// Nested models
// ------------------------------

// Model decodes a required nested record into v.
func (d *Decoder) Model(field string, v any) {
	raw, ok := d.lookup(field)
	if !ok {
		d.missing(field)
		return
	}
	if err := json.Unmarshal(raw, v); err != nil {
		d.fail(field, err)
	}
}

func coerceInt64(n json.Number) (int64, error) {
	if v, err := n.Int64(); err == nil {
		return v, nil
	}
	f, err := n.Float64()
	if err != nil {
		return 0, fmt.Errorf("expected integer, got %q", n.String())
	}
	if f != math.Trunc(f) {
		return 0, fmt.Errorf("expected integer, got fractional %q", n.String())
	}
	return int64(f), nil
}
