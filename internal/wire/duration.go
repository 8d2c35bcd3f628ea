package wire

import (
	"encoding/json"
	"fmt"
	"time"
)

// Duration is a span carried on the wire as an integer microsecond
// count. In memory it behaves like a time.Duration.
type Duration time.Duration

// Std returns the value as a standard time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// String formats the duration like time.Duration.
func (d Duration) String() string { return time.Duration(d).String() }

// MarshalJSON emits the duration as integer microseconds.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).Microseconds())
}

// UnmarshalJSON accepts an integer microsecond count; integral floats
// coerce like every other integer field.
func (d *Duration) UnmarshalJSON(b []byte) error {
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("expected microsecond count: %w", err)
	}
	v, err := coerceInt64(n)
	if err != nil {
		return err
	}
	*d = Duration(v * int64(time.Microsecond))
	return nil
}
