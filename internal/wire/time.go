package wire

import (
	"fmt"
	"time"

	"github.com/go-openapi/strfmt"
)

// ParseTime parses an ISO-8601 wire timestamp. The backend emits
// RFC3339 with and without fractional seconds, and some older
// endpoints omit the zone designator; strfmt's date-time formats
// cover the observed variants.
func ParseTime(s string) (time.Time, error) {
	dt, err := strfmt.ParseDateTime(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid ISO-8601 timestamp %q: %w", s, err)
	}
	return time.Time(dt), nil
}
