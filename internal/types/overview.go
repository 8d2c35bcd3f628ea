package types

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/omnidex-ai/omnidex/client/internal/wire"
)

// ------------------------------
// Today overview models
// ------------------------------

// TodayOverview aggregates the day's activity counters.
type TodayOverview struct {
	NewDataPoints     int       `json:"new_data_points"`
	ProcessedItems    int       `json:"processed_items"`
	InsightsGenerated int       `json:"insights_generated"`
	ActiveConnectors  int       `json:"active_connectors"`
	LastUpdate        time.Time `json:"last_update"`
}

// UnmarshalJSON decodes the overview; counters default to zero so a
// freshly provisioned backend can answer with a sparse object.
func (o *TodayOverview) UnmarshalJSON(b []byte) error {
	d, err := wire.NewDecoder("TodayOverview", b)
	if err != nil {
		return err
	}
	o.NewDataPoints = d.IntOr("new_data_points", 0)
	o.ProcessedItems = d.IntOr("processed_items", 0)
	o.InsightsGenerated = d.IntOr("insights_generated", 0)
	o.ActiveConnectors = d.IntOr("active_connectors", 0)
	o.LastUpdate = d.Time("last_update")
	return d.Err()
}

// Clone returns a copy of the overview.
func (o TodayOverview) Clone() TodayOverview { return o }

// QuickAccessKind tags what a quick-access item points at.
type QuickAccessKind string

const (
	QuickAccessURL     QuickAccessKind = "url"
	QuickAccessFile    QuickAccessKind = "file"
	QuickAccessContact QuickAccessKind = "contact"
	QuickAccessNote    QuickAccessKind = "note"
)

// ParseQuickAccessKind maps a wire tag to a QuickAccessKind, rejecting
// unknown values.
func ParseQuickAccessKind(s string) (QuickAccessKind, error) {
	switch k := QuickAccessKind(s); k {
	case QuickAccessURL, QuickAccessFile, QuickAccessContact, QuickAccessNote:
		return k, nil
	}
	return "", fmt.Errorf("unknown quick access kind %q", s)
}

// UnmarshalJSON validates the wire tag.
func (k *QuickAccessKind) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	v, err := ParseQuickAccessKind(s)
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// QuickAccessItem is one recently used shortcut on the today screen.
type QuickAccessItem struct {
	ID           string          `json:"id"`
	Title        string          `json:"title"`
	Subtitle     string          `json:"subtitle"`
	Icon         string          `json:"icon"`
	Kind         QuickAccessKind `json:"kind"`
	LastAccessed time.Time       `json:"last_accessed"`
	Payload      *string         `json:"payload,omitempty"`
}

// UnmarshalJSON decodes a quick-access item.
func (q *QuickAccessItem) UnmarshalJSON(b []byte) error {
	d, err := wire.NewDecoder("QuickAccessItem", b)
	if err != nil {
		return err
	}
	q.ID = d.String("id")
	q.Title = d.String("title")
	q.Subtitle = d.StringOr("subtitle", "")
	q.Icon = d.StringOr("icon", "")
	q.Kind = wire.Enum(d, "kind", ParseQuickAccessKind)
	q.LastAccessed = d.Time("last_accessed")
	q.Payload = d.OptString("payload")
	return d.Err()
}

// Clone returns a deep copy of the item.
func (q QuickAccessItem) Clone() QuickAccessItem {
	out := q
	out.Payload = wire.ClonePtr(q.Payload)
	return out
}
