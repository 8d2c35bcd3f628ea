package types

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/omnidex-ai/omnidex/client/internal/wire"
)

// ------------------------------
// Unified index / search models
// ------------------------------

// StorageTier classifies how hot an index entry is kept. The meaning
// of each tier belongs to the indexing service; this layer only
// validates the tag.
type StorageTier string

const (
	TierHot  StorageTier = "hot"
	TierWarm StorageTier = "warm"
	TierCold StorageTier = "cold"
)

// ParseStorageTier maps a wire tag to a StorageTier, rejecting unknown
// values.
func ParseStorageTier(s string) (StorageTier, error) {
	switch t := StorageTier(s); t {
	case TierHot, TierWarm, TierCold:
		return t, nil
	}
	return "", fmt.Errorf("unknown storage tier %q", s)
}

// UnmarshalJSON validates the wire tag.
func (t *StorageTier) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	v, err := ParseStorageTier(s)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// UniversalIndexEntry is one row of the cross-connector index: the
// searchable projection of a data item regardless of which connector
// produced it.
type UniversalIndexEntry struct {
	ID             string         `json:"id"`
	ConnectorID    string         `json:"connector_id"`
	ContentType    string         `json:"content_type"`
	PrimaryKey     string         `json:"primary_key"`
	SearchableText string         `json:"searchable_text"`
	DisplayName    string         `json:"display_name"`
	Tier           StorageTier    `json:"tier"`
	Priority       int            `json:"priority"`
	IndexedAt      time.Time      `json:"indexed_at"`
	ModifiedAt     time.Time      `json:"modified_at"`
	AccessedAt     time.Time      `json:"accessed_at"`
	StructuredData map[string]any `json:"structured_data"`
	Metadata       map[string]any `json:"metadata"`
	Keywords       []string       `json:"keywords"`
	Tags           []string       `json:"tags"`
	RelevanceScore float64        `json:"relevance_score"`
	Snippet        *string        `json:"snippet,omitempty"`
	Title          *string        `json:"title,omitempty"`
	Summary        *string        `json:"summary,omitempty"`
	Content        *string        `json:"content,omitempty"`
}

// UnmarshalJSON decodes an index entry. Tier falls back to warm when
// the backend omits it or ships a tag this build does not know.
func (e *UniversalIndexEntry) UnmarshalJSON(b []byte) error {
	d, err := wire.NewDecoder("UniversalIndexEntry", b)
	if err != nil {
		return err
	}
	e.ID = d.String("id")
	e.ConnectorID = d.String("connector_id")
	e.ContentType = d.String("content_type")
	e.PrimaryKey = d.StringOr("primary_key", "")
	e.SearchableText = d.StringOr("searchable_text", "")
	e.DisplayName = d.StringOr("display_name", "")
	e.Tier = wire.EnumOr(d, "tier", TierWarm, ParseStorageTier)
	e.Priority = d.IntOr("priority", 0)
	e.IndexedAt = d.Time("indexed_at")
	e.ModifiedAt = d.Time("modified_at")
	e.AccessedAt = d.Time("accessed_at")
	e.StructuredData = d.AnyMap("structured_data")
	e.Metadata = d.AnyMap("metadata")
	e.Keywords = d.Strings("keywords")
	e.Tags = d.Strings("tags")
	e.RelevanceScore = d.FloatOr("relevance_score", 0)
	e.Snippet = d.OptString("snippet")
	e.Title = d.OptString("title")
	e.Summary = d.OptString("summary")
	e.Content = d.OptString("content")
	return d.Err()
}

// Clone returns a deep copy of the entry.
func (e UniversalIndexEntry) Clone() UniversalIndexEntry {
	out := e
	out.StructuredData = wire.CloneAnyMap(e.StructuredData)
	out.Metadata = wire.CloneAnyMap(e.Metadata)
	out.Keywords = wire.CloneStrings(e.Keywords)
	out.Tags = wire.CloneStrings(e.Tags)
	out.Snippet = wire.ClonePtr(e.Snippet)
	out.Title = wire.ClonePtr(e.Title)
	out.Summary = wire.ClonePtr(e.Summary)
	out.Content = wire.ClonePtr(e.Content)
	return out
}

// IndexSearchResult is the answer to one index query.
type IndexSearchResult struct {
	Query      string                `json:"query"`
	Results    []UniversalIndexEntry `json:"results"`
	TotalCount int                   `json:"total_count"`
	Elapsed    wire.Duration         `json:"elapsed"`
	Facets     map[string]int        `json:"facets"`
}

// UnmarshalJSON decodes a search result; elapsed arrives as integer
// microseconds and facets default to empty.
func (r *IndexSearchResult) UnmarshalJSON(b []byte) error {
	d, err := wire.NewDecoder("IndexSearchResult", b)
	if err != nil {
		return err
	}
	r.Query = d.String("query")
	r.Results = wire.ModelList[UniversalIndexEntry](d, "results")
	r.TotalCount = d.IntOr("total_count", 0)
	r.Elapsed = d.Micros("elapsed")
	r.Facets = d.IntMap("facets")
	return d.Err()
}

// Clone returns a deep copy of the result.
func (r IndexSearchResult) Clone() IndexSearchResult {
	out := r
	if r.Results != nil {
		out.Results = make([]UniversalIndexEntry, len(r.Results))
		for i, e := range r.Results {
			out.Results[i] = e.Clone()
		}
	}
	out.Facets = wire.CloneIntMap(r.Facets)
	return out
}
