package types

import (
	"time"

	"github.com/omnidex-ai/omnidex/client/internal/wire"
)

// ------------------------------
// Basic data item
// ------------------------------

// DataItem is the basic unit of connector output before indexing: the
// raw content a connector produced, tagged with its origin.
type DataItem struct {
	ID              string         `json:"id"`
	Content         string         `json:"content"`
	SourceConnector string         `json:"source_connector"`
	Timestamp       time.Time      `json:"timestamp"`
	Metadata        map[string]any `json:"metadata"`
	FilePath        *string        `json:"file_path,omitempty"`
}

// UnmarshalJSON decodes a data item; metadata defaults to empty and
// the file path stays absent when not reported.
func (i *DataItem) UnmarshalJSON(b []byte) error {
	d, err := wire.NewDecoder("DataItem", b)
	if err != nil {
		return err
	}
	i.ID = d.String("id")
	i.Content = d.String("content")
	i.SourceConnector = d.String("source_connector")
	i.Timestamp = d.Time("timestamp")
	i.Metadata = d.AnyMap("metadata")
	i.FilePath = d.OptString("file_path")
	return d.Err()
}

// Clone returns a deep copy of the item.
func (i DataItem) Clone() DataItem {
	out := i
	out.Metadata = wire.CloneAnyMap(i.Metadata)
	out.FilePath = wire.ClonePtr(i.FilePath)
	return out
}

// Validate checks locally built items.
func (i DataItem) Validate() error {
	if err := requireField("DataItem", "id", i.ID); err != nil {
		return err
	}
	if err := requireField("DataItem", "content", i.Content); err != nil {
		return err
	}
	return requireField("DataItem", "source_connector", i.SourceConnector)
}
