package types

import (
	"github.com/omnidex-ai/omnidex/client/internal/wire"
)

// ------------------------------
// Vector search models
// ------------------------------

// UnifiedVectorDocument is one embedded document in the vector index.
type UnifiedVectorDocument struct {
	ID          string         `json:"id"`
	ConnectorID string         `json:"connector_id"`
	Content     string         `json:"content"`
	Embedding   []float32      `json:"embedding"`
	Metadata    map[string]any `json:"metadata"`
}

// UnmarshalJSON decodes a vector document.
func (v *UnifiedVectorDocument) UnmarshalJSON(b []byte) error {
	d, err := wire.NewDecoder("UnifiedVectorDocument", b)
	if err != nil {
		return err
	}
	v.ID = d.String("id")
	v.ConnectorID = d.StringOr("connector_id", "")
	v.Content = d.StringOr("content", "")
	v.Embedding = d.Floats32("embedding")
	v.Metadata = d.AnyMap("metadata")
	return d.Err()
}

// Clone returns a deep copy of the document.
func (v UnifiedVectorDocument) Clone() UnifiedVectorDocument {
	out := v
	out.Embedding = wire.CloneFloats32(v.Embedding)
	out.Metadata = wire.CloneAnyMap(v.Metadata)
	return out
}

// VectorMatch pairs a document with its similarity score for one query.
type VectorMatch struct {
	Document UnifiedVectorDocument `json:"document"`
	Score    float64               `json:"score"`
}

// UnmarshalJSON decodes a scored match.
func (m *VectorMatch) UnmarshalJSON(b []byte) error {
	d, err := wire.NewDecoder("VectorMatch", b)
	if err != nil {
		return err
	}
	d.Model("document", &m.Document)
	m.Score = d.Float("score")
	return d.Err()
}

// Clone returns a deep copy of the match.
func (m VectorMatch) Clone() VectorMatch {
	out := m
	out.Document = m.Document.Clone()
	return out
}

// VectorSearchResult is the answer to one similarity query.
type VectorSearchResult struct {
	Query      string        `json:"query"`
	Matches    []VectorMatch `json:"matches"`
	TotalCount int           `json:"total_count"`
	Elapsed    wire.Duration `json:"elapsed"`
}

// UnmarshalJSON decodes a similarity result.
func (r *VectorSearchResult) UnmarshalJSON(b []byte) error {
	d, err := wire.NewDecoder("VectorSearchResult", b)
	if err != nil {
		return err
	}
	r.Query = d.String("query")
	r.Matches = wire.ModelList[VectorMatch](d, "matches")
	r.TotalCount = d.IntOr("total_count", 0)
	r.Elapsed = d.Micros("elapsed")
	return d.Err()
}

// Clone returns a deep copy of the result.
func (r VectorSearchResult) Clone() VectorSearchResult {
	out := r
	if r.Matches != nil {
		out.Matches = make([]VectorMatch, len(r.Matches))
		for i, m := range r.Matches {
			out.Matches[i] = m.Clone()
		}
	}
	return out
}

// VectorCluster is one cluster of the vector space with its centroid
// and cohesion score.
type VectorCluster struct {
	ID        string    `json:"id"`
	Label     string    `json:"label"`
	Centroid  []float32 `json:"centroid"`
	Cohesion  float64   `json:"cohesion"`
	MemberIDs []string  `json:"member_ids"`
}

// UnmarshalJSON decodes a cluster.
func (c *VectorCluster) UnmarshalJSON(b []byte) error {
	d, err := wire.NewDecoder("VectorCluster", b)
	if err != nil {
		return err
	}
	c.ID = d.String("id")
	c.Label = d.StringOr("label", "")
	c.Centroid = d.Floats32("centroid")
	c.Cohesion = d.FloatOr("cohesion", 0)
	c.MemberIDs = d.Strings("member_ids")
	return d.Err()
}

// Clone returns a deep copy of the cluster.
func (c VectorCluster) Clone() VectorCluster {
	out := c
	out.Centroid = wire.CloneFloats32(c.Centroid)
	out.MemberIDs = wire.CloneStrings(c.MemberIDs)
	return out
}
