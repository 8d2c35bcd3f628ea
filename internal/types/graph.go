package types

import (
	"time"

	"github.com/omnidex-ai/omnidex/client/internal/wire"
)

// ------------------------------
// Unified graph models
// ------------------------------

// GraphNode is one entity in the unified knowledge graph. This shape
// belongs to the unified-data family and is unrelated to the
// lifecycle dependency graph (ConnectorGraphNode).
type GraphNode struct {
	ID         string         `json:"id"`
	Label      string         `json:"label"`
	Kind       string         `json:"kind"`
	Properties map[string]any `json:"properties"`
}

// UnmarshalJSON decodes a graph node.
func (n *GraphNode) UnmarshalJSON(b []byte) error {
	d, err := wire.NewDecoder("GraphNode", b)
	if err != nil {
		return err
	}
	n.ID = d.String("id")
	n.Label = d.StringOr("label", "")
	n.Kind = d.StringOr("kind", "")
	n.Properties = d.AnyMap("properties")
	return d.Err()
}

// Clone returns a deep copy of the node.
func (n GraphNode) Clone() GraphNode {
	out := n
	out.Properties = wire.CloneAnyMap(n.Properties)
	return out
}

// GraphEdge is one relation in the unified knowledge graph.
type GraphEdge struct {
	ID         string         `json:"id"`
	Source     string         `json:"source"`
	Target     string         `json:"target"`
	Relation   string         `json:"relation"`
	Weight     float64        `json:"weight"`
	Properties map[string]any `json:"properties"`
}

// UnmarshalJSON decodes a graph edge; weight accepts integer wire
// values and defaults to 1.
func (e *GraphEdge) UnmarshalJSON(b []byte) error {
	d, err := wire.NewDecoder("GraphEdge", b)
	if err != nil {
		return err
	}
	e.ID = d.StringOr("id", "")
	e.Source = d.String("source")
	e.Target = d.String("target")
	e.Relation = d.StringOr("relation", "")
	e.Weight = d.FloatOr("weight", 1)
	e.Properties = d.AnyMap("properties")
	return d.Err()
}

// Clone returns a deep copy of the edge.
func (e GraphEdge) Clone() GraphEdge {
	out := e
	out.Properties = wire.CloneAnyMap(e.Properties)
	return out
}

// UnifiedGraphData is a full graph snapshot with optional clustering
// and centrality annotations.
type UnifiedGraphData struct {
	Nodes       []GraphNode         `json:"nodes"`
	Edges       []GraphEdge         `json:"edges"`
	Directed    bool                `json:"directed"`
	LastUpdated time.Time           `json:"last_updated"`
	Clusters    map[string][]string `json:"clusters"`
	Centrality  map[string]float64  `json:"centrality"`
}

// UnmarshalJSON decodes a graph snapshot.
func (g *UnifiedGraphData) UnmarshalJSON(b []byte) error {
	d, err := wire.NewDecoder("UnifiedGraphData", b)
	if err != nil {
		return err
	}
	g.Nodes = wire.ModelList[GraphNode](d, "nodes")
	g.Edges = wire.ModelList[GraphEdge](d, "edges")
	g.Directed = d.BoolOr("directed", true)
	g.LastUpdated = d.Time("last_updated")
	g.Clusters = d.StringsMap("clusters")
	g.Centrality = d.FloatMap("centrality")
	return d.Err()
}

// Clone returns a deep copy of the snapshot.
func (g UnifiedGraphData) Clone() UnifiedGraphData {
	out := g
	if g.Nodes != nil {
		out.Nodes = make([]GraphNode, len(g.Nodes))
		for i, n := range g.Nodes {
			out.Nodes[i] = n.Clone()
		}
	}
	if g.Edges != nil {
		out.Edges = make([]GraphEdge, len(g.Edges))
		for i, e := range g.Edges {
			out.Edges[i] = e.Clone()
		}
	}
	out.Clusters = wire.CloneStringsMap(g.Clusters)
	out.Centrality = wire.CloneFloatMap(g.Centrality)
	return out
}
