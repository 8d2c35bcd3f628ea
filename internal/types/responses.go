package types

import "github.com/omnidex-ai/omnidex/client/internal/wire"

// ------------------------------
// List response shapes
// ------------------------------
//
// These are the typed payloads carried inside the envelopes' data
// field by the list endpoints.

// DefinitionListResponse wraps the connector catalog listing.
type DefinitionListResponse struct {
	Definitions []ConnectorDefinition `json:"definitions"`
	Count       int                   `json:"count"`
}

// UnmarshalJSON decodes the listing; definitions default to empty.
func (r *DefinitionListResponse) UnmarshalJSON(b []byte) error {
	d, err := wire.NewDecoder("DefinitionListResponse", b)
	if err != nil {
		return err
	}
	r.Definitions = wire.ModelList[ConnectorDefinition](d, "definitions")
	r.Count = d.IntOr("count", 0)
	return d.Err()
}

// InstanceListResponse wraps the instance listing.
type InstanceListResponse struct {
	Instances []ConnectorInstanceInfo `json:"instances"`
	Count     int                     `json:"count"`
}

// UnmarshalJSON decodes the listing; instances default to empty.
func (r *InstanceListResponse) UnmarshalJSON(b []byte) error {
	d, err := wire.NewDecoder("InstanceListResponse", b)
	if err != nil {
		return err
	}
	r.Instances = wire.ModelList[ConnectorInstanceInfo](d, "instances")
	r.Count = d.IntOr("count", 0)
	return d.Err()
}

// ConnectorListResponse wraps the runtime summary listing.
type ConnectorListResponse struct {
	Connectors []ConnectorInfo `json:"connectors"`
	Count      int             `json:"count"`
}

// UnmarshalJSON decodes the listing; connectors default to empty.
func (r *ConnectorListResponse) UnmarshalJSON(b []byte) error {
	d, err := wire.NewDecoder("ConnectorListResponse", b)
	if err != nil {
		return err
	}
	r.Connectors = wire.ModelList[ConnectorInfo](d, "connectors")
	r.Count = d.IntOr("count", 0)
	return d.Err()
}

// TemplateListResponse wraps the template listing.
type TemplateListResponse struct {
	Templates []TemplateInfo `json:"templates"`
	Count     int            `json:"count"`
}

// UnmarshalJSON decodes the listing; templates default to empty.
func (r *TemplateListResponse) UnmarshalJSON(b []byte) error {
	d, err := wire.NewDecoder("TemplateListResponse", b)
	if err != nil {
		return err
	}
	r.Templates = wire.ModelList[TemplateInfo](d, "templates")
	r.Count = d.IntOr("count", 0)
	return d.Err()
}

// InsightListResponse wraps the insight feed.
type InsightListResponse struct {
	Insights []AIInsightCard `json:"insights"`
	Count    int             `json:"count"`
}

// UnmarshalJSON decodes the feed; insights default to empty.
func (r *InsightListResponse) UnmarshalJSON(b []byte) error {
	d, err := wire.NewDecoder("InsightListResponse", b)
	if err != nil {
		return err
	}
	r.Insights = wire.ModelList[AIInsightCard](d, "insights")
	r.Count = d.IntOr("count", 0)
	return d.Err()
}
