package types

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/omnidex-ai/omnidex/client/internal/wire"
)

// ------------------------------
// Request Types
// ------------------------------

// CreateInstanceRequest holds parameters for provisioning a new
// connector instance. RequestID makes the create idempotent when the
// caller retries.
type CreateInstanceRequest struct {
	RequestID   string         `json:"request_id"`
	TypeID      string         `json:"type_id"`
	DisplayName string         `json:"display_name"`
	Config      map[string]any `json:"config"`
	AutoStart   bool           `json:"auto_start"`
	TemplateID  *string        `json:"template_id,omitempty"`
}

// NewCreateInstanceRequest builds a create request with a fresh
// request id and an empty config map.
func NewCreateInstanceRequest(typeID, displayName string) CreateInstanceRequest {
	return CreateInstanceRequest{
		RequestID:   uuid.NewString(),
		TypeID:      typeID,
		DisplayName: displayName,
		Config:      map[string]any{},
	}
}

// Validate checks required fields before the request is encoded.
func (r CreateInstanceRequest) Validate() error {
	if err := requireField("CreateInstanceRequest", "request_id", r.RequestID); err != nil {
		return err
	}
	if err := requireField("CreateInstanceRequest", "type_id", r.TypeID); err != nil {
		return err
	}
	return requireField("CreateInstanceRequest", "display_name", r.DisplayName)
}

// Clone returns a deep copy of the request.
func (r CreateInstanceRequest) Clone() CreateInstanceRequest {
	out := r
	out.Config = wire.CloneAnyMap(r.Config)
	out.TemplateID = wire.ClonePtr(r.TemplateID)
	return out
}

// UpdateInstanceConfigRequest replaces an instance's config map.
type UpdateInstanceConfigRequest struct {
	InstanceID string         `json:"instance_id"`
	Config     map[string]any `json:"config"`
	Restart    bool           `json:"restart"`
}

// Validate checks required fields before the request is encoded.
func (r UpdateInstanceConfigRequest) Validate() error {
	if err := requireField("UpdateInstanceConfigRequest", "instance_id", r.InstanceID); err != nil {
		return err
	}
	if r.Config == nil {
		return constructErr("UpdateInstanceConfigRequest", "config",
			fmt.Errorf("config is required"))
	}
	return nil
}

// Clone returns a deep copy of the request.
func (r UpdateInstanceConfigRequest) Clone() UpdateInstanceConfigRequest {
	out := r
	out.Config = wire.CloneAnyMap(r.Config)
	return out
}

// IndexSearchRequest holds unified index query parameters.
type IndexSearchRequest struct {
	Query        string        `json:"query"`
	Limit        int           `json:"limit,omitempty"`
	Tiers        []StorageTier `json:"tiers,omitempty"`
	ConnectorIDs []string      `json:"connector_ids,omitempty"`
}

// Validate checks required fields before the request is encoded.
func (r IndexSearchRequest) Validate() error {
	if err := requireField("IndexSearchRequest", "query", r.Query); err != nil {
		return err
	}
	if r.Limit < 0 {
		return constructErr("IndexSearchRequest", "limit",
			fmt.Errorf("limit must be >= 0, got %d", r.Limit))
	}
	for _, t := range r.Tiers {
		if _, err := ParseStorageTier(string(t)); err != nil {
			return constructErr("IndexSearchRequest", "tiers", err)
		}
	}
	return nil
}

// Clone returns a deep copy of the request.
func (r IndexSearchRequest) Clone() IndexSearchRequest {
	out := r
	if r.Tiers != nil {
		out.Tiers = make([]StorageTier, len(r.Tiers))
		copy(out.Tiers, r.Tiers)
	}
	out.ConnectorIDs = wire.CloneStrings(r.ConnectorIDs)
	return out
}

// VectorSearchRequest holds similarity query parameters. Exactly one
// of Query (server-side embedding) or Embedding (client-supplied
// vector) must be set.
type VectorSearchRequest struct {
	Query     string    `json:"query,omitempty"`
	Embedding []float32 `json:"embedding,omitempty"`
	TopK      int       `json:"top_k"`
}

// Validate checks the query/embedding exclusivity and TopK range.
func (r VectorSearchRequest) Validate() error {
	if r.Query == "" && len(r.Embedding) == 0 {
		return constructErr("VectorSearchRequest", "query",
			fmt.Errorf("either query or embedding is required"))
	}
	if r.Query != "" && len(r.Embedding) > 0 {
		return constructErr("VectorSearchRequest", "embedding",
			fmt.Errorf("query and embedding are mutually exclusive"))
	}
	if err := requirePositive("VectorSearchRequest", "top_k", r.TopK); err != nil {
		return err
	}
	return nil
}

// Clone returns a deep copy of the request.
func (r VectorSearchRequest) Clone() VectorSearchRequest {
	out := r
	out.Embedding = wire.CloneFloats32(r.Embedding)
	return out
}
