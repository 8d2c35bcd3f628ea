package types

import (
	"encoding/json"
	"fmt"
	"time"

	xerrors "github.com/omnidex-ai/omnidex/client/internal/errors"
	"github.com/omnidex-ai/omnidex/client/internal/wire"
)

// ------------------------------
// Response envelopes
// ------------------------------
//
// Every endpoint wraps its payload in one of three envelope shapes.
// Their field sets largely coincide, but each belongs to a different
// response family on the backend and they are kept as separate types
// rather than silently merged.

// APIResponse is the general-purpose envelope.
type APIResponse struct {
	Success   bool            `json:"success"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data,omitempty"`
	Error     *string         `json:"error,omitempty"`
	Timestamp *time.Time      `json:"timestamp,omitempty"`
}

// UnmarshalJSON decodes the envelope, keeping the payload opaque.
func (r *APIResponse) UnmarshalJSON(b []byte) error {
	d, err := wire.NewDecoder("APIResponse", b)
	if err != nil {
		return err
	}
	r.Success = d.Bool("success")
	r.Message = d.StringOr("message", "")
	r.Data = d.Raw("data")
	r.Error = d.OptString("error")
	r.Timestamp = d.OptTime("timestamp")
	return d.Err()
}

// Clone returns a deep copy of the envelope.
func (r APIResponse) Clone() APIResponse {
	out := r
	out.Data = wire.CloneRaw(r.Data)
	out.Error = wire.ClonePtr(r.Error)
	out.Timestamp = wire.ClonePtr(r.Timestamp)
	return out
}

// ConnectorAPIResponse is the envelope used by the connector-management
// endpoints.
type ConnectorAPIResponse struct {
	Success   bool            `json:"success"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data,omitempty"`
	Error     *string         `json:"error,omitempty"`
	Timestamp *time.Time      `json:"timestamp,omitempty"`
}

// UnmarshalJSON decodes the envelope, keeping the payload opaque.
func (r *ConnectorAPIResponse) UnmarshalJSON(b []byte) error {
	d, err := wire.NewDecoder("ConnectorAPIResponse", b)
	if err != nil {
		return err
	}
	r.Success = d.Bool("success")
	r.Message = d.StringOr("message", "")
	r.Data = d.Raw("data")
	r.Error = d.OptString("error")
	r.Timestamp = d.OptTime("timestamp")
	return d.Err()
}

// Clone returns a deep copy of the envelope.
func (r ConnectorAPIResponse) Clone() ConnectorAPIResponse {
	out := r
	out.Data = wire.CloneRaw(r.Data)
	out.Error = wire.ClonePtr(r.Error)
	out.Timestamp = wire.ClonePtr(r.Timestamp)
	return out
}

// UnifiedAPIResponse is the envelope used by the unified-data
// endpoints; it additionally carries response metadata.
type UnifiedAPIResponse struct {
	Success   bool            `json:"success"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data,omitempty"`
	Error     *string         `json:"error,omitempty"`
	Metadata  map[string]any  `json:"metadata"`
	Timestamp *time.Time      `json:"timestamp,omitempty"`
}

// UnmarshalJSON decodes the envelope; metadata defaults to empty.
func (r *UnifiedAPIResponse) UnmarshalJSON(b []byte) error {
	d, err := wire.NewDecoder("UnifiedAPIResponse", b)
	if err != nil {
		return err
	}
	r.Success = d.Bool("success")
	r.Message = d.StringOr("message", "")
	r.Data = d.Raw("data")
	r.Error = d.OptString("error")
	r.Metadata = d.AnyMap("metadata")
	r.Timestamp = d.OptTime("timestamp")
	return d.Err()
}

// Clone returns a deep copy of the envelope.
func (r UnifiedAPIResponse) Clone() UnifiedAPIResponse {
	out := r
	out.Data = wire.CloneRaw(r.Data)
	out.Error = wire.ClonePtr(r.Error)
	out.Metadata = wire.CloneAnyMap(r.Metadata)
	out.Timestamp = wire.ClonePtr(r.Timestamp)
	return out
}

// DataAs projects an envelope's opaque payload onto a typed model.
// The payload stays schema-less at the envelope level; callers that
// know the endpoint pick the concrete shape here.
func DataAs[T any](data json.RawMessage) (*T, error) {
	if len(data) == 0 {
		return nil, xerrors.NewDecode(fmt.Sprintf("%T", *new(T)), "data",
			fmt.Errorf("envelope carries no payload"))
	}
	v := new(T)
	if err := json.Unmarshal(data, v); err != nil {
		if _, ok := xerrors.AsError(err); ok {
			return nil, err
		}
		return nil, xerrors.NewDecode(fmt.Sprintf("%T", *v), "data", err)
	}
	return v, nil
}
