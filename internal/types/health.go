package types

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/omnidex-ai/omnidex/client/internal/wire"
)

// ------------------------------
// Health models
// ------------------------------

// HealthState tags the overall backend condition.
type HealthState string

const (
	Healthy   HealthState = "healthy"
	Degraded  HealthState = "degraded"
	Unhealthy HealthState = "unhealthy"
)

// ParseHealthState maps a wire tag to a HealthState, rejecting unknown
// values.
func ParseHealthState(s string) (HealthState, error) {
	switch h := HealthState(s); h {
	case Healthy, Degraded, Unhealthy:
		return h, nil
	}
	return "", fmt.Errorf("unknown health state %q", s)
}

// UnmarshalJSON validates the wire tag.
func (h *HealthState) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	v, err := ParseHealthState(s)
	if err != nil {
		return err
	}
	*h = v
	return nil
}

// ConfigSystemHealth reports the config subsystem: which config
// version is live, when it was last reloaded, and any per-file errors.
type ConfigSystemHealth struct {
	Status        string            `json:"status"`
	ConfigVersion string            `json:"config_version"`
	LastReload    *time.Time        `json:"last_reload,omitempty"`
	Errors        map[string]string `json:"errors"`
}

// UnmarshalJSON decodes the config subsystem block; the error map
// defaults to empty and last_reload stays absent when not reported.
func (c *ConfigSystemHealth) UnmarshalJSON(b []byte) error {
	d, err := wire.NewDecoder("ConfigSystemHealth", b)
	if err != nil {
		return err
	}
	c.Status = d.String("status")
	c.ConfigVersion = d.StringOr("config_version", "")
	c.LastReload = d.OptTime("last_reload")
	c.Errors = d.StringMap("errors")
	return d.Err()
}

// Clone returns a deep copy of the config subsystem block.
func (c ConfigSystemHealth) Clone() ConfigSystemHealth {
	out := c
	out.LastReload = wire.ClonePtr(c.LastReload)
	out.Errors = wire.CloneStringMap(c.Errors)
	return out
}

// RuntimeSystemHealth reports instance counts by condition.
type RuntimeSystemHealth struct {
	TotalInstances   int `json:"total_instances"`
	HealthyInstances int `json:"healthy_instances"`
	ErrorInstances   int `json:"error_instances"`
	RunningInstances int `json:"running_instances"`
}

// UnmarshalJSON decodes the runtime subsystem block.
func (r *RuntimeSystemHealth) UnmarshalJSON(b []byte) error {
	d, err := wire.NewDecoder("RuntimeSystemHealth", b)
	if err != nil {
		return err
	}
	r.TotalInstances = d.IntOr("total_instances", 0)
	r.HealthyInstances = d.IntOr("healthy_instances", 0)
	r.ErrorInstances = d.IntOr("error_instances", 0)
	r.RunningInstances = d.IntOr("running_instances", 0)
	return d.Err()
}

// HealthStatus is the full backend health report.
type HealthStatus struct {
	OverallScore  float64             `json:"overall_score"`
	Status        HealthState         `json:"status"`
	ConfigSystem  ConfigSystemHealth  `json:"config_system"`
	RuntimeSystem RuntimeSystemHealth `json:"runtime_system"`
}

// UnmarshalJSON decodes the health report. The score accepts both
// integer and float wire values.
func (h *HealthStatus) UnmarshalJSON(b []byte) error {
	d, err := wire.NewDecoder("HealthStatus", b)
	if err != nil {
		return err
	}
	h.OverallScore = d.Float("overall_score")
	h.Status = wire.Enum(d, "status", ParseHealthState)
	d.Model("config_system", &h.ConfigSystem)
	d.Model("runtime_system", &h.RuntimeSystem)
	return d.Err()
}

// Clone returns a deep copy of the health report.
func (h HealthStatus) Clone() HealthStatus {
	out := h
	out.ConfigSystem = h.ConfigSystem.Clone()
	return out
}

// HealthResponse wraps the health endpoint's answer.
type HealthResponse struct {
	Success bool         `json:"success"`
	Health  HealthStatus `json:"health"`
}

// UnmarshalJSON decodes the health envelope.
func (h *HealthResponse) UnmarshalJSON(b []byte) error {
	d, err := wire.NewDecoder("HealthResponse", b)
	if err != nil {
		return err
	}
	h.Success = d.Bool("success")
	d.Model("health", &h.Health)
	return d.Err()
}

// Clone returns a deep copy of the response.
func (h HealthResponse) Clone() HealthResponse {
	out := h
	out.Health = h.Health.Clone()
	return out
}
