package types

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/omnidex-ai/omnidex/client/internal/wire"
)

// ------------------------------
// Connector lifecycle models
// ------------------------------

// ConnectorState is the full lifecycle state carried by the
// connector-management endpoints, from catalog availability through
// uninstall.
type ConnectorState string

const (
	StateAvailable    ConnectorState = "available"
	StateInstalled    ConnectorState = "installed"
	StateConfigured   ConnectorState = "configured"
	StateEnabled      ConnectorState = "enabled"
	StateRunning      ConnectorState = "running"
	StateError        ConnectorState = "error"
	StateStopping     ConnectorState = "stopping"
	StateUpdating     ConnectorState = "updating"
	StateUninstalling ConnectorState = "uninstalling"
)

// ParseConnectorState maps a wire tag to a ConnectorState, rejecting
// unknown values.
func ParseConnectorState(s string) (ConnectorState, error) {
	switch st := ConnectorState(s); st {
	case StateAvailable, StateInstalled, StateConfigured, StateEnabled,
		StateRunning, StateError, StateStopping, StateUpdating, StateUninstalling:
		return st, nil
	}
	return "", fmt.Errorf("unknown connector state %q", s)
}

// UnmarshalJSON validates the wire tag.
func (s *ConnectorState) UnmarshalJSON(b []byte) error {
	var v string
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	st, err := ParseConnectorState(v)
	if err != nil {
		return err
	}
	*s = st
	return nil
}

// RuntimeState is the narrower state set reported by the runtime
// summary endpoints. It deliberately stays a separate type from
// ConnectorState: the two response families disagree on the variant
// set and the backend has not unified them.
type RuntimeState string

const (
	RuntimeStopped  RuntimeState = "stopped"
	RuntimeStarting RuntimeState = "starting"
	RuntimeRunning  RuntimeState = "running"
	RuntimeStopping RuntimeState = "stopping"
	RuntimeError    RuntimeState = "error"
)

// ParseRuntimeState maps a wire tag to a RuntimeState, rejecting
// unknown values.
func ParseRuntimeState(s string) (RuntimeState, error) {
	switch st := RuntimeState(s); st {
	case RuntimeStopped, RuntimeStarting, RuntimeRunning, RuntimeStopping, RuntimeError:
		return st, nil
	}
	return "", fmt.Errorf("unknown runtime state %q", s)
}

// UnmarshalJSON validates the wire tag.
func (s *RuntimeState) UnmarshalJSON(b []byte) error {
	var v string
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	st, err := ParseRuntimeState(v)
	if err != nil {
		return err
	}
	*s = st
	return nil
}

// ConnectorCapabilities is the feature-flag block of a connector type.
type ConnectorCapabilities struct {
	MultiInstance bool `json:"multi_instance"`
	AutoDiscovery bool `json:"auto_discovery"`
	HotReload     bool `json:"hot_reload"`
	HealthCheck   bool `json:"health_check"`
}

// UnmarshalJSON decodes the flag block; every flag defaults to false.
func (c *ConnectorCapabilities) UnmarshalJSON(b []byte) error {
	d, err := wire.NewDecoder("ConnectorCapabilities", b)
	if err != nil {
		return err
	}
	c.MultiInstance = d.BoolOr("multi_instance", false)
	c.AutoDiscovery = d.BoolOr("auto_discovery", false)
	c.HotReload = d.BoolOr("hot_reload", false)
	c.HealthCheck = d.BoolOr("health_check", false)
	return d.Err()
}

// InstanceTemplate is a preset embedded in a connector definition.
// The listing endpoints ship a second, id-carrying shape; see
// TemplateInfo.
type InstanceTemplate struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Config      map[string]any `json:"config"`
}

// UnmarshalJSON decodes a definition-embedded template.
func (t *InstanceTemplate) UnmarshalJSON(b []byte) error {
	d, err := wire.NewDecoder("InstanceTemplate", b)
	if err != nil {
		return err
	}
	t.Name = d.String("name")
	t.Description = d.StringOr("description", "")
	t.Config = d.AnyMap("config")
	return d.Err()
}

// Clone returns a deep copy of the template.
func (t InstanceTemplate) Clone() InstanceTemplate {
	out := t
	out.Config = wire.CloneAnyMap(t.Config)
	return out
}

// TemplateInfo is the template shape returned by the template listing
// endpoints. Its field set differs from InstanceTemplate and the two
// are kept apart on purpose.
type TemplateInfo struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	Description     string         `json:"description"`
	ConfigOverrides map[string]any `json:"config_overrides"`
}

// UnmarshalJSON decodes a listing-shape template.
func (t *TemplateInfo) UnmarshalJSON(b []byte) error {
	d, err := wire.NewDecoder("TemplateInfo", b)
	if err != nil {
		return err
	}
	t.ID = d.String("id")
	t.Name = d.String("name")
	t.Description = d.StringOr("description", "")
	t.ConfigOverrides = d.AnyMap("config_overrides")
	return d.Err()
}

// Clone returns a deep copy of the template info.
func (t TemplateInfo) Clone() TemplateInfo {
	out := t
	out.ConfigOverrides = wire.CloneAnyMap(t.ConfigOverrides)
	return out
}

// InstallInfo is the optional install metadata block attached to a
// connector definition once the type has been fetched locally.
type InstallInfo struct {
	Path         string            `json:"path"`
	Registered   bool              `json:"registered"`
	DownloadURL  *string           `json:"download_url,omitempty"`
	Platforms    map[string]string `json:"platforms"`
	Capabilities map[string]string `json:"capabilities"`
	LastUpdated  *time.Time        `json:"last_updated,omitempty"`
}

// UnmarshalJSON decodes the install block.
func (i *InstallInfo) UnmarshalJSON(b []byte) error {
	d, err := wire.NewDecoder("InstallInfo", b)
	if err != nil {
		return err
	}
	i.Path = d.StringOr("path", "")
	i.Registered = d.BoolOr("registered", false)
	i.DownloadURL = d.OptString("download_url")
	i.Platforms = d.StringMap("platforms")
	i.Capabilities = d.StringMap("capabilities")
	i.LastUpdated = d.OptTime("last_updated")
	return d.Err()
}

// Clone returns a deep copy of the install block.
func (i InstallInfo) Clone() InstallInfo {
	out := i
	out.DownloadURL = wire.ClonePtr(i.DownloadURL)
	out.Platforms = wire.CloneStringMap(i.Platforms)
	out.Capabilities = wire.CloneStringMap(i.Capabilities)
	out.LastUpdated = wire.ClonePtr(i.LastUpdated)
	return out
}

// ConnectorDefinition describes an installable connector type: its
// identity, capabilities, declared dependencies and permissions, the
// JSON schema its config must satisfy, and the shipped defaults.
type ConnectorDefinition struct {
	TypeID        string                `json:"type_id"`
	Name          string                `json:"name"`
	DisplayName   string                `json:"display_name"`
	Description   string                `json:"description"`
	Category      string                `json:"category"`
	Version       string                `json:"version"`
	Author        string                `json:"author"`
	License       string                `json:"license"`
	Capabilities  ConnectorCapabilities `json:"capabilities"`
	EntryPoint    string                `json:"entry_point"`
	Dependencies  []string              `json:"dependencies"`
	Permissions   []string              `json:"permissions"`
	ConfigSchema  map[string]any        `json:"config_schema"`
	DefaultConfig map[string]any        `json:"default_config"`
	Templates     []InstanceTemplate    `json:"templates"`
	Install       *InstallInfo          `json:"install,omitempty"`
}

// UnmarshalJSON decodes a connector definition.
func (c *ConnectorDefinition) UnmarshalJSON(b []byte) error {
	d, err := wire.NewDecoder("ConnectorDefinition", b)
	if err != nil {
		return err
	}
	c.TypeID = d.String("type_id")
	c.Name = d.String("name")
	c.DisplayName = d.StringOr("display_name", "")
	c.Description = d.StringOr("description", "")
	c.Category = d.StringOr("category", "")
	c.Version = d.String("version")
	c.Author = d.StringOr("author", "")
	c.License = d.StringOr("license", "")
	if caps := wire.ModelPtr[ConnectorCapabilities](d, "capabilities"); caps != nil {
		c.Capabilities = *caps
	} else {
		c.Capabilities = ConnectorCapabilities{}
	}
	c.EntryPoint = d.StringOr("entry_point", "")
	c.Dependencies = d.Strings("dependencies")
	c.Permissions = d.Strings("permissions")
	c.ConfigSchema = d.AnyMap("config_schema")
	c.DefaultConfig = d.AnyMap("default_config")
	c.Templates = wire.ModelList[InstanceTemplate](d, "templates")
	c.Install = wire.ModelPtr[InstallInfo](d, "install")
	return d.Err()
}

// Clone returns a deep copy of the definition.
func (c ConnectorDefinition) Clone() ConnectorDefinition {
	out := c
	out.Dependencies = wire.CloneStrings(c.Dependencies)
	out.Permissions = wire.CloneStrings(c.Permissions)
	out.ConfigSchema = wire.CloneAnyMap(c.ConfigSchema)
	out.DefaultConfig = wire.CloneAnyMap(c.DefaultConfig)
	if c.Templates != nil {
		out.Templates = make([]InstanceTemplate, len(c.Templates))
		for i, t := range c.Templates {
			out.Templates[i] = t.Clone()
		}
	}
	if c.Install != nil {
		ins := c.Install.Clone()
		out.Install = &ins
	}
	return out
}

// Validate checks locally built definitions.
func (c ConnectorDefinition) Validate() error {
	if err := requireField("ConnectorDefinition", "type_id", c.TypeID); err != nil {
		return err
	}
	if err := requireField("ConnectorDefinition", "name", c.Name); err != nil {
		return err
	}
	return requireField("ConnectorDefinition", "version", c.Version)
}

// ConnectorInfo is the compact runtime summary row. It carries the
// runtime-only state set, not the full lifecycle one.
type ConnectorInfo struct {
	InstanceID    string       `json:"instance_id"`
	TypeID        string       `json:"type_id"`
	DisplayName   string       `json:"display_name"`
	State         RuntimeState `json:"state"`
	Enabled       bool         `json:"enabled"`
	DataProcessed int64        `json:"data_processed"`
	LastHeartbeat *time.Time   `json:"last_heartbeat,omitempty"`
	Error         *string      `json:"error,omitempty"`
}

// UnmarshalJSON decodes a runtime summary row.
func (c *ConnectorInfo) UnmarshalJSON(b []byte) error {
	d, err := wire.NewDecoder("ConnectorInfo", b)
	if err != nil {
		return err
	}
	c.InstanceID = d.String("instance_id")
	c.TypeID = d.String("type_id")
	c.DisplayName = d.StringOr("display_name", "")
	c.State = wire.Enum(d, "state", ParseRuntimeState)
	c.Enabled = d.BoolOr("enabled", false)
	c.DataProcessed = d.Int64Or("data_processed", 0)
	c.LastHeartbeat = d.OptTime("last_heartbeat")
	c.Error = d.OptString("error")
	return d.Err()
}

// Clone returns a deep copy of the summary row.
func (c ConnectorInfo) Clone() ConnectorInfo {
	out := c
	out.LastHeartbeat = wire.ClonePtr(c.LastHeartbeat)
	out.Error = wire.ClonePtr(c.Error)
	return out
}

// ConnectorInstanceInfo is the lifecycle view of one configured
// instance, including its live config map.
type ConnectorInstanceInfo struct {
	InstanceID    string         `json:"instance_id"`
	DisplayName   string         `json:"display_name"`
	TypeID        string         `json:"type_id"`
	State         ConnectorState `json:"state"`
	Enabled       bool           `json:"enabled"`
	AutoStart     bool           `json:"auto_start"`
	PID           *int           `json:"pid,omitempty"`
	LastHeartbeat *time.Time     `json:"last_heartbeat,omitempty"`
	DataProcessed int64          `json:"data_processed"`
	Error         *string        `json:"error,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	Config        map[string]any `json:"config"`
}

// UnmarshalJSON decodes a lifecycle instance row.
func (c *ConnectorInstanceInfo) UnmarshalJSON(b []byte) error {
	d, err := wire.NewDecoder("ConnectorInstanceInfo", b)
	if err != nil {
		return err
	}
	c.InstanceID = d.String("instance_id")
	c.DisplayName = d.StringOr("display_name", "")
	c.TypeID = d.String("type_id")
	c.State = wire.Enum(d, "state", ParseConnectorState)
	c.Enabled = d.BoolOr("enabled", false)
	c.AutoStart = d.BoolOr("auto_start", false)
	c.PID = d.OptInt("pid")
	c.LastHeartbeat = d.OptTime("last_heartbeat")
	c.DataProcessed = d.Int64Or("data_processed", 0)
	c.Error = d.OptString("error")
	c.CreatedAt = d.Time("created_at")
	c.UpdatedAt = d.Time("updated_at")
	c.Config = d.AnyMap("config")
	return d.Err()
}

// Clone returns a deep copy of the instance row.
func (c ConnectorInstanceInfo) Clone() ConnectorInstanceInfo {
	out := c
	out.PID = wire.ClonePtr(c.PID)
	out.LastHeartbeat = wire.ClonePtr(c.LastHeartbeat)
	out.Error = wire.ClonePtr(c.Error)
	out.Config = wire.CloneAnyMap(c.Config)
	return out
}

// ConnectorInstanceDetail is the expanded instance shape served by the
// detail endpoint: the instance row plus runtime timing and, when the
// caller asked for it, the embedded type definition.
type ConnectorInstanceDetail struct {
	ConnectorInstanceInfo
	StartedAt *time.Time           `json:"started_at,omitempty"`
	Uptime    *wire.Duration       `json:"uptime,omitempty"`
	TypeInfo  *ConnectorDefinition `json:"type_info,omitempty"`
}

// UnmarshalJSON decodes the detail shape.
func (c *ConnectorInstanceDetail) UnmarshalJSON(b []byte) error {
	if err := json.Unmarshal(b, &c.ConnectorInstanceInfo); err != nil {
		return err
	}
	d, err := wire.NewDecoder("ConnectorInstanceDetail", b)
	if err != nil {
		return err
	}
	c.StartedAt = d.OptTime("started_at")
	c.Uptime = d.OptMicros("uptime")
	c.TypeInfo = wire.ModelPtr[ConnectorDefinition](d, "type_info")
	return d.Err()
}

// Clone returns a deep copy of the detail shape.
func (c ConnectorInstanceDetail) Clone() ConnectorInstanceDetail {
	out := c
	out.ConnectorInstanceInfo = c.ConnectorInstanceInfo.Clone()
	out.StartedAt = wire.ClonePtr(c.StartedAt)
	out.Uptime = wire.ClonePtr(c.Uptime)
	if c.TypeInfo != nil {
		ti := c.TypeInfo.Clone()
		out.TypeInfo = &ti
	}
	return out
}

// StateOverview is the fleet-wide state distribution.
type StateOverview struct {
	TotalInstances   int                    `json:"total_instances"`
	RunningInstances int                    `json:"running_instances"`
	Distribution     map[ConnectorState]int `json:"distribution"`
}

// UnmarshalJSON decodes the overview; distribution keys must be known
// connector states.
func (s *StateOverview) UnmarshalJSON(b []byte) error {
	d, err := wire.NewDecoder("StateOverview", b)
	if err != nil {
		return err
	}
	s.TotalInstances = d.IntOr("total_instances", 0)
	s.RunningInstances = d.IntOr("running_instances", 0)
	s.Distribution = wire.EnumKeys(d, "distribution", ParseConnectorState)
	return d.Err()
}

// Clone returns a deep copy of the overview.
func (s StateOverview) Clone() StateOverview {
	out := s
	out.Distribution = wire.CloneCounts(s.Distribution)
	return out
}

// ConnectorGraphNode is one connector in the dependency graph served
// by the lifecycle endpoints. The unified-data endpoints ship an
// unrelated graph shape; see GraphNode.
type ConnectorGraphNode struct {
	InstanceID string         `json:"instance_id"`
	TypeID     string         `json:"type_id"`
	Label      string         `json:"label"`
	State      ConnectorState `json:"state"`
}

// UnmarshalJSON decodes a dependency-graph node.
func (n *ConnectorGraphNode) UnmarshalJSON(b []byte) error {
	d, err := wire.NewDecoder("ConnectorGraphNode", b)
	if err != nil {
		return err
	}
	n.InstanceID = d.String("instance_id")
	n.TypeID = d.String("type_id")
	n.Label = d.StringOr("label", "")
	n.State = wire.Enum(d, "state", ParseConnectorState)
	return d.Err()
}

// ConnectorGraphEdge is a directed dependency between two instances.
type ConnectorGraphEdge struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Relation string `json:"relation"`
}

// UnmarshalJSON decodes a dependency edge.
func (e *ConnectorGraphEdge) UnmarshalJSON(b []byte) error {
	d, err := wire.NewDecoder("ConnectorGraphEdge", b)
	if err != nil {
		return err
	}
	e.From = d.String("from")
	e.To = d.String("to")
	e.Relation = d.StringOr("relation", "depends_on")
	return d.Err()
}

// ConnectorGraph is the instance dependency graph.
type ConnectorGraph struct {
	Nodes []ConnectorGraphNode `json:"nodes"`
	Edges []ConnectorGraphEdge `json:"edges"`
}

// UnmarshalJSON decodes the dependency graph.
func (g *ConnectorGraph) UnmarshalJSON(b []byte) error {
	d, err := wire.NewDecoder("ConnectorGraph", b)
	if err != nil {
		return err
	}
	g.Nodes = wire.ModelList[ConnectorGraphNode](d, "nodes")
	g.Edges = wire.ModelList[ConnectorGraphEdge](d, "edges")
	return d.Err()
}

// Clone returns a deep copy of the dependency graph.
func (g ConnectorGraph) Clone() ConnectorGraph {
	out := g
	if g.Nodes != nil {
		out.Nodes = make([]ConnectorGraphNode, len(g.Nodes))
		copy(out.Nodes, g.Nodes)
	}
	if g.Edges != nil {
		out.Edges = make([]ConnectorGraphEdge, len(g.Edges))
		copy(out.Edges, g.Edges)
	}
	return out
}
