package client

import (
	"encoding/json"

	"github.com/omnidex-ai/omnidex/client/internal/types"
	"github.com/omnidex-ai/omnidex/client/internal/wire"
)

// Public type aliases so consumers can import only the client package.

// Insights and today screen
type (
	InsightKind     = types.InsightKind
	ActionKind      = types.ActionKind
	AIInsightAction = types.AIInsightAction
	AIInsightCard   = types.AIInsightCard
	TodayOverview   = types.TodayOverview
	QuickAccessKind = types.QuickAccessKind
	QuickAccessItem = types.QuickAccessItem
)

// Connector lifecycle
type (
	ConnectorState          = types.ConnectorState
	RuntimeState            = types.RuntimeState
	ConnectorCapabilities   = types.ConnectorCapabilities
	ConnectorDefinition     = types.ConnectorDefinition
	InstallInfo             = types.InstallInfo
	InstanceTemplate        = types.InstanceTemplate
	TemplateInfo            = types.TemplateInfo
	ConnectorInfo           = types.ConnectorInfo
	ConnectorInstanceInfo   = types.ConnectorInstanceInfo
	ConnectorInstanceDetail = types.ConnectorInstanceDetail
	StateOverview           = types.StateOverview
	ConnectorGraphNode      = types.ConnectorGraphNode
	ConnectorGraphEdge      = types.ConnectorGraphEdge
	ConnectorGraph          = types.ConnectorGraph
)

// Health
type (
	HealthState         = types.HealthState
	ConfigSystemHealth  = types.ConfigSystemHealth
	RuntimeSystemHealth = types.RuntimeSystemHealth
	HealthStatus        = types.HealthStatus
	HealthResponse      = types.HealthResponse
)

// Unified index, graph, and vector search
type (
	DataItem              = types.DataItem
	StorageTier           = types.StorageTier
	UniversalIndexEntry   = types.UniversalIndexEntry
	IndexSearchResult     = types.IndexSearchResult
	GraphNode             = types.GraphNode
	GraphEdge             = types.GraphEdge
	UnifiedGraphData      = types.UnifiedGraphData
	UnifiedVectorDocument = types.UnifiedVectorDocument
	VectorMatch           = types.VectorMatch
	VectorSearchResult    = types.VectorSearchResult
	VectorCluster         = types.VectorCluster
)

// Envelopes and list payloads
type (
	APIResponse            = types.APIResponse
	ConnectorAPIResponse   = types.ConnectorAPIResponse
	UnifiedAPIResponse     = types.UnifiedAPIResponse
	DefinitionListResponse = types.DefinitionListResponse
	InstanceListResponse   = types.InstanceListResponse
	ConnectorListResponse  = types.ConnectorListResponse
	TemplateListResponse   = types.TemplateListResponse
	InsightListResponse    = types.InsightListResponse
)

// Requests
type (
	CreateInstanceRequest       = types.CreateInstanceRequest
	UpdateInstanceConfigRequest = types.UpdateInstanceConfigRequest
	IndexSearchRequest          = types.IndexSearchRequest
	VectorSearchRequest         = types.VectorSearchRequest
)

// Duration is a wire span carried as integer microseconds.
type Duration = wire.Duration

// Enum variants, re-exported for construction and matching.
const (
	InsightDiscovery  = types.InsightDiscovery
	InsightSuggestion = types.InsightSuggestion
	InsightPattern    = types.InsightPattern
	InsightAlert      = types.InsightAlert

	ActionPrimary   = types.ActionPrimary
	ActionSecondary = types.ActionSecondary
	ActionDismiss   = types.ActionDismiss

	QuickAccessURL     = types.QuickAccessURL
	QuickAccessFile    = types.QuickAccessFile
	QuickAccessContact = types.QuickAccessContact
	QuickAccessNote    = types.QuickAccessNote

	StateAvailable    = types.StateAvailable
	StateInstalled    = types.StateInstalled
	StateConfigured   = types.StateConfigured
	StateEnabled      = types.StateEnabled
	StateRunning      = types.StateRunning
	StateError        = types.StateError
	StateStopping     = types.StateStopping
	StateUpdating     = types.StateUpdating
	StateUninstalling = types.StateUninstalling

	RuntimeStopped  = types.RuntimeStopped
	RuntimeStarting = types.RuntimeStarting
	RuntimeRunning  = types.RuntimeRunning
	RuntimeStopping = types.RuntimeStopping
	RuntimeError    = types.RuntimeError

	Healthy   = types.Healthy
	Degraded  = types.Degraded
	Unhealthy = types.Unhealthy

	TierHot  = types.TierHot
	TierWarm = types.TierWarm
	TierCold = types.TierCold
)

// Constructors and parsers, re-exported.
var (
	NewCreateInstanceRequest = types.NewCreateInstanceRequest
	ParseInsightKind         = types.ParseInsightKind
	ParseActionKind          = types.ParseActionKind
	ParseQuickAccessKind     = types.ParseQuickAccessKind
	ParseConnectorState      = types.ParseConnectorState
	ParseRuntimeState        = types.ParseRuntimeState
	ParseHealthState         = types.ParseHealthState
	ParseStorageTier         = types.ParseStorageTier
)

// DataAs projects an envelope's opaque data payload onto a typed
// model, e.g. DataAs[HealthStatus](resp.Data).
func DataAs[T any](data json.RawMessage) (*T, error) {
	return types.DataAs[T](data)
}
