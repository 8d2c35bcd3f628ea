package types

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/omnidex-ai/omnidex/client/internal/wire"
)

// ------------------------------
// AI insight models
// ------------------------------

// InsightKind tags the origin of an insight card.
type InsightKind string

const (
	InsightDiscovery  InsightKind = "discovery"
	InsightSuggestion InsightKind = "suggestion"
	InsightPattern    InsightKind = "pattern"
	InsightAlert      InsightKind = "alert"
)

// ParseInsightKind maps a wire tag to an InsightKind, rejecting
// unknown values.
func ParseInsightKind(s string) (InsightKind, error) {
	switch k := InsightKind(s); k {
	case InsightDiscovery, InsightSuggestion, InsightPattern, InsightAlert:
		return k, nil
	}
	return "", fmt.Errorf("unknown insight kind %q", s)
}

// UnmarshalJSON validates the wire tag.
func (k *InsightKind) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	v, err := ParseInsightKind(s)
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// ActionKind tags how an insight action should be presented.
type ActionKind string

const (
	ActionPrimary   ActionKind = "primary"
	ActionSecondary ActionKind = "secondary"
	ActionDismiss   ActionKind = "dismiss"
)

// ParseActionKind maps a wire tag to an ActionKind, rejecting unknown
// values.
func ParseActionKind(s string) (ActionKind, error) {
	switch k := ActionKind(s); k {
	case ActionPrimary, ActionSecondary, ActionDismiss:
		return k, nil
	}
	return "", fmt.Errorf("unknown action kind %q", s)
}

// UnmarshalJSON validates the wire tag.
func (k *ActionKind) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	v, err := ParseActionKind(s)
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// AIInsightAction is one action offered on an insight card.
type AIInsightAction struct {
	ID      string          `json:"id"`
	Label   string          `json:"label"`
	Kind    ActionKind      `json:"kind"`
	Route   *string         `json:"route,omitempty"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// UnmarshalJSON decodes an action. Kind falls back to secondary when
// absent or when the wire tag is unrecognized.
func (a *AIInsightAction) UnmarshalJSON(b []byte) error {
	d, err := wire.NewDecoder("AIInsightAction", b)
	if err != nil {
		return err
	}
	a.ID = d.String("id")
	a.Label = d.String("label")
	a.Kind = wire.EnumOr(d, "kind", ActionSecondary, ParseActionKind)
	a.Route = d.OptString("route")
	a.Payload = d.Raw("payload")
	return d.Err()
}

// Clone returns a deep copy of the action.
func (a AIInsightAction) Clone() AIInsightAction {
	out := a
	out.Route = wire.ClonePtr(a.Route)
	out.Payload = wire.CloneRaw(a.Payload)
	return out
}

// AIInsightCard is a single generated insight shown to the user.
type AIInsightCard struct {
	ID         string            `json:"id"`
	Kind       InsightKind       `json:"kind"`
	Title      string            `json:"title"`
	Message    string            `json:"message"`
	Icon       string            `json:"icon"`
	Timestamp  time.Time         `json:"timestamp"`
	Confidence float64           `json:"confidence"`
	RelatedIDs []string          `json:"related_ids"`
	Actions    []AIInsightAction `json:"actions"`
	Read       bool              `json:"is_read"`
	Dismissed  bool              `json:"is_dismissed"`
}

// UnmarshalJSON decodes a card, filling declared defaults for the
// collection and flag fields.
func (c *AIInsightCard) UnmarshalJSON(b []byte) error {
	d, err := wire.NewDecoder("AIInsightCard", b)
	if err != nil {
		return err
	}
	c.ID = d.String("id")
	c.Kind = wire.Enum(d, "kind", ParseInsightKind)
	c.Title = d.String("title")
	c.Message = d.String("message")
	c.Icon = d.StringOr("icon", "")
	c.Timestamp = d.Time("timestamp")
	c.Confidence = d.Float("confidence")
	c.RelatedIDs = d.Strings("related_ids")
	c.Actions = wire.ModelList[AIInsightAction](d, "actions")
	c.Read = d.BoolOr("is_read", false)
	c.Dismissed = d.BoolOr("is_dismissed", false)
	return d.Err()
}

// Clone returns a deep copy of the card.
func (c AIInsightCard) Clone() AIInsightCard {
	out := c
	out.RelatedIDs = wire.CloneStrings(c.RelatedIDs)
	if c.Actions != nil {
		out.Actions = make([]AIInsightAction, len(c.Actions))
		for i, a := range c.Actions {
			out.Actions[i] = a.Clone()
		}
	}
	return out
}

// Validate checks locally built cards before they are handed to the UI
// or encoded.
func (c AIInsightCard) Validate() error {
	if err := requireField("AIInsightCard", "id", c.ID); err != nil {
		return err
	}
	if err := requireField("AIInsightCard", "title", c.Title); err != nil {
		return err
	}
	if _, err := ParseInsightKind(string(c.Kind)); err != nil {
		return constructErr("AIInsightCard", "kind", err)
	}
	if c.Confidence < 0 || c.Confidence > 1 {
		return constructErr("AIInsightCard", "confidence",
			fmt.Errorf("must be within [0.0, 1.0], got %v", c.Confidence))
	}
	return nil
}
