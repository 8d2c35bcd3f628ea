package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	xerrors "github.com/omnidex-ai/omnidex/client/internal/errors"
)

func TestTodayOverview_SparseDecode(t *testing.T) {
	t.Parallel()
	doc := `{"insights_generated":3,"last_update":"2024-03-10T07:00:00Z"}`
	var ov TodayOverview
	require.NoError(t, json.Unmarshal([]byte(doc), &ov))

	assert.Equal(t, 0, ov.NewDataPoints)
	assert.Equal(t, 0, ov.ProcessedItems)
	assert.Equal(t, 3, ov.InsightsGenerated)
	assert.Equal(t, 0, ov.ActiveConnectors)
	assert.Equal(t, time.Date(2024, 3, 10, 7, 0, 0, 0, time.UTC), ov.LastUpdate.UTC())
}

func TestTodayOverview_LastUpdateRequired(t *testing.T) {
	t.Parallel()
	var ov TodayOverview
	err := json.Unmarshal([]byte(`{"new_data_points":1}`), &ov)
	require.Error(t, err)
	me, ok := xerrors.AsError(err)
	require.True(t, ok)
	assert.Equal(t, "TodayOverview", me.Model)
	assert.Equal(t, "last_update", me.Field)
}

func TestQuickAccessItem_Decode(t *testing.T) {
	t.Parallel()
	doc := `{
	  "id": "qa-1",
	  "title": "Flight itinerary",
	  "kind": "file",
	  "last_accessed": "2024-03-09T18:30:00Z",
	  "payload": "/home/u/Documents/itinerary.pdf"
	}`
	var item QuickAccessItem
	require.NoError(t, json.Unmarshal([]byte(doc), &item))

	assert.Equal(t, QuickAccessFile, item.Kind)
	assert.Equal(t, "", item.Subtitle)
	require.NotNil(t, item.Payload)
	assert.Equal(t, "/home/u/Documents/itinerary.pdf", *item.Payload)
}

func TestQuickAccessItem_RejectsUnknownKind(t *testing.T) {
	t.Parallel()
	doc := `{"id":"qa-2","title":"x","kind":"hologram","last_accessed":"2024-03-09T18:30:00Z"}`
	var item QuickAccessItem
	err := json.Unmarshal([]byte(doc), &item)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hologram")
	me, ok := xerrors.AsError(err)
	require.True(t, ok)
	assert.Equal(t, "kind", me.Field)
}

func TestQuickAccessItem_CloneIsolation(t *testing.T) {
	t.Parallel()
	p := "/tmp/a"
	src := QuickAccessItem{ID: "qa-3", Title: "t", Kind: QuickAccessNote, Payload: &p}
	dup := src.Clone()
	*dup.Payload = "/tmp/b"
	assert.Equal(t, "/tmp/a", *src.Payload)
}
