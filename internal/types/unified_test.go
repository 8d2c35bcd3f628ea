package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	xerrors "github.com/omnidex-ai/omnidex/client/internal/errors"
)

const entryDoc = `{
  "id": "entry-1",
  "connector_id": "local_files",
  "content_type": "document",
  "display_name": "itinerary.pdf",
  "tier": "hot",
  "priority": 3,
  "indexed_at": "2024-03-01T00:00:00Z",
  "modified_at": "2024-02-28T12:00:00Z",
  "accessed_at": "2024-03-10T08:00:00Z",
  "structured_data": {"pages": 4},
  "keywords": ["travel", "flight"],
  "relevance_score": 0.92,
  "snippet": "Departure 08:40 ..."
}`

func TestUniversalIndexEntry_Decode(t *testing.T) {
	t.Parallel()
	var e UniversalIndexEntry
	require.NoError(t, json.Unmarshal([]byte(entryDoc), &e))

	assert.Equal(t, "entry-1", e.ID)
	assert.Equal(t, TierHot, e.Tier)
	assert.Equal(t, 3, e.Priority)
	assert.Equal(t, 4.0, e.StructuredData["pages"])
	assert.Equal(t, []string{"travel", "flight"}, e.Keywords)
	assert.NotNil(t, e.Tags)
	assert.Empty(t, e.Tags)
	assert.NotNil(t, e.Metadata)
	require.NotNil(t, e.Snippet)
	assert.Nil(t, e.Title)
	assert.Nil(t, e.Content)
}

func TestUniversalIndexEntry_TierDefaultsWarm(t *testing.T) {
	t.Parallel()
	doc := `{"id":"e","connector_id":"c","content_type":"note",
	  "indexed_at":"2024-03-01T00:00:00Z","modified_at":"2024-03-01T00:00:00Z","accessed_at":"2024-03-01T00:00:00Z"}`
	var e UniversalIndexEntry
	require.NoError(t, json.Unmarshal([]byte(doc), &e))
	assert.Equal(t, TierWarm, e.Tier)
	assert.Equal(t, 0.0, e.RelevanceScore)
}

func TestUniversalIndexEntry_UnknownTierFallsBack(t *testing.T) {
	t.Parallel()
	// Tier carries a declared default, so an unrecognized tag degrades
	// to warm instead of failing the decode.
	doc := `{"id":"e","connector_id":"c","content_type":"note","tier":"lukewarm",
	  "indexed_at":"2024-03-01T00:00:00Z","modified_at":"2024-03-01T00:00:00Z","accessed_at":"2024-03-01T00:00:00Z"}`
	var e UniversalIndexEntry
	require.NoError(t, json.Unmarshal([]byte(doc), &e))
	assert.Equal(t, TierWarm, e.Tier)
}

func TestUniversalIndexEntry_RequiredTimestamps(t *testing.T) {
	t.Parallel()
	doc := `{"id":"e","connector_id":"c","content_type":"note",
	  "indexed_at":"2024-03-01T00:00:00Z","modified_at":"2024-03-01T00:00:00Z"}`
	var e UniversalIndexEntry
	err := json.Unmarshal([]byte(doc), &e)
	require.Error(t, err)
	me, ok := xerrors.AsError(err)
	require.True(t, ok)
	assert.Equal(t, "accessed_at", me.Field)
}

func TestIndexSearchResult_Decode(t *testing.T) {
	t.Parallel()
	doc := `{
	  "query": "travel receipts",
	  "results": [` + entryDoc + `],
	  "total_count": 1,
	  "elapsed": 12500,
	  "facets": {"document": 1}
	}`
	var r IndexSearchResult
	require.NoError(t, json.Unmarshal([]byte(doc), &r))

	assert.Equal(t, "travel receipts", r.Query)
	require.Len(t, r.Results, 1)
	assert.Equal(t, 12500*time.Microsecond, r.Elapsed.Std())
	assert.Equal(t, map[string]int{"document": 1}, r.Facets)
}

func TestIndexSearchResult_EmptyDefaults(t *testing.T) {
	t.Parallel()
	var r IndexSearchResult
	require.NoError(t, json.Unmarshal([]byte(`{"query":"q","elapsed":0}`), &r))
	assert.NotNil(t, r.Results)
	assert.Empty(t, r.Results)
	assert.NotNil(t, r.Facets)
	assert.Zero(t, r.Elapsed)
}

func TestIndexSearchResult_RoundTrip(t *testing.T) {
	t.Parallel()
	doc := `{"query":"q","results":[` + entryDoc + `],"total_count":1,"elapsed":999,"facets":{"document":1}}`
	var in IndexSearchResult
	require.NoError(t, json.Unmarshal([]byte(doc), &in))

	encoded, err := json.Marshal(in)
	require.NoError(t, err)

	var out IndexSearchResult
	require.NoError(t, json.Unmarshal(encoded, &out))
	if diff := cmp.Diff(in, out); diff != "" {
		t.Fatalf("round trip mismatch (-in +out):\n%s", diff)
	}
}

func TestIndexSearchResult_CloneIsolation(t *testing.T) {
	t.Parallel()
	doc := `{"query":"q","results":[` + entryDoc + `],"total_count":1,"elapsed":1,"facets":{"document":1}}`
	var r IndexSearchResult
	require.NoError(t, json.Unmarshal([]byte(doc), &r))

	dup := r.Clone()
	dup.Results[0].Keywords[0] = "mutated"
	dup.Facets["document"] = 99

	assert.Equal(t, "travel", r.Results[0].Keywords[0])
	assert.Equal(t, 1, r.Facets["document"])
}
