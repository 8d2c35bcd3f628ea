package types

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	xerrors "github.com/omnidex-ai/omnidex/client/internal/errors"
)

func TestNewCreateInstanceRequest(t *testing.T) {
	t.Parallel()
	req := NewCreateInstanceRequest("local_files", "My Documents")

	_, err := uuid.Parse(req.RequestID)
	require.NoError(t, err, "request id must be a valid uuid")
	assert.NotNil(t, req.Config)
	assert.Empty(t, req.Config)
	require.NoError(t, req.Validate())

	other := NewCreateInstanceRequest("local_files", "My Documents")
	assert.NotEqual(t, req.RequestID, other.RequestID)
}

func TestCreateInstanceRequest_Validate(t *testing.T) {
	t.Parallel()
	req := NewCreateInstanceRequest("", "name")
	err := req.Validate()
	require.Error(t, err)
	assert.True(t, xerrors.IsConstruction(err))
	me, ok := xerrors.AsError(err)
	require.True(t, ok)
	assert.Equal(t, "type_id", me.Field)
}

func TestCreateInstanceRequest_Encode(t *testing.T) {
	t.Parallel()
	req := NewCreateInstanceRequest("local_files", "Docs")
	req.AutoStart = true

	b, err := json.Marshal(req)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	assert.Equal(t, "local_files", m["type_id"])
	assert.Equal(t, true, m["auto_start"])
	assert.NotContains(t, m, "template_id", "unset template id is omitted")
}

func TestUpdateInstanceConfigRequest_Validate(t *testing.T) {
	t.Parallel()
	req := UpdateInstanceConfigRequest{InstanceID: "inst-1", Config: map[string]any{"k": "v"}}
	require.NoError(t, req.Validate())

	req.Config = nil
	err := req.Validate()
	require.Error(t, err)
	me, ok := xerrors.AsError(err)
	require.True(t, ok)
	assert.Equal(t, "config", me.Field)
}

func TestIndexSearchRequest_Validate(t *testing.T) {
	t.Parallel()
	req := IndexSearchRequest{Query: "travel", Limit: 20, Tiers: []StorageTier{TierHot, TierWarm}}
	require.NoError(t, req.Validate())

	req.Tiers = []StorageTier{"lukewarm"}
	err := req.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lukewarm")

	req = IndexSearchRequest{Query: "travel", Limit: -1}
	require.Error(t, req.Validate())

	req = IndexSearchRequest{}
	require.Error(t, req.Validate())
}

func TestVectorSearchRequest_Validate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		req     VectorSearchRequest
		wantErr string
	}{
		{"query only", VectorSearchRequest{Query: "q", TopK: 10}, ""},
		{"embedding only", VectorSearchRequest{Embedding: []float32{0.1}, TopK: 5}, ""},
		{"neither", VectorSearchRequest{TopK: 10}, "either query or embedding"},
		{"both", VectorSearchRequest{Query: "q", Embedding: []float32{0.1}, TopK: 10}, "mutually exclusive"},
		{"zero top_k", VectorSearchRequest{Query: "q"}, "top_k"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.req.Validate()
			if tc.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, xerrors.IsConstruction(err))
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestVectorSearchRequest_CloneIsolation(t *testing.T) {
	t.Parallel()
	src := VectorSearchRequest{Embedding: []float32{0.1, 0.2}, TopK: 3}
	dup := src.Clone()
	dup.Embedding[0] = 9
	assert.Equal(t, float32(0.1), src.Embedding[0])
}
