// Package catalog ships the builtin connector definitions bundled
// with the client, so the UI can render install choices before the
// backend catalog has been fetched.
package catalog

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/omnidex-ai/omnidex/client"
)

// Version is incremented whenever the bundled definitions change
// incompatibly.
const Version = "v1"

// builtinFS holds the embedded definition documents, one JSON file
// per connector type.
//
//go:embed builtin/*.json
var builtinFS embed.FS

// Load returns the bundled definition for the requested connector
// type (e.g. "local_files"). The document passes through the same
// strict codec as backend responses.
func Load(typeID string) (*client.ConnectorDefinition, error) {
	if typeID == "" {
		return nil, fmt.Errorf("connector type id cannot be empty")
	}

	data, err := fs.ReadFile(builtinFS, path.Join("builtin", typeID+".json"))
	if err != nil {
		return nil, fmt.Errorf("unknown builtin connector type %q: %w", typeID, err)
	}

	def, err := client.Decode[client.ConnectorDefinition](data)
	if err != nil {
		return nil, fmt.Errorf("builtin definition %q is invalid: %w", typeID, err)
	}
	if def.TypeID != typeID {
		return nil, fmt.Errorf("builtin definition %q declares type_id %q", typeID, def.TypeID)
	}
	return def, nil
}

// ListTypes returns the type ids of all bundled definitions.
func ListTypes() ([]string, error) {
	entries, err := fs.ReadDir(builtinFS, "builtin")
	if err != nil {
		return nil, err
	}
	var out []string
	for _, e := range entries {
		if name, ok := strings.CutSuffix(e.Name(), ".json"); ok {
			out = append(out, name)
		}
	}
	return out, nil
}

// All loads every bundled definition.
func All() ([]client.ConnectorDefinition, error) {
	ids, err := ListTypes()
	if err != nil {
		return nil, err
	}
	out := make([]client.ConnectorDefinition, 0, len(ids))
	for _, id := range ids {
		def, err := Load(id)
		if err != nil {
			return nil, err
		}
		out = append(out, *def)
	}
	return out, nil
}
