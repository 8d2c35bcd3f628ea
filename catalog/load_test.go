package catalog

import "testing"

func TestLoad_OK(t *testing.T) {
	def, err := Load("local_files")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if def.TypeID != "local_files" {
		t.Fatalf("expected type_id %q, got %q", "local_files", def.TypeID)
	}
	if def.Name == "" || def.Version == "" {
		t.Fatalf("definition missing required fields: %+v", def)
	}
	if def.ConfigSchema == nil || def.DefaultConfig == nil {
		t.Fatal("schema and default config must decode to non-nil maps")
	}
	if err := def.Validate(); err != nil {
		t.Fatalf("bundled definition failed validation: %v", err)
	}
}

func TestLoad_Unknown(t *testing.T) {
	if _, err := Load("unknown"); err == nil {
		t.Fatal("expected error for unknown connector type")
	}
}

func TestLoad_Empty(t *testing.T) {
	if _, err := Load(""); err == nil {
		t.Fatal("expected error for empty connector type")
	}
}

func TestListTypes_ContainsBundled(t *testing.T) {
	types, err := ListTypes()
	if err != nil {
		t.Fatalf("ListTypes error: %v", err)
	}
	if len(types) == 0 {
		t.Fatal("expected at least one bundled type")
	}
	found := map[string]bool{}
	for _, v := range types {
		found[v] = true
	}
	for _, want := range []string{"local_files", "browser_bookmarks", "imap_mail"} {
		if !found[want] {
			t.Fatalf("expected %q present, got %v", want, types)
		}
	}
}

func TestAll_LoadsEveryType(t *testing.T) {
	defs, err := All()
	if err != nil {
		t.Fatalf("All error: %v", err)
	}
	types, err := ListTypes()
	if err != nil {
		t.Fatalf("ListTypes error: %v", err)
	}
	if len(defs) != len(types) {
		t.Fatalf("loaded %d definitions for %d types", len(defs), len(types))
	}
}
