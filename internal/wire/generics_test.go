package wire

import (
	"fmt"
	"strings"
	"testing"

	xerrors "github.com/omnidex-ai/omnidex/client/internal/errors"
)

type color string

func parseColor(s string) (color, error) {
	switch c := color(s); c {
	case "red", "green":
		return c, nil
	}
	return "", fmt.Errorf("unknown color %q", s)
}

func TestEnum(t *testing.T) {
	t.Parallel()
	d := mustDecoder(t, `{"c":"red"}`)
	if got := Enum(d, "c", parseColor); got != "red" {
		t.Fatalf("Enum = %q", got)
	}
	if err := d.Err(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestEnum_RejectsUnknownNamingField(t *testing.T) {
	t.Parallel()
	d := mustDecoder(t, `{"c":"bogus"}`)
	_ = Enum(d, "c", parseColor)
	me, ok := xerrors.AsError(d.Err())
	if !ok || me.Field != "c" || me.Model != "TestModel" {
		t.Fatalf("expected error naming model and field, got %v", d.Err())
	}
	if !strings.Contains(me.Error(), "bogus") {
		t.Fatalf("error should quote the wire value: %v", me)
	}
}

func TestEnum_MissingIsError(t *testing.T) {
	t.Parallel()
	d := mustDecoder(t, `{}`)
	_ = Enum(d, "c", parseColor)
	if d.Err() == nil {
		t.Fatal("expected missing-field error")
	}
}

func TestEnumOr(t *testing.T) {
	t.Parallel()
	d := mustDecoder(t, `{}`)
	if got := EnumOr(d, "c", color("green"), parseColor); got != "green" {
		t.Fatalf("EnumOr absent = %q", got)
	}
	if err := d.Err(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// A declared default also absorbs unrecognized present tags.
	d = mustDecoder(t, `{"c":"bogus"}`)
	if got := EnumOr(d, "c", color("green"), parseColor); got != "green" {
		t.Fatalf("EnumOr unknown tag = %q, want default", got)
	}
	if err := d.Err(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	d = mustDecoder(t, `{"c":"red"}`)
	if got := EnumOr(d, "c", color("green"), parseColor); got != "red" {
		t.Fatalf("EnumOr known tag = %q", got)
	}

	// Only a non-string wire value is a shape error.
	d = mustDecoder(t, `{"c":7}`)
	_ = EnumOr(d, "c", color("green"), parseColor)
	if d.Err() == nil {
		t.Fatal("expected rejection of non-string value")
	}
}

func TestEnumKeys(t *testing.T) {
	t.Parallel()
	d := mustDecoder(t, `{"m":{"red":2,"green":1}}`)
	got := EnumKeys(d, "m", parseColor)
	if err := d.Err(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got["red"] != 2 || got["green"] != 1 {
		t.Fatalf("EnumKeys = %#v", got)
	}

	d = mustDecoder(t, `{}`)
	if got := EnumKeys(d, "m", parseColor); got == nil || len(got) != 0 {
		t.Fatalf("EnumKeys absent = %#v", got)
	}

	d = mustDecoder(t, `{"m":{"blue":1}}`)
	_ = EnumKeys(d, "m", parseColor)
	if d.Err() == nil {
		t.Fatal("expected rejection of unknown key")
	}
}

type pair struct {
	A string `json:"a"`
}

func TestModelList(t *testing.T) {
	t.Parallel()
	d := mustDecoder(t, `{"items":[{"a":"x"},{"a":"y"}]}`)
	got := ModelList[pair](d, "items")
	if err := d.Err(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].A != "x" || got[1].A != "y" {
		t.Fatalf("ModelList = %#v", got)
	}

	d = mustDecoder(t, `{}`)
	if got := ModelList[pair](d, "items"); got == nil || len(got) != 0 {
		t.Fatalf("ModelList absent = %#v", got)
	}

	d = mustDecoder(t, `{"items":{"a":"x"}}`)
	_ = ModelList[pair](d, "items")
	if d.Err() == nil {
		t.Fatal("expected error for non-array")
	}
}

func TestModelPtr(t *testing.T) {
	t.Parallel()
	d := mustDecoder(t, `{"p":{"a":"x"}}`)
	got := ModelPtr[pair](d, "p")
	if err := d.Err(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || got.A != "x" {
		t.Fatalf("ModelPtr = %#v", got)
	}

	d = mustDecoder(t, `{"p":null}`)
	if got := ModelPtr[pair](d, "p"); got != nil {
		t.Fatalf("ModelPtr over null = %#v", got)
	}
}
