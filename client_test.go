package client

import (
	"strings"
	"testing"
	"time"
)

const healthWire = `{
  "success": true,
  "health": {
    "overall_score": 87.5,
    "status": "degraded",
    "config_system": {"status": "healthy", "config_version": "42"},
    "runtime_system": {"total_instances": 5, "running_instances": 3, "error_instances": 1, "healthy_instances": 3}
  }
}`

func TestDecode_HealthResponse(t *testing.T) {
	resp, err := Decode[HealthResponse]([]byte(healthWire))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !resp.Success {
		t.Error("Success = false, want true")
	}
	if resp.Health.Status != Degraded {
		t.Errorf("Status = %q, want %q", resp.Health.Status, Degraded)
	}
	if resp.Health.OverallScore != 87.5 {
		t.Errorf("OverallScore = %v, want 87.5", resp.Health.OverallScore)
	}
	if resp.Health.ConfigSystem.Errors == nil {
		t.Error("ConfigSystem.Errors = nil, want empty map")
	}
}

func TestDecode_ErrorClassification(t *testing.T) {
	_, err := Decode[HealthResponse]([]byte(`{"success": true, "health": {"overall_score": 1, "status": "bogus",
	  "config_system": {"status": "healthy"}, "runtime_system": {}}}`))
	if err == nil {
		t.Fatal("Decode succeeded, want enum rejection")
	}
	if !IsDecodeError(err) {
		t.Errorf("IsDecodeError = false for %v", err)
	}
	me, ok := AsModelError(err)
	if !ok {
		t.Fatalf("AsModelError failed for %v", err)
	}
	if me.Model != "HealthStatus" || me.Field != "status" {
		t.Errorf("ModelError = %s/%s, want HealthStatus/status", me.Model, me.Field)
	}
	if !strings.Contains(err.Error(), "bogus") {
		t.Errorf("error %q does not name the rejected value", err)
	}
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	in, err := Decode[HealthResponse]([]byte(healthWire))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	wire, err := Encode(in)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	out, err := Decode[HealthResponse](wire)
	if err != nil {
		t.Fatalf("Decode(Encode): %v", err)
	}
	if !Equal(in, out) {
		t.Errorf("round trip changed the model:\n in=%+v\nout=%+v", in, out)
	}
}

func TestEqual(t *testing.T) {
	a := TodayOverview{NewDataPoints: 1, LastUpdate: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)}
	b := a
	if !Equal(a, b) {
		t.Error("Equal(a, a) = false")
	}
	b.NewDataPoints = 2
	if Equal(a, b) {
		t.Error("Equal = true across differing fields")
	}

	// Nested collections compare structurally, not by identity.
	x := InstanceTemplate{Name: "n", Config: map[string]any{"paths": []any{"~/Documents"}}}
	y := x.Clone()
	if !Equal(x, y) {
		t.Error("Equal(x, x.Clone()) = false")
	}
}

func TestDataAs_Projection(t *testing.T) {
	resp, err := Decode[APIResponse]([]byte(`{"success": true, "data": {"total_instances": 2, "running_instances": 1,
	  "distribution": {"running": 1, "installed": 1}}}`))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	ov, err := DataAs[StateOverview](resp.Data)
	if err != nil {
		t.Fatalf("DataAs: %v", err)
	}
	if ov.Distribution[StateRunning] != 1 {
		t.Errorf("Distribution[running] = %d, want 1", ov.Distribution[StateRunning])
	}
}

func TestModelName(t *testing.T) {
	tests := []struct {
		v    any
		want string
	}{
		{&HealthResponse{}, "HealthResponse"},
		{HealthResponse{}, "HealthResponse"},
		{&[]AIInsightCard{}, "AIInsightCard"},
		{[]string{}, "string"},
	}
	for _, tc := range tests {
		if got := modelName(tc.v); got != tc.want {
			t.Errorf("modelName(%T) = %q, want %q", tc.v, got, tc.want)
		}
	}
}
