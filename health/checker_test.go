package health

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestStatus_String(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusHealthy, "healthy"},
		{StatusDegraded, "degraded"},
		{StatusUnhealthy, "unhealthy"},
		{Status(42), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("Status(%d).String() = %q, want %q", tt.status, got, tt.want)
		}
	}
}

func TestStatus_JSON(t *testing.T) {
	data, err := json.Marshal(map[string]Status{"s": StatusDegraded})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != `{"s":"degraded"}` {
		t.Errorf("Marshal = %s", data)
	}

	var back map[string]Status
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if back["s"] != StatusDegraded {
		t.Errorf("Unmarshal = %v, want degraded", back["s"])
	}

	var s Status
	if err := s.UnmarshalText([]byte("sideways")); err == nil {
		t.Error("expected error for unknown status name")
	}
}

func TestStatus_Worst(t *testing.T) {
	if got := StatusHealthy.Worst(StatusDegraded); got != StatusDegraded {
		t.Errorf("Worst = %v, want degraded", got)
	}
	if got := StatusUnhealthy.Worst(StatusHealthy); got != StatusUnhealthy {
		t.Errorf("Worst = %v, want unhealthy", got)
	}
}

func TestResultConstructors(t *testing.T) {
	h := Healthy("fine")
	if h.Status != StatusHealthy || h.Message != "fine" || h.Timestamp.IsZero() {
		t.Errorf("Healthy() = %+v", h)
	}

	d := Degraded("slow")
	if d.Status != StatusDegraded || d.Message != "slow" {
		t.Errorf("Degraded() = %+v", d)
	}

	cause := errors.New("boom")
	u := Unhealthy("down", cause)
	if u.Status != StatusUnhealthy || !errors.Is(u.Err, cause) {
		t.Errorf("Unhealthy() = %+v", u)
	}
}

func TestResult_WithCopiesDetails(t *testing.T) {
	base := Healthy("ok").With("entries", 3)
	derived := base.With("hits", 7)

	if base.Details["entries"] != 3 {
		t.Errorf("base entries = %v, want 3", base.Details["entries"])
	}
	if _, ok := base.Details["hits"]; ok {
		t.Error("With must not modify the receiver's details")
	}
	if derived.Details["entries"] != 3 || derived.Details["hits"] != 7 {
		t.Errorf("derived details = %v", derived.Details)
	}
}

func TestNewCheckerFunc(t *testing.T) {
	called := false
	c := NewCheckerFunc("probe", func(ctx context.Context) Result {
		called = true
		return Degraded("meh")
	})

	if c.Name() != "probe" {
		t.Errorf("Name() = %q, want 'probe'", c.Name())
	}
	r := c.Check(context.Background())
	if !called {
		t.Error("check function was not called")
	}
	if r.Status != StatusDegraded {
		t.Errorf("Status = %v, want degraded", r.Status)
	}
}
