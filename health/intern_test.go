package health

import (
	"context"
	"errors"
	"testing"

	"github.com/jonwraymond/coordops/cache"
)

type fakeSource struct {
	name    string
	entries int
}

func (f fakeSource) Name() string { return f.name }
func (f fakeSource) Len() int     { return f.entries }

func TestNewInternChecker_Defaults(t *testing.T) {
	c := NewInternChecker(fakeSource{name: "cartesian"}, InternCheckerConfig{})

	if c.config.WarningEntries != 1_000_000 {
		t.Errorf("WarningEntries = %d, want 1000000", c.config.WarningEntries)
	}
	if c.config.CriticalEntries != 10_000_000 {
		t.Errorf("CriticalEntries = %d, want 10000000", c.config.CriticalEntries)
	}
	if c.Name() != "intern.cartesian" {
		t.Errorf("Name() = %q, want 'intern.cartesian'", c.Name())
	}
}

func TestInternChecker_Thresholds(t *testing.T) {
	cfg := InternCheckerConfig{WarningEntries: 10, CriticalEntries: 20}
	tests := []struct {
		entries int
		want    Status
	}{
		{0, StatusHealthy},
		{9, StatusHealthy},
		{10, StatusDegraded},
		{19, StatusDegraded},
		{20, StatusUnhealthy},
	}

	for _, tt := range tests {
		c := NewInternChecker(fakeSource{name: "s", entries: tt.entries}, cfg)
		r := c.Check(context.Background())
		if r.Status != tt.want {
			t.Errorf("entries=%d: Status = %v, want %v", tt.entries, r.Status, tt.want)
		}
		if r.Details["entries"] != tt.entries {
			t.Errorf("entries=%d: Details[entries] = %v", tt.entries, r.Details["entries"])
		}
		if tt.want == StatusUnhealthy && !errors.Is(r.Err, ErrThresholdExceeded) {
			t.Errorf("entries=%d: Error = %v, want ErrThresholdExceeded", tt.entries, r.Err)
		}
	}
}

func TestInternChecker_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewInternChecker(fakeSource{name: "s"}, InternCheckerConfig{}).Check(ctx)
	if r.Status != StatusUnhealthy {
		t.Errorf("Status = %v, want unhealthy", r.Status)
	}
	if !errors.Is(r.Err, context.Canceled) {
		t.Errorf("Error = %v, want context.Canceled", r.Err)
	}
}

func TestInternChecker_ReportsInternerStats(t *testing.T) {
	in := cache.NewInterner[int, string](cache.WithName("words"))
	in.GetOrCreate(1, func() string { return "one" })
	in.GetOrCreate(1, func() string { return "one" })

	r := NewInternChecker(in, InternCheckerConfig{}).Check(context.Background())

	if r.Status != StatusHealthy {
		t.Fatalf("Status = %v, want healthy", r.Status)
	}
	if r.Details["hits"] != uint64(1) {
		t.Errorf("hits = %v, want 1", r.Details["hits"])
	}
	if r.Details["misses"] != uint64(1) {
		t.Errorf("misses = %v, want 1", r.Details["misses"])
	}
	if r.Details["constructions"] != uint64(1) {
		t.Errorf("constructions = %v, want 1", r.Details["constructions"])
	}
	if r.Details["hit_ratio"] != 0.5 {
		t.Errorf("hit_ratio = %v, want 0.5", r.Details["hit_ratio"])
	}
}
