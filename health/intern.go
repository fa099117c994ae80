package health

import (
	"context"
	"fmt"

	"github.com/jonwraymond/coordops/cache"
)

// InternSource is the read-only view of an interner that InternChecker needs.
// *cache.Interner and coordinate.InternerView satisfy it.
type InternSource interface {
	Name() string
	Len() int
}

// InternCheckerConfig holds the size thresholds for an interner.
type InternCheckerConfig struct {
	// WarningEntries is the entry count that triggers degraded status.
	// Default: 1,000,000
	WarningEntries int

	// CriticalEntries is the entry count that triggers unhealthy status.
	// Default: 10 × WarningEntries
	CriticalEntries int
}

// InternChecker reports an interner's size against thresholds. Interners
// never evict, so size only grows.
type InternChecker struct {
	source InternSource
	config InternCheckerConfig
}

// NewInternChecker returns a checker for source.
func NewInternChecker(source InternSource, config InternCheckerConfig) *InternChecker {
	if config.WarningEntries <= 0 {
		config.WarningEntries = 1_000_000
	}
	if config.CriticalEntries <= config.WarningEntries {
		config.CriticalEntries = 10 * config.WarningEntries
	}
	return &InternChecker{source: source, config: config}
}

// Name returns "intern.<interner name>".
func (c *InternChecker) Name() string {
	return "intern." + c.source.Name()
}

// Check compares the current entry count with the thresholds. Lookup
// statistics are attached when the source exposes them.
func (c *InternChecker) Check(ctx context.Context) Result {
	if err := ctx.Err(); err != nil {
		return Unhealthy("check cancelled", err)
	}

	name := c.source.Name()
	entries := c.source.Len()

	var r Result
	switch {
	case entries >= c.config.CriticalEntries:
		r = Unhealthy(fmt.Sprintf("interner %s critical: %d entries", name, entries), ErrThresholdExceeded)
	case entries >= c.config.WarningEntries:
		r = Degraded(fmt.Sprintf("interner %s large: %d entries", name, entries))
	default:
		r = Healthy(fmt.Sprintf("interner %s normal: %d entries", name, entries))
	}
	r = r.With("entries", entries).
		With("warning_entries", c.config.WarningEntries).
		With("critical_entries", c.config.CriticalEntries)

	s, ok := c.source.(interface{ Stats() cache.Stats })
	if !ok {
		return r
	}
	stats := s.Stats()
	r = r.With("hits", stats.Hits).
		With("misses", stats.Misses).
		With("constructions", stats.Constructions)
	if lookups := stats.Hits + stats.Misses; lookups > 0 {
		r = r.With("hit_ratio", float64(stats.Hits)/float64(lookups))
	}
	return r
}
