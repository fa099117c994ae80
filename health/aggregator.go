package health

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// AggregatorConfig configures an Aggregator.
type AggregatorConfig struct {
	// Timeout bounds a whole Run, and each check within it.
	// Default: 10 seconds
	Timeout time.Duration

	// Concurrency caps how many checks run at once. Zero means no cap; one
	// runs checks sequentially in registration order.
	Concurrency int
}

// Report is the combined outcome of every registered check.
type Report struct {
	Status    Status
	Checks    map[string]Result
	Timestamp time.Time
}

// Aggregator runs a set of named checkers and combines their results.
type Aggregator struct {
	config AggregatorConfig

	mu       sync.RWMutex
	checkers []Checker
	index    map[string]int
}

// NewAggregator returns an empty Aggregator.
func NewAggregator(config ...AggregatorConfig) *Aggregator {
	var cfg AggregatorConfig
	if len(config) > 0 {
		cfg = config[0]
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &Aggregator{config: cfg, index: make(map[string]int)}
}

// Register adds c under c.Name(), replacing any checker with that name in
// place.
func (a *Aggregator) Register(c Checker) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if i, ok := a.index[c.Name()]; ok {
		a.checkers[i] = c
		return
	}
	a.index[c.Name()] = len(a.checkers)
	a.checkers = append(a.checkers, c)
}

// Names returns the registered checker names in registration order.
func (a *Aggregator) Names() []string {
	a.mu.RLock()
	defer a.mu.RUnlock()

	names := make([]string, len(a.checkers))
	for i, c := range a.checkers {
		names[i] = c.Name()
	}
	return names
}

// RunOne runs the checker registered under name.
func (a *Aggregator) RunOne(ctx context.Context, name string) (Result, error) {
	a.mu.RLock()
	i, ok := a.index[name]
	var c Checker
	if ok {
		c = a.checkers[i]
	}
	a.mu.RUnlock()

	if !ok {
		return Result{}, ErrCheckerNotFound
	}
	ctx, cancel := context.WithTimeout(ctx, a.config.Timeout)
	defer cancel()
	return guard(ctx, c), nil
}

// Run executes every registered checker and reports the worst status.
// A Report with no checks is healthy.
func (a *Aggregator) Run(ctx context.Context) Report {
	a.mu.RLock()
	checkers := append([]Checker(nil), a.checkers...)
	a.mu.RUnlock()

	report := Report{
		Status:    StatusHealthy,
		Checks:    make(map[string]Result, len(checkers)),
		Timestamp: time.Now(),
	}
	if len(checkers) == 0 {
		return report
	}

	ctx, cancel := context.WithTimeout(ctx, a.config.Timeout)
	defer cancel()

	results := make([]Result, len(checkers))
	var g errgroup.Group
	if a.config.Concurrency > 0 {
		g.SetLimit(a.config.Concurrency)
	}
	for i, c := range checkers {
		g.Go(func() error {
			results[i] = guard(ctx, c)
			return nil
		})
	}
	_ = g.Wait() // failures are carried in each Result

	for i, c := range checkers {
		report.Checks[c.Name()] = results[i]
		report.Status = report.Status.Worst(results[i].Status)
	}
	return report
}

// guard runs c, returning an unhealthy result if ctx expires first. The
// check keeps running in the background in that case.
func guard(ctx context.Context, c Checker) Result {
	start := time.Now()
	done := make(chan Result, 1)

	go func() {
		r := c.Check(ctx)
		r.Duration = time.Since(start)
		if r.Timestamp.IsZero() {
			r.Timestamp = start
		}
		done <- r
	}()

	select {
	case r := <-done:
		return r
	case <-ctx.Done():
		r := Unhealthy("check timed out", ErrCheckTimeout)
		r.Duration = time.Since(start)
		return r
	}
}
