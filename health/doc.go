// Package health reports the state of coordinate interners.
//
// A Checker reports Healthy, Degraded or Unhealthy. InternChecker compares
// an interner's size against configured thresholds: interners never evict,
// so unbounded growth is the failure mode worth watching. An Aggregator
// combines checkers, and the HTTP handlers expose the result.
//
// # Basic Usage
//
//	agg := health.NewAggregator()
//	for _, in := range registry.Interners() {
//	    agg.Register(health.NewInternChecker(in, health.InternCheckerConfig{
//	        WarningEntries:  1_000_000,
//	        CriticalEntries: 10_000_000,
//	    }))
//	}
//
//	mux := http.NewServeMux()
//	health.RegisterHandlers(mux, agg) // /healthz, /readyz, /health
package health
