package observe

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics records coordinate operation metrics.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: implementations must not panic.
type Metrics interface {
	// RecordOperation records an operation with duration and error status.
	RecordOperation(ctx context.Context, meta OperationMeta, duration time.Duration, err error)
}

type opMetrics struct {
	calls    metric.Int64Counter
	failures metric.Int64Counter
	duration metric.Float64Histogram
}

// NewMetrics creates operation metrics on the given meter.
func NewMetrics(meter metric.Meter) (Metrics, error) {
	return newMetrics(meter)
}

func newMetrics(meter metric.Meter) (*opMetrics, error) {
	calls, err := meter.Int64Counter(
		"coordinate.op.total",
		metric.WithDescription("Total number of coordinate operations"),
		metric.WithUnit("{call}"),
	)
	if err != nil {
		return nil, err
	}

	failures, err := meter.Int64Counter(
		"coordinate.op.errors",
		metric.WithDescription("Total number of failed coordinate operations"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, err
	}

	duration, err := meter.Float64Histogram(
		"coordinate.op.duration_us",
		metric.WithDescription("Coordinate operation duration in microseconds"),
		metric.WithUnit("us"),
	)
	if err != nil {
		return nil, err
	}

	return &opMetrics{calls: calls, failures: failures, duration: duration}, nil
}

// RecordOperation records metrics for a coordinate operation.
func (m *opMetrics) RecordOperation(ctx context.Context, meta OperationMeta, duration time.Duration, err error) {
	opt := metric.WithAttributes(meta.attributes()...)

	m.calls.Add(ctx, 1, opt)
	if err != nil {
		m.failures.Add(ctx, 1, opt)
	}
	m.duration.Record(ctx, float64(duration.Microseconds()), opt)
}

type noopMetrics struct{}

func (noopMetrics) RecordOperation(context.Context, OperationMeta, time.Duration, error) {}

// CacheMetrics counts interner lookups. It satisfies cache.Recorder.
type CacheMetrics struct {
	lookups metric.Int64Counter
}

// NewCacheMetrics creates interner lookup metrics on the given meter.
func NewCacheMetrics(meter metric.Meter) (*CacheMetrics, error) {
	lookups, err := meter.Int64Counter(
		"coordinate.intern.lookups",
		metric.WithDescription("Interner lookups by cache and outcome"),
		metric.WithUnit("{lookup}"),
	)
	if err != nil {
		return nil, err
	}
	return &CacheMetrics{lookups: lookups}, nil
}

// RecordLookup records one lookup against the named interner.
func (m *CacheMetrics) RecordLookup(ctx context.Context, cache string, hit bool) {
	m.lookups.Add(ctx, 1, metric.WithAttributes(
		attribute.String("cache", cache),
		attribute.Bool("hit", hit),
	))
}
