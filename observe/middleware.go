package observe

import (
	"context"
	"time"
)

// OperationFunc is the signature of a coordinate operation wrapped by
// Middleware.
type OperationFunc func(ctx context.Context, op OperationMeta) (any, error)

// Middleware wraps coordinate operations with tracing, metrics and logging.
//
// Contract:
//   - Concurrency: Wrap returns a thread-safe OperationFunc.
//   - Context: Propagates context through tracing spans.
//   - Errors: Errors from the wrapped function are recorded and propagated unchanged.
type Middleware struct {
	tracer  Tracer
	metrics Metrics
	logger  Logger
}

// NewMiddleware creates a new Middleware. Nil components are replaced with
// no-ops.
func NewMiddleware(tracer Tracer, metrics Metrics, logger Logger) *Middleware {
	if tracer == nil {
		tracer = newNoopTracer()
	}
	if metrics == nil {
		metrics = noopMetrics{}
	}
	if logger == nil {
		logger = NewNoopLogger()
	}
	return &Middleware{
		tracer:  tracer,
		metrics: metrics,
		logger:  logger,
	}
}

// Wrap wraps fn with tracing, metrics and logging. Operations with an empty
// name are rejected with ErrMissingOperationName before fn runs.
func (m *Middleware) Wrap(fn OperationFunc) OperationFunc {
	return func(ctx context.Context, op OperationMeta) (any, error) {
		if err := op.Validate(); err != nil {
			return nil, err
		}

		ctx, span := m.tracer.StartSpan(ctx, op)
		start := time.Now()

		result, err := fn(ctx, op)

		duration := time.Since(start)
		m.tracer.EndSpan(span, err)
		m.metrics.RecordOperation(ctx, op, duration, err)

		opLogger := m.logger.WithOperation(op)
		fields := []Field{
			{Key: "duration_us", Value: float64(duration.Microseconds())},
		}
		if err != nil {
			fields = append(fields, Field{Key: "error", Value: err.Error()})
			opLogger.Error(ctx, "coordinate operation failed", fields...)
		} else {
			opLogger.Debug(ctx, "coordinate operation completed", fields...)
		}

		return result, err
	}
}

// MiddlewareFromObserver creates a Middleware from an Observer.
func MiddlewareFromObserver(obs Observer) (*Middleware, error) {
	metrics, err := newMetrics(obs.Meter())
	if err != nil {
		return nil, err
	}
	return NewMiddleware(NewTracer(obs.Tracer()), metrics, obs.Logger()), nil
}
