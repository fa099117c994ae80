package observe

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

// Tracer opens and closes one span per coordinate operation.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: EndSpan must be best-effort and must not panic.
type Tracer interface {
	StartSpan(ctx context.Context, meta OperationMeta) (context.Context, trace.Span)
	EndSpan(span trace.Span, err error)
}

type otelTracer struct {
	tracer trace.Tracer
}

// NewTracer returns a Tracer backed by t.
func NewTracer(t trace.Tracer) Tracer {
	return otelTracer{tracer: t}
}

// StartSpan opens an internal span named by meta.SpanName carrying the op.*
// attributes and op.error=false.
func (t otelTracer) StartSpan(ctx context.Context, meta OperationMeta) (context.Context, trace.Span) {
	attrs := append(meta.attributes(), attribute.Bool("op.error", false))

	return t.tracer.Start(ctx, meta.SpanName(),
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attrs...),
	)
}

// EndSpan sets the span status from err and ends it.
func (t otelTracer) EndSpan(span trace.Span, err error) {
	defer span.End()

	if err == nil {
		span.SetStatus(codes.Ok, "")
		return
	}
	span.RecordError(err)
	span.SetAttributes(attribute.Bool("op.error", true))
	span.SetStatus(codes.Error, err.Error())
}

func newNoopTracer() Tracer {
	return NewTracer(tracenoop.NewTracerProvider().Tracer("noop"))
}
