package observe

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func newTestTracer() (*tracetest.SpanRecorder, Tracer) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	return recorder, NewTracer(tp.Tracer("test"))
}

func attrMap(attrs []attribute.KeyValue) map[attribute.Key]attribute.Value {
	m := make(map[attribute.Key]attribute.Value, len(attrs))
	for _, kv := range attrs {
		m[kv.Key] = kv.Value
	}
	return m
}

func TestOperationMeta(t *testing.T) {
	tests := []struct {
		name     string
		meta     OperationMeta
		wantID   string
		wantSpan string
	}{
		{"with representation", OperationMeta{Name: "distance", Representation: "cartesian"}, "cartesian.distance", "coordinate.op.distance"},
		{"without representation", OperationMeta{Name: "equal"}, "equal", "coordinate.op.equal"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.meta.ID(); got != tc.wantID {
				t.Errorf("ID() = %q, want %q", got, tc.wantID)
			}
			if got := tc.meta.SpanName(); got != tc.wantSpan {
				t.Errorf("SpanName() = %q, want %q", got, tc.wantSpan)
			}
		})
	}

	if err := (OperationMeta{}).Validate(); !errors.Is(err, ErrMissingOperationName) {
		t.Errorf("expected ErrMissingOperationName, got %v", err)
	}
}

// TestTracer_SpanAttributes verifies operation attributes are present on the span.
func TestTracer_SpanAttributes(t *testing.T) {
	recorder, tr := newTestTracer()

	_, span := tr.StartSpan(context.Background(), OperationMeta{Name: "angle", Representation: "spherical"})
	tr.EndSpan(span, nil)

	spans := recorder.Ended()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	s := spans[0]
	if s.Name() != "coordinate.op.angle" {
		t.Errorf("unexpected span name %q", s.Name())
	}
	if s.Status().Code != codes.Ok {
		t.Errorf("expected Ok status, got %v", s.Status().Code)
	}

	attrs := attrMap(s.Attributes())
	if v := attrs["op.id"].AsString(); v != "spherical.angle" {
		t.Errorf("expected op.id='spherical.angle', got %q", v)
	}
	if v := attrs["op.representation"].AsString(); v != "spherical" {
		t.Errorf("expected op.representation='spherical', got %q", v)
	}
	if attrs["op.error"].AsBool() {
		t.Error("expected op.error=false")
	}
}

// TestTracer_ErrorStatus verifies errors mark the span.
func TestTracer_ErrorStatus(t *testing.T) {
	recorder, tr := newTestTracer()

	_, span := tr.StartSpan(context.Background(), OperationMeta{Name: "angle"})
	tr.EndSpan(span, errors.New("undefined at origin"))

	s := recorder.Ended()[0]
	if s.Status().Code != codes.Error {
		t.Errorf("expected Error status, got %v", s.Status().Code)
	}
	if s.Status().Description != "undefined at origin" {
		t.Errorf("unexpected status description %q", s.Status().Description)
	}
	if !attrMap(s.Attributes())["op.error"].AsBool() {
		t.Error("expected op.error=true")
	}
	if len(s.Events()) == 0 {
		t.Error("expected error event to be recorded")
	}
}

func TestTracerContract_NoPanic(t *testing.T) {
	tracer := newNoopTracer()
	_, span := tracer.StartSpan(context.Background(), OperationMeta{Name: "noop"})
	tracer.EndSpan(span, nil)
}
