// Package exporters builds the OpenTelemetry span exporters and metric
// readers selected by name in observe.Config.
package exporters

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

var (
	// ErrEndpointNotConfigured indicates a required OTLP endpoint variable is unset.
	ErrEndpointNotConfigured = errors.New("exporters: endpoint not configured")

	// ErrUnknownExporter indicates an exporter name outside the supported set.
	ErrUnknownExporter = errors.New("exporters: unknown exporter")
)

// Exporter names. The empty name behaves like None.
const (
	None       = "none"
	Stdout     = "stdout"
	OTLP       = "otlp"
	Prometheus = "prometheus"
)

var (
	tracingNames = []string{None, Stdout, OTLP}
	metricsNames = []string{None, Stdout, OTLP, Prometheus}
)

// SupportsTracing reports whether name selects a span exporter.
func SupportsTracing(name string) bool {
	return name == "" || slices.Contains(tracingNames, name)
}

// SupportsMetrics reports whether name selects a metric reader.
func SupportsMetrics(name string) bool {
	return name == "" || slices.Contains(metricsNames, name)
}

// Option configures exporter construction.
type Option func(*options)

type options struct {
	writer io.Writer
}

// WithWriter sets where the stdout exporters write. Default: os.Stdout.
func WithWriter(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.writer = w
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{writer: os.Stdout}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// NewTracingExporter creates a span exporter by name.
func NewTracingExporter(ctx context.Context, name string, opts ...Option) (sdktrace.SpanExporter, error) {
	o := buildOptions(opts)

	switch name {
	case Stdout:
		return stdouttrace.New(stdouttrace.WithWriter(o.writer))
	case OTLP:
		if err := requireEndpoint("OTEL_EXPORTER_OTLP_TRACES_ENDPOINT"); err != nil {
			return nil, err
		}
		return otlptracegrpc.New(ctx)
	case None, "":
		return stdouttrace.New(stdouttrace.WithWriter(io.Discard))
	default:
		return nil, fmt.Errorf("%w: tracing %q", ErrUnknownExporter, name)
	}
}

// NewMetricsReader creates a metric reader by name. None yields a manual
// reader that is never collected.
func NewMetricsReader(ctx context.Context, name string, opts ...Option) (sdkmetric.Reader, error) {
	o := buildOptions(opts)

	var (
		exp sdkmetric.Exporter
		err error
	)
	switch name {
	case Stdout:
		exp, err = stdoutmetric.New(stdoutmetric.WithWriter(o.writer))
	case OTLP:
		if err := requireEndpoint("OTEL_EXPORTER_OTLP_METRICS_ENDPOINT"); err != nil {
			return nil, err
		}
		exp, err = otlpmetricgrpc.New(ctx)
	case Prometheus:
		reader, err := prometheus.New()
		if err != nil {
			return nil, fmt.Errorf("prometheus exporter: %w", err)
		}
		return reader, nil
	case None, "":
		return sdkmetric.NewManualReader(), nil
	default:
		return nil, fmt.Errorf("%w: metrics %q", ErrUnknownExporter, name)
	}
	if err != nil {
		return nil, fmt.Errorf("%s metrics exporter: %w", name, err)
	}
	return sdkmetric.NewPeriodicReader(exp), nil
}

// requireEndpoint fails unless the generic or the signal-specific OTLP
// endpoint variable is set.
func requireEndpoint(signalVar string) error {
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") != "" || os.Getenv(signalVar) != "" {
		return nil
	}
	return fmt.Errorf("%w: set OTEL_EXPORTER_OTLP_ENDPOINT or %s", ErrEndpointNotConfigured, signalVar)
}
