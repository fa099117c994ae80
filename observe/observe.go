package observe

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"

	"github.com/jonwraymond/coordops/observe/exporters"
)

// Config selects which telemetry signals an Observer produces and where.
type Config struct {
	ServiceName string
	Version     string
	Tracing     TracingConfig
	Metrics     MetricsConfig
	Logging     LoggingConfig

	// Output receives log lines and stdout exporter output.
	// Default: os.Stderr, keeping stdout free for command results.
	Output io.Writer
}

// TracingConfig configures span export.
type TracingConfig struct {
	Enabled   bool
	Exporter  string  // otlp|stdout|none
	SamplePct float64 // 0.0-1.0
}

// MetricsConfig configures metric export.
type MetricsConfig struct {
	Enabled  bool
	Exporter string // otlp|prometheus|stdout|none
}

// LoggingConfig configures the structured logger.
type LoggingConfig struct {
	Enabled bool
	Level   string // debug|info|warn|error
}

var logLevelNames = []string{"", "debug", "info", "warn", "error"}

// Validate reports the first invalid setting. Disabled subsystems are not
// checked.
func (c *Config) Validate() error {
	if c.ServiceName == "" {
		return ErrMissingServiceName
	}
	if err := c.Tracing.validate(); err != nil {
		return err
	}
	if err := c.Metrics.validate(); err != nil {
		return err
	}
	return c.Logging.validate()
}

func (c TracingConfig) validate() error {
	if !c.Enabled {
		return nil
	}
	if !exporters.SupportsTracing(c.Exporter) {
		return fmt.Errorf("%w: %q", ErrInvalidTracingExporter, c.Exporter)
	}
	if c.SamplePct < MinSamplePct || c.SamplePct > MaxSamplePct {
		return fmt.Errorf("%w: got %f", ErrInvalidSamplePct, c.SamplePct)
	}
	return nil
}

func (c MetricsConfig) validate() error {
	if c.Enabled && !exporters.SupportsMetrics(c.Exporter) {
		return fmt.Errorf("%w: %q", ErrInvalidMetricsExporter, c.Exporter)
	}
	return nil
}

func (c LoggingConfig) validate() error {
	if c.Enabled && !slices.Contains(logLevelNames, c.Level) {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Level)
	}
	return nil
}

// Observer hands out the tracer, meter and logger for one process.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Context: Shutdown must honor cancellation/deadlines.
// - Errors: Shutdown returns all provider shutdown errors joined.
type Observer interface {
	Tracer() trace.Tracer
	Meter() metric.Meter
	Logger() Logger

	// Shutdown flushes and stops all telemetry providers.
	Shutdown(ctx context.Context) error
}

type observer struct {
	tracer    trace.Tracer
	meter     metric.Meter
	logger    Logger
	shutdowns []func(context.Context) error
}

// NewObserver creates an Observer for cfg. Disabled subsystems are backed by
// no-op implementations. Enabled providers are also installed as the otel
// globals.
func NewObserver(ctx context.Context, cfg Config) (Observer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(cfg.ServiceName),
			semconv.ServiceVersion(cfg.Version),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("observe: resource: %w", err)
	}

	obs := &observer{
		tracer: tracenoop.NewTracerProvider().Tracer("noop"),
		meter:  noop.NewMeterProvider().Meter("noop"),
		logger: NewNoopLogger(),
	}

	if cfg.Tracing.Enabled {
		tp, err := newTracerProvider(ctx, cfg.Tracing, res, out)
		if err != nil {
			return nil, err
		}
		otel.SetTracerProvider(tp)
		obs.tracer = tp.Tracer(cfg.ServiceName)
		obs.shutdowns = append(obs.shutdowns, wrapShutdown("tracer", tp.Shutdown))
	}

	if cfg.Metrics.Enabled {
		mp, err := newMeterProvider(ctx, cfg.Metrics, res, out)
		if err != nil {
			// Release the tracer provider started above.
			_ = obs.Shutdown(ctx)
			return nil, err
		}
		otel.SetMeterProvider(mp)
		obs.meter = mp.Meter(cfg.ServiceName)
		obs.shutdowns = append(obs.shutdowns, wrapShutdown("meter", mp.Shutdown))
	}

	if cfg.Logging.Enabled {
		obs.logger = NewLoggerWithWriter(cfg.Logging.Level, out)
	}

	return obs, nil
}

func newTracerProvider(ctx context.Context, cfg TracingConfig, res *resource.Resource, out io.Writer) (*sdktrace.TracerProvider, error) {
	exp, err := exporters.NewTracingExporter(ctx, cfg.Exporter, exporters.WithWriter(out))
	if err != nil {
		return nil, fmt.Errorf("observe: tracing: %w", err)
	}
	return sdktrace.NewTracerProvider(
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sampler(cfg.SamplePct)),
		sdktrace.WithBatcher(exp),
	), nil
}

func newMeterProvider(ctx context.Context, cfg MetricsConfig, res *resource.Resource, out io.Writer) (*sdkmetric.MeterProvider, error) {
	reader, err := exporters.NewMetricsReader(ctx, cfg.Exporter, exporters.WithWriter(out))
	if err != nil {
		return nil, fmt.Errorf("observe: metrics: %w", err)
	}
	return sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(reader),
	), nil
}

// sampler honors the parent's decision and samples root spans at pct.
func sampler(pct float64) sdktrace.Sampler {
	var root sdktrace.Sampler
	switch {
	case pct >= MaxSamplePct:
		root = sdktrace.AlwaysSample()
	case pct <= MinSamplePct:
		root = sdktrace.NeverSample()
	default:
		root = sdktrace.TraceIDRatioBased(pct)
	}
	return sdktrace.ParentBased(root)
}

func wrapShutdown(name string, fn func(context.Context) error) func(context.Context) error {
	return func(ctx context.Context) error {
		if err := fn(ctx); err != nil {
			return fmt.Errorf("%s shutdown: %w", name, err)
		}
		return nil
	}
}

func (o *observer) Tracer() trace.Tracer { return o.tracer }

func (o *observer) Meter() metric.Meter { return o.meter }

func (o *observer) Logger() Logger { return o.logger }

// Shutdown stops providers in reverse start order.
func (o *observer) Shutdown(ctx context.Context) error {
	var errs []error
	for _, fn := range slices.Backward(o.shutdowns) {
		errs = append(errs, fn(ctx))
	}
	return errors.Join(errs...)
}
