package observe

import "errors"

var (
	ErrMissingServiceName     = errors.New("observe: missing service name")
	ErrInvalidSamplePct       = errors.New("observe: tracing sample percentage outside [0, 1]")
	ErrInvalidTracingExporter = errors.New("observe: unsupported tracing exporter")
	ErrInvalidMetricsExporter = errors.New("observe: unsupported metrics exporter")
	ErrInvalidLogLevel        = errors.New("observe: unsupported log level")

	// ErrMissingOperationName is returned by Middleware for an OperationMeta
	// without a Name; the wrapped function is not called.
	ErrMissingOperationName = errors.New("observe: missing operation name")
)

// Bounds of TracingConfig.SamplePct.
const (
	MinSamplePct = 0.0
	MaxSamplePct = 1.0
)
