// Package observe provides observability primitives for coordinate
// operations: a JSON structured logger, OpenTelemetry metrics and tracing,
// and interner lookup metrics.
//
// It is a pure instrumentation library. Consumers pass the logger and cache
// recorder to a coordinate.Registry and wrap operations with Middleware.
package observe
