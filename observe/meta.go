package observe

import (
	"fmt"

	"go.opentelemetry.io/otel/attribute"
)

// OperationMeta describes a coordinate operation for telemetry purposes.
type OperationMeta struct {
	Name           string // Operation name: convert, distance, angle, equal (required)
	Representation string // Representation of the receiver: cartesian or spherical (optional)
}

// SpanName returns the deterministic span name for this operation.
// Format: coordinate.op.<name>
func (m OperationMeta) SpanName() string {
	return "coordinate.op." + m.Name
}

// ID returns the qualified operation identifier, <representation>.<name> or
// just <name>.
func (m OperationMeta) ID() string {
	if m.Representation != "" {
		return m.Representation + "." + m.Name
	}
	return m.Name
}

// Validate checks that the metadata names an operation.
func (m OperationMeta) Validate() error {
	if m.Name == "" {
		return ErrMissingOperationName
	}
	return nil
}

// fields returns the operation identity as op.* key/value pairs, shared by
// log lines and span attributes.
func (m OperationMeta) fields() []Field {
	fields := []Field{
		{Key: "op.id", Value: m.ID()},
		{Key: "op.name", Value: m.Name},
	}
	if m.Representation != "" {
		fields = append(fields, Field{Key: "op.representation", Value: m.Representation})
	}
	return fields
}

func (m OperationMeta) attributes() []attribute.KeyValue {
	fields := m.fields()
	attrs := make([]attribute.KeyValue, len(fields))
	for i, f := range fields {
		attrs[i] = attribute.String(f.Key, fmt.Sprint(f.Value))
	}
	return attrs
}
