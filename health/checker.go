package health

import (
	"context"
	"fmt"
	"maps"
	"time"
)

// Status is the health of one check or of a whole report. Larger values are
// more severe.
type Status uint8

const (
	StatusHealthy Status = iota
	StatusDegraded
	StatusUnhealthy
)

var statusNames = [...]string{"healthy", "degraded", "unhealthy"}

func (s Status) String() string {
	if int(s) < len(statusNames) {
		return statusNames[s]
	}
	return "unknown"
}

// MarshalText encodes s by name, so JSON carries "degraded" rather than 1.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a status name written by MarshalText.
func (s *Status) UnmarshalText(text []byte) error {
	for i, name := range statusNames {
		if name == string(text) {
			*s = Status(i)
			return nil
		}
	}
	return fmt.Errorf("health: unknown status %q", text)
}

// Worst returns the more severe of s and other.
func (s Status) Worst(other Status) Status {
	return max(s, other)
}

// Result is the outcome of a single check.
type Result struct {
	Status    Status
	Message   string
	Details   map[string]any
	Duration  time.Duration
	Timestamp time.Time
	Err       error
}

func newResult(status Status, message string, err error) Result {
	return Result{Status: status, Message: message, Err: err, Timestamp: time.Now()}
}

// Healthy returns a healthy result.
func Healthy(message string) Result { return newResult(StatusHealthy, message, nil) }

// Degraded returns a degraded result.
func Degraded(message string) Result { return newResult(StatusDegraded, message, nil) }

// Unhealthy returns an unhealthy result caused by err.
func Unhealthy(message string, err error) Result {
	return newResult(StatusUnhealthy, message, err)
}

// With returns a copy of r carrying the extra detail key=value.
func (r Result) With(key string, value any) Result {
	details := make(map[string]any, len(r.Details)+1)
	maps.Copy(details, r.Details)
	details[key] = value
	r.Details = details
	return r
}

// Checker reports the health of one component.
type Checker interface {
	Name() string
	Check(ctx context.Context) Result
}

type funcChecker struct {
	name string
	fn   func(context.Context) Result
}

// NewCheckerFunc adapts fn to a Checker called name.
func NewCheckerFunc(name string, fn func(context.Context) Result) Checker {
	return funcChecker{name: name, fn: fn}
}

func (f funcChecker) Name() string { return f.name }

func (f funcChecker) Check(ctx context.Context) Result { return f.fn(ctx) }
