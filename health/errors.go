package health

import "errors"

var (
	// ErrThresholdExceeded indicates an interner grew past its critical size.
	ErrThresholdExceeded = errors.New("health: interner above critical threshold")

	// ErrCheckTimeout indicates a check did not report before its deadline.
	ErrCheckTimeout = errors.New("health: check timed out")

	// ErrCheckerNotFound indicates no checker is registered under a name.
	ErrCheckerNotFound = errors.New("health: checker not found")
)
