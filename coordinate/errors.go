package coordinate

import (
	"errors"
	"fmt"

	"github.com/jonwraymond/coordops/numeric"
)

var (
	// ErrInvalidArgument indicates a non-finite or out-of-range component, or
	// a nil coordinate where one is required.
	ErrInvalidArgument = errors.New("coordinate: invalid argument")

	// ErrUndefinedAngle indicates a central angle was requested for the
	// origin, where direction is undefined.
	ErrUndefinedAngle = errors.New("coordinate: central angle undefined at the origin")
)

func errNilCoordinate() error {
	return fmt.Errorf("%w: other coordinate must not be nil", ErrInvalidArgument)
}

func validateFinite(name string, v float64) error {
	if !numeric.IsFinite(v) {
		return fmt.Errorf("%w: %s must be finite, got %v", ErrInvalidArgument, name, v)
	}
	return nil
}
