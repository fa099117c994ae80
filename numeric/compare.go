package numeric

import "math"

// DefaultTolerance is the absolute threshold below which two values are
// considered equal.
const DefaultTolerance = 1e-6

// EqualWithinTolerance reports whether |a-b| < threshold.
func EqualWithinTolerance(a, b, threshold float64) bool {
	return math.Abs(a-b) < threshold
}

// Equal reports whether a and b are equal within DefaultTolerance.
func Equal(a, b float64) bool {
	return EqualWithinTolerance(a, b, DefaultTolerance)
}

// EqualToExpected reports whether both a and b are within threshold of expected.
func EqualToExpected(a, b, expected, threshold float64) bool {
	return EqualWithinTolerance(a, expected, threshold) &&
		EqualWithinTolerance(b, expected, threshold)
}

// BothEqualTo is EqualToExpected with DefaultTolerance.
func BothEqualTo(a, b, expected float64) bool {
	return EqualToExpected(a, b, expected, DefaultTolerance)
}

// IsFinite reports whether v is neither NaN nor an infinity.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
