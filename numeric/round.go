package numeric

import "math"

// maxExact is the largest magnitude at which every integer is representable.
const maxExact = 1 << 53

// RoundToPrecision rounds value to digits decimal digits, halves away from
// zero. Negative zero is folded into +0 so that keys built from it compare
// equal to keys built from 0.
//
// Values whose scaled magnitude exceeds 2^53 carry no fractional digits at
// that precision and are returned unchanged. A negative digits count rounds
// to tens, hundreds, and so on.
func RoundToPrecision(value float64, digits int) float64 {
	if !IsFinite(value) {
		return value
	}

	scale := math.Pow10(digits)
	scaled := value * scale
	if math.IsInf(scaled, 0) || math.Abs(scaled) >= maxExact {
		return value + 0
	}

	return math.Round(scaled)/scale + 0
}
