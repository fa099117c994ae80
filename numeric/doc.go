// Package numeric provides tolerance-based comparison and precision-rounded
// keying for float64 values.
//
// Comparisons use an absolute threshold (DefaultTolerance unless stated
// otherwise). Keys are built from values rounded to DefaultPrecision decimal
// digits, so two triples that round identically produce equal keys and can
// share a map slot.
package numeric
