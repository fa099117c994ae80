package numeric

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"math"
	"strconv"
)

// DefaultPrecision is the number of decimal digits kept when building keys.
const DefaultPrecision = 6

// Key identifies a triple of scalars after precision rounding.
//
// Key is comparable and can be used directly as a map key. Two triples that
// round to the same values at the same precision produce equal keys.
type Key struct {
	A, B, C float64
}

// CanonicalKey builds a Key from a, b and c rounded to DefaultPrecision.
func CanonicalKey(a, b, c float64) Key {
	return CanonicalKeyWithPrecision(a, b, c, DefaultPrecision)
}

// CanonicalKeyWithPrecision builds a Key from a, b and c rounded to digits.
func CanonicalKeyWithPrecision(a, b, c float64, digits int) Key {
	return Key{
		A: RoundToPrecision(a, digits),
		B: RoundToPrecision(b, digits),
		C: RoundToPrecision(c, digits),
	}
}

// String renders the rounded triple, e.g. "(1, 0.5, -2)".
func (k Key) String() string {
	buf := make([]byte, 0, 64)
	buf = append(buf, '(')
	buf = strconv.AppendFloat(buf, k.A, 'g', -1, 64)
	buf = append(buf, ", "...)
	buf = strconv.AppendFloat(buf, k.B, 'g', -1, 64)
	buf = append(buf, ", "...)
	buf = strconv.AppendFloat(buf, k.C, 'g', -1, 64)
	buf = append(buf, ')')
	return string(buf)
}

// Digest returns a short stable identifier for the key.
// Format: key:<hash>, where hash is the first 16 hex characters of
// SHA-256 over the big-endian IEEE-754 bits of A, B and C.
func (k Key) Digest() string {
	var raw [24]byte
	binary.BigEndian.PutUint64(raw[0:8], math.Float64bits(k.A))
	binary.BigEndian.PutUint64(raw[8:16], math.Float64bits(k.B))
	binary.BigEndian.PutUint64(raw[16:24], math.Float64bits(k.C))

	hash := sha256.Sum256(raw[:])
	return "key:" + hex.EncodeToString(hash[:8])
}
