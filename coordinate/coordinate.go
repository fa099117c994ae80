package coordinate

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"

	"github.com/jonwraymond/coordops/numeric"
)

// MaxMagnitude bounds the distance of any coordinate from the origin. Within
// it, distances between two coordinates are always finite.
const MaxMagnitude = math.MaxFloat64 / 4

// Coordinate is a point in 3D space. It is implemented only by *Cartesian and
// *Spherical.
//
// Contract:
// - Immutability: values never change after construction.
// - Concurrency: all methods are safe for concurrent use.
// - Errors: DistanceTo and CentralAngleTo return ErrInvalidArgument for a nil
// other; CentralAngleTo returns ErrUndefinedAngle when either point is the
// origin.
type Coordinate interface {
	// AsCartesian returns the canonical Cartesian view of the point.
	AsCartesian() *Cartesian

	// AsSpherical returns the canonical Spherical view of the point.
	AsSpherical() *Spherical

	// DistanceTo returns the Euclidean distance to other.
	DistanceTo(other Coordinate) (float64, error)

	// CentralAngleTo returns the angle in radians between the position
	// vectors of the two points, seen from the origin.
	CentralAngleTo(other Coordinate) (float64, error)

	// Equal reports whether other is the same geometric point.
	Equal(other Coordinate) bool

	fmt.Stringer

	coordinate()
}

var (
	_ Coordinate = (*Cartesian)(nil)
	_ Coordinate = (*Spherical)(nil)
)

// isNil reports whether c is nil, including a typed nil pointer.
func isNil(c Coordinate) bool {
	switch v := c.(type) {
	case nil:
		return true
	case *Cartesian:
		return v == nil
	case *Spherical:
		return v == nil
	default:
		return false
	}
}

func distance(a, b Coordinate) (float64, error) {
	if isNil(b) {
		return 0, errNilCoordinate()
	}
	d := a.AsCartesian().v.Sub(b.AsCartesian().v)
	return norm(d), nil
}

func centralAngle(a, b Coordinate) (float64, error) {
	if isNil(b) {
		return 0, errNilCoordinate()
	}

	sa, sb := a.AsSpherical(), b.AsSpherical()
	if numeric.Equal(sa.radius, 0) || numeric.Equal(sb.radius, 0) {
		return 0, ErrUndefinedAngle
	}

	lat1 := math.Pi/2 - sa.theta
	lat2 := math.Pi/2 - sb.theta
	deltaPhi := math.Abs(sa.phi - sb.phi)

	cos := math.Sin(lat1)*math.Sin(lat2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Cos(deltaPhi)
	return math.Acos(clamp(cos, -1, 1)), nil
}

// norm is |v| computed without intermediate overflow.
func norm(v r3.Vector) float64 {
	return math.Hypot(math.Hypot(v.X, v.Y), v.Z)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
