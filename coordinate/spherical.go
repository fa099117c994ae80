package coordinate

import (
	"fmt"
	"math"

	"github.com/golang/geo/s1"

	"github.com/jonwraymond/coordops/numeric"
)

// Spherical is a point given by its radial distance, polar angle theta
// (inclination from +z, in [0, π]) and azimuthal angle phi (from +x towards
// +y, in [0, 2π)). Angles are in radians.
type Spherical struct {
	radius float64
	theta  float64
	phi    float64
	reg    *Registry
}

// Radius returns the radial distance.
func (s *Spherical) Radius() float64 { return s.radius }

// Theta returns the polar angle in radians.
func (s *Spherical) Theta() float64 { return s.theta }

// Phi returns the azimuthal angle in radians.
func (s *Spherical) Phi() float64 { return s.phi }

// AsCartesian converts s to Cartesian form.
func (s *Spherical) AsCartesian() *Cartesian {
	sinTheta, cosTheta := math.Sincos(s.theta)
	sinPhi, cosPhi := math.Sincos(s.phi)

	return s.reg.internCartesian(
		s.radius*sinTheta*cosPhi,
		s.radius*sinTheta*sinPhi,
		s.radius*cosTheta,
	)
}

// AsSpherical returns s.
func (s *Spherical) AsSpherical() *Spherical {
	return s
}

// DistanceTo returns the Euclidean distance between s and other.
func (s *Spherical) DistanceTo(other Coordinate) (float64, error) {
	return distance(s, other)
}

// CentralAngleTo returns the central angle between s and other in radians.
func (s *Spherical) CentralAngleTo(other Coordinate) (float64, error) {
	return centralAngle(s, other)
}

// Equal reports whether other, viewed as Spherical, is the same point as s.
// Angles that are arbitrary at the origin or on the polar axis are ignored.
func (s *Spherical) Equal(other Coordinate) bool {
	if s == nil || isNil(other) {
		return false
	}

	o := other.AsSpherical()
	if o == s {
		return true
	}

	if numeric.BothEqualTo(s.radius, o.radius, 0) {
		return true
	}
	if numeric.BothEqualTo(s.theta, o.theta, 0) || numeric.BothEqualTo(s.theta, o.theta, math.Pi) {
		return numeric.Equal(s.radius, o.radius)
	}
	return numeric.Equal(s.radius, o.radius) &&
		numeric.Equal(s.theta, o.theta) &&
		equalAzimuth(s.phi, o.phi)
}

func (s *Spherical) String() string {
	return fmt.Sprintf("spherical(%g, %sdeg, %sdeg)", s.radius, s1.Angle(s.theta), s1.Angle(s.phi))
}

func (*Spherical) coordinate() {}

// equalAzimuth compares two azimuths on the circle, so 2π-ε equals 0.
func equalAzimuth(a, b float64) bool {
	d := math.Abs(a - b)
	return numeric.Equal(d, 0) || numeric.Equal(d, 2*math.Pi)
}

func validateSpherical(radius, theta, phi float64) error {
	if err := validateFinite("radius", radius); err != nil {
		return err
	}
	if radius < 0 || radius > MaxMagnitude {
		return fmt.Errorf("%w: radius must be in [0, %g], got %v", ErrInvalidArgument, MaxMagnitude, radius)
	}
	if err := validateFinite("theta (polar angle)", theta); err != nil {
		return err
	}
	if theta < 0 || theta > math.Pi {
		return fmt.Errorf("%w: theta (polar angle) must be in [0, π], got %v", ErrInvalidArgument, theta)
	}
	if err := validateFinite("phi (azimuthal angle)", phi); err != nil {
		return err
	}
	if phi < 0 || phi >= 2*math.Pi {
		return fmt.Errorf("%w: phi (azimuthal angle) must be in [0, 2π), got %v", ErrInvalidArgument, phi)
	}
	return nil
}

// normalizeSpherical zeroes the angles that carry no information at the
// origin and on the polar axis.
func normalizeSpherical(radius, theta, phi float64) (float64, float64) {
	if numeric.Equal(radius, 0) {
		return 0, 0
	}
	if numeric.Equal(theta, 0) || numeric.Equal(theta, math.Pi) {
		return theta, 0
	}
	return theta, phi
}
