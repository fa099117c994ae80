package coordinate

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"

	"github.com/jonwraymond/coordops/numeric"
)

// Cartesian is a point given by its x, y and z components.
type Cartesian struct {
	v   r3.Vector
	reg *Registry
}

// X returns the x component.
func (c *Cartesian) X() float64 { return c.v.X }

// Y returns the y component.
func (c *Cartesian) Y() float64 { return c.v.Y }

// Z returns the z component.
func (c *Cartesian) Z() float64 { return c.v.Z }

// Vector returns the components as an r3.Vector.
func (c *Cartesian) Vector() r3.Vector { return c.v }

// AsCartesian returns c.
func (c *Cartesian) AsCartesian() *Cartesian {
	return c
}

// AsSpherical converts c to spherical form. Off the z axis phi is the
// azimuth in [0, 2π); on it phi is 0, and at the origin theta is 0 too.
func (c *Cartesian) AsSpherical() *Spherical {
	radius := norm(c.v)

	var theta, phi float64
	if radius != 0 {
		theta = math.Acos(clamp(c.v.Z/radius, -1, 1))
	}
	if c.v.X != 0 || c.v.Y != 0 {
		phi = math.Atan2(c.v.Y, c.v.X)
		if phi < 0 {
			phi += 2 * math.Pi
		}
		// A tiny negative azimuth can round up to exactly 2π.
		if phi >= 2*math.Pi {
			phi = 0
		}
	}

	return c.reg.internSpherical(radius, theta, phi)
}

// DistanceTo returns the Euclidean distance between c and other.
func (c *Cartesian) DistanceTo(other Coordinate) (float64, error) {
	return distance(c, other)
}

// CentralAngleTo returns the central angle between c and other in radians.
func (c *Cartesian) CentralAngleTo(other Coordinate) (float64, error) {
	return centralAngle(c, other)
}

// Equal reports whether other, viewed as Cartesian, has the same components
// as c within numeric.DefaultTolerance.
func (c *Cartesian) Equal(other Coordinate) bool {
	if c == nil || isNil(other) {
		return false
	}

	o := other.AsCartesian()
	if o == c {
		return true
	}
	return numeric.Equal(c.v.X, o.v.X) &&
		numeric.Equal(c.v.Y, o.v.Y) &&
		numeric.Equal(c.v.Z, o.v.Z)
}

func (c *Cartesian) String() string {
	return fmt.Sprintf("cartesian(%g, %g, %g)", c.v.X, c.v.Y, c.v.Z)
}

func (*Cartesian) coordinate() {}

func validateCartesian(x, y, z float64) error {
	if err := validateFinite("x", x); err != nil {
		return err
	}
	if err := validateFinite("y", y); err != nil {
		return err
	}
	if err := validateFinite("z", z); err != nil {
		return err
	}
	if m := norm(r3.Vector{X: x, Y: y, Z: z}); m > MaxMagnitude {
		return fmt.Errorf("%w: magnitude must not exceed %g, got %g", ErrInvalidArgument, MaxMagnitude, m)
	}
	return nil
}
