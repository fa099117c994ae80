package coordinate

// NewCartesian returns the canonical Cartesian coordinate from Default.
func NewCartesian(x, y, z float64) (*Cartesian, error) {
	return Default().Cartesian(x, y, z)
}

// NewSpherical returns the canonical Spherical coordinate from Default.
func NewSpherical(radius, theta, phi float64) (*Spherical, error) {
	return Default().Spherical(radius, theta, phi)
}

// MustCartesian is like NewCartesian but panics on invalid input.
// It is intended for literals in tests and examples.
func MustCartesian(x, y, z float64) *Cartesian {
	c, err := NewCartesian(x, y, z)
	if err != nil {
		panic(err)
	}
	return c
}

// MustSpherical is like NewSpherical but panics on invalid input.
// It is intended for literals in tests and examples.
func MustSpherical(radius, theta, phi float64) *Spherical {
	s, err := NewSpherical(radius, theta, phi)
	if err != nil {
		panic(err)
	}
	return s
}

// Origin returns the canonical Cartesian origin from Default.
func Origin() *Cartesian {
	return Default().Origin()
}
