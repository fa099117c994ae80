package coordinate

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Spherical_ReturnsSameInstance(t *testing.T) {
	reg := NewRegistry()

	a, err := reg.Spherical(5, 1, 1)
	require.NoError(t, err)
	b, err := reg.Spherical(5, 1, 1)
	require.NoError(t, err)

	assert.Same(t, a, b)
	assert.Equal(t, 5.0, a.Radius())
	assert.Equal(t, 1.0, a.Theta())
	assert.Equal(t, 1.0, a.Phi())
}

func TestRegistry_Spherical_NormalizesDegenerateAngles(t *testing.T) {
	reg := NewRegistry()

	origin1, err := reg.Spherical(0, 0.3, 1.2)
	require.NoError(t, err)
	origin2, err := reg.Spherical(0, 0.9, 4.0)
	require.NoError(t, err)
	assert.Same(t, origin1, origin2)
	assert.Equal(t, 0.0, origin1.Theta())
	assert.Equal(t, 0.0, origin1.Phi())

	north1, err := reg.Spherical(5, 0, 0.7)
	require.NoError(t, err)
	north2, err := reg.Spherical(5, 0, 2.1)
	require.NoError(t, err)
	assert.Same(t, north1, north2)
	assert.Equal(t, 0.0, north1.Phi())

	south1, err := reg.Spherical(5, math.Pi, 0.7)
	require.NoError(t, err)
	south2, err := reg.Spherical(5, math.Pi, 6)
	require.NoError(t, err)
	assert.Same(t, south1, south2)
	assert.False(t, north1.Equal(south1))
}

func TestRegistry_Spherical_Invalid(t *testing.T) {
	reg := NewRegistry()
	tests := []struct {
		name              string
		radius, theta, phi float64
		wantMsg           string
	}{
		{"negative radius", -1, 1, 1, "radius"},
		{"nan radius", math.NaN(), 1, 1, "radius"},
		{"infinite radius", math.Inf(1), 1, 1, "radius"},
		{"radius above bound", MaxMagnitude * 2, 1, 1, "radius"},
		{"negative theta", 1, -0.1, 1, "theta (polar angle)"},
		{"theta above pi", 1, 4, 1, "theta (polar angle)"},
		{"nan theta", 1, math.NaN(), 1, "theta (polar angle)"},
		{"negative phi", 1, 1, -0.1, "phi (azimuthal angle)"},
		{"phi at two pi", 1, 1, 2 * math.Pi, "phi (azimuthal angle)"},
		{"infinite phi", 1, 1, math.Inf(-1), "phi (azimuthal angle)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := reg.Spherical(tt.radius, tt.theta, tt.phi)
			assert.Nil(t, s)
			assert.ErrorIs(t, err, ErrInvalidArgument)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestRegistry_Spherical_BoundaryValues(t *testing.T) {
	reg := NewRegistry()

	_, err := reg.Spherical(0, 0, 0)
	assert.NoError(t, err)
	_, err = reg.Spherical(1, math.Pi, 0)
	assert.NoError(t, err)
	_, err = reg.Spherical(1, 1, math.Nextafter(2*math.Pi, 0))
	assert.NoError(t, err)
}

func TestSpherical_AsCartesian(t *testing.T) {
	reg := NewRegistry()

	s, err := reg.Spherical(2, math.Pi/2, math.Pi/2)
	require.NoError(t, err)
	c := s.AsCartesian()

	assert.InDelta(t, 0, c.X(), 1e-12)
	assert.InDelta(t, 2, c.Y(), 1e-12)
	assert.InDelta(t, 0, c.Z(), 1e-12)
	assert.Same(t, c, s.AsCartesian(), "conversion is interned")
	assert.Same(t, s, s.AsSpherical())
}

func TestSpherical_RoundTrip(t *testing.T) {
	reg := NewRegistry()
	rng := rand.New(rand.NewPCG(1, 2))

	for i := 0; i < 500; i++ {
		radius := 1 + rng.Float64()*99
		theta := 0.1 + rng.Float64()*(math.Pi-0.2)
		phi := rng.Float64() * 2 * math.Pi

		s, err := reg.Spherical(radius, theta, phi)
		require.NoError(t, err)
		back := s.AsCartesian().AsSpherical()

		require.Truef(t, s.Equal(back), "round trip of %v gave %v", s, back)
		require.InDelta(t, radius, back.Radius(), 1e-9)
		require.InDelta(t, theta, back.Theta(), 1e-9)
	}
}

func TestCartesian_RoundTrip(t *testing.T) {
	reg := NewRegistry()
	rng := rand.New(rand.NewPCG(3, 4))

	for i := 0; i < 500; i++ {
		x := rng.Float64()*200 - 100
		y := rng.Float64()*200 - 100
		z := rng.Float64()*200 - 100

		c, err := reg.Cartesian(x, y, z)
		require.NoError(t, err)
		back := c.AsSpherical().AsCartesian()

		require.Truef(t, c.Equal(back), "round trip of %v gave %v", c, back)
	}

	for _, p := range [][3]float64{{0, 0, 0}, {0, 0, 7}, {0, 0, -7}, {0, 3, 0}, {-3, 0, 0}} {
		c, err := reg.Cartesian(p[0], p[1], p[2])
		require.NoError(t, err)
		assert.Truef(t, c.Equal(c.AsSpherical().AsCartesian()), "round trip of %v", c)
	}
}

func TestSpherical_Equal(t *testing.T) {
	reg := NewRegistry()

	a, err := reg.Spherical(5, 1, 1)
	require.NoError(t, err)
	b, err := reg.Spherical(5.0000004, 1, 1)
	require.NoError(t, err)
	c, err := reg.Spherical(5, 1.1, 1)
	require.NoError(t, err)
	d, err := reg.Spherical(5, 1, 1.1)
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(d))
	assert.False(t, a.Equal(nil))

	var typedNil *Spherical
	assert.False(t, a.Equal(typedNil))
}

func TestSpherical_EqualWrapsAzimuth(t *testing.T) {
	reg := NewRegistry()

	a, err := reg.Spherical(5, 1, 0)
	require.NoError(t, err)
	b, err := reg.Spherical(5, 1, 2*math.Pi-1e-9)
	require.NoError(t, err)

	require.NotSame(t, a, b)
	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))
}

func TestSpherical_EqualDifferentRadiusOnAxis(t *testing.T) {
	reg := NewRegistry()

	a, err := reg.Spherical(5, 0, 0)
	require.NoError(t, err)
	b, err := reg.Spherical(6, 0, 0)
	require.NoError(t, err)

	assert.False(t, a.Equal(b))
}

func TestSpherical_String(t *testing.T) {
	s, err := NewRegistry().Spherical(1, math.Pi/2, 0)
	require.NoError(t, err)

	assert.Equal(t, "spherical(1, 90.0000000deg, 0.0000000deg)", s.String())
}
