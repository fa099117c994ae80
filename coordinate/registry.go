package coordinate

import (
	"context"
	"sync"

	"github.com/golang/geo/r3"

	"github.com/jonwraymond/coordops/cache"
	"github.com/jonwraymond/coordops/numeric"
	"github.com/jonwraymond/coordops/observe"
)

// Interner names reported to recorders and health checks.
const (
	CartesianInterner = "cartesian"
	SphericalInterner = "spherical"
)

// Registry owns the interners that hold canonical coordinates. Coordinates
// created by one Registry convert through the same Registry.
//
// Contract:
// - Concurrency: safe for concurrent use.
// - Ownership: interned coordinates live as long as the Registry.
type Registry struct {
	cartesian *cache.Interner[numeric.Key, *Cartesian]
	spherical *cache.Interner[numeric.Key, *Spherical]
	logger    observe.Logger
}

// Option configures a Registry.
type Option func(*registryOptions)

type registryOptions struct {
	recorder cache.Recorder
	logger   observe.Logger
}

// WithRecorder instruments both interners with r.
func WithRecorder(r cache.Recorder) Option {
	return func(o *registryOptions) {
		o.recorder = r
	}
}

// WithLogger sets the logger used to report newly interned coordinates.
func WithLogger(l observe.Logger) Option {
	return func(o *registryOptions) {
		o.logger = l
	}
}

// NewRegistry creates an empty Registry.
func NewRegistry(opts ...Option) *Registry {
	var o registryOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = observe.NewNoopLogger()
	}

	return &Registry{
		cartesian: cache.NewInterner[numeric.Key, *Cartesian](
			cache.WithName(CartesianInterner),
			cache.WithRecorder(o.recorder),
		),
		spherical: cache.NewInterner[numeric.Key, *Spherical](
			cache.WithName(SphericalInterner),
			cache.WithRecorder(o.recorder),
		),
		logger: o.logger,
	}
}

var defaultRegistry = sync.OnceValue(func() *Registry {
	return NewRegistry()
})

// Default returns the process-wide Registry used by the package-level
// factories. It is created on first use.
func Default() *Registry {
	return defaultRegistry()
}

// Cartesian returns the canonical Cartesian coordinate for (x, y, z).
// It returns ErrInvalidArgument if a component is not finite or the
// magnitude exceeds MaxMagnitude.
func (r *Registry) Cartesian(x, y, z float64) (*Cartesian, error) {
	if err := validateCartesian(x, y, z); err != nil {
		return nil, err
	}
	return r.internCartesian(x, y, z), nil
}

// Spherical returns the canonical Spherical coordinate for (radius, theta,
// phi). It returns ErrInvalidArgument if radius is not in [0, MaxMagnitude],
// theta is not in [0, π] or phi is not in [0, 2π).
func (r *Registry) Spherical(radius, theta, phi float64) (*Spherical, error) {
	if err := validateSpherical(radius, theta, phi); err != nil {
		return nil, err
	}
	return r.internSpherical(radius, theta, phi), nil
}

// Origin returns the canonical Cartesian origin.
func (r *Registry) Origin() *Cartesian {
	return r.internCartesian(0, 0, 0)
}

// Stats returns interner statistics keyed by interner name.
func (r *Registry) Stats() map[string]cache.Stats {
	return map[string]cache.Stats{
		CartesianInterner: r.cartesian.Stats(),
		SphericalInterner: r.spherical.Stats(),
	}
}

// InternerView is the read-only surface of an interner.
type InternerView interface {
	Name() string
	Len() int
	Stats() cache.Stats
}

// Interners returns read-only views of the registry's interners.
func (r *Registry) Interners() []InternerView {
	return []InternerView{r.cartesian, r.spherical}
}

// internCartesian interns components that are already known to be valid.
func (r *Registry) internCartesian(x, y, z float64) *Cartesian {
	key := numeric.CanonicalKey(x, y, z)

	created := false
	c := r.cartesian.GetOrCreate(key, func() *Cartesian {
		created = true
		return &Cartesian{v: r3.Vector{X: x, Y: y, Z: z}, reg: r}
	})
	if created {
		r.logInterned(CartesianInterner, key)
	}
	return c
}

// internSpherical normalizes and interns components that are already known
// to be valid.
func (r *Registry) internSpherical(radius, theta, phi float64) *Spherical {
	theta, phi = normalizeSpherical(radius, theta, phi)
	key := numeric.CanonicalKey(radius, theta, phi)

	created := false
	s := r.spherical.GetOrCreate(key, func() *Spherical {
		created = true
		return &Spherical{radius: radius, theta: theta, phi: phi, reg: r}
	})
	if created {
		r.logInterned(SphericalInterner, key)
	}
	return s
}

func (r *Registry) logInterned(kind string, key numeric.Key) {
	r.logger.Debug(context.Background(), "coordinate interned",
		observe.Field{Key: "coordinate.kind", Value: kind},
		observe.Field{Key: "coordinate.key", Value: key.String()},
		observe.Field{Key: "coordinate.digest", Value: key.Digest()},
	)
}
