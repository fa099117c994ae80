package cache

import "context"

// Recorder observes interner lookups.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: recording is best-effort and must not panic.
type Recorder interface {
	// RecordLookup records a GetOrCreate call against the named interner.
	// hit is false when the call constructed a new instance.
	RecordLookup(ctx context.Context, cache string, hit bool)
}

// Stats is a point-in-time snapshot of interner activity.
type Stats struct {
	// Entries is the number of interned instances.
	Entries int

	// Hits counts lookups served by an existing instance.
	Hits uint64

	// Misses counts lookups that found no instance on the optimistic read.
	// A miss may still be served by an instance another caller inserted
	// before the write lock was acquired.
	Misses uint64

	// Constructions counts instances built by the interner.
	Constructions uint64
}

// Option configures an Interner.
type Option func(*options)

type options struct {
	name     string
	recorder Recorder
}

// WithName sets the name reported to the Recorder and by Name.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithRecorder attaches a Recorder. A nil recorder disables recording.
func WithRecorder(r Recorder) Option {
	return func(o *options) {
		o.recorder = r
	}
}

type noopRecorder struct{}

func (noopRecorder) RecordLookup(context.Context, string, bool) {}
