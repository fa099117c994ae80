// Package coordinate provides canonical, immutable 3D coordinates in two
// interchangeable representations: Cartesian (x, y, z) and Spherical
// (radius, theta, phi), following ISO 80000-2 naming.
//
// Coordinates are obtained only through a Registry's factories (or the
// package-level helpers backed by Default). A factory validates its input,
// derives a precision-rounded key and returns the single shared instance for
// that key, so pointer equality implies value equality and instances can be
// shared across goroutines without synchronization.
//
// # Basic Usage
//
//	a, err := coordinate.NewCartesian(3, 4, -6.5)
//	if err != nil {
//	    return err
//	}
//	s := a.AsSpherical() // radius ≈ 8.2006, theta ≈ 2.4859, phi ≈ 0.9273
//
//	b := coordinate.MustSpherical(5, 1, 1)
//	d, err := a.DistanceTo(b)
//	angle, err := a.CentralAngleTo(b)
//
// # Degenerate Points
//
// At the origin theta and phi carry no information, and on the polar axis
// (theta 0 or π) phi carries none. Spherical factories force those angles to
// zero before interning, so differently-angled inputs for the same point
// share one instance. Spherical.Equal applies the same rules to values that
// were never normalized together.
package coordinate
