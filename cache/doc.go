// Package cache provides interning for immutable value objects.
//
// An Interner maps a comparable key to exactly one shared instance. The first
// caller for a key constructs the instance; every later caller, including
// callers racing the first one, receives the same instance. Entries are never
// evicted: interned values are expected to live as long as the Interner.
package cache
