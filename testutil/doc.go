// Package testutil provides testing utilities for vek.
//
// This package is intended for use in tests and benchmarks only. It provides
// a seeded, thread-safe random number generator so randomized container and
// allocator tests stay deterministic across runs.
//
// # Deterministic Randomness
//
//	rng := testutil.NewRNG(4711)
//	n := rng.Intn(100)
//
//	vals := make([]int64, 1024)
//	rng.FillInt64s(vals)
//
//	rng.Reset() // replay the same sequence
package testutil
