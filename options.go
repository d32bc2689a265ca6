package vek

import (
	"github.com/hupe1980/vek/alloc"
)

type options[T any] struct {
	allocator alloc.Allocator
	capacity  int
	release   func(T)
}

// Option configures a Vec at construction.
type Option[T any] func(*options[T])

// WithAllocator sets the allocator backing the Vec's storage.
//
// If nil is passed, alloc.Default is used. One allocator may back many
// containers; every implementation in package alloc is safe for concurrent
// use.
func WithAllocator[T any](a alloc.Allocator) Option[T] {
	return func(o *options[T]) {
		if a == nil {
			a = alloc.Default
		}
		o.allocator = a
	}
}

// WithCapacity pre-allocates storage for exactly n elements, sparing the
// doubling steps when the final size is known up front. n == 0 keeps the
// no-allocation sentinel; negative n panics.
func WithCapacity[T any](n int) Option[T] {
	if n < 0 {
		panic("vek: capacity must be non-negative")
	}
	return func(o *options[T]) {
		o.capacity = n
	}
}

// WithRelease registers a per-element teardown hook, invoked for each live
// element by Free, Clear, and Truncate in increasing index order. Pop never
// invokes it: ownership of a popped value transfers to the caller.
//
// Use it when elements hold resources the container must hand back, e.g.
// blocks carved out of another allocator, file descriptors wrapped in
// handles, or reference counts.
func WithRelease[T any](fn func(T)) Option[T] {
	return func(o *options[T]) {
		o.release = fn
	}
}

func applyOptions[T any](optFns []Option[T]) options[T] {
	o := options[T]{
		allocator: alloc.Default,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
