package alloc

import (
	"errors"

	"github.com/hupe1980/vek/internal/mem"
)

// ErrExhausted is returned when an allocator cannot satisfy a request.
// It is the only failure kind allocators report; all returned errors wrap it.
var ErrExhausted = errors.New("alloc: allocation exhausted")

// Allocator hands out raw byte blocks of an exact size and alignment.
//
// The returned slices have len equal to the requested size. Their contents
// are zeroed, but callers that layer manual lifecycle management on top
// (construct/destruct protocols) must not rely on that and must never
// interpret bytes they have not written.
type Allocator interface {
	// Allocate returns a block of exactly size bytes whose first byte is
	// aligned to align. align must be a power of two.
	Allocate(size, align int) ([]byte, error)

	// Reallocate resizes a block previously returned by Allocate or
	// Reallocate, preserving the first min(len(b), size) bytes. The block
	// may be resized in place or relocated; either way b must not be used
	// afterwards.
	Reallocate(b []byte, size, align int) ([]byte, error)

	// Free releases a block previously returned by Allocate or Reallocate.
	Free(b []byte)
}

// Default is the process-wide allocator used when no explicit allocator is
// configured.
var Default Allocator = NewHeap()

// checkRequest validates the caller-controlled request parameters.
// Violations are programmer errors, not exhaustion.
func checkRequest(size, align int) {
	if size <= 0 {
		panic("alloc: size must be positive")
	}
	if !mem.IsPowerOfTwo(align) {
		panic("alloc: align must be a power of two")
	}
}
