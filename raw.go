package vek

import (
	"fmt"

	"github.com/hupe1980/vek/alloc"
	"github.com/hupe1980/vek/internal/mem"
)

// rawStore owns one contiguous allocator block sized for capacity elements
// of T. It tracks no element lifecycle: which slots hold live values is
// entirely the owner's business.
//
// buf == nil is the sentinel "no allocation" state and holds exactly when
// capacity == 0. Otherwise buf is a block previously returned by the
// allocator for capacity*sizeof(T) bytes at alignof(T), and view is the
// typed window over it.
//
// The three methods below are the only allocator call sites in the package.
type rawStore[T any] struct {
	alloc    alloc.Allocator
	buf      []byte
	view     []T
	capacity int
}

func newRawStore[T any](a alloc.Allocator) rawStore[T] {
	return rawStore[T]{alloc: a}
}

// allocate backs the sentinel store with a fresh block for capacity
// elements. capacity must be positive and T must not be zero-sized;
// zero-sized element types never reach the allocator.
func (s *rawStore[T]) allocate(capacity int) {
	b, err := s.alloc.Allocate(capacity*mem.SizeOf[T](), mem.AlignOf[T]())
	if err != nil {
		panic(fmt.Errorf("vek: allocate %d slots: %w", capacity, err))
	}

	s.buf = b
	s.view = mem.Slice[T](b, capacity)
	s.capacity = capacity
}

// grow replaces the block with one sized for newCapacity elements,
// relocating the existing bytes wholesale. newCapacity must exceed the
// current capacity. On the sentinel this degenerates to allocate.
func (s *rawStore[T]) grow(newCapacity int) {
	if newCapacity <= s.capacity {
		panic("vek: grow must increase capacity")
	}
	if s.capacity == 0 {
		s.allocate(newCapacity)
		return
	}

	b, err := s.alloc.Reallocate(s.buf, newCapacity*mem.SizeOf[T](), mem.AlignOf[T]())
	if err != nil {
		panic(fmt.Errorf("vek: grow %d -> %d slots: %w", s.capacity, newCapacity, err))
	}

	s.buf = b
	s.view = mem.Slice[T](b, newCapacity)
	s.capacity = newCapacity
}

// release returns the block to the allocator. Called at most once, during
// the owner's teardown, and skipped entirely on the sentinel: a
// zero-capacity store was never allocator-backed.
func (s *rawStore[T]) release() {
	if s.capacity == 0 {
		return
	}

	s.alloc.Free(s.buf)
	s.buf = nil
	s.view = nil
	s.capacity = 0
}
