package alloc

import (
	"github.com/hupe1980/vek/internal/mem"
)

// Heap allocates GC-backed blocks from the Go heap, over-allocating and
// shifting to satisfy alignment. Free is a no-op; the collector reclaims
// blocks once the last reference drops.
//
// Heap never returns ErrExhausted: when the Go heap itself is exhausted the
// runtime crashes the process, which is the same abort posture one level
// down.
type Heap struct{}

// NewHeap creates a new Heap allocator.
func NewHeap() *Heap {
	return &Heap{}
}

// Allocate implements Allocator.
func (h *Heap) Allocate(size, align int) ([]byte, error) {
	checkRequest(size, align)
	return mem.AllocAligned(size, align), nil
}

// Reallocate implements Allocator.
func (h *Heap) Reallocate(b []byte, size, align int) ([]byte, error) {
	checkRequest(size, align)
	if size == len(b) {
		return b, nil
	}

	nb := mem.AllocAligned(size, align)
	copy(nb, b)
	return nb, nil
}

// Free implements Allocator.
func (h *Heap) Free(b []byte) {}

var _ Allocator = (*Heap)(nil)
