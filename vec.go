package vek

import (
	"fmt"
	"math"

	"github.com/hupe1980/vek/internal/mem"
)

// Vec is a growable array of T stored in one contiguous allocator block.
//
// Elements occupy slots [0, Len()) of the block; slots beyond the length are
// uninitialized and never interpreted as T. Push appends with amortized O(1)
// cost (capacity doubles on demand and never shrinks), Pop transfers the last
// element back to the caller, and Free returns the block to the allocator.
// Must be created with New.
//
// A Vec is single-threaded: no internal synchronization, no atomics.
// Callers that share one across goroutines must provide their own
// exclusion.
type Vec[T any] struct {
	storage rawStore[T]
	length  int
	release func(T)
	freed   bool
}

// New creates an empty Vec.
//
// T must not contain Go pointers (no pointers, maps, chans, funcs,
// interfaces, slices, or strings, directly or through nested structs and
// arrays): elements live in raw memory the garbage collector does not scan,
// so a pointer stored there would not keep its referent alive. New panics on
// pointer-bearing element types.
func New[T any](optFns ...Option[T]) *Vec[T] {
	if mem.HasPointers[T]() {
		panic("vek: element type must not contain Go pointers")
	}

	o := applyOptions(optFns)

	v := &Vec[T]{
		storage: newRawStore[T](o.allocator),
		release: o.release,
	}
	if o.capacity > 0 && mem.SizeOf[T]() > 0 {
		v.storage.allocate(o.capacity)
	}
	return v
}

// Push appends val, growing storage first when full. Growth doubles the
// capacity (the first allocation holds a single slot), so each element is
// relocated O(1) times on average. Allocator exhaustion panics; there is no
// recovering a container that cannot grow.
func (v *Vec[T]) Push(val T) {
	v.mustLive()

	if mem.SizeOf[T]() == 0 {
		v.length++
		return
	}

	if v.length == v.storage.capacity {
		v.storage.grow(nextCapacity(v.storage.capacity))
	}
	v.storage.view[v.length] = val
	v.length++
}

// Append pushes vals in order, growing at most once: capacity doubles
// repeatedly until all of vals fit.
func (v *Vec[T]) Append(vals ...T) {
	v.mustLive()

	if len(vals) == 0 {
		return
	}
	if mem.SizeOf[T]() == 0 {
		v.length += len(vals)
		return
	}

	need := v.length + len(vals)
	if need > v.storage.capacity {
		newCap := nextCapacity(v.storage.capacity)
		for newCap < need {
			newCap *= 2
		}
		v.storage.grow(newCap)
	}

	copy(v.storage.view[v.length:need], vals)
	v.length = need
}

// Pop removes and returns the last element. The second return is false when
// the Vec is empty - an ordinary outcome, not an error.
//
// Ownership transfers to the caller: the release hook does not run, and the
// vacated slot is zeroed and uninitialized from here on.
func (v *Vec[T]) Pop() (T, bool) {
	v.mustLive()

	var zero T
	if v.length == 0 {
		return zero, false
	}

	v.length--
	if mem.SizeOf[T]() == 0 {
		return zero, true
	}

	val := v.storage.view[v.length]
	v.storage.view[v.length] = zero
	return val, true
}

// Get returns the element at index i. The second return is false when i is
// out of range.
func (v *Vec[T]) Get(i int) (T, bool) {
	v.mustLive()

	var zero T
	if i < 0 || i >= v.length {
		return zero, false
	}
	if mem.SizeOf[T]() == 0 {
		return zero, true
	}
	return v.storage.view[i], true
}

// At returns a pointer to the element at index i for in-place mutation, or
// nil when i is out of range. The pointer is valid only until the next
// growth: Push, Append, and Reserve may relocate the backing block.
func (v *Vec[T]) At(i int) *T {
	v.mustLive()

	if i < 0 || i >= v.length {
		return nil
	}
	if mem.SizeOf[T]() == 0 {
		// Zero-sized values are interchangeable; the runtime backs every
		// zero-size allocation with the same cell.
		return new(T)
	}
	return &v.storage.view[i]
}

// Set stores val at index i, returning false when i is out of range. The
// previous value is overwritten without running the release hook; callers
// that track per-element ownership must release it themselves first.
func (v *Vec[T]) Set(i int, val T) bool {
	v.mustLive()

	if i < 0 || i >= v.length {
		return false
	}
	if mem.SizeOf[T]() != 0 {
		v.storage.view[i] = val
	}
	return true
}

// Len returns the number of elements.
func (v *Vec[T]) Len() int {
	v.mustLive()
	return v.length
}

// Cap returns the number of elements storage can hold before the next
// growth. Zero-sized element types never allocate, so their capacity is
// effectively unbounded and Cap reports math.MaxInt.
func (v *Vec[T]) Cap() int {
	v.mustLive()

	if mem.SizeOf[T]() == 0 {
		return math.MaxInt
	}
	return v.storage.capacity
}

// Reserve ensures capacity for at least n elements with a single grow to
// exactly n, sparing the doubling steps when the final size is known up
// front. It never shrinks: when capacity already suffices (or T is
// zero-sized) Reserve is a no-op. Negative n panics.
func (v *Vec[T]) Reserve(n int) {
	v.mustLive()

	if n < 0 {
		panic("vek: capacity must be non-negative")
	}
	if mem.SizeOf[T]() == 0 || n <= v.storage.capacity {
		return
	}
	v.storage.grow(n)
}

// Truncate drops the elements [n, Len()), passing each to the release hook
// in increasing index order and zeroing its slot. Capacity is unchanged.
// Truncate is a no-op when n >= Len(); negative n panics.
func (v *Vec[T]) Truncate(n int) {
	v.mustLive()

	if n < 0 {
		panic("vek: negative truncate length")
	}
	if n >= v.length {
		return
	}
	v.destroyTail(n)
}

// Clear drops every element, keeping capacity for reuse.
func (v *Vec[T]) Clear() {
	v.mustLive()
	v.destroyTail(0)
}

// Free destroys the Vec: live elements are passed to the release hook in
// increasing index order, then the block goes back to the allocator. The
// Vec is dead afterwards - any further operation panics, including a second
// Free, since the storage is released at most once.
func (v *Vec[T]) Free() {
	v.mustLive()
	v.freed = true

	v.destroyTail(0)
	v.storage.release()
}

// String returns a diagnostic summary. It never reads elements and stays
// safe on a freed Vec.
func (v *Vec[T]) String() string {
	var zero T
	if v.freed {
		return fmt.Sprintf("Vec[%T]{freed}", zero)
	}

	c := v.storage.capacity
	if mem.SizeOf[T]() == 0 {
		c = math.MaxInt
	}
	return fmt.Sprintf("Vec[%T]{len: %d, cap: %d}", zero, v.length, c)
}

// destroyTail releases elements [n, length) in increasing index order.
// The whole tail is claimed dead before any hook runs and each slot is
// zeroed before its hook fires, so a panicking hook can leak later elements
// but never expose one to a second release.
func (v *Vec[T]) destroyTail(n int) {
	end := v.length
	v.length = n

	zst := mem.SizeOf[T]() == 0
	if v.release == nil {
		if !zst {
			clear(v.storage.view[n:end])
		}
		return
	}

	var zero T
	for i := n; i < end; i++ {
		val := zero
		if !zst {
			val = v.storage.view[i]
			v.storage.view[i] = zero
		}
		v.release(val)
	}
}

func (v *Vec[T]) mustLive() {
	if v.freed {
		panic("vek: use after Free()")
	}
}

// nextCapacity doubles, with the first allocation jumping straight to one
// slot.
func nextCapacity(c int) int {
	if c == 0 {
		return 1
	}
	return 2 * c
}
