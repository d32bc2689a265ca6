package vek

import (
	"iter"

	"github.com/hupe1980/vek/internal/mem"
)

// All returns an iterator over index/element pairs in increasing index
// order. Each call starts a fresh traversal; breaking out early is
// supported.
//
// The Vec must not be mutated while the traversal runs. Traversal performs
// no per-slot bounds checks: length <= capacity holds by construction.
//
//	for i, v := range vec.All() {
//	    if v > limit { break }
//	    process(i, v)
//	}
func (v *Vec[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		v.mustLive()

		if mem.SizeOf[T]() == 0 {
			var zero T
			for i := 0; i < v.length; i++ {
				if !yield(i, zero) {
					return
				}
			}
			return
		}

		for i := 0; i < v.length; i++ {
			if !yield(i, v.storage.view[i]) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements in increasing index order.
// Like All, every call begins a fresh traversal and the Vec must not be
// mutated while it runs.
func (v *Vec[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, val := range v.All() {
			if !yield(val) {
				return
			}
		}
	}
}
