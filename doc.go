// Package vek provides a growable, contiguous-memory container built
// directly on a raw memory allocator.
//
// Vec[T] keeps its elements in one allocator block, doubling the block when
// a push finds it full and releasing it exactly once on Free. The allocator
// behind it is pluggable: package alloc ships a GC-backed heap allocator
// (the default), an off-heap mmap allocator, and decorators for budgets,
// metrics, and leak checking.
//
// # Quick Start
//
//	v := vek.New[int64]()
//	defer v.Free()
//
//	v.Push(1)
//	v.Push(2)
//	v.Push(3)
//
//	last, ok := v.Pop() // 3, true
//
//	for i, val := range v.All() {
//	    fmt.Println(i, val)
//	}
//
// # Choosing an Allocator
//
//	// Off-heap storage, invisible to the garbage collector:
//	m := alloc.NewMmap()
//	defer m.Close()
//
//	v := vek.New[float64](vek.WithAllocator[float64](m))
//	defer v.Free()
//
// # Element Lifecycle
//
// A Vec owns its elements. Values move in on Push and move back out on Pop;
// everything still inside when Free runs is torn down there, oldest slot
// first. A release hook (WithRelease) makes that teardown visible to element
// types that hold resources of their own.
//
// Element types must not contain Go pointers: the collector does not scan
// allocator blocks, so a pointer stored in one would not keep its referent
// alive. New panics on pointer-bearing types. Zero-sized element types are
// supported and never touch the allocator at all.
//
// # Failure Model
//
// Out-of-range access is absence, not an error: Pop and Get return a false
// second value, At returns nil. The single fatal condition is allocator
// exhaustion, which panics with a wrapped alloc.ErrExhausted - a container
// that cannot grow has no useful way to continue.
//
// # Thread Safety
//
// Vec is deliberately single-threaded; callers enforce exclusive mutable
// access. Allocators, by contrast, are shared infrastructure and safe for
// concurrent use.
package vek
