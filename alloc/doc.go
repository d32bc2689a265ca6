// Package alloc provides raw memory allocators with explicit lifecycles.
//
// # Allocator Contract
//
// An Allocator hands out byte blocks of an exact size and alignment, resizes
// them preserving their prefix, and releases them. Blocks are raw memory: the
// garbage collector does not scan their contents, so callers must never store
// Go pointers inside them.
//
//	a := alloc.NewHeap()
//	b, err := a.Allocate(4096, 64)
//	b, err = a.Reallocate(b, 8192, 64)
//	a.Free(b)
//
// # Implementations
//
//   - Heap: GC-backed blocks from make([]byte), shifted to alignment.
//     The default.
//   - Mmap: off-heap anonymous mappings, invisible to the collector, with
//     mremap-backed growth on Linux.
//
// # Decorators
//
// Decorators wrap an upstream Allocator and add one concern each:
//
//   - Limit: enforces a hard byte budget; exhausted requests fail with
//     ErrExhausted instead of blocking.
//   - Metrics: counts operations and bytes through a Collector.
//   - Checked: detects leaks, double frees, and foreign frees; for tests
//     and debugging.
//
// Decorators compose: NewChecked(NewLimit(NewMmap(), budget)).
//
// # Failure Model
//
// The single failure kind is ErrExhausted. Every error returned by an
// Allocator wraps it. Misuse (non-positive sizes, non-power-of-two
// alignment, freeing an unknown block) is a caller bug and panics.
//
// # Thread Safety
//
// All allocators in this package are safe for concurrent use.
package alloc
