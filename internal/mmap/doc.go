// Package mmap provides anonymous memory mappings for off-heap allocation.
//
// # Overview
//
// MapAnon creates read-write private mappings backed by the OS rather than
// the Go heap. The garbage collector never scans or moves this memory, which
// makes it suitable for allocator implementations that hand out raw blocks
// with stable addresses.
//
// # Usage
//
//	m, err := mmap.MapAnon(1 << 20)
//	if err != nil { ... }
//	defer m.Close()
//
//	data := m.Bytes()
//
//	// Grow the mapping (in place when the kernel allows it)
//	err = m.Remap(2 << 20)
//
//	// Provide kernel hints for access patterns
//	m.Advise(mmap.AccessSequential)
//
// # Platform Support
//
//   - Unix (Linux, macOS, BSD): mmap(2) with madvise(2) for access hints;
//     Linux additionally uses mremap(2) so Remap can avoid copying.
//   - Windows: VirtualAlloc/VirtualFree (advice is a no-op; Remap copies).
//
// # Thread Safety
//
// Close is idempotent and protected by atomic operations. Callers must
// ensure no goroutine touches Bytes() after Close() or across Remap().
package mmap
