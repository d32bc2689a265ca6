package mem

import (
	"unsafe"
)

// DefaultAlignment is the alignment used when callers have no stricter
// requirement. 64 bytes matches a cache line.
const DefaultAlignment = 64

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// AlignUp rounds n up to the next multiple of align.
// align must be a power of two.
func AlignUp(n, align int) int {
	return (n + align - 1) &^ (align - 1)
}

// AllocAligned allocates a byte slice of the given size whose first byte is
// aligned to align. align must be a power of two.
//
// Note: This function allocates slightly more memory than requested to ensure
// alignment. The underlying array is kept alive by the returned slice.
func AllocAligned(size, align int) []byte {
	if size <= 0 {
		return nil
	}
	if !IsPowerOfTwo(align) {
		panic("mem: align must be a power of two")
	}

	// Allocate size + align so an aligned offset always exists within the
	// block, then shift the start pointer up to align-1 bytes.
	buf := make([]byte, size+align)

	ptr := unsafe.Pointer(&buf[0]) //nolint:gosec // unsafe is required for memory alignment
	addr := uintptr(ptr)
	offset := (uintptr(align) - (addr & uintptr(align-1))) & uintptr(align-1)

	return buf[offset : offset+uintptr(size)]
}
