package mem

import (
	"fmt"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

func TestAllocAligned(t *testing.T) {
	sizes := []int{1, 10, 63, 64, 65, 100, 1024}
	aligns := []int{1, 8, 64, 4096}

	for _, align := range aligns {
		for _, size := range sizes {
			buf := AllocAligned(size, align)
			assert.Len(t, buf, size)

			ptr := unsafe.Pointer(&buf[0])
			addr := uintptr(ptr)
			assert.Equal(t, uintptr(0), addr%uintptr(align), "Address %d should be aligned to %d for size %d", addr, align, size)
		}
	}

	assert.Nil(t, AllocAligned(0, 64))
	assert.Nil(t, AllocAligned(-1, 64))
}

func TestAllocAlignedBadAlign(t *testing.T) {
	assert.Panics(t, func() { AllocAligned(16, 3) })
	assert.Panics(t, func() { AllocAligned(16, 0) })
	assert.Panics(t, func() { AllocAligned(16, -8) })
}

func TestAlignUp(t *testing.T) {
	assert.Equal(t, 0, AlignUp(0, 8))
	assert.Equal(t, 8, AlignUp(1, 8))
	assert.Equal(t, 8, AlignUp(8, 8))
	assert.Equal(t, 16, AlignUp(9, 8))
	assert.Equal(t, 4096, AlignUp(1, 4096))
	assert.Equal(t, 8192, AlignUp(4097, 4096))
}

func TestIsPowerOfTwo(t *testing.T) {
	for _, n := range []int{1, 2, 4, 8, 64, 4096, 1 << 30} {
		assert.True(t, IsPowerOfTwo(n), "%d", n)
	}
	for _, n := range []int{0, -1, -2, 3, 6, 12, 100} {
		assert.False(t, IsPowerOfTwo(n), "%d", n)
	}
}

func BenchmarkAllocAligned(b *testing.B) {
	sizes := []int{64, 256, 1024, 4096}
	for _, size := range sizes {
		b.Run(fmt.Sprintf("size=%d", size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = AllocAligned(size, DefaultAlignment)
			}
		})
	}
}
