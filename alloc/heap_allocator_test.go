package alloc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeap_Allocate(t *testing.T) {
	h := NewHeap()

	b, err := h.Allocate(100, 64)
	require.NoError(t, err)
	assert.Len(t, b, 100)

	// Free is a no-op; the block stays usable until unreferenced.
	h.Free(b)
	b[99] = 1
	assert.Equal(t, byte(1), b[99])
}

func TestHeap_ReallocateSameSize(t *testing.T) {
	h := NewHeap()

	b, err := h.Allocate(64, 8)
	require.NoError(t, err)
	b[0] = 0xAA

	nb, err := h.Reallocate(b, 64, 8)
	require.NoError(t, err)
	assert.Same(t, &b[0], &nb[0], "same-size reallocate should not move")
}

func TestHeap_ReallocateShrink(t *testing.T) {
	h := NewHeap()

	b, err := h.Allocate(128, 8)
	require.NoError(t, err)
	for i := range b {
		b[i] = byte(i)
	}

	nb, err := h.Reallocate(b, 32, 8)
	require.NoError(t, err)
	require.Len(t, nb, 32)
	for i := range nb {
		assert.Equal(t, byte(i), nb[i])
	}
}
