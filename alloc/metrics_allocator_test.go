package alloc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestMetrics_Counters(t *testing.T) {
	bc := &BasicCollector{}
	a := NewMetrics(NewHeap(), bc)

	b1, err := a.Allocate(100, 1)
	require.NoError(t, err)
	b2, err := a.Allocate(50, 1)
	require.NoError(t, err)

	stats := bc.Stats()
	assert.Equal(t, uint64(2), stats.NumAllocs)
	assert.Equal(t, uint64(150), stats.BytesAllocated)
	assert.Equal(t, int64(150), stats.InUseBytes)
	assert.Equal(t, int64(150), stats.HighWaterBytes)

	b1, err = a.Reallocate(b1, 300, 1)
	require.NoError(t, err)

	stats = bc.Stats()
	assert.Equal(t, uint64(1), stats.NumReallocs)
	assert.Equal(t, int64(350), stats.InUseBytes)
	assert.Equal(t, int64(350), stats.HighWaterBytes)

	a.Free(b1)
	a.Free(b2)

	stats = bc.Stats()
	assert.Equal(t, uint64(2), stats.NumFrees)
	assert.Equal(t, int64(0), stats.InUseBytes, "leak")
	assert.Equal(t, int64(350), stats.HighWaterBytes, "high water is sticky")
	assert.Equal(t, stats.BytesAllocated, stats.BytesFreed)
}

func TestMetrics_NilCollector(t *testing.T) {
	a := NewMetrics(NewHeap(), nil)

	b, err := a.Allocate(64, 8)
	require.NoError(t, err)
	a.Free(b)
}

func TestMetrics_Concurrent(t *testing.T) {
	bc := &BasicCollector{}
	a := NewMetrics(NewHeap(), bc)

	var g errgroup.Group
	for w := 0; w < 8; w++ {
		g.Go(func() error {
			for i := 0; i < 200; i++ {
				b, err := a.Allocate(128, 8)
				if err != nil {
					return err
				}
				b, err = a.Reallocate(b, 256, 8)
				if err != nil {
					return err
				}
				a.Free(b)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	stats := bc.Stats()
	assert.Equal(t, uint64(8*200), stats.NumAllocs)
	assert.Equal(t, uint64(8*200), stats.NumReallocs)
	assert.Equal(t, uint64(8*200), stats.NumFrees)
	assert.Equal(t, int64(0), stats.InUseBytes, "leak")
	assert.GreaterOrEqual(t, stats.HighWaterBytes, int64(256))
}
