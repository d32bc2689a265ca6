package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntn(t *testing.T) {
	rng := NewRNG(4711)

	for i := 0; i < 1000; i++ {
		n := rng.Intn(10)
		assert.GreaterOrEqual(t, n, 0)
		assert.Less(t, n, 10)
	}
}

func TestFillInt64s(t *testing.T) {
	rng := NewRNG(4711)

	vals := make([]int64, 256)
	rng.FillInt64s(vals)

	var distinct int
	seen := make(map[int64]struct{}, len(vals))
	for _, v := range vals {
		assert.GreaterOrEqual(t, v, int64(0))
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			distinct++
		}
	}
	assert.Greater(t, distinct, 250, "256 random int64s should be essentially unique")
}

func TestPerm(t *testing.T) {
	rng := NewRNG(4711)

	p := rng.Perm(100)
	assert.Len(t, p, 100)

	seen := make([]bool, 100)
	for _, i := range p {
		assert.False(t, seen[i], "index %d appears twice", i)
		seen[i] = true
	}
}

func TestReset(t *testing.T) {
	rng := NewRNG(4711)
	v1 := rng.Int64s(16)
	p1 := rng.Perm(8)

	rng.Reset()
	v2 := rng.Int64s(16)
	p2 := rng.Perm(8)

	assert.Equal(t, v1, v2)
	assert.Equal(t, p1, p2)
	assert.Equal(t, int64(4711), rng.Seed())
}

func TestDifferentSeedsDiffer(t *testing.T) {
	a := NewRNG(1).Int64s(8)
	b := NewRNG(2).Int64s(8)
	assert.NotEqual(t, a, b)
}
