package vek_test

import (
	"testing"

	"github.com/hupe1980/vek"
	"github.com/hupe1980/vek/alloc"
)

func BenchmarkVec_Push(b *testing.B) {
	b.Run("heap", func(b *testing.B) {
		b.ReportAllocs()
		v := vek.New[int64]()
		defer v.Free()

		for i := 0; i < b.N; i++ {
			v.Push(int64(i))
		}
	})

	b.Run("mmap", func(b *testing.B) {
		m := alloc.NewMmap()
		defer m.Close()

		b.ReportAllocs()
		v := vek.New[int64](vek.WithAllocator[int64](m))
		defer v.Free()

		for i := 0; i < b.N; i++ {
			v.Push(int64(i))
		}
	})

	// Baseline: the runtime's own growable slice.
	b.Run("stdlib-append", func(b *testing.B) {
		b.ReportAllocs()
		var s []int64
		for i := 0; i < b.N; i++ {
			s = append(s, int64(i))
		}
		_ = s
	})
}

func BenchmarkVec_PushPreallocated(b *testing.B) {
	v := vek.New[int64](vek.WithCapacity[int64](b.N))
	defer v.Free()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v.Push(int64(i))
	}
}

func BenchmarkVec_Pop(b *testing.B) {
	v := vek.New[int64](vek.WithCapacity[int64](b.N))
	defer v.Free()
	for i := 0; i < b.N; i++ {
		v.Push(int64(i))
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = v.Pop()
	}
}

func BenchmarkVec_At(b *testing.B) {
	const n = 1 << 16

	v := vek.New[int64](vek.WithCapacity[int64](n))
	defer v.Free()
	for i := 0; i < n; i++ {
		v.Push(int64(i))
	}

	b.ReportAllocs()
	b.ResetTimer()
	var sum int64
	for i := 0; i < b.N; i++ {
		sum += *v.At(i & (n - 1))
	}
	_ = sum
}

func BenchmarkVec_Append(b *testing.B) {
	batch := make([]int64, 128)

	v := vek.New[int64]()
	defer v.Free()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v.Clear()
		v.Append(batch...)
	}
}
