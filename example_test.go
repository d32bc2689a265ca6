package vek_test

import (
	"fmt"

	"github.com/hupe1980/vek"
	"github.com/hupe1980/vek/alloc"
)

// Example demonstrates the basic push/pop lifecycle.
func Example() {
	v := vek.New[int]()
	defer v.Free()

	v.Push(1)
	v.Push(2)
	v.Push(3)

	fmt.Println("len:", v.Len())

	last, _ := v.Pop()
	fmt.Println("popped:", last)

	// Output:
	// len: 3
	// popped: 3
}

// ExampleVec_All demonstrates range-over-func iteration.
func ExampleVec_All() {
	v := vek.New[int32]()
	defer v.Free()

	v.Append(2, 4, 8)

	for i, val := range v.All() {
		fmt.Println(i, val)
	}

	// Output:
	// 0 2
	// 1 4
	// 2 8
}

// ExampleVec_Get demonstrates that out-of-range access is absence, not an
// error.
func ExampleVec_Get() {
	v := vek.New[int]()
	defer v.Free()

	v.Append(7, 8, 9)

	if val, ok := v.Get(1); ok {
		fmt.Println("found:", val)
	}
	if _, ok := v.Get(99); !ok {
		fmt.Println("index 99: nothing there")
	}

	// Output:
	// found: 8
	// index 99: nothing there
}

// ExampleWithRelease demonstrates per-element teardown.
func ExampleWithRelease() {
	released := 0
	v := vek.New[int64](vek.WithRelease[int64](func(int64) { released++ }))

	v.Push(10)
	v.Push(20)
	v.Free()

	fmt.Println("released:", released)

	// Output:
	// released: 2
}

// ExampleWithAllocator demonstrates off-heap storage through the mmap
// allocator.
func ExampleWithAllocator() {
	m := alloc.NewMmap()
	defer m.Close()

	v := vek.New[float64](vek.WithAllocator[float64](m))
	v.Push(3.14)

	fmt.Println("mappings:", m.Mappings())

	v.Free()
	fmt.Println("after free:", m.Mappings())

	// Output:
	// mappings: 1
	// after free: 0
}

// ExampleWithCapacity demonstrates pre-sizing to skip the doubling steps.
func ExampleWithCapacity() {
	v := vek.New[uint64](vek.WithCapacity[uint64](1024))
	defer v.Free()

	for i := uint64(0); i < 1024; i++ {
		v.Push(i) // no growth along the way
	}

	fmt.Println(v)

	// Output:
	// Vec[uint64]{len: 1024, cap: 1024}
}
