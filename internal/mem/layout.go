package mem

import (
	"reflect"
	"unsafe"
)

// SizeOf returns the size of T in bytes.
func SizeOf[T any]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// AlignOf returns the alignment requirement of T in bytes.
func AlignOf[T any]() int {
	var zero T
	return int(unsafe.Alignof(zero))
}

// Slice reinterprets the first n elements of b as a []T.
//
// The caller guarantees len(b) >= n*SizeOf[T]() and that &b[0] satisfies
// AlignOf[T](). The returned slice aliases b; it is valid only as long as b's
// backing memory is.
func Slice[T any](b []byte, n int) []T {
	if n <= 0 {
		return nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(&b[0])), n) //nolint:gosec // unsafe is required for typed views
}

// HasPointers reports whether values of type T contain Go pointers, directly
// or through nested structs and arrays. Pointer-bearing types must never be
// stored in memory the garbage collector does not scan.
func HasPointers[T any]() bool {
	return typeHasPointers(reflect.TypeOf((*T)(nil)).Elem())
}

func typeHasPointers(t reflect.Type) bool {
	if t.Size() == 0 {
		return false
	}
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr, reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return false
	case reflect.Array:
		return typeHasPointers(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if typeHasPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		// Ptr, UnsafePointer, Map, Chan, Func, Interface, Slice, String.
		return true
	}
}
