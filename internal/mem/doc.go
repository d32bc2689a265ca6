// Package mem provides memory layout utilities.
//
// # Aligned Allocation
//
// AllocAligned returns heap-backed byte blocks whose first byte sits on a
// caller-chosen power-of-two boundary.
//
// # Typed Views
//
// Slice reinterprets a byte block as a typed slice without copying. Callers
// own the alignment and size obligations; the element type must not contain
// Go pointers (see HasPointers), since the underlying block is treated as
// pointer-free by the garbage collector.
package mem
