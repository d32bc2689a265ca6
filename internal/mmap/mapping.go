package mmap

import (
	"sync/atomic"
)

// Mapping represents an anonymous memory mapping.
// It owns the underlying byte slice and is responsible for unmapping it.
type Mapping struct {
	data   []byte
	size   int
	closed atomic.Bool
	// unmap is the platform-specific function to unmap the memory.
	unmap func([]byte) error
}

// MapAnon maps size bytes of zeroed, read-write anonymous memory.
// The mapping is private to the process and invisible to the garbage
// collector.
func MapAnon(size int) (*Mapping, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}

	data, unmapFunc, err := osMapAnon(size)
	if err != nil {
		return nil, err
	}

	return &Mapping{
		data:  data,
		size:  size,
		unmap: unmapFunc,
	}, nil
}

// Close unmaps the memory. It is idempotent.
func (m *Mapping) Close() error {
	if m.closed.Swap(true) {
		return nil // Already closed
	}
	if m.unmap != nil && m.data != nil {
		return m.unmap(m.data)
	}
	return nil
}

// Bytes returns the underlying byte slice.
// Warning: The slice is valid only until Close() or Remap() is called.
func (m *Mapping) Bytes() []byte {
	if m.closed.Load() {
		return nil
	}
	return m.data
}

// Size returns the size of the mapping in bytes.
func (m *Mapping) Size() int {
	return m.size
}

// Remap grows the mapping to newSize bytes, preserving existing contents.
// On Linux the kernel may extend the mapping in place; elsewhere a new
// mapping is created and the old bytes copied over. Slices obtained from
// Bytes() before the call must not be used afterwards.
func (m *Mapping) Remap(newSize int) error {
	if m.closed.Load() {
		return ErrClosed
	}
	if newSize < m.size {
		return ErrInvalidSize
	}
	if newSize == m.size {
		return nil
	}

	data, unmapFunc, err := osRemap(m.data, newSize)
	if err != nil {
		return err
	}

	m.data = data
	m.unmap = unmapFunc
	m.size = newSize

	return nil
}

// Advise provides hints to the kernel about how the memory will be accessed.
func (m *Mapping) Advise(pattern AccessPattern) error {
	if m.closed.Load() {
		return ErrClosed
	}
	if m.data == nil {
		return nil
	}
	return osAdvise(m.data, pattern)
}
