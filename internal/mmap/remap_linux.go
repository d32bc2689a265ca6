//go:build linux

package mmap

import (
	"golang.org/x/sys/unix"
)

func osRemap(old []byte, newSize int) ([]byte, func([]byte) error, error) {
	// mremap(2) extends the mapping in place when the address space behind it
	// is free, and moves the pages otherwise. Either way no bytes are copied.
	data, err := unix.Mremap(old, newSize, unix.MREMAP_MAYMOVE)
	if err != nil {
		return nil, nil, err
	}

	return data, unix.Munmap, nil
}
