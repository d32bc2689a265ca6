//go:build unix && !linux

package mmap

import (
	"golang.org/x/sys/unix"
)

func osRemap(old []byte, newSize int) ([]byte, func([]byte) error, error) {
	data, unmapFunc, err := osMapAnon(newSize)
	if err != nil {
		return nil, nil, err
	}

	copy(data, old)

	if err := unix.Munmap(old); err != nil {
		_ = unmapFunc(data)
		return nil, nil, err
	}

	return data, unmapFunc, nil
}
