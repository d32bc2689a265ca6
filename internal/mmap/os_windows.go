//go:build windows

package mmap

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

func osMapAnon(size int) ([]byte, func([]byte) error, error) {
	// Use VirtualAlloc with MEM_RESERVE | MEM_COMMIT for anonymous memory.
	// Unlike CreateFileMapping (which requires paging file commitment
	// upfront), VirtualAlloc with MEM_COMMIT uses demand-paging: pages are
	// only backed by physical memory when first accessed, similar to Unix
	// mmap behavior.
	addr, err := windows.VirtualAlloc(0, uintptr(size),
		windows.MEM_RESERVE|windows.MEM_COMMIT, windows.PAGE_READWRITE)
	if err != nil {
		return nil, nil, err
	}

	data := unsafe.Slice((*byte)(unsafe.Pointer(addr)), size)

	return data, func(b []byte) error {
		// VirtualFree with MEM_RELEASE frees the entire region.
		return windows.VirtualFree(addr, 0, windows.MEM_RELEASE)
	}, nil
}

func osRemap(old []byte, newSize int) ([]byte, func([]byte) error, error) {
	// Windows has no mremap equivalent; allocate, copy, release.
	data, unmapFunc, err := osMapAnon(newSize)
	if err != nil {
		return nil, nil, err
	}

	copy(data, old)

	addr := uintptr(unsafe.Pointer(&old[0]))
	if err := windows.VirtualFree(addr, 0, windows.MEM_RELEASE); err != nil {
		_ = unmapFunc(data)
		return nil, nil, err
	}

	return data, unmapFunc, nil
}

func osAdvise(data []byte, pattern AccessPattern) error {
	// Windows does not have a direct equivalent to madvise.
	// PrefetchVirtualMemory could be used for AccessWillNeed, but requires
	// Windows 8+ and more complex setup. For now, this is a no-op.
	_ = data
	_ = pattern
	return nil
}
