package alloc

import (
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/hupe1980/vek/internal/mmap"
)

// Mmap allocates blocks from anonymous memory mappings, outside the Go heap.
// The collector never scans or moves these blocks, so their addresses are
// stable for the lifetime of the block.
//
// Every block is its own mapping. Reallocate grows the mapping via
// mremap(2) on Linux, avoiding copies entirely; elsewhere it maps, copies,
// and unmaps. Must be created with NewMmap.
type Mmap struct {
	mu      sync.Mutex
	regions map[uintptr]*mmap.Mapping // keyed by block base address
	mapped  atomic.Int64
	logger  *Logger
	closed  bool
}

// MmapOptions configures an Mmap allocator.
type MmapOptions struct {
	// Logger receives remap diagnostics at debug level.
	// Defaults to NoopLogger().
	Logger *Logger
}

// NewMmap creates a new Mmap allocator.
func NewMmap(optFns ...func(o *MmapOptions)) *Mmap {
	opts := MmapOptions{
		Logger: NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&opts)
		}
	}

	return &Mmap{
		regions: make(map[uintptr]*mmap.Mapping),
		logger:  opts.Logger.WithAllocator("mmap"),
	}
}

// Allocate implements Allocator.
func (m *Mmap) Allocate(size, align int) ([]byte, error) {
	checkRequest(size, align)
	if align > os.Getpagesize() {
		panic("alloc: align exceeds page size")
	}

	mp, err := mmap.MapAnon(size)
	if err != nil {
		return nil, fmt.Errorf("%w: mmap: %v", ErrExhausted, err)
	}
	b := mp.Bytes()

	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		_ = mp.Close()
		panic("alloc: use of closed Mmap allocator")
	}
	m.regions[uintptr(unsafe.Pointer(&b[0]))] = mp
	m.mu.Unlock()

	m.mapped.Add(int64(size))
	return b, nil
}

// Reallocate implements Allocator.
func (m *Mmap) Reallocate(b []byte, size, align int) ([]byte, error) {
	checkRequest(size, align)
	if size == len(b) {
		return b, nil
	}
	if size < len(b) {
		// Mappings never shrink; hand back the prefix and keep the pages.
		return b[:size], nil
	}

	base := uintptr(unsafe.Pointer(&b[0]))

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		panic("alloc: use of closed Mmap allocator")
	}
	mp, ok := m.regions[base]
	if !ok {
		panic("alloc: reallocate of unknown block")
	}

	oldSize := mp.Size()
	if err := mp.Remap(size); err != nil {
		return nil, fmt.Errorf("%w: mremap: %v", ErrExhausted, err)
	}

	nb := mp.Bytes()
	newBase := uintptr(unsafe.Pointer(&nb[0]))
	if newBase != base {
		delete(m.regions, base)
		m.regions[newBase] = mp
	}
	m.mapped.Add(int64(size - oldSize))
	m.logger.LogRemap(oldSize, size, newBase != base)

	return nb, nil
}

// Free implements Allocator.
func (m *Mmap) Free(b []byte) {
	if len(b) == 0 {
		return
	}
	base := uintptr(unsafe.Pointer(&b[0]))

	m.mu.Lock()
	mp, ok := m.regions[base]
	if !ok {
		m.mu.Unlock()
		panic("alloc: free of unknown block")
	}
	delete(m.regions, base)
	m.mu.Unlock()

	m.mapped.Add(-int64(mp.Size()))
	_ = mp.Close()
}

// Mappings returns the number of outstanding blocks.
func (m *Mmap) Mappings() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.regions)
}

// MappedBytes returns the total size of outstanding blocks in bytes.
func (m *Mmap) MappedBytes() int64 {
	return m.mapped.Load()
}

// Close unmaps all outstanding blocks and poisons the allocator. Any later
// Allocate/Reallocate panics. Close is idempotent and returns the first
// unmap error encountered, if any.
func (m *Mmap) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil
	}
	m.closed = true

	var err error
	for base, mp := range m.regions {
		if closeErr := mp.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
		delete(m.regions, base)
	}
	m.mapped.Store(0)

	return err
}

var _ Allocator = (*Mmap)(nil)
