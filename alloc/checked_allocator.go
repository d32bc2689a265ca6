package alloc

import (
	"fmt"
	"sync"
	"unsafe"
)

// Checked decorates an upstream allocator with lifecycle verification:
// every outstanding block is tracked, freeing an unknown block panics
// (double free or foreign slice), and Close reports whatever leaked.
//
// Tracking keeps leaked blocks reachable, so Checked is meant for tests and
// debugging, not steady-state production use.
type Checked struct {
	upstream Allocator
	logger   *Logger

	mu   sync.Mutex
	live map[uintptr][]byte
}

// CheckedOptions configures a Checked allocator.
type CheckedOptions struct {
	// Logger receives leak reports on Close. Defaults to NoopLogger().
	Logger *Logger
}

// NewChecked creates a Checked decorator over upstream.
func NewChecked(upstream Allocator, optFns ...func(o *CheckedOptions)) *Checked {
	opts := CheckedOptions{
		Logger: NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&opts)
		}
	}

	return &Checked{
		upstream: upstream,
		logger:   opts.Logger.WithAllocator("checked"),
		live:     make(map[uintptr][]byte),
	}
}

// Allocate implements Allocator.
func (c *Checked) Allocate(size, align int) ([]byte, error) {
	b, err := c.upstream.Allocate(size, align)
	if err != nil {
		return nil, err
	}

	c.track(b)
	return b, nil
}

// Reallocate implements Allocator.
func (c *Checked) Reallocate(b []byte, size, align int) ([]byte, error) {
	c.untrack(b, "reallocate")

	nb, err := c.upstream.Reallocate(b, size, align)
	if err != nil {
		c.track(b) // still owned by the caller
		return nil, err
	}

	c.track(nb)
	return nb, nil
}

// Free implements Allocator.
func (c *Checked) Free(b []byte) {
	c.untrack(b, "free")
	c.upstream.Free(b)
}

// Leaks returns the number of blocks allocated but never freed.
func (c *Checked) Leaks() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.live)
}

// LeakBytes returns the total size of leaked blocks in bytes.
func (c *Checked) LeakBytes() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var total int64
	for _, b := range c.live {
		total += int64(len(b))
	}
	return total
}

// Close logs every outstanding block and returns an error when leaks exist.
// It does not release the blocks; ownership stays with whoever lost them.
func (c *Checked) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.live) == 0 {
		return nil
	}

	var bytes int64
	for base, b := range c.live {
		c.logger.LogLeak(base, len(b))
		bytes += int64(len(b))
	}
	return fmt.Errorf("alloc: %d leaked blocks (%d bytes)", len(c.live), bytes)
}

func (c *Checked) track(b []byte) {
	if len(b) == 0 {
		return
	}
	base := uintptr(unsafe.Pointer(&b[0]))

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.live[base]; ok {
		panic("alloc: upstream returned an already tracked block")
	}
	c.live[base] = b
}

func (c *Checked) untrack(b []byte, op string) {
	if len(b) == 0 {
		return
	}
	base := uintptr(unsafe.Pointer(&b[0]))

	c.mu.Lock()
	defer c.mu.Unlock()

	prev, ok := c.live[base]
	if !ok {
		panic("alloc: " + op + " of untracked block (double free or foreign slice)")
	}
	if len(prev) != len(b) {
		panic("alloc: " + op + " with a resized slice of a tracked block")
	}
	delete(c.live, base)
}

var _ Allocator = (*Checked)(nil)
