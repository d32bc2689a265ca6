package alloc

import (
	"sync/atomic"
)

// Collector defines an interface for collecting allocator metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
type Collector interface {
	// RecordAllocate is called after each successful Allocate.
	RecordAllocate(bytes int)

	// RecordReallocate is called after each successful Reallocate.
	// oldBytes is the previous block size, newBytes the new one.
	RecordReallocate(oldBytes, newBytes int)

	// RecordFree is called after each Free.
	RecordFree(bytes int)
}

// NoopCollector is a no-op implementation of Collector.
// Use this when metrics collection is not needed.
type NoopCollector struct{}

func (NoopCollector) RecordAllocate(int)        {}
func (NoopCollector) RecordReallocate(int, int) {}
func (NoopCollector) RecordFree(int)            {}

// Stats is a snapshot of BasicCollector state.
//
// Cumulative counters (NumAllocs, BytesAllocated, ...) only grow; InUseBytes
// and HighWaterBytes describe the current and peak footprint.
type Stats struct {
	NumAllocs      uint64
	NumReallocs    uint64
	NumFrees       uint64
	BytesAllocated uint64
	BytesFreed     uint64
	InUseBytes     int64
	HighWaterBytes int64
}

// BasicCollector provides simple in-memory metrics collection.
// Useful for debugging and leak checks without external dependencies.
type BasicCollector struct {
	numAllocs      atomic.Uint64
	numReallocs    atomic.Uint64
	numFrees       atomic.Uint64
	bytesAllocated atomic.Uint64
	bytesFreed     atomic.Uint64
	inUseBytes     atomic.Int64
	highWaterBytes atomic.Int64
}

// RecordAllocate implements Collector.
func (b *BasicCollector) RecordAllocate(bytes int) {
	b.numAllocs.Add(1)
	b.bytesAllocated.Add(uint64(bytes))
	b.addInUse(int64(bytes))
}

// RecordReallocate implements Collector.
func (b *BasicCollector) RecordReallocate(oldBytes, newBytes int) {
	b.numReallocs.Add(1)
	b.bytesAllocated.Add(uint64(newBytes))
	b.bytesFreed.Add(uint64(oldBytes))
	b.addInUse(int64(newBytes) - int64(oldBytes))
}

// RecordFree implements Collector.
func (b *BasicCollector) RecordFree(bytes int) {
	b.numFrees.Add(1)
	b.bytesFreed.Add(uint64(bytes))
	b.addInUse(-int64(bytes))
}

func (b *BasicCollector) addInUse(delta int64) {
	inUse := b.inUseBytes.Add(delta)
	for {
		hw := b.highWaterBytes.Load()
		if inUse <= hw || b.highWaterBytes.CompareAndSwap(hw, inUse) {
			return
		}
	}
}

// Stats returns a snapshot of current metrics.
func (b *BasicCollector) Stats() Stats {
	return Stats{
		NumAllocs:      b.numAllocs.Load(),
		NumReallocs:    b.numReallocs.Load(),
		NumFrees:       b.numFrees.Load(),
		BytesAllocated: b.bytesAllocated.Load(),
		BytesFreed:     b.bytesFreed.Load(),
		InUseBytes:     b.inUseBytes.Load(),
		HighWaterBytes: b.highWaterBytes.Load(),
	}
}

var (
	_ Collector = NoopCollector{}
	_ Collector = (*BasicCollector)(nil)
)
