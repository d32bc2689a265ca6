package alloc

// Metrics decorates an upstream allocator with metrics collection.
//
// Example with BasicCollector:
//
//	bc := &alloc.BasicCollector{}
//	a := alloc.NewMetrics(alloc.NewHeap(), bc)
//	// ... use a ...
//	stats := bc.Stats()
//	fmt.Printf("in use: %d bytes, peak: %d bytes\n", stats.InUseBytes, stats.HighWaterBytes)
type Metrics struct {
	upstream  Allocator
	collector Collector
}

// NewMetrics creates a Metrics decorator over upstream reporting to c.
// Pass nil to disable collection.
func NewMetrics(upstream Allocator, c Collector) *Metrics {
	if c == nil {
		c = NoopCollector{}
	}
	return &Metrics{
		upstream:  upstream,
		collector: c,
	}
}

// Allocate implements Allocator.
func (m *Metrics) Allocate(size, align int) ([]byte, error) {
	b, err := m.upstream.Allocate(size, align)
	if err != nil {
		return nil, err
	}
	m.collector.RecordAllocate(size)
	return b, nil
}

// Reallocate implements Allocator.
func (m *Metrics) Reallocate(b []byte, size, align int) ([]byte, error) {
	oldSize := len(b)
	nb, err := m.upstream.Reallocate(b, size, align)
	if err != nil {
		return nil, err
	}
	m.collector.RecordReallocate(oldSize, size)
	return nb, nil
}

// Free implements Allocator.
func (m *Metrics) Free(b []byte) {
	m.upstream.Free(b)
	m.collector.RecordFree(len(b))
}

var _ Allocator = (*Metrics)(nil)
