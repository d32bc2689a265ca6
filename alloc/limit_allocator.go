package alloc

import (
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
)

// Limit enforces a hard byte budget on top of an upstream allocator.
// Requests that would push usage past the budget fail immediately with
// ErrExhausted; nothing ever blocks waiting for memory.
type Limit struct {
	upstream Allocator
	sem      *semaphore.Weighted
	budget   int64
	used     atomic.Int64
}

// NewLimit creates a Limit enforcing budget bytes over upstream.
// budget must be positive.
func NewLimit(upstream Allocator, budget int64) *Limit {
	if budget <= 0 {
		panic("alloc: budget must be positive")
	}
	return &Limit{
		upstream: upstream,
		sem:      semaphore.NewWeighted(budget),
		budget:   budget,
	}
}

// Allocate implements Allocator.
func (l *Limit) Allocate(size, align int) ([]byte, error) {
	checkRequest(size, align)

	if !l.sem.TryAcquire(int64(size)) {
		return nil, l.exhausted(size)
	}

	b, err := l.upstream.Allocate(size, align)
	if err != nil {
		l.sem.Release(int64(size))
		return nil, err
	}

	l.used.Add(int64(size))
	return b, nil
}

// Reallocate implements Allocator.
func (l *Limit) Reallocate(b []byte, size, align int) ([]byte, error) {
	checkRequest(size, align)

	delta := int64(size - len(b))
	if delta > 0 && !l.sem.TryAcquire(delta) {
		return nil, l.exhausted(size - len(b))
	}

	nb, err := l.upstream.Reallocate(b, size, align)
	if err != nil {
		if delta > 0 {
			l.sem.Release(delta)
		}
		return nil, err
	}

	if delta < 0 {
		l.sem.Release(-delta)
	}
	l.used.Add(delta)
	return nb, nil
}

// Free implements Allocator.
func (l *Limit) Free(b []byte) {
	l.upstream.Free(b)
	if len(b) > 0 {
		l.sem.Release(int64(len(b)))
		l.used.Add(-int64(len(b)))
	}
}

// InUse returns the bytes currently charged against the budget.
func (l *Limit) InUse() int64 {
	return l.used.Load()
}

// Budget returns the configured byte budget.
func (l *Limit) Budget() int64 {
	return l.budget
}

func (l *Limit) exhausted(requested int) error {
	return fmt.Errorf("%w: budget exceeded (budget=%d used=%d requested=%d)",
		ErrExhausted, l.budget, l.used.Load(), requested)
}

var _ Allocator = (*Limit)(nil)
