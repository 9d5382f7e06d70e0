// Package rangealloc implements a first-fit free-list allocator over a
// fixed universe of integer indices, as spec.md §4.1 describes. No library
// in the retrieval pack offers a range allocator over an index space (the
// closest analogues, Ethereum trie/state allocators, all allocate nodes by
// hash rather than by contiguous index range), so this is a small,
// hand-written free-list, grounded in the allocation/growth discipline
// spec.md §4.2 assumes of it (interleaved alloc/dealloc, coalescing
// neighbours, tolerating fragmentation).
package rangealloc

import "github.com/pkg/errors"

// ErrExhausted is returned when no free range of the requested length exists.
var ErrExhausted = errors.New("rangealloc: no free range large enough")

// Range is a half-open index range [Start, End).
type Range struct {
	Start, End int
}

// Len returns the number of indices the range covers.
func (r Range) Len() int { return r.End - r.Start }

// Allocator hands out and reclaims half-open sub-ranges of [0, N).
type Allocator struct {
	universe Range
	// free holds disjoint, non-adjacent free ranges sorted by Start.
	free []Range
}

// New returns an Allocator over [0, n).
func New(n int) *Allocator {
	a := &Allocator{universe: Range{0, n}}
	a.Reset()
	return a
}

// Reset restores the initial state: one free range covering the whole universe.
func (a *Allocator) Reset() {
	a.free = []Range{a.universe}
}

// Allocate returns a fresh range of exactly length n using first-fit.
func (a *Allocator) Allocate(n int) (Range, error) {
	if n <= 0 {
		return Range{}, errors.Errorf("rangealloc: invalid length %d", n)
	}
	for i, f := range a.free {
		if f.Len() < n {
			continue
		}
		allocated := Range{f.Start, f.Start + n}
		if f.Len() == n {
			a.free = append(a.free[:i], a.free[i+1:]...)
		} else {
			a.free[i] = Range{f.Start + n, f.End}
		}
		return allocated, nil
	}
	return Range{}, ErrExhausted
}

// Deallocate returns r to the free pool, coalescing with adjacent free
// ranges so the pool doesn't fragment under repeated grow/shrink cycles.
func (a *Allocator) Deallocate(r Range) {
	if r.Len() <= 0 {
		return
	}

	// Find insertion point keeping a.free sorted by Start.
	idx := 0
	for idx < len(a.free) && a.free[idx].Start < r.Start {
		idx++
	}

	merged := r
	// Merge with the previous neighbour if adjacent.
	if idx > 0 && a.free[idx-1].End == merged.Start {
		merged.Start = a.free[idx-1].Start
		idx--
		a.free = append(a.free[:idx], a.free[idx+1:]...)
	}
	// Merge with the next neighbour if adjacent.
	if idx < len(a.free) && a.free[idx].Start == merged.End {
		merged.End = a.free[idx].End
		a.free = append(a.free[:idx], a.free[idx+1:]...)
	}

	a.free = append(a.free, Range{})
	copy(a.free[idx+1:], a.free[idx:])
	a.free[idx] = merged
}

// FreeLen returns the total number of free indices, for tests and metrics.
func (a *Allocator) FreeLen() int {
	total := 0
	for _, f := range a.free {
		total += f.Len()
	}
	return total
}
