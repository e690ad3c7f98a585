package intervals

import (
	"cmp"
	"fmt"
	"slices"

	"golang.org/x/exp/constraints"
)

// Set is a disjoint cover of closed integer intervals.
// The zero value is an empty set ready to use.
// A Set has a single owner and is not safe for concurrent mutation.
type Set[T constraints.Integer] struct {
	items []Interval[T]
}

// Option customizes a Set at construction.
type Option func(*config)

type config struct {
	capacity int
}

// WithCapacity preallocates room for n disjoint intervals.
// Panics on negative n to surface programmer error early.
func WithCapacity(n int) Option {
	if n < 0 {
		panic("intervals: WithCapacity(negative)")
	}
	return func(c *config) { c.capacity = n }
}

// New returns an empty Set configured by opts.
func New[T constraints.Integer](opts ...Option) *Set[T] {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	return &Set[T]{items: make([]Interval[T], 0, c.capacity)}
}

// Insert adds [low, high] to the set.
//
// Behavior:
//  1. Reject low > high with ErrInvertedRange; the set is left unchanged.
//  2. Scan for a stored interval that overlaps or touches the pending one.
//  3. If found, remove it, widen the pending interval to the union and
//     rescan from the start: the wider interval may now reach another one.
//  4. Otherwise append the pending interval.
//
// Complexity: O(n) per scan, at most one scan per merged interval plus one.
func (s *Set[T]) Insert(low, high T) error {
	if low > high {
		return fmt.Errorf("%w: [%d,%d]", ErrInvertedRange, low, high)
	}
	cur := Interval[T]{Low: low, High: high}
	for {
		i := s.touching(cur)
		if i < 0 {
			break
		}
		cur = cur.union(s.items[i])
		last := len(s.items) - 1
		s.items[i] = s.items[last]
		s.items = s.items[:last]
	}
	s.items = append(s.items, cur)
	return nil
}

// InsertInterval is Insert for an already built Interval.
func (s *Set[T]) InsertInterval(iv Interval[T]) error {
	return s.Insert(iv.Low, iv.High)
}

// touching returns the index of the first stored interval touching iv, or -1.
func (s *Set[T]) touching(iv Interval[T]) int {
	for i, existing := range s.items {
		if existing.Touches(iv) {
			return i
		}
	}
	return -1
}

// Contains reports whether v lies within any stored interval.
// Complexity: O(n).
func (s *Set[T]) Contains(v T) bool {
	for _, iv := range s.items {
		if iv.Contains(v) {
			return true
		}
	}
	return false
}

// TotalSize returns the number of distinct integers covered by the set.
// The sum is taken modulo 2^64: a Set[int64] or Set[uint64] covering the
// whole range of T wraps to 0, as Interval.Len does.
// Complexity: O(n).
func (s *Set[T]) TotalSize() uint64 {
	var total uint64
	for _, iv := range s.items {
		total += iv.Len()
	}
	return total
}

// Len returns the number of disjoint intervals stored.
func (s *Set[T]) Len() int {
	return len(s.items)
}

// Intervals returns a copy of the stored intervals sorted by Low.
// Complexity: O(n log n).
func (s *Set[T]) Intervals() []Interval[T] {
	out := slices.Clone(s.items)
	slices.SortFunc(out, func(a, b Interval[T]) int {
		return cmp.Compare(a.Low, b.Low)
	})
	return out
}

// Reset empties the set, keeping its backing storage.
func (s *Set[T]) Reset() {
	s.items = s.items[:0]
}
