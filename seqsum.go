package seqsum

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"iter"

	"github.com/npillmayer/seqsum/splay"
	"golang.org/x/exp/constraints"
)

// Sequence is an editable ordered sequence of integers with amortized
// logarithmic positional edits and range-sum queries.
//
// A sequence created by
//
//	Sequence[int64]{}
//
// is a valid object and behaves like the empty sequence. Methods that
// take or return positions use 0-indexed positions; ranges are
// inclusive on both ends, and an empty range (l > r) is a defined no-op
// rather than an error.
type Sequence[T constraints.Signed] struct {
	tree *splay.Tree[T]
}

// New creates an empty sequence with the given tree configuration.
func New[T constraints.Signed](cfg splay.Config) (Sequence[T], error) {
	tree, err := splay.New[T](cfg)
	if err != nil {
		return Sequence[T]{}, err
	}
	return Sequence[T]{tree: tree}, nil
}

// FromSlice creates a sequence holding the given values. The arena
// capacity is sized generously relative to the input; clients needing
// tight control over lifetime allocations should use New plus Build.
func FromSlice[T constraints.Signed](values ...T) Sequence[T] {
	capacity := splay.DefaultCapacity
	if need := 2 * (len(values) + 2); need > capacity {
		capacity = need
	}
	tree, err := splay.New[T](splay.Config{Capacity: capacity})
	assert(err == nil, "FromSlice: cannot create sequence tree")
	err = tree.Build(values)
	assert(err == nil, "FromSlice: cannot build sequence tree")
	return Sequence[T]{tree: tree}
}

// ensure lazily attaches a default-config tree to a zero-value sequence.
func (seq *Sequence[T]) ensure() *splay.Tree[T] {
	if seq.tree == nil {
		tree, err := splay.New[T](splay.Config{})
		assert(err == nil, "cannot create sequence tree")
		seq.tree = tree
	}
	return seq.tree
}

// Build resets the sequence to hold exactly the given values, in linear
// time. Previous contents are discarded and the node arena is recycled
// wholesale.
func (seq *Sequence[T]) Build(values []T) error {
	return seq.ensure().Build(values)
}

// Insert inserts value at position pos, shifting later elements right.
// pos may equal Len() to append.
func (seq *Sequence[T]) Insert(pos int, value T) error {
	return seq.ensure().Insert(pos, value)
}

// Delete removes the element at position pos, shifting later elements
// left.
func (seq *Sequence[T]) Delete(pos int) error {
	return seq.ensure().Delete(pos)
}

// AddRange adds delta to every element of the inclusive range [l,r].
func (seq *Sequence[T]) AddRange(l, r int, delta T) error {
	return seq.ensure().AddRange(l, r, delta)
}

// Set overwrites the element at position pos.
func (seq *Sequence[T]) Set(pos int, value T) error {
	return seq.ensure().Set(pos, value)
}

// SumRange returns the sum over the inclusive range [l,r], or 0 for an
// empty range (l > r).
func (seq Sequence[T]) SumRange(l, r int) (T, error) {
	var zero T
	if seq.tree == nil {
		if l > r {
			return zero, nil
		}
		return zero, fmt.Errorf("%w: range [%d,%d] of empty sequence", splay.ErrIndexOutOfBounds, l, r)
	}
	return seq.tree.SumRange(l, r)
}

// Sum returns the sum over the whole sequence.
func (seq Sequence[T]) Sum() T {
	var zero T
	if seq.tree == nil {
		return zero
	}
	return seq.tree.Sum()
}

// At returns the element at position pos.
func (seq Sequence[T]) At(pos int) (T, error) {
	var zero T
	if seq.tree == nil {
		return zero, fmt.Errorf("%w: position %d of empty sequence", splay.ErrIndexOutOfBounds, pos)
	}
	return seq.tree.At(pos)
}

// Len returns the number of elements in the sequence.
func (seq Sequence[T]) Len() int {
	if seq.tree == nil {
		return 0
	}
	return seq.tree.Len()
}

// IsEmpty reports whether the sequence has no elements.
func (seq Sequence[T]) IsEmpty() bool {
	return seq.Len() == 0
}

// Range returns an iterator over all elements in sequence order.
func (seq Sequence[T]) Range() iter.Seq[T] {
	return func(yield func(T) bool) {
		if seq.tree == nil {
			return
		}
		seq.tree.ForEach(yield)
	}
}

// Values returns the complete sequence as a Go slice. This may be an
// expensive operation, as it will allocate a slice for all elements and
// walk the whole tree.
func (seq Sequence[T]) Values() []T {
	if seq.tree == nil {
		return nil
	}
	return seq.tree.Values()
}

// String formats the sequence like a Go slice literal.
func (seq Sequence[T]) String() string {
	return fmt.Sprintf("%v", seq.Values())
}

// Check validates the internal tree invariants (for tests).
func (seq Sequence[T]) Check() error {
	if seq.tree == nil {
		return nil
	}
	return seq.tree.Check()
}
