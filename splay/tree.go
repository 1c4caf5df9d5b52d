package splay

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Tree is a splay tree maintaining an ordered sequence of integers with
// positional insert/delete, range-additive update and range-sum query,
// all in amortized O(log n).
//
// T is the element type; sums and deltas share it, overflow is the
// caller's concern. A tree owns its arena and root exclusively; it is
// not safe for concurrent use without external locking.
type Tree[T constraints.Signed] struct {
	cfg   Config
	nodes []node[T]
	root  handle
}

// New creates an empty sequence tree with validated configuration.
func New[T constraints.Signed](cfg Config) (*Tree[T], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	t := &Tree[T]{cfg: cfg}
	err := t.Build(nil)
	assert(err == nil, "New: cannot build empty sequence")
	return t, nil
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[T]) Config() Config {
	return t.cfg
}

// Len returns the number of real (non-guard) elements.
func (t *Tree[T]) Len() int {
	if t == nil || t.root == sentinel {
		return 0
	}
	return int(t.nodes[t.root].size) - 2
}

// IsEmpty reports whether the sequence has no elements.
func (t *Tree[T]) IsEmpty() bool {
	return t.Len() == 0
}

// Build resets the arena and (re)builds the sequence from values in
// O(len(values)): head guard as root, tail guard as its right child, and
// the real elements as a median-split height-balanced tree below the
// tail guard. Handles from a previous build become invalid.
func (t *Tree[T]) Build(values []T) error {
	if len(values)+2 > t.cfg.Capacity {
		return fmt.Errorf("%w: %d values plus guards exceed capacity %d",
			ErrCapacityExceeded, len(values), t.cfg.Capacity)
	}
	tracer().Debugf("splay: building sequence of %d values", len(values))
	t.reset()
	head := t.mustAllocate(0, sentinel)
	t.root = head
	tail := t.mustAllocate(0, head)
	t.nodes[head].child[right] = tail
	if len(values) > 0 {
		mid := t.buildBalanced(values, tail)
		t.nodes[tail].child[left] = mid
	}
	t.pushUp(tail)
	t.pushUp(head)
	return nil
}

// buildBalanced recursively builds a height-balanced subtree from values
// by median split. Capacity has been checked by Build.
func (t *Tree[T]) buildBalanced(values []T, parent handle) handle {
	if len(values) == 0 {
		return sentinel
	}
	mid := len(values) / 2
	h := t.mustAllocate(values[mid], parent)
	l := t.buildBalanced(values[:mid], h)
	r := t.buildBalanced(values[mid+1:], h)
	n := &t.nodes[h]
	n.child[left] = l
	n.child[right] = r
	t.pushUp(h)
	return h
}

// Insert inserts value at 0-indexed position pos, 0 <= pos <= Len().
func (t *Tree[T]) Insert(pos int, value T) error {
	if pos < 0 || pos > t.Len() {
		return fmt.Errorf("%w: insert position %d of %d elements", ErrIndexOutOfBounds, pos, t.Len())
	}
	prev := t.findKth(pos + 1)
	t.splay(prev, sentinel)
	next := t.findKth(pos + 2)
	t.splay(next, t.root)
	assert(t.nodes[next].child[left] == sentinel, "insert point must have no left child")

	fresh, err := t.allocate(value, next)
	if err != nil {
		return err
	}
	t.nodes[next].child[left] = fresh
	t.pushUp(next)
	t.pushUp(t.root)
	return nil
}

// Delete removes the element at 0-indexed position pos, 0 <= pos < Len().
// The removed node is detached, not reclaimed; its handle stays occupied
// in the arena for the lifetime of the build.
func (t *Tree[T]) Delete(pos int) error {
	if pos < 0 || pos >= t.Len() {
		return fmt.Errorf("%w: delete position %d of %d elements", ErrIndexOutOfBounds, pos, t.Len())
	}
	prev := t.findKth(pos + 1)
	t.splay(prev, sentinel)
	next := t.findKth(pos + 3)
	t.splay(next, t.root)

	detached := t.nodes[next].child[left]
	t.nodes[next].child[left] = sentinel
	if detached != sentinel {
		t.nodes[detached].parent = sentinel
	}
	t.pushUp(next)
	t.pushUp(t.root)
	return nil
}

// AddRange adds delta to every element of the inclusive range [l,r].
// An empty range (l > r) is a defined no-op.
func (t *Tree[T]) AddRange(l, r int, delta T) error {
	if l > r {
		return nil
	}
	if l < 0 || r >= t.Len() {
		return fmt.Errorf("%w: range [%d,%d] of %d elements", ErrIndexOutOfBounds, l, r, t.Len())
	}
	sub := t.isolate(l, r)
	t.applyDelta(sub, delta)
	parent := t.nodes[sub].parent
	t.pushUp(parent)
	t.pushUp(t.nodes[parent].parent)
	return nil
}

// SumRange returns the sum over the inclusive range [l,r], or 0 for an
// empty range (l > r). The isolation's splays reshape the tree; there is
// no shape-preserving read path.
func (t *Tree[T]) SumRange(l, r int) (T, error) {
	var zero T
	if l > r {
		return zero, nil
	}
	if l < 0 || r >= t.Len() {
		return zero, fmt.Errorf("%w: range [%d,%d] of %d elements", ErrIndexOutOfBounds, l, r, t.Len())
	}
	sub := t.isolate(l, r)
	return t.nodes[sub].sum, nil
}

// Sum returns the sum over the whole sequence. Reads the root aggregate
// directly; guard keys are permanently zero.
func (t *Tree[T]) Sum() T {
	var zero T
	if t == nil || t.root == sentinel {
		return zero
	}
	return t.nodes[t.root].sum
}

// At returns the element at 0-indexed position pos. The accessed node is
// splayed to the root to keep the amortized bound.
func (t *Tree[T]) At(pos int) (T, error) {
	var zero T
	if pos < 0 || pos >= t.Len() {
		return zero, fmt.Errorf("%w: position %d of %d elements", ErrIndexOutOfBounds, pos, t.Len())
	}
	x := t.findKth(pos + 2)
	t.splay(x, sentinel)
	return t.nodes[x].key, nil
}

// Set overwrites the element at 0-indexed position pos with value.
func (t *Tree[T]) Set(pos int, value T) error {
	if pos < 0 || pos >= t.Len() {
		return fmt.Errorf("%w: position %d of %d elements", ErrIndexOutOfBounds, pos, t.Len())
	}
	x := t.findKth(pos + 2)
	t.splay(x, sentinel)
	t.nodes[x].key = value
	t.pushUp(x)
	return nil
}

// ForEach visits the real elements in sequence order. Traversal pushes
// pending tags down on descent but does not splay. Returning false from
// f stops the iteration.
func (t *Tree[T]) ForEach(f func(T) bool) {
	if t == nil || t.root == sentinel {
		return
	}
	total := t.nodes[t.root].size
	var rank int32
	var walk func(h handle) bool
	walk = func(h handle) bool {
		if h == sentinel {
			return true
		}
		t.pushDown(h)
		if !walk(t.nodes[h].child[left]) {
			return false
		}
		rank++
		if rank > 1 && rank < total { // skip the guards
			if !f(t.nodes[h].key) {
				return false
			}
		}
		return walk(t.nodes[h].child[right])
	}
	walk(t.root)
}

// Values collects all elements into a fresh slice. This may be an
// expensive operation for long sequences.
func (t *Tree[T]) Values() []T {
	if t == nil {
		return nil
	}
	values := make([]T, 0, t.Len())
	t.ForEach(func(v T) bool {
		values = append(values, v)
		return true
	})
	return values
}
