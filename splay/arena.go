package splay

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// handle addresses a node within the tree's arena. Handle 0 is the
// permanent sentinel meaning "no node": size 0, sum 0, no links. Using
// integer handles instead of pointers keeps parent/child back-references
// cheap and makes the node graph trivially relocatable.
type handle int32

const sentinel handle = 0

// The guard nodes are always the first two allocations of a build, so
// their handles are stable for the lifetime of a built sequence.
const (
	guardHead handle = 1
	guardTail handle = 2
)

const (
	left  = 0
	right = 1
)

// node is one arena slot. key is the element value at this position, sum
// and size aggregate the node's whole subtree, lazy is a pending additive
// delta that has been absorbed into this node's key/sum but not yet
// propagated to the children.
type node[T constraints.Signed] struct {
	parent handle
	child  [2]handle
	key    T
	sum    T
	lazy   T
	size   int32
}

// reset empties the arena down to the sentinel slot. Handles from a
// previous build become invalid.
func (t *Tree[T]) reset() {
	t.nodes = t.nodes[:0]
	t.nodes = append(t.nodes, node[T]{})
	t.root = sentinel
}

// allocate creates a fresh node with key=sum=value and size 1. Handles
// grow monotonically; detached nodes are never recycled, so the capacity
// check is against lifetime allocations.
func (t *Tree[T]) allocate(value T, parent handle) (handle, error) {
	if len(t.nodes) > t.cfg.Capacity {
		return sentinel, fmt.Errorf("%w: capacity is %d nodes", ErrCapacityExceeded, t.cfg.Capacity)
	}
	t.nodes = append(t.nodes, node[T]{
		parent: parent,
		key:    value,
		sum:    value,
		size:   1,
	})
	return handle(len(t.nodes) - 1), nil
}

// mustAllocate is allocate for callers that have already checked capacity.
func (t *Tree[T]) mustAllocate(value T, parent handle) handle {
	h, err := t.allocate(value, parent)
	assert(err == nil, "arena capacity exhausted despite prior check")
	return h
}

// Allocated returns the number of nodes allocated from the arena since
// the last build, guards included, detached nodes included.
func (t *Tree[T]) Allocated() int {
	return len(t.nodes) - 1
}

// Capacity returns the fixed lifetime node capacity of the arena.
func (t *Tree[T]) Capacity() int {
	return t.cfg.Capacity
}
