package splay

import "fmt"

// Check validates structural tree invariants.
//
// This checker is intentionally strict and meant for tests: it recomputes
// sizes and sums over the whole tree with pending-lazy accounting, and
// verifies parent/child link inversion and guard placement. Check does
// not push tags down or otherwise mutate the tree.
func (t *Tree[T]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if t.root == sentinel {
		return nil
	}
	s := t.nodes[sentinel]
	if s.size != 0 || s.sum != 0 || s.key != 0 || s.lazy != 0 ||
		s.parent != sentinel || s.child[left] != sentinel || s.child[right] != sentinel {
		return fmt.Errorf("%w: sentinel node mutated", ErrInvalidConfig)
	}
	if t.nodes[t.root].parent != sentinel {
		return fmt.Errorf("%w: root %d has parent %d", ErrInvalidConfig, t.root, t.nodes[t.root].parent)
	}
	if _, _, err := t.checkNode(t.root, 0); err != nil {
		return err
	}
	if h := t.extreme(left); h != guardHead {
		return fmt.Errorf("%w: in-order minimum %d is not the head guard", ErrInvalidConfig, h)
	}
	if h := t.extreme(right); h != guardTail {
		return fmt.Errorf("%w: in-order maximum %d is not the tail guard", ErrInvalidConfig, h)
	}
	return nil
}

// checkNode recomputes size and true sum of the subtree at h. pending is
// the accumulated un-pushed delta inherited from ancestors: the true key
// of h is key+pending and the true subtree sum is sum+pending*size.
func (t *Tree[T]) checkNode(h handle, pending T) (size int32, trueSum T, err error) {
	if h == sentinel {
		return 0, 0, nil
	}
	n := t.nodes[h]
	for _, c := range n.child {
		if c != sentinel && t.nodes[c].parent != h {
			return 0, 0, fmt.Errorf("%w: child %d of %d has parent %d",
				ErrInvalidConfig, c, h, t.nodes[c].parent)
		}
	}
	below := pending + n.lazy
	lsize, lsum, err := t.checkNode(n.child[left], below)
	if err != nil {
		return 0, 0, err
	}
	rsize, rsum, err := t.checkNode(n.child[right], below)
	if err != nil {
		return 0, 0, err
	}
	if n.size != lsize+rsize+1 {
		return 0, 0, fmt.Errorf("%w: node %d has size %d, children total %d",
			ErrInvalidConfig, h, n.size, lsize+rsize)
	}
	trueSum = lsum + rsum + n.key + pending
	if stored := n.sum + pending*T(n.size); stored != trueSum {
		return 0, 0, fmt.Errorf("%w: node %d has sum %v, recomputed %v",
			ErrInvalidConfig, h, stored, trueSum)
	}
	return n.size, trueSum, nil
}

// extreme follows one child direction from the root to the in-order
// minimum (left) or maximum (right), without pushing tags down.
func (t *Tree[T]) extreme(dir int) handle {
	cur := t.root
	for t.nodes[cur].child[dir] != sentinel {
		cur = t.nodes[cur].child[dir]
	}
	return cur
}
