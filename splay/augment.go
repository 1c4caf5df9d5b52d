package splay

// pushUp recomputes size and sum of x from the current size/sum of its
// children plus its own key. Children need no prior pushDown: a child's
// sum/size already reflect any delta applied to the child itself, only
// the child's own lazy tag remains un-pushed to grandchildren.
func (t *Tree[T]) pushUp(x handle) {
	if x == sentinel {
		return
	}
	n := &t.nodes[x]
	l := &t.nodes[n.child[left]]
	r := &t.nodes[n.child[right]]
	n.size = l.size + r.size + 1
	n.sum = l.sum + r.sum + n.key
}

// applyDelta records "add delta to every element of x's subtree" in O(1):
// the key and the subtree sum absorb the delta immediately, the tag
// defers the per-descendant work.
func (t *Tree[T]) applyDelta(x handle, delta T) {
	if x == sentinel {
		return
	}
	n := &t.nodes[x]
	n.key += delta
	n.sum += delta * T(n.size)
	n.lazy += delta
}

// pushDown propagates x's pending tag to its children and clears it.
// Must run before any operation inspects or descends into x's children.
func (t *Tree[T]) pushDown(x handle) {
	if x == sentinel {
		return
	}
	if t.nodes[x].lazy == 0 {
		return
	}
	pending := t.nodes[x].lazy
	t.applyDelta(t.nodes[x].child[left], pending)
	t.applyDelta(t.nodes[x].child[right], pending)
	t.nodes[x].lazy = 0
}
