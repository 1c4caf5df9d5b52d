package splay

// findKth returns the node at in-order rank (1-indexed, guards counted),
// or the sentinel if rank is outside [1, size(root)]. Descent pushes down
// before inspecting children and never splays; callers splay afterwards
// to obtain the amortized bound.
func (t *Tree[T]) findKth(rank int) handle {
	if t.root == sentinel || rank < 1 || rank > int(t.nodes[t.root].size) {
		return sentinel
	}
	cur := t.root
	for {
		t.pushDown(cur)
		leftSize := int(t.nodes[t.nodes[cur].child[left]].size)
		switch {
		case rank <= leftSize:
			cur = t.nodes[cur].child[left]
		case rank == leftSize+1:
			return cur
		default:
			rank -= leftSize + 1
			cur = t.nodes[cur].child[right]
		}
	}
}

// isolate converts the inclusive external 0-indexed range [l,r] into one
// isolated subtree: the node preceding the range (rank l+1, possibly the
// head guard) is splayed to the root, the node following it (rank r+3,
// possibly the tail guard) is splayed directly below, and the returned
// subtree — exactly the elements l..r — hangs off that node's left child.
//
// After mutating the isolated subtree, callers must pushUp its two
// ancestors (parent, then grandparent) to restore global consistency.
// Bounds are the caller's responsibility.
func (t *Tree[T]) isolate(l, r int) handle {
	before := t.findKth(l + 1)
	assert(before != sentinel, "isolate: left boundary rank out of range")
	t.splay(before, sentinel)

	after := t.findKth(r + 3)
	assert(after != sentinel, "isolate: right boundary rank out of range")
	t.splay(after, t.root)

	return t.nodes[after].child[left]
}
