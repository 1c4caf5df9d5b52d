package splay

// side reports which child of its parent x is (left or right).
func (t *Tree[T]) side(x handle) int {
	if t.nodes[t.nodes[x].parent].child[right] == x {
		return right
	}
	return left
}

// rotate promotes x above its parent y with a single rotation. The
// subtree that changes sides is relinked, any moved subtree gets its
// parent link updated, and the grandparent (if any) is reconnected to x.
// Augmentation is recomputed for y first, then x: x's new aggregate
// depends on y's already-updated one.
func (t *Tree[T]) rotate(x handle) {
	y := t.nodes[x].parent
	z := t.nodes[y].parent
	xside := t.side(x)
	yside := t.side(y)

	if z != sentinel {
		t.nodes[z].child[yside] = x
	}
	t.nodes[x].parent = z

	moved := t.nodes[x].child[xside^1]
	t.nodes[y].child[xside] = moved
	if moved != sentinel {
		t.nodes[moved].parent = y
	}

	t.nodes[x].child[xside^1] = y
	t.nodes[y].parent = x

	t.pushUp(y)
	t.pushUp(x)
}

// splay rotates x upward until its parent equals target; a target of
// sentinel makes x the tree root. Before each step the grandparent
// (unless it is the target), the parent, and x itself are pushed down,
// so rotations operate on fully pushed-down ancestors.
func (t *Tree[T]) splay(x, target handle) {
	for t.nodes[x].parent != target {
		y := t.nodes[x].parent
		z := t.nodes[y].parent

		if z != target {
			t.pushDown(z)
		}
		t.pushDown(y)
		t.pushDown(x)

		switch {
		case z == target: // zig
			t.rotate(x)
		case t.side(x) == t.side(y): // zig-zig
			t.rotate(y)
			t.rotate(x)
		default: // zig-zag, as two successive single rotations
			t.rotate(x)
			t.rotate(x)
		}
	}
	if target == sentinel {
		t.root = x
	}
}
