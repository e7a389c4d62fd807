package rbtree

// Remove deletes node h from the tree. Removing the nil handle is a no-op.
// After Remove, h and every other handle to the removed node are invalid;
// handles to other nodes stay valid.
func (t *Tree[T]) Remove(h Handle) {
	if h.IsNil() {
		return
	}
	t.remove(t.index(h))
}

// RemoveValue deletes a node holding a value equal to value, if present.
// It reports whether a node has been removed. For an absent value the tree
// is not modified.
func (t *Tree[T]) RemoveValue(value T) bool {
	z := t.search(value)
	if z == sentinel {
		return false
	}
	t.remove(z)
	return true
}

func (t *Tree[T]) remove(z uint32) {
	nz := t.node(z)
	removed := nz.color
	var x, xp uint32 // x takes the vacated position, xp is its parent
	switch {
	case nz.left == sentinel:
		x, xp = nz.right, nz.parent
		t.transplant(z, x)
	case nz.right == sentinel:
		x, xp = nz.left, nz.parent
		t.transplant(z, x)
	default:
		// y is z's in-order successor; it has no left child
		y := t.minimum(nz.right)
		ny := t.node(y)
		removed = ny.color
		x = ny.right
		if ny.parent == z {
			xp = y
		} else {
			xp = ny.parent
			t.transplant(y, x)
			ny.right = nz.right
			t.node(ny.right).parent = y
		}
		t.transplant(z, y)
		ny.left = nz.left
		t.node(ny.left).parent = y
		ny.color = nz.color
	}
	t.arena.release(z)
	t.count--
	if removed == Black {
		t.deleteFixup(x, xp)
	}
}

// deleteFixup restores the black-height after a black node has been removed
// from the path through x. x may be the sentinel, therefore its parent is
// passed separately.
func (t *Tree[T]) deleteFixup(x, parent uint32) {
	for x != t.root && t.colorOf(x) == Black {
		np := t.node(parent)
		if x == np.left {
			w := np.right // black-height ≥ 1 on this side, w exists
			if t.colorOf(w) == Red {
				t.observe(DeleteSiblingRed)
				t.node(w).color = Black
				np.color = Red
				t.rotateLeft(parent)
				w = np.right
			}
			nw := t.node(w)
			if t.colorOf(nw.left) == Black && t.colorOf(nw.right) == Black {
				t.observe(DeleteNephewsBlack)
				nw.color = Red
				x, parent = parent, np.parent
				continue
			}
			if t.colorOf(nw.right) == Black {
				t.observe(DeleteNearNephewRed)
				t.node(nw.left).color = Black
				nw.color = Red
				t.rotateRight(w)
				w = np.right
				nw = t.node(w)
			}
			t.observe(DeleteFarNephewRed)
			nw.color = np.color
			np.color = Black
			t.node(nw.right).color = Black
			t.rotateLeft(parent)
			x, parent = t.root, sentinel
		} else {
			w := np.left
			if t.colorOf(w) == Red {
				t.observe(DeleteSiblingRed)
				t.node(w).color = Black
				np.color = Red
				t.rotateRight(parent)
				w = np.left
			}
			nw := t.node(w)
			if t.colorOf(nw.left) == Black && t.colorOf(nw.right) == Black {
				t.observe(DeleteNephewsBlack)
				nw.color = Red
				x, parent = parent, np.parent
				continue
			}
			if t.colorOf(nw.left) == Black {
				t.observe(DeleteNearNephewRed)
				t.node(nw.right).color = Black
				nw.color = Red
				t.rotateLeft(w)
				w = np.left
				nw = t.node(w)
			}
			t.observe(DeleteFarNephewRed)
			nw.color = np.color
			np.color = Black
			t.node(nw.left).color = Black
			t.rotateRight(parent)
			x, parent = t.root, sentinel
		}
	}
	if x != sentinel {
		t.node(x).color = Black
	}
}
