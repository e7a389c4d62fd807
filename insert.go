package rbtree

// Insert adds value to the tree and returns a handle to the new node.
// dup reports whether a value comparing equal was already present; it is
// left untouched, and the new value is placed after it in iteration order.
//
// The only error returned is ErrCapacityExceeded, in which case the tree is
// unchanged.
func (t *Tree[T]) Insert(value T) (h Handle, dup bool, err error) {
	parent, cur := sentinel, t.root
	left := false
	for cur != sentinel {
		parent = cur
		nd := t.node(cur)
		if t.less(value, nd.value) {
			cur, left = nd.left, true
		} else {
			if !t.less(nd.value, value) {
				dup = true
			}
			cur, left = nd.right, false
		}
	}
	z, err := t.arena.alloc(value)
	if err != nil {
		tracer().Debugf("rbtree: insert failed: %v", err)
		return Handle{}, false, err
	}
	t.node(z).parent = parent
	switch {
	case parent == sentinel:
		t.root = z
	case left:
		t.node(parent).left = z
	default:
		t.node(parent).right = z
	}
	t.count++
	t.insertFixup(z)
	return t.handle(z), dup, nil
}

// insertFixup restores the red-black properties after red node k has been
// linked into the tree. Only a red-red violation between k and its parent is
// possible.
func (t *Tree[T]) insertFixup(k uint32) {
	for k != t.root && t.colorOf(t.node(k).parent) == Red {
		p := t.node(k).parent
		g := t.node(p).parent // p is red, thus not the root
		if p == t.node(g).left {
			u := t.node(g).right
			if t.colorOf(u) == Red {
				t.observe(InsertUncleRed)
				t.node(p).color = Black
				t.node(u).color = Black
				t.node(g).color = Red
				k = g
				continue
			}
			if k == t.node(p).right {
				t.observe(InsertInner)
				k = p
				t.rotateLeft(k)
				p = t.node(k).parent
			}
			t.observe(InsertOuter)
			t.node(p).color = Black
			t.node(g).color = Red
			t.rotateRight(g)
		} else {
			u := t.node(g).left
			if t.colorOf(u) == Red {
				t.observe(InsertUncleRed)
				t.node(p).color = Black
				t.node(u).color = Black
				t.node(g).color = Red
				k = g
				continue
			}
			if k == t.node(p).left {
				t.observe(InsertInner)
				k = p
				t.rotateRight(k)
				p = t.node(k).parent
			}
			t.observe(InsertOuter)
			t.node(p).color = Black
			t.node(g).color = Red
			t.rotateLeft(g)
		}
	}
	t.node(t.root).color = Black
}
