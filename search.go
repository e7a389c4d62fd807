package rbtree

// Search returns a node holding a value equal to value, or the nil handle.
// If more than one equal value is stored, any of them may be returned.
func (t *Tree[T]) Search(value T) Handle {
	return t.handle(t.search(value))
}

// Contains reports whether a value equal to value is stored in the tree.
func (t *Tree[T]) Contains(value T) bool {
	return t.search(value) != sentinel
}

func (t *Tree[T]) search(value T) uint32 {
	cur := t.root
	for cur != sentinel {
		nd := t.node(cur)
		switch {
		case t.less(value, nd.value):
			cur = nd.left
		case t.less(nd.value, value):
			cur = nd.right
		default:
			return cur
		}
	}
	return sentinel
}

// LowerBound returns the first node in order whose value is not less than
// value, or the nil handle.
func (t *Tree[T]) LowerBound(value T) Handle {
	found, cur := sentinel, t.root
	for cur != sentinel {
		nd := t.node(cur)
		if t.less(nd.value, value) {
			cur = nd.right
		} else {
			found, cur = cur, nd.left
		}
	}
	return t.handle(found)
}

// UpperBound returns the first node in order whose value is greater than
// value, or the nil handle.
func (t *Tree[T]) UpperBound(value T) Handle {
	found, cur := sentinel, t.root
	for cur != sentinel {
		nd := t.node(cur)
		if t.less(value, nd.value) {
			found, cur = cur, nd.left
		} else {
			cur = nd.right
		}
	}
	return t.handle(found)
}

// First returns the node with the smallest value, or the nil handle.
func (t *Tree[T]) First() Handle {
	if t.root == sentinel {
		return Handle{}
	}
	return t.handle(t.minimum(t.root))
}

// Last returns the node with the largest value, or the nil handle.
func (t *Tree[T]) Last() Handle {
	if t.root == sentinel {
		return Handle{}
	}
	return t.handle(t.maximum(t.root))
}

// Next returns the in-order successor of h, or the nil handle if h is the
// last node. Next(nil) is nil.
func (t *Tree[T]) Next(h Handle) Handle {
	if h.IsNil() {
		return Handle{}
	}
	return t.handle(t.successor(t.index(h)))
}

// Prev returns the in-order predecessor of h, or the nil handle if h is the
// first node. Prev(nil) is nil.
func (t *Tree[T]) Prev(h Handle) Handle {
	if h.IsNil() {
		return Handle{}
	}
	return t.handle(t.predecessor(t.index(h)))
}

func (t *Tree[T]) minimum(i uint32) uint32 {
	for l := t.node(i).left; l != sentinel; l = t.node(i).left {
		i = l
	}
	return i
}

func (t *Tree[T]) maximum(i uint32) uint32 {
	for r := t.node(i).right; r != sentinel; r = t.node(i).right {
		i = r
	}
	return i
}

func (t *Tree[T]) successor(i uint32) uint32 {
	if r := t.node(i).right; r != sentinel {
		return t.minimum(r)
	}
	p := t.node(i).parent
	for p != sentinel && i == t.node(p).right {
		i, p = p, t.node(p).parent
	}
	return p
}

func (t *Tree[T]) predecessor(i uint32) uint32 {
	if l := t.node(i).left; l != sentinel {
		return t.maximum(l)
	}
	p := t.node(i).parent
	for p != sentinel && i == t.node(p).left {
		i, p = p, t.node(p).parent
	}
	return p
}
