package rbtree

// rotateLeft rotates around x, making its right child y the new subtree root.
//
//	   x                y
//	  / \              / \
//	 a   y     =>     x   c
//	    / \          / \
//	   b   c        a   b
//
// x must have a right child.
func (t *Tree[T]) rotateLeft(x uint32) {
	nx := t.node(x)
	y := nx.right
	assert(y != sentinel, "rotateLeft: node has no right child")
	ny := t.node(y)
	nx.right = ny.left
	if ny.left != sentinel {
		t.node(ny.left).parent = x
	}
	t.replaceChild(nx.parent, x, y)
	ny.parent = nx.parent
	ny.left = x
	nx.parent = y
}

// rotateRight is the mirror of rotateLeft. x must have a left child.
//
//	     x            y
//	    / \          / \
//	   y   c   =>   a   x
//	  / \              / \
//	 a   b            b   c
func (t *Tree[T]) rotateRight(x uint32) {
	nx := t.node(x)
	y := nx.left
	assert(y != sentinel, "rotateRight: node has no left child")
	ny := t.node(y)
	nx.left = ny.right
	if ny.right != sentinel {
		t.node(ny.right).parent = x
	}
	t.replaceChild(nx.parent, x, y)
	ny.parent = nx.parent
	ny.right = x
	nx.parent = y
}

// replaceChild redirects the link of parent p from child old to child repl.
// A parent of sentinel means old was the root.
func (t *Tree[T]) replaceChild(p, old, repl uint32) {
	if p == sentinel {
		t.root = repl
		return
	}
	np := t.node(p)
	if np.left == old {
		np.left = repl
	} else {
		np.right = repl
	}
}

// transplant puts subtree v in the position of u. v may be the sentinel, in
// which case only u's parent is changed.
func (t *Tree[T]) transplant(u, v uint32) {
	p := t.node(u).parent
	t.replaceChild(p, u, v)
	if v != sentinel {
		t.node(v).parent = p
	}
}
