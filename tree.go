package rbtree

/*
BSD 3-Clause License

Copyright (c) 2022, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"cmp"
)

// Tree is a red-black tree holding values of type T.
//
// A Tree has to be created with New or NewOrdered. It owns all of its nodes;
// clients address nodes through handles.
//
//	Operation     |   Complexity
//	--------------+-------------
//	Insert        |   O(log n)
//	Remove        |   O(log n)
//	Search        |   O(log n)
//	First/Last    |   O(log n)
//	Next/Prev     |   O(log n), amortized O(1) when iterating
//	Len           |   O(1)
type Tree[T any] struct {
	cfg   Config[T]
	less  func(a, b T) bool
	arena arena[T]
	root  uint32
	count int
}

// Handle designates a node of a tree. The zero Handle designates no node.
//
// A handle is valid until its node is removed from the tree or the tree is
// cleared. Passing an invalid handle to any method of Tree is a programming
// error and panics.
type Handle struct {
	id  uint32
	gen uint32
}

// IsNil reports whether h designates no node.
func (h Handle) IsNil() bool {
	return h.id == sentinel
}

// New creates an empty tree with validated configuration.
func New[T any](cfg Config[T]) (*Tree[T], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	return &Tree[T]{
		cfg:   cfg,
		less:  cfg.Less,
		arena: newArena[T](cfg.MaxNodes),
	}, nil
}

// NewOrdered creates an empty, unbounded tree for an ordered type.
func NewOrdered[T cmp.Ordered]() *Tree[T] {
	t, err := New(OrderedConfig[T]())
	assert(err == nil, "NewOrdered: cannot create tree")
	return t
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[T]) Config() Config[T] {
	return t.cfg
}

// Len returns the number of values in the tree.
func (t *Tree[T]) Len() int {
	if t == nil {
		return 0
	}
	return t.count
}

// IsEmpty reports whether the tree holds no values.
func (t *Tree[T]) IsEmpty() bool {
	return t == nil || t.root == sentinel
}

// Root returns the root node, or the nil handle for an empty tree.
func (t *Tree[T]) Root() Handle {
	return t.handle(t.root)
}

// Value returns the value stored at h.
func (t *Tree[T]) Value(h Handle) T {
	return t.arena.nodes[t.index(h)].value
}

// Color returns the color of node h. The nil handle is black.
func (t *Tree[T]) Color(h Handle) Color {
	if h.IsNil() {
		return Black
	}
	return t.arena.nodes[t.index(h)].color
}

// Left returns the left child of h, or the nil handle.
func (t *Tree[T]) Left(h Handle) Handle {
	return t.handle(t.arena.nodes[t.index(h)].left)
}

// Right returns the right child of h, or the nil handle.
func (t *Tree[T]) Right(h Handle) Handle {
	return t.handle(t.arena.nodes[t.index(h)].right)
}

// Parent returns the parent of h, or the nil handle for the root.
func (t *Tree[T]) Parent(h Handle) Handle {
	return t.handle(t.arena.nodes[t.index(h)].parent)
}

// Replace overwrites the value stored at h. value has to compare equal to the
// value currently stored, otherwise the order of the tree would break and
// Replace panics.
func (t *Tree[T]) Replace(h Handle, value T) {
	nd := t.node(t.index(h))
	assert(t.equal(nd.value, value), "Replace: value would change the order of the tree")
	nd.value = value
}

// Clear removes all values from the tree. All handles become invalid.
func (t *Tree[T]) Clear() {
	if t.root == sentinel {
		return
	}
	// post-order with an explicit stack, children are released before parents
	stack := make([]uint32, 0, 64)
	var last uint32
	cur := t.root
	for cur != sentinel || len(stack) > 0 {
		if cur != sentinel {
			stack = append(stack, cur)
			cur = t.node(cur).left
			continue
		}
		top := stack[len(stack)-1]
		if r := t.node(top).right; r != sentinel && r != last {
			cur = r
			continue
		}
		stack = stack[:len(stack)-1]
		t.arena.release(top)
		last = top
	}
	tracer().Debugf("rbtree: cleared %d nodes", t.count)
	t.root = sentinel
	t.count = 0
}

// --- Internal helpers ------------------------------------------------------

func (t *Tree[T]) node(i uint32) *node[T] {
	return &t.arena.nodes[i]
}

func (t *Tree[T]) colorOf(i uint32) Color {
	return t.arena.nodes[i].color // the sentinel is black
}

func (t *Tree[T]) equal(a, b T) bool {
	return !t.less(a, b) && !t.less(b, a)
}

func (t *Tree[T]) handle(i uint32) Handle {
	if i == sentinel {
		return Handle{}
	}
	return Handle{id: i, gen: t.arena.nodes[i].gen}
}

// index resolves h to an arena index and panics if h is nil or stale.
func (t *Tree[T]) index(h Handle) uint32 {
	assert(!h.IsNil(), "nil handle does not designate a node")
	assert(t.valid(h), "stale handle: node has been removed")
	return h.id
}

func (t *Tree[T]) valid(h Handle) bool {
	if h.id == sentinel || int(h.id) >= len(t.arena.nodes) {
		return false
	}
	nd := &t.arena.nodes[h.id]
	return nd.live && nd.gen == h.gen
}

func (t *Tree[T]) observe(fc FixupCase) {
	if t.cfg.OnFixup != nil {
		t.cfg.OnFixup(fc)
	}
}
