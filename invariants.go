package rbtree

import "fmt"

// Check validates the structural tree invariants:
//
//   - the root is black and has no parent,
//   - child and parent links agree,
//   - no red node has a red child,
//   - all paths from a node to an absent child have the same black count,
//   - values are in search-tree order,
//   - the cached length matches the number of reachable nodes.
//
// Violations are reported as wrapped ErrInvariant. Check is intended for
// tests and debugging.
func (t *Tree[T]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	s := &t.arena.nodes[sentinel]
	if s.color != Black || s.parent != sentinel || s.left != sentinel || s.right != sentinel {
		return fmt.Errorf("%w: sentinel node has been modified", ErrInvariant)
	}
	if t.root == sentinel {
		if t.count != 0 {
			return fmt.Errorf("%w: empty tree reports length %d", ErrInvariant, t.count)
		}
		return nil
	}
	root := t.node(t.root)
	if root.color != Black {
		return fmt.Errorf("%w: root is red", ErrInvariant)
	}
	if root.parent != sentinel {
		return fmt.Errorf("%w: root has a parent", ErrInvariant)
	}
	count, _, err := t.checkNode(t.root)
	if err != nil {
		return err
	}
	if count != t.count {
		return fmt.Errorf("%w: length mismatch (%d reachable, %d cached)", ErrInvariant, count, t.count)
	}
	if used := t.arena.used(); used != count {
		return fmt.Errorf("%w: %d nodes allocated, %d reachable", ErrInvariant, used, count)
	}
	return t.checkOrder()
}

// checkNode returns the number of nodes and the black-height of the subtree
// at i.
func (t *Tree[T]) checkNode(i uint32) (nodes int, blackHeight int, err error) {
	if i == sentinel {
		return 0, 0, nil
	}
	nd := t.node(i)
	if !nd.live {
		return 0, 0, fmt.Errorf("%w: released node %d is linked", ErrInvariant, i)
	}
	for _, c := range [2]uint32{nd.left, nd.right} {
		if c == sentinel {
			continue
		}
		if t.node(c).parent != i {
			return 0, 0, fmt.Errorf("%w: child %d of node %d links to parent %d",
				ErrInvariant, c, i, t.node(c).parent)
		}
		if nd.color == Red && t.node(c).color == Red {
			return 0, 0, fmt.Errorf("%w: red node %d has red child %d", ErrInvariant, i, c)
		}
	}
	ln, lbh, err := t.checkNode(nd.left)
	if err != nil {
		return 0, 0, err
	}
	rn, rbh, err := t.checkNode(nd.right)
	if err != nil {
		return 0, 0, err
	}
	if lbh != rbh {
		return 0, 0, fmt.Errorf("%w: node %d has black-heights %d (left) and %d (right)",
			ErrInvariant, i, lbh, rbh)
	}
	if nd.color == Black {
		lbh++
	}
	return ln + rn + 1, lbh, nil
}

// checkOrder verifies search-tree order by an in-order walk: every value
// must be not less than its predecessor. Together with correct links this
// covers every subtree.
func (t *Tree[T]) checkOrder() error {
	prev := sentinel
	for i := t.minimum(t.root); i != sentinel; i = t.successor(i) {
		if prev != sentinel && t.less(t.node(i).value, t.node(prev).value) {
			return fmt.Errorf("%w: node %d is out of order", ErrInvariant, i)
		}
		prev = i
	}
	return nil
}

// Height returns the number of nodes on the longest path from the root to a
// leaf. An empty tree has height 0.
func (t *Tree[T]) Height() int {
	if t.IsEmpty() {
		return 0
	}
	return t.height(t.root)
}

func (t *Tree[T]) height(i uint32) int {
	if i == sentinel {
		return 0
	}
	return 1 + max(t.height(t.node(i).left), t.height(t.node(i).right))
}

// BlackHeight returns the number of black nodes on any path from the root to
// an absent child, not counting the root itself. Empty trees and trees of a
// single node have black-height 0.
func (t *Tree[T]) BlackHeight() int {
	if t.IsEmpty() {
		return 0
	}
	bh := 0
	for i := t.node(t.root).left; i != sentinel; i = t.node(i).left {
		if t.node(i).color == Black {
			bh++
		}
	}
	return bh
}
