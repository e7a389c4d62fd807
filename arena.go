package rbtree

import (
	"fmt"
	"math"
)

// Color is the color tag of a tree node.
type Color uint8

const (
	Black Color = iota
	Red
)

func (c Color) String() string {
	if c == Red {
		return "R"
	}
	return "B"
}

// sentinel is the arena position of the “no node” node. It is black and its
// links are never written.
const sentinel uint32 = 0

type node[T any] struct {
	value  T
	parent uint32
	left   uint32
	right  uint32
	gen    uint32 // incremented whenever the slot is released
	color  Color
	live   bool
}

// arena stores the nodes of a tree. Released slots are recycled.
type arena[T any] struct {
	nodes []node[T] // nodes[0] is the sentinel
	free  []uint32  // released slots, available for re-use
	limit int       // max number of live nodes, 0 = unbounded
}

func newArena[T any](limit int) arena[T] {
	return arena[T]{
		nodes: []node[T]{{color: Black}},
		limit: limit,
	}
}

func (a *arena[T]) used() int {
	return len(a.nodes) - 1 - len(a.free)
}

// alloc reserves a slot for value and returns its index. The node is red with
// all links pointing to the sentinel. alloc does not touch any other node, so
// a failing allocation leaves the tree unchanged.
func (a *arena[T]) alloc(value T) (uint32, error) {
	if a.limit > 0 && a.used() >= a.limit {
		return sentinel, fmt.Errorf("%w: limit of %d nodes reached", ErrCapacityExceeded, a.limit)
	}
	if n := len(a.free); n > 0 {
		i := a.free[n-1]
		a.free = a.free[:n-1]
		nd := &a.nodes[i]
		nd.value, nd.color, nd.live = value, Red, true
		return i, nil
	}
	if uint64(len(a.nodes)) >= math.MaxUint32 {
		return sentinel, fmt.Errorf("%w: node index space exhausted", ErrCapacityExceeded)
	}
	a.nodes = append(a.nodes, node[T]{value: value, color: Red, live: true})
	return uint32(len(a.nodes) - 1), nil
}

// release frees slot i. The payload is zeroed to not keep references alive.
func (a *arena[T]) release(i uint32) {
	assert(i != sentinel, "sentinel node cannot be released")
	nd := &a.nodes[i]
	assert(nd.live, "node released twice")
	gen := nd.gen + 1
	*nd = node[T]{gen: gen}
	a.free = append(a.free, i)
}
