package rbtree

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("rbtree: invalid configuration")
	// ErrCapacityExceeded signals that no further node could be allocated.
	// The tree is left unchanged.
	ErrCapacityExceeded = errors.New("rbtree: node capacity exceeded")
	// ErrInvariant signals a violated red-black or search-tree property.
	// It is reported by Check and should never occur for trees modified
	// through the public API only.
	ErrInvariant = errors.New("rbtree: invariant violated")
)
