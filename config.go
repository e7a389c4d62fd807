package rbtree

import (
	"cmp"
	"fmt"
)

// Config configures a red-black tree.
type Config[T any] struct {
	// Less orders values. It has to be a strict weak ordering: Less(a, b) and
	// Less(b, a) must never both be true. Values for which neither holds are
	// considered equal.
	Less func(a, b T) bool
	// MaxNodes bounds the number of nodes the tree may hold. 0 means unbounded.
	MaxNodes int
	// OnFixup, if set, is called for every rebalancing step applied after an
	// insertion or a deletion. It is meant for debugging and must not modify
	// the tree.
	OnFixup func(FixupCase)
}

// OrderedConfig returns a configuration ordering values of T by cmp.Less.
func OrderedConfig[T cmp.Ordered]() Config[T] {
	return Config[T]{Less: cmp.Less[T]}
}

func (cfg Config[T]) normalized() Config[T] {
	return cfg
}

func (cfg Config[T]) validate() error {
	cfg = cfg.normalized()
	if cfg.Less == nil {
		return fmt.Errorf("%w: comparison function is required", ErrInvalidConfig)
	}
	if cfg.MaxNodes < 0 {
		return fmt.Errorf("%w: MaxNodes must not be negative (is %d)", ErrInvalidConfig, cfg.MaxNodes)
	}
	return nil
}

// FixupCase identifies a single rebalancing step.
type FixupCase uint8

// Rebalancing steps reported to Config.OnFixup. Insert cases are named after
// the uncle of the node being fixed, delete cases after its sibling and the
// sibling's children ("nephews").
const (
	InsertUncleRed  FixupCase = iota + 1 // recolor, continue at grandparent
	InsertInner                          // rotate inner child to the outside
	InsertOuter                          // rotate at grandparent, done
	DeleteSiblingRed                     // case 1
	DeleteNephewsBlack                   // case 2
	DeleteNearNephewRed                  // case 3
	DeleteFarNephewRed                   // case 4
)

var fixupNames = [...]string{
	"<none>",
	"insert: uncle red",
	"insert: inner child",
	"insert: outer child",
	"delete: sibling red",
	"delete: nephews black",
	"delete: near nephew red",
	"delete: far nephew red",
}

func (fc FixupCase) String() string {
	if int(fc) >= len(fixupNames) {
		return fmt.Sprintf("FixupCase(%d)", uint8(fc))
	}
	return fixupNames[fc]
}
