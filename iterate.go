package rbtree

import "iter"

// All returns an iterator over all values in ascending order.
//
// The tree must not be modified while iterating.
func (t *Tree[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for h := range t.Handles() {
			if !yield(t.arena.nodes[h.id].value) {
				return
			}
		}
	}
}

// Backward returns an iterator over all values in descending order.
func (t *Tree[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		if t.IsEmpty() {
			return
		}
		for i := t.maximum(t.root); i != sentinel; i = t.predecessor(i) {
			if !yield(t.node(i).value) {
				return
			}
		}
	}
}

// Handles returns an iterator over all nodes in ascending order.
func (t *Tree[T]) Handles() iter.Seq[Handle] {
	return func(yield func(Handle) bool) {
		if t.IsEmpty() {
			return
		}
		for i := t.minimum(t.root); i != sentinel; i = t.successor(i) {
			if !yield(t.handle(i)) {
				return
			}
		}
	}
}

// ForEach walks values in-order. Iteration stops early if fn returns false.
func (t *Tree[T]) ForEach(fn func(value T) bool) {
	if t.IsEmpty() || fn == nil {
		return
	}
	for v := range t.All() {
		if !fn(v) {
			return
		}
	}
}

// Values returns all values in ascending order.
func (t *Tree[T]) Values() []T {
	values := make([]T, 0, t.Len())
	for v := range t.All() {
		values = append(values, v)
	}
	return values
}
