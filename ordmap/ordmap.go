/*
Package ordmap implements an ordered associative container on top of a
red-black tree.

Keys are unique. Iteration visits entries in ascending key order.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package ordmap

import (
	"cmp"
	"iter"

	"github.com/npillmayer/rbtree"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'rbtree'
func tracer() tracing.Trace {
	return tracing.Select("rbtree")
}

type entry[K, V any] struct {
	key   K
	value V
}

// Map is an ordered map from keys K to values V.
//
// A Map created by New or NewOrdered is ready to use. Maps are not safe for
// concurrent use.
type Map[K, V any] struct {
	tree *rbtree.Tree[entry[K, V]]
}

// New creates an empty map ordering keys by less.
func New[K, V any](less func(a, b K) bool) (*Map[K, V], error) {
	return NewWithLimit[K, V](less, 0)
}

// NewWithLimit creates an empty map holding at most limit entries
// (0 = unbounded). Put returns rbtree.ErrCapacityExceeded when the map is full.
func NewWithLimit[K, V any](less func(a, b K) bool, limit int) (*Map[K, V], error) {
	cfg := rbtree.Config[entry[K, V]]{MaxNodes: limit}
	if less != nil {
		cfg.Less = func(a, b entry[K, V]) bool { return less(a.key, b.key) }
	}
	tree, err := rbtree.New(cfg)
	if err != nil {
		return nil, err
	}
	return &Map[K, V]{tree: tree}, nil
}

// NewOrdered creates an empty map for an ordered key type.
func NewOrdered[K cmp.Ordered, V any]() *Map[K, V] {
	m, err := New[K, V](cmp.Less[K])
	if err != nil {
		panic(err) // cannot happen for a non-nil comparison
	}
	return m
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int {
	return m.tree.Len()
}

// Put stores value under key. It reports whether an existing value has been
// replaced.
func (m *Map[K, V]) Put(key K, value V) (replaced bool, err error) {
	e := entry[K, V]{key: key, value: value}
	if h := m.tree.Search(e); !h.IsNil() {
		m.tree.Replace(h, e)
		return true, nil
	}
	if _, _, err = m.tree.Insert(e); err != nil {
		tracer().Debugf("ordmap: cannot put entry: %v", err)
		return false, err
	}
	return false, nil
}

// Get returns the value stored under key.
func (m *Map[K, V]) Get(key K) (value V, ok bool) {
	h := m.tree.Search(entry[K, V]{key: key})
	if h.IsNil() {
		return value, false
	}
	return m.tree.Value(h).value, true
}

// Has reports whether key is present.
func (m *Map[K, V]) Has(key K) bool {
	return m.tree.Contains(entry[K, V]{key: key})
}

// Delete removes key and reports whether it was present.
func (m *Map[K, V]) Delete(key K) bool {
	return m.tree.RemoveValue(entry[K, V]{key: key})
}

// Clear removes all entries.
func (m *Map[K, V]) Clear() {
	m.tree.Clear()
}

// Min returns the entry with the smallest key.
func (m *Map[K, V]) Min() (key K, value V, ok bool) {
	return m.at(m.tree.First())
}

// Max returns the entry with the largest key.
func (m *Map[K, V]) Max() (key K, value V, ok bool) {
	return m.at(m.tree.Last())
}

// Ceiling returns the entry with the smallest key not less than key.
func (m *Map[K, V]) Ceiling(key K) (K, V, bool) {
	return m.at(m.tree.LowerBound(entry[K, V]{key: key}))
}

// Floor returns the entry with the largest key not greater than key.
func (m *Map[K, V]) Floor(key K) (K, V, bool) {
	h := m.tree.UpperBound(entry[K, V]{key: key})
	if h.IsNil() {
		return m.at(m.tree.Last())
	}
	return m.at(m.tree.Prev(h))
}

func (m *Map[K, V]) at(h rbtree.Handle) (key K, value V, ok bool) {
	if h.IsNil() {
		return key, value, false
	}
	e := m.tree.Value(h)
	return e.key, e.value, true
}

// All returns an iterator over all entries in ascending key order.
// The map must not be modified while iterating.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for e := range m.tree.All() {
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}

// Range returns an iterator over the entries with from <= key < to.
func (m *Map[K, V]) Range(from, to K) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		less := m.tree.Config().Less
		bound := entry[K, V]{key: to}
		for h := m.tree.LowerBound(entry[K, V]{key: from}); !h.IsNil(); h = m.tree.Next(h) {
			e := m.tree.Value(h)
			if !less(e, bound) {
				return
			}
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}

// Keys returns all keys in ascending order.
func (m *Map[K, V]) Keys() []K {
	keys := make([]K, 0, m.Len())
	for k := range m.All() {
		keys = append(keys, k)
	}
	return keys
}
