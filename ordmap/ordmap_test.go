package ordmap

import (
	"errors"
	"maps"
	"math/rand"
	"slices"
	"strings"
	"testing"

	"github.com/npillmayer/rbtree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestPutGetDelete(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rbtree")
	defer teardown()

	m := NewOrdered[string, int]()
	for i, w := range strings.Fields("delta alpha charlie bravo echo") {
		replaced, err := m.Put(w, i)
		if err != nil || replaced {
			t.Fatalf("Put(%q) = %v, %v", w, replaced, err)
		}
	}
	if m.Len() != 5 {
		t.Fatalf("expected 5 entries, got %d", m.Len())
	}
	replaced, err := m.Put("charlie", 42)
	if err != nil || !replaced {
		t.Fatalf("expected Put to replace existing entry, got %v, %v", replaced, err)
	}
	if v, ok := m.Get("charlie"); !ok || v != 42 {
		t.Fatalf("Get(charlie) = %d, %v", v, ok)
	}
	if m.Len() != 5 {
		t.Fatalf("replacing must not add an entry, len=%d", m.Len())
	}
	want := []string{"alpha", "bravo", "charlie", "delta", "echo"}
	if got := m.Keys(); !slices.Equal(got, want) {
		t.Fatalf("keys: got=%v want=%v", got, want)
	}
	if !m.Delete("alpha") || m.Delete("alpha") {
		t.Fatalf("Delete should succeed once")
	}
	if m.Has("alpha") {
		t.Fatalf("alpha still present")
	}
	if _, ok := m.Get("zulu"); ok {
		t.Fatalf("Get of absent key succeeded")
	}
}

func TestMinMaxFloorCeiling(t *testing.T) {
	m := NewOrdered[int, string]()
	if _, _, ok := m.Min(); ok {
		t.Fatalf("empty map has no minimum")
	}
	for _, k := range []int{10, 20, 30} {
		if _, err := m.Put(k, strings.Repeat("x", k/10)); err != nil {
			t.Fatal(err)
		}
	}
	if k, v, ok := m.Min(); !ok || k != 10 || v != "x" {
		t.Errorf("Min = %d, %q, %v", k, v, ok)
	}
	if k, _, ok := m.Max(); !ok || k != 30 {
		t.Errorf("Max = %d, %v", k, ok)
	}
	cases := []struct {
		key            int
		floor, ceiling int // 0 = none
	}{
		{5, 0, 10}, {10, 10, 10}, {15, 10, 20}, {30, 30, 30}, {35, 30, 0},
	}
	for _, c := range cases {
		k, _, ok := m.Floor(c.key)
		if !ok {
			k = 0
		}
		if k != c.floor {
			t.Errorf("Floor(%d) = %d, want %d", c.key, k, c.floor)
		}
		k, _, ok = m.Ceiling(c.key)
		if !ok {
			k = 0
		}
		if k != c.ceiling {
			t.Errorf("Ceiling(%d) = %d, want %d", c.key, k, c.ceiling)
		}
	}
}

func TestRange(t *testing.T) {
	m := NewOrdered[int, int]()
	for k := range 20 {
		if _, err := m.Put(k, k*k); err != nil {
			t.Fatal(err)
		}
	}
	var keys []int
	for k, v := range m.Range(5, 9) {
		if v != k*k {
			t.Fatalf("value mismatch for %d: %d", k, v)
		}
		keys = append(keys, k)
	}
	if !slices.Equal(keys, []int{5, 6, 7, 8}) {
		t.Fatalf("Range(5,9) = %v", keys)
	}
	for range m.Range(100, 200) {
		t.Fatalf("Range beyond last key must be empty")
	}
}

func TestCustomOrder(t *testing.T) {
	m, err := New[string, bool](func(a, b string) bool { return len(a) < len(b) })
	if err != nil {
		t.Fatal(err)
	}
	for _, w := range []string{"ccc", "a", "bb", "ddd"} {
		if _, err := m.Put(w, true); err != nil {
			t.Fatal(err)
		}
	}
	// "ddd" has the same length as "ccc" and replaces its entry
	if m.Len() != 3 {
		t.Fatalf("expected 3 entries, got %d", m.Len())
	}
	if !slices.Equal(m.Keys(), []string{"a", "bb", "ddd"}) {
		t.Fatalf("unexpected keys %v", m.Keys())
	}
}

func TestNewRejectsNilOrder(t *testing.T) {
	if _, err := New[int, int](nil); !errors.Is(err, rbtree.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestLimit(t *testing.T) {
	m, err := NewWithLimit[int, int](func(a, b int) bool { return a < b }, 2)
	if err != nil {
		t.Fatal(err)
	}
	m.Put(1, 1)
	m.Put(2, 2)
	if _, err := m.Put(3, 3); !errors.Is(err, rbtree.ErrCapacityExceeded) {
		t.Fatalf("expected ErrCapacityExceeded, got %v", err)
	}
	if replaced, err := m.Put(2, 20); err != nil || !replaced {
		t.Fatalf("replacing in a full map must succeed, got %v, %v", replaced, err)
	}
	if m.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", m.Len())
	}
}

func TestAgainstBuiltinMap(t *testing.T) {
	m := NewOrdered[int, int]()
	ref := make(map[int]int)
	r := rand.New(rand.NewSource(16032022))
	for range 3000 {
		k := r.Intn(500)
		switch r.Intn(3) {
		case 0, 1:
			_, had := ref[k]
			replaced, err := m.Put(k, k+1)
			if err != nil || replaced != had {
				t.Fatalf("Put(%d) = %v, %v; expected replaced=%v", k, replaced, err, had)
			}
			ref[k] = k + 1
		case 2:
			_, had := ref[k]
			if m.Delete(k) != had {
				t.Fatalf("Delete(%d) disagrees with reference", k)
			}
			delete(ref, k)
		}
	}
	if m.Len() != len(ref) {
		t.Fatalf("length mismatch: %d vs %d", m.Len(), len(ref))
	}
	want := slices.Sorted(maps.Keys(ref))
	if got := m.Keys(); !slices.Equal(got, want) {
		t.Fatalf("key order mismatch")
	}
	m.Clear()
	if m.Len() != 0 {
		t.Fatalf("map not empty after Clear")
	}
}
