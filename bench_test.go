package rbtree

import (
	"math/rand"
	"testing"
)

func BenchmarkInsert(b *testing.B) {
	r := rand.New(rand.NewSource(1))
	tree := NewOrdered[int]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := tree.Insert(r.Int()); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSearch(b *testing.B) {
	tree := NewOrdered[int]()
	for i := range 1 << 16 {
		if _, _, err := tree.Insert(i); err != nil {
			b.Fatal(err)
		}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if tree.Search(i & 0xffff).IsNil() {
			b.Fatalf("value %d not found", i&0xffff)
		}
	}
}

func BenchmarkInsertRemove(b *testing.B) {
	tree := NewOrdered[int]()
	for i := range 1 << 12 {
		if _, _, err := tree.Insert(i); err != nil {
			b.Fatal(err)
		}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v := i & 0xfff
		tree.RemoveValue(v)
		if _, _, err := tree.Insert(v); err != nil {
			b.Fatal(err)
		}
	}
}
