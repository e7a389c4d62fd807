package rbtree

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestFprintShowsStructure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rbtree")
	defer teardown()

	tree := newIntTree(t, nil)
	insertAll(t, tree, 5, 3, 8, 1, 4, 7, 9)
	var buf bytes.Buffer
	if err := Fprint(&buf, tree, &PrintOptions{Color: ColorNever}); err != nil {
		t.Fatal(err)
	}
	want := strings.Join([]string{
		"└──B5",
		"    ├──B3",
		"    │   ├──R1",
		"    │   └──R4",
		"    └──B8",
		"        ├──R7",
		"        └──R9",
		"",
	}, "\n")
	if buf.String() != want {
		t.Fatalf("unexpected output:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestFprintEmptyTree(t *testing.T) {
	var buf bytes.Buffer
	if err := Fprint(&buf, NewOrdered[int](), nil); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no output for empty tree, got %q", buf.String())
	}
}

func TestFprintColorsRedNodes(t *testing.T) {
	tree := newIntTree(t, nil)
	insertAll(t, tree, 2, 1)
	var buf bytes.Buffer
	if err := Fprint(&buf, tree, &PrintOptions{Color: ColorAlways}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "\x1b[") {
		t.Fatalf("expected escape sequences in colored output, got %q", buf.String())
	}
	buf.Reset()
	// a buffer is not a terminal
	if err := Fprint(&buf, tree, &PrintOptions{Color: ColorAuto}); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "\x1b[") {
		t.Fatalf("expected plain output for non-terminal, got %q", buf.String())
	}
}

func TestFprintClipsLabels(t *testing.T) {
	tree := NewOrdered[string]()
	if _, _, err := tree.Insert("abcdefghijklmnop"); err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := Fprint(&buf, tree, &PrintOptions{Color: ColorNever, MaxLabelWidth: 6}); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "└──Babcde…\n" {
		t.Fatalf("unexpected clipped output %q", got)
	}
	buf.Reset()
	if err := Fprint(&buf, tree, &PrintOptions{Color: ColorNever, MaxLabelWidth: 40}); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "└──Babcdefghijklmnop\n" {
		t.Fatalf("label should not be clipped, got %q", got)
	}
}

func TestTree2Dot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rbtree")
	defer teardown()

	tree := newIntTree(t, nil)
	insertAll(t, tree, 2, 1, 3)
	var buf bytes.Buffer
	if err := Tree2Dot(tree, &buf); err != nil {
		t.Fatal(err)
	}
	dot := buf.String()
	t.Logf("\n%s", dot)
	if !strings.HasPrefix(dot, "strict digraph {") || !strings.HasSuffix(dot, "}\n") {
		t.Fatalf("not a DOT graph: %q", dot)
	}
	if n := strings.Count(dot, "fillcolor=\"#ff6666\""); n != 2 {
		t.Errorf("expected 2 red nodes, found %d", n)
	}
	if n := strings.Count(dot, "-> \"nil"); n != 4 {
		t.Errorf("expected 4 absent-child edges, found %d", n)
	}
	if n := strings.Count(dot, "label=\"2\""); n != 1 {
		t.Errorf("expected root label, found %d", n)
	}
}
