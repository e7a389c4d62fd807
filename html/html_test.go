package html

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/rbtree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/net/html"
)

func TestTreeToHTML(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rbtree")
	defer teardown()

	tree := rbtree.NewOrdered[int]()
	for _, v := range []int{2, 1, 3, 4} {
		if _, _, err := tree.Insert(v); err != nil {
			t.Fatal(err)
		}
	}
	var buf bytes.Buffer
	if err := TreeToHTML(tree, &buf); err != nil {
		t.Fatal(err)
	}
	want := `<ul class="rbtree"><li class="black">2<ul>` +
		`<li class="black">1</li>` +
		`<li class="black">3<ul><li class="nil"></li><li class="red">4</li></ul></li>` +
		`</ul></li></ul>`
	if buf.String() != want {
		t.Fatalf("unexpected HTML:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestTreeToHTMLEscapesValues(t *testing.T) {
	tree := rbtree.NewOrdered[string]()
	if _, _, err := tree.Insert("<b>&"); err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := TreeToHTML(tree, &buf); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "&lt;b&gt;&amp;") {
		t.Fatalf("value not escaped: %s", buf.String())
	}
}

func TestTreeToNodeParsesBack(t *testing.T) {
	tree := rbtree.NewOrdered[int]()
	for v := range 10 {
		if _, _, err := tree.Insert(v); err != nil {
			t.Fatal(err)
		}
	}
	var buf bytes.Buffer
	if err := html.Render(&buf, TreeToNode(tree)); err != nil {
		t.Fatal(err)
	}
	nodes, err := html.ParseFragment(&buf, nil)
	if err != nil {
		t.Fatal(err)
	}
	items, reds := 0, 0
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "li" {
			for _, a := range n.Attr {
				if a.Key == "class" && a.Val != "nil" {
					items++
					if a.Val == "red" {
						reds++
					}
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range nodes {
		walk(n)
	}
	if items != tree.Len() {
		t.Fatalf("expected %d list items, found %d", tree.Len(), items)
	}
	wantReds := 0
	for h := range tree.Handles() {
		if tree.Color(h) == rbtree.Red {
			wantReds++
		}
	}
	if reds != wantReds {
		t.Fatalf("expected %d red items, found %d", wantReds, reds)
	}
}

func TestTreeToHTMLRejectsNilTree(t *testing.T) {
	var buf bytes.Buffer
	if err := TreeToHTML[int](nil, &buf); err == nil {
		t.Fatalf("expected error for nil tree")
	}
}
