/*
Package html renders red-black trees as nested HTML lists, for inspecting
larger trees in a browser.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package html

import (
	"fmt"
	"io"

	"github.com/npillmayer/rbtree"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tracer writes to trace with key 'rbtree'
func tracer() tracing.Trace {
	return tracing.Select("rbtree")
}

// TreeToHTML writes the structure of tree as a nested list:
//
//	<ul class="rbtree">
//	  <li class="black">5
//	    <ul><li class="black">3 …</li><li class="black">8 …</li></ul>
//	  </li>
//	</ul>
//
// (whitespace added for readability). Every item is of class "red" or "black".
// Nodes with a single child get an empty item of class "nil" for the absent
// child, to keep left and right apart.
func TreeToHTML[T any](tree *rbtree.Tree[T], w io.Writer) error {
	if tree == nil {
		return fmt.Errorf("%w: nil tree", rbtree.ErrInvalidConfig)
	}
	ul := element(atom.Ul, "rbtree")
	if !tree.IsEmpty() {
		ul.AppendChild(item(tree, tree.Root()))
	}
	if err := html.Render(w, ul); err != nil {
		tracer().Errorf("rbtree HTML: %s", err.Error())
		return err
	}
	return nil
}

// TreeToNode returns the list representation of tree as an HTML node, for
// clients which want to embed it into a larger document.
func TreeToNode[T any](tree *rbtree.Tree[T]) *html.Node {
	ul := element(atom.Ul, "rbtree")
	if tree != nil && !tree.IsEmpty() {
		ul.AppendChild(item(tree, tree.Root()))
	}
	return ul
}

func item[T any](tree *rbtree.Tree[T], h rbtree.Handle) *html.Node {
	class := "black"
	if tree.Color(h) == rbtree.Red {
		class = "red"
	}
	li := element(atom.Li, class)
	li.AppendChild(&html.Node{
		Type: html.TextNode,
		Data: fmt.Sprintf("%v", tree.Value(h)),
	})
	left, right := tree.Left(h), tree.Right(h)
	if left.IsNil() && right.IsNil() {
		return li
	}
	children := element(atom.Ul, "")
	for _, child := range [2]rbtree.Handle{left, right} {
		if child.IsNil() {
			children.AppendChild(element(atom.Li, "nil"))
		} else {
			children.AppendChild(item(tree, child))
		}
	}
	li.AppendChild(children)
	return li
}

func element(a atom.Atom, class string) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
	}
	if class != "" {
		n.Attr = []html.Attribute{{Key: "class", Val: class}}
	}
	return n
}
