package rbtree

import (
	"fmt"
	"io"
	"strings"
)

// Tree2Dot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes). Absent children are drawn as small black circles.
func Tree2Dot[T any](tree *Tree[T], w io.Writer) error {
	var nodelist, edgelist strings.Builder
	nilid := 0
	for h := range tree.Handles() {
		id := h.id
		label := strings.ReplaceAll(fmt.Sprintf("%v", tree.Value(h)), `"`, `\"`)
		fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\" %s];\n", id, label, nodeDotStyles(tree.Color(h)))
		for _, child := range [2]Handle{tree.Left(h), tree.Right(h)} {
			if child.IsNil() {
				nilid++
				fmt.Fprintf(&nodelist, "\"nil%d\" %s;\n", nilid, emptyNode())
				fmt.Fprintf(&edgelist, "\"%d\" -> \"nil%d\";\n", id, nilid)
			} else {
				fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", id, child.id)
			}
		}
	}
	var err error
	write := func(s string) {
		if err == nil {
			_, err = io.WriteString(w, s)
		}
	}
	write("strict digraph {\n")
	write("\tnode [fontname=Arial,fontsize=12];\n")
	write(nodelist.String())
	write(edgelist.String())
	write("}\n")
	if err != nil {
		tracer().Errorf("rbtree DOT: %s", err.Error())
	}
	return err
}

func emptyNode() string {
	return "[label=\"\",color=black,style=filled,fillcolor=black,shape=circle,fixedsize=true,width=.15]"
}

func nodeDotStyles(c Color) string {
	s := ",style=filled,shape=circle"
	if c == Red {
		s += ",color=\"#cc0000\",fillcolor=\"#ff6666\""
	} else {
		s += ",color=black,fillcolor=\"#444444\",fontcolor=white"
	}
	return s
}
