package rbtree

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// ColorMode controls coloring of node labels in console output.
type ColorMode uint8

const (
	ColorAuto   ColorMode = iota // color if output is a terminal
	ColorAlways                  // always emit color escape sequences
	ColorNever                   // plain text
)

// PrintOptions configures Fprint.
type PrintOptions struct {
	Color ColorMode
	// MaxLabelWidth clips node labels to this many fixed-width display cells.
	// 0 means no clipping.
	MaxLabelWidth int
	// Context is used for measuring label widths. Defaults to uax11.LatinContext.
	Context *uax11.Context
}

var setupGraphemes sync.Once

// Print outputs the tree to stdout; see Fprint.
func (t *Tree[T]) Print() error {
	return Fprint(os.Stdout, t, nil)
}

// Fprint outputs the tree structure to w, one node per line, for debugging
// purposes. Every node is printed as its color tag followed by its value,
// left children before right children:
//
//	└──B5
//	    ├──B3
//	    │   ├──R1
//	    │   └──R4
//	    └──B8
//	        ├──R7
//	        └──R9
//
// opts may be nil.
func Fprint[T any](w io.Writer, tree *Tree[T], opts *PrintOptions) error {
	p := newPrinter(w, opts)
	if !tree.IsEmpty() {
		printNode(p, tree, "", tree.Root(), false)
	}
	if err := p.out.Flush(); err != nil {
		tracer().Errorf("rbtree print: %s", err.Error())
		return err
	}
	return nil
}

type printer struct {
	out      *bufio.Writer
	red      *color.Color
	blk      *color.Color
	colored  bool
	maxWidth int
	ctx      *uax11.Context
}

func newPrinter(w io.Writer, opts *PrintOptions) *printer {
	if opts == nil {
		opts = &PrintOptions{}
	}
	p := &printer{
		out:      bufio.NewWriter(w),
		red:      color.New(color.FgRed, color.Bold),
		blk:      color.New(color.FgHiBlack, color.Bold),
		maxWidth: opts.MaxLabelWidth,
		ctx:      opts.Context,
	}
	if p.ctx == nil {
		p.ctx = uax11.LatinContext
	}
	switch opts.Color {
	case ColorAlways:
		p.colored = true
	case ColorAuto:
		p.colored = isTerminal(w)
	}
	if p.colored {
		p.red.EnableColor()
		p.blk.EnableColor()
	}
	return p
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func printNode[T any](p *printer, tree *Tree[T], prefix string, h Handle, isLeft bool) {
	if h.IsNil() {
		return
	}
	p.out.WriteString(prefix)
	if isLeft {
		p.out.WriteString("├──")
	} else {
		p.out.WriteString("└──")
	}
	label := tree.Color(h).String() + p.clip(fmt.Sprintf("%v", tree.Value(h)))
	switch {
	case !p.colored:
		p.out.WriteString(label)
	case tree.Color(h) == Red:
		p.red.Fprint(p.out, label)
	default:
		p.blk.Fprint(p.out, label)
	}
	p.out.WriteByte('\n')
	if isLeft {
		prefix += "│   "
	} else {
		prefix += "    "
	}
	printNode(p, tree, prefix, tree.Left(h), true)
	printNode(p, tree, prefix, tree.Right(h), false)
}

// clip shortens label to at most maxWidth display cells, cutting at grapheme
// boundaries and marking the cut with an ellipsis.
func (p *printer) clip(label string) string {
	if p.maxWidth <= 0 || len(label) <= p.maxWidth/2 {
		return label // a byte occupies at most 2 cells
	}
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	gstr := grapheme.StringFromString(label)
	if uax11.StringWidth(gstr, p.ctx) <= p.maxWidth {
		return label
	}
	var clipped string
	width := 1 // reserve a cell for the ellipsis
	for i := 0; i < gstr.Len(); i++ {
		g := gstr.Nth(i)
		gw := uax11.StringWidth(grapheme.StringFromString(g), p.ctx)
		if width+gw > p.maxWidth {
			break
		}
		clipped += g
		width += gw
	}
	return clipped + "…"
}
