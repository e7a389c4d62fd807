package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/npillmayer/rbtree"
	"github.com/npillmayer/rbtree/html"
)

type showOptions struct {
	treeOptions
	format  string
	color   string
	width   int
	explain bool
}

func newShowCmd() *cobra.Command {
	opts := &showOptions{}
	cmd := &cobra.Command{
		Use:   "show [values...]",
		Short: "Print the tree structure",
		Long: `Insert the given integers into a red-black tree, remove the values given
with --remove, and print the resulting tree.`,
		Example: `  rbtree show 5 3 8 1 4 7 9
  rbtree show 5 3 8 1 4 7 9 --remove 3 --explain
  rbtree show 1 2 3 4 5 --format dot | dot -Tsvg > tree.svg`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, opts, args)
		},
	}
	opts.register(cmd)
	cmd.Flags().StringVarP(&opts.format, "format", "f", "ascii", "output format: ascii, dot or html")
	cmd.Flags().StringVar(&opts.color, "color", "auto", "color mode for ascii output: auto, always or never")
	cmd.Flags().IntVar(&opts.width, "width", 0, "clip node labels to this many cells (0 = no clipping)")
	cmd.Flags().BoolVar(&opts.explain, "explain", false, "print rebalancing steps as they occur")
	return cmd
}

func runShow(cmd *cobra.Command, opts *showOptions, args []string) error {
	out := cmd.OutOrStdout()
	mode, err := parseColorMode(opts.color)
	if err != nil {
		return err
	}
	var onFixup func(string, rbtree.FixupCase)
	if opts.explain {
		onFixup = func(op string, fc rbtree.FixupCase) {
			fmt.Fprintf(out, "%s: %s\n", op, fc)
		}
	}
	tree, err := opts.build(args, onFixup)
	if err != nil {
		return err
	}
	switch opts.format {
	case "ascii":
		return rbtree.Fprint(out, tree, &rbtree.PrintOptions{
			Color:         mode,
			MaxLabelWidth: opts.width,
		})
	case "dot":
		return rbtree.Tree2Dot(tree, out)
	case "html":
		if err := html.TreeToHTML(tree, out); err != nil {
			return err
		}
		_, err := fmt.Fprintln(out)
		return err
	}
	return fmt.Errorf("unknown format %q", opts.format)
}

func parseColorMode(s string) (rbtree.ColorMode, error) {
	switch s {
	case "auto":
		return rbtree.ColorAuto, nil
	case "always":
		return rbtree.ColorAlways, nil
	case "never":
		return rbtree.ColorNever, nil
	}
	return rbtree.ColorAuto, fmt.Errorf("unknown color mode %q", s)
}
