// Package main provides rbtree, a small command line tool for inspecting
// red-black trees built from a list of integers.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"

	"github.com/npillmayer/rbtree"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "devel"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool
	rootCmd := &cobra.Command{
		Use:   "rbtree",
		Short: "Inspect red-black trees",
		Long: `rbtree builds a red-black tree from integer values and shows its structure.

Commands:
  show      Print the tree as ASCII art, Graphviz DOT or HTML
  stats     Print size, height and color statistics`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if verbose {
				tracing.Select("rbtree").SetTraceLevel(tracing.LevelDebug)
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "trace tree operations")

	rootCmd.AddCommand(newShowCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(versionCmd())
	return rootCmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "rbtree %s\n", version)
		},
	}
}

// treeOptions are shared by all commands which build a tree.
type treeOptions struct {
	remove []int
}

func (opts *treeOptions) register(cmd *cobra.Command) {
	cmd.Flags().IntSliceVar(&opts.remove, "remove", nil, "values to remove after inserting")
}

// build inserts all values of args into a new tree, then removes the values of
// opts.remove. onFixup, if not nil, receives every rebalancing step together with
// a description of the operation which triggered it.
func (opts *treeOptions) build(args []string, onFixup func(op string, fc rbtree.FixupCase)) (*rbtree.Tree[int], error) {
	values := make([]int, len(args))
	for i, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q: not an integer", arg)
		}
		values[i] = v
	}
	var op string
	cfg := rbtree.OrderedConfig[int]()
	if onFixup != nil {
		cfg.OnFixup = func(fc rbtree.FixupCase) { onFixup(op, fc) }
	}
	tree, err := rbtree.New(cfg)
	if err != nil {
		return nil, err
	}
	for _, v := range values {
		op = "insert " + strconv.Itoa(v)
		if _, _, err := tree.Insert(v); err != nil {
			return nil, err
		}
	}
	for _, v := range opts.remove {
		op = "remove " + strconv.Itoa(v)
		tree.RemoveValue(v)
	}
	if err := tree.Check(); err != nil {
		return nil, err
	}
	return tree, nil
}
