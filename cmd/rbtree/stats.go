package main

import (
	"fmt"
	"math"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/npillmayer/rbtree"
)

func newStatsCmd() *cobra.Command {
	opts := &treeOptions{}
	cmd := &cobra.Command{
		Use:   "stats [values...]",
		Short: "Print tree statistics",
		Long: `Insert the given integers into a red-black tree, remove the values given
with --remove, and print size, height and color statistics.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := opts.build(args, nil)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), renderStats(collectStats(tree)))
			return err
		},
	}
	opts.register(cmd)
	return cmd
}

type treeStats struct {
	size, height, blackHeight int
	red, black                int
	bound                     float64 // 2·log2(n+1)
}

func collectStats(tree *rbtree.Tree[int]) treeStats {
	st := treeStats{
		size:        tree.Len(),
		height:      tree.Height(),
		blackHeight: tree.BlackHeight(),
		bound:       2 * math.Log2(float64(tree.Len()+1)),
	}
	for h := range tree.Handles() {
		if tree.Color(h) == rbtree.Red {
			st.red++
		} else {
			st.black++
		}
	}
	return st
}

func renderStats(st treeStats) string {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"Metric", "Value"})
	tbl.AppendRow(table.Row{"size", st.size})
	tbl.AppendRow(table.Row{"height", st.height})
	tbl.AppendRow(table.Row{"black-height", st.blackHeight})
	tbl.AppendRow(table.Row{"red nodes", st.red})
	tbl.AppendRow(table.Row{"black nodes", st.black})
	tbl.AppendFooter(table.Row{"height bound", fmt.Sprintf("%.2f", st.bound)})
	return tbl.Render()
}
