package main

import (
	"fmt"
	"reflect"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Ameliorate/buildlua/ast"
)

func newStatsCommand(c *rootCommand) *cobra.Command {
	return &cobra.Command{
		Use:   "stats FILE...",
		Short: "count the syntax tree nodes of each file by kind",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			chunks, err := c.parser.ParseFiles(cmd.Context(), args...)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 1, ' ', 0)
			for i, chunk := range chunks {
				_, _ = fmt.Fprintf(w, "%s\n", args[i])
				counts := countNodes(chunk)
				kinds := make([]string, 0, len(counts))
				for kind := range counts {
					kinds = append(kinds, kind)
				}
				sort.Strings(kinds)
				for _, kind := range kinds {
					_, _ = fmt.Fprintf(w, "\t%s\t%d\n", kind, counts[kind])
				}
			}
			return w.Flush()
		},
	}
}

// countNodes counts the nodes of the chunk by their type name.
func countNodes(chunk ast.Chunk) map[string]int {
	counts := make(map[string]int)
	ast.Walk(chunk, func(n ast.Node) bool {
		counts[reflect.TypeOf(n).Name()]++
		return true
	})
	return counts
}
