package main

import (
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/boxkit/boxkit/pkg/box"
)

func newBreakpointsCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "breakpoints",
		Short: "Print the active breakpoint table and spacing scale",
		RunE: func(cmd *cobra.Command, args []string) error {
			table := box.Breakpoints()
			names := make([]string, 0, len(table))
			for name := range table {
				names = append(names, name)
			}
			// Resolution order: ascending min width, name breaking ties.
			sort.Slice(names, func(i, j int) bool {
				if table[names[i]] != table[names[j]] {
					return table[names[i]] < table[names[j]]
				}
				return names[i] < names[j]
			})

			writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(writer, "BREAKPOINT\tMIN WIDTH")
			for _, name := range names {
				fmt.Fprintf(writer, "%s\t%dpx\n", name, table[name])
			}

			scale := box.SpacingScale()
			steps := make([]string, 0, len(scale))
			for step := range scale {
				steps = append(steps, step)
			}
			sort.Strings(steps)

			fmt.Fprintln(writer, "\nSPACING\tVALUE")
			for _, step := range steps {
				fmt.Fprintf(writer, "%s\t%v\n", step, scale[step])
			}

			return writer.Flush()
		},
	}

	return cmd
}
