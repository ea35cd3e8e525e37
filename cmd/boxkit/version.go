package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Populated through ldflags at release time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display build information",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "boxkit %s (commit %s, built %s, %s)\n",
				version, commit, date, runtime.Version())
			return nil
		},
	}
}
