package main

import (
	"github.com/spf13/cobra"

	"github.com/boxkit/boxkit/internal/logger"
	"github.com/boxkit/boxkit/pkg/box"
)

type rootFlags struct {
	verbose    bool
	configPath string
	log        *logger.Logger
}

func newRootCmd(log *logger.Logger) *cobra.Command {
	flags := &rootFlags{log: log}

	cmd := &cobra.Command{
		Use:           "boxkit",
		Short:         "boxkit compiles responsive layout styles without owning your markup",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if flags.verbose {
				verbose, err := logger.New(logger.Options{Level: "debug", Pretty: true})
				if err != nil {
					return err
				}
				flags.log = verbose
			}
			if flags.configPath != "" {
				if err := box.LoadConfig(flags.configPath); err != nil {
					return err
				}
				flags.log.Zerolog().Info().Str("path", flags.configPath).Msg("theme loaded")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to a theme file with breakpoints and spacing")

	cmd.AddCommand(newDemoCmd(flags))
	cmd.AddCommand(newCSSCmd(flags))
	cmd.AddCommand(newServeCmd(flags))
	cmd.AddCommand(newBreakpointsCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
