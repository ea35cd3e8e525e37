package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/boxkit/boxkit/internal/tui"
	"github.com/boxkit/boxkit/pkg/box"
)

type demoOptions struct {
	Watch bool
}

var demoCmdRunner = runDemo

func newDemoCmd(root *rootFlags) *cobra.Command {
	opts := demoOptions{}

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Render the component gallery in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			return demoCmdRunner(root, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Watch, "watch", false, "Hot-reload the theme file on change")

	return cmd
}

func runDemo(root *rootFlags, opts demoOptions) error {
	p := tui.NewProgram(tui.Options{Logger: root.log.For("gallery")})

	if opts.Watch && root.configPath != "" {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		err := box.WatchConfig(ctx, root.configPath, box.WatchOptions{
			OnReload: func(box.FileConfig) { p.Send(tui.ReloadMsg{}) },
			Logger:   root.log.For("watch"),
		})
		if err != nil {
			return err
		}
	}

	_, err := p.Run()
	return err
}
