package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/boxkit/boxkit/internal/preview"
	"github.com/boxkit/boxkit/pkg/box"
)

type serveOptions struct {
	Port  int
	Watch bool
}

var serveCmdRunner = runServe

func newServeCmd(root *rootFlags) *cobra.Command {
	opts := serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the browser preview with live width reporting",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serveCmdRunner(root, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.Port, "port", "p", preview.DefaultPort, "Port to listen on")
	cmd.Flags().BoolVar(&opts.Watch, "watch", false, "Hot-reload the theme file on change")

	return cmd
}

func runServe(root *rootFlags, opts serveOptions) error {
	srv := preview.NewServer(preview.Options{
		Port:   opts.Port,
		Logger: root.log.For("preview"),
	})

	if opts.Watch && root.configPath != "" {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		err := box.WatchConfig(ctx, root.configPath, box.WatchOptions{
			OnReload: func(box.FileConfig) { srv.NotifyReload() },
			Logger:   root.log.For("watch"),
		})
		if err != nil {
			return err
		}
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)
	go func() {
		<-stop
		root.log.Info("shutting down preview server")
		srv.Stop()
	}()

	return srv.Start()
}
