package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/boxkit/boxkit/internal/gallery"
	"github.com/boxkit/boxkit/pkg/diff"
	"github.com/boxkit/boxkit/pkg/style"
)

type cssOptions struct {
	Widths []int
	Out    string
	Check  string
}

func newCSSCmd(root *rootFlags) *cobra.Command {
	opts := cssOptions{}

	cmd := &cobra.Command{
		Use:   "css",
		Short: "Print the stylesheet for the demo gallery",
		Long: "Compile every demo component at the given container widths and print the resulting stylesheet.\n\n" +
			"With --out the stylesheet is written to a file instead of stdout. With --check the generated\n" +
			"stylesheet is compared against an existing file; the command prints a unified diff and fails\n" +
			"when they differ, which makes it usable as a CI freshness gate.",
		RunE: func(cmd *cobra.Command, args []string) error {
			sheet := style.NewStyleSheet()
			compiler := style.NewCompiler(sheet)
			items := gallery.Default(compiler)

			for _, width := range opts.Widths {
				for _, item := range items {
					item.Target.Class(width)
				}
			}
			css := sheet.CSS()

			switch {
			case opts.Check != "":
				want, err := os.ReadFile(opts.Check)
				if err != nil {
					return fmt.Errorf("read %s: %w", opts.Check, err)
				}
				if d := diff.Unified(want, []byte(css), opts.Check, "generated"); d != "" {
					fmt.Fprint(cmd.OutOrStdout(), d)
					return fmt.Errorf("%s is out of date", opts.Check)
				}
				return nil
			case opts.Out != "":
				return os.WriteFile(opts.Out, []byte(css), 0o644)
			default:
				fmt.Fprint(cmd.OutOrStdout(), css)
				return nil
			}
		},
	}

	cmd.Flags().IntSliceVarP(&opts.Widths, "widths", "w", []int{375, 768, 1280}, "Container widths to compile at")
	cmd.Flags().StringVarP(&opts.Out, "out", "o", "", "Write the stylesheet to a file instead of stdout")
	cmd.Flags().StringVar(&opts.Check, "check", "", "Compare the stylesheet against a file and fail on drift")

	return cmd
}
