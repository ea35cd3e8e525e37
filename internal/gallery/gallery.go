// Package gallery defines the demo components shared by the preview
// server, the terminal gallery, and the css subcommand.
package gallery

import (
	"github.com/boxkit/boxkit/pkg/box"
	"github.com/boxkit/boxkit/pkg/responsive"
	"github.com/boxkit/boxkit/pkg/style"
)

// Item is one named demo component.
type Item struct {
	Name   string
	Target box.Compilable
}

// Default returns the stock demo components bound to the given compiler.
// Every entry carries at least one responsive value so width changes
// visibly change the compiled output.
func Default(c *style.Compiler) []Item {
	return []Item{
		{Name: "container", Target: box.NewContainer().WithCompiler(c)},
		{Name: "stack", Target: box.NewStack().
			WithGap(responsive.BP{"base": "sm", "md": "lg"}).
			WithCompiler(c)},
		{Name: "group", Target: box.NewGroup().
			WithJustify(responsive.BP{"base": "center", "md": "space-between"}).
			WithCompiler(c)},
		{Name: "grid", Target: box.NewSimpleGrid().
			WithCols(responsive.BP{"base": 1, "sm": 2, "lg": 4}).
			WithSpacing("md").
			WithCompiler(c)},
		{Name: "hero", Target: box.NewBox().
			WithProps(style.Props{
				P: responsive.BP{"base": "md", "lg": "xl"},
				W: responsive.BP{"base": "100%", "md": "75%", "lg": "50%"},
			}).
			WithCSS(style.CSS{"background": "#eef2ff", "border-radius": "8px"}).
			WithCompiler(c)},
		{Name: "center", Target: box.NewCenter().
			WithProps(style.Props{MinH: 120}).
			WithCompiler(c)},
	}
}
