package box

import (
	"github.com/boxkit/boxkit/pkg/style"
)

// Flex arranges children with flexbox. Direction, alignment, wrap, and gap
// all accept responsive values.
type Flex struct {
	core
	direction any
	align     any
	justify   any
	wrap      any
	gap       any
}

// NewFlex creates a flex row.
func NewFlex() *Flex {
	return &Flex{}
}

// WithDirection sets flex-direction.
func (f *Flex) WithDirection(v any) *Flex {
	f.direction = v
	return f
}

// WithAlign sets align-items.
func (f *Flex) WithAlign(v any) *Flex {
	f.align = v
	return f
}

// WithJustify sets justify-content.
func (f *Flex) WithJustify(v any) *Flex {
	f.justify = v
	return f
}

// WithWrap sets flex-wrap.
func (f *Flex) WithWrap(v any) *Flex {
	f.wrap = v
	return f
}

// WithGap sets the gap between children; spacing-scale keys are substituted.
func (f *Flex) WithGap(v any) *Flex {
	f.gap = v
	return f
}

// WithProps sets the shorthand props.
func (f *Flex) WithProps(p style.Props) *Flex {
	f.props = p
	return f
}

// WithCSS merges explicit CSS entries; later calls overwrite earlier keys.
func (f *Flex) WithCSS(css style.CSS) *Flex {
	f.setCSS(css)
	return f
}

// WithClass appends a literal class to every compile result.
func (f *Flex) WithClass(name string) *Flex {
	f.class = name
	return f
}

// NoReset drops the box-sizing reset class from compile results.
func (f *Flex) NoReset() *Flex {
	f.noReset = true
	return f
}

// WithContainerWidth pins the width this component compiles at.
func (f *Flex) WithContainerWidth(width int) *Flex {
	f.override = &width
	return f
}

// WithCompiler overrides the process-wide compiler for this component.
func (f *Flex) WithCompiler(c *style.Compiler) *Flex {
	f.compiler = c
	return f
}

// Class compiles the component at the given width.
func (f *Flex) Class(width int) string {
	w := f.effectiveWidth(width)
	preset := style.CSS{"display": "flex"}
	if f.direction != nil {
		preset["flex-direction"] = f.direction
	}
	if f.align != nil {
		preset["align-items"] = f.align
	}
	if f.justify != nil {
		preset["justify-content"] = f.justify
	}
	if f.wrap != nil {
		preset["flex-wrap"] = f.wrap
	}
	if g := f.comp().SpacingAt(f.gap, w); g != nil {
		preset["gap"] = g
	}
	return f.compile(preset, w)
}

// Group is a horizontal row of items: centered cross-axis, wrapping, with a
// default md gap.
type Group struct {
	core
	align   any
	justify any
	wrap    any
	gap     any
}

// NewGroup creates a group.
func NewGroup() *Group {
	return &Group{}
}

// WithAlign sets align-items; the default is center.
func (g *Group) WithAlign(v any) *Group {
	g.align = v
	return g
}

// WithJustify sets justify-content.
func (g *Group) WithJustify(v any) *Group {
	g.justify = v
	return g
}

// WithWrap sets flex-wrap; the default is wrap.
func (g *Group) WithWrap(v any) *Group {
	g.wrap = v
	return g
}

// WithGap sets the gap between items; spacing-scale keys are substituted.
// The default is the scale's md entry.
func (g *Group) WithGap(v any) *Group {
	g.gap = v
	return g
}

// WithProps sets the shorthand props.
func (g *Group) WithProps(p style.Props) *Group {
	g.props = p
	return g
}

// WithCSS merges explicit CSS entries; later calls overwrite earlier keys.
func (g *Group) WithCSS(css style.CSS) *Group {
	g.setCSS(css)
	return g
}

// WithClass appends a literal class to every compile result.
func (g *Group) WithClass(name string) *Group {
	g.class = name
	return g
}

// NoReset drops the box-sizing reset class from compile results.
func (g *Group) NoReset() *Group {
	g.noReset = true
	return g
}

// WithContainerWidth pins the width this component compiles at.
func (g *Group) WithContainerWidth(width int) *Group {
	g.override = &width
	return g
}

// WithCompiler overrides the process-wide compiler for this component.
func (g *Group) WithCompiler(c *style.Compiler) *Group {
	g.compiler = c
	return g
}

// Class compiles the component at the given width.
func (g *Group) Class(width int) string {
	w := g.effectiveWidth(width)
	preset := style.CSS{
		"display":        "flex",
		"flex-direction": "row",
		"align-items":    "center",
		"flex-wrap":      "wrap",
	}
	if g.align != nil {
		preset["align-items"] = g.align
	}
	if g.justify != nil {
		preset["justify-content"] = g.justify
	}
	if g.wrap != nil {
		preset["flex-wrap"] = g.wrap
	}
	gap := g.gap
	if gap == nil {
		gap = "md"
	}
	if v := g.comp().SpacingAt(gap, w); v != nil {
		preset["gap"] = v
	}
	return g.compile(preset, w)
}

// Center puts its content in the middle of both axes.
type Center struct {
	core
	inline bool
}

// NewCenter creates a center.
func NewCenter() *Center {
	return &Center{}
}

// Inline switches the display to inline-flex.
func (c *Center) Inline() *Center {
	c.inline = true
	return c
}

// WithProps sets the shorthand props.
func (c *Center) WithProps(p style.Props) *Center {
	c.props = p
	return c
}

// WithCSS merges explicit CSS entries; later calls overwrite earlier keys.
func (c *Center) WithCSS(css style.CSS) *Center {
	c.setCSS(css)
	return c
}

// WithClass appends a literal class to every compile result.
func (c *Center) WithClass(name string) *Center {
	c.class = name
	return c
}

// NoReset drops the box-sizing reset class from compile results.
func (c *Center) NoReset() *Center {
	c.noReset = true
	return c
}

// WithContainerWidth pins the width this component compiles at.
func (c *Center) WithContainerWidth(width int) *Center {
	c.override = &width
	return c
}

// WithCompiler overrides the process-wide compiler for this component.
func (c *Center) WithCompiler(comp *style.Compiler) *Center {
	c.compiler = comp
	return c
}

// Class compiles the component at the given width.
func (c *Center) Class(width int) string {
	display := "flex"
	if c.inline {
		display = "inline-flex"
	}
	preset := style.CSS{
		"display":         display,
		"align-items":     "center",
		"justify-content": "center",
	}
	return c.compile(preset, c.effectiveWidth(width))
}
