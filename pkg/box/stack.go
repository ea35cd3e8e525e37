package box

import (
	"github.com/boxkit/boxkit/pkg/style"
)

// Stack arranges children in a vertical flex column with a default md gap.
type Stack struct {
	core
	align   any
	justify any
	gap     any
}

// NewStack creates a stack.
func NewStack() *Stack {
	return &Stack{}
}

// WithAlign sets align-items.
func (s *Stack) WithAlign(v any) *Stack {
	s.align = v
	return s
}

// WithJustify sets justify-content.
func (s *Stack) WithJustify(v any) *Stack {
	s.justify = v
	return s
}

// WithGap sets the gap between children; spacing-scale keys are substituted.
// The default is the scale's md entry.
func (s *Stack) WithGap(v any) *Stack {
	s.gap = v
	return s
}

// WithProps sets the shorthand props.
func (s *Stack) WithProps(p style.Props) *Stack {
	s.props = p
	return s
}

// WithCSS merges explicit CSS entries; later calls overwrite earlier keys.
func (s *Stack) WithCSS(css style.CSS) *Stack {
	s.setCSS(css)
	return s
}

// WithClass appends a literal class to every compile result.
func (s *Stack) WithClass(name string) *Stack {
	s.class = name
	return s
}

// NoReset drops the box-sizing reset class from compile results.
func (s *Stack) NoReset() *Stack {
	s.noReset = true
	return s
}

// WithContainerWidth pins the width this component compiles at.
func (s *Stack) WithContainerWidth(width int) *Stack {
	s.override = &width
	return s
}

// WithCompiler overrides the process-wide compiler for this component.
func (s *Stack) WithCompiler(c *style.Compiler) *Stack {
	s.compiler = c
	return s
}

// Class compiles the component at the given width.
func (s *Stack) Class(width int) string {
	w := s.effectiveWidth(width)
	preset := style.CSS{
		"display":        "flex",
		"flex-direction": "column",
	}
	if s.align != nil {
		preset["align-items"] = s.align
	}
	if s.justify != nil {
		preset["justify-content"] = s.justify
	}
	gap := s.gap
	if gap == nil {
		gap = "md"
	}
	if v := s.comp().SpacingAt(gap, w); v != nil {
		preset["gap"] = v
	}
	return s.compile(preset, w)
}

// containerSizes maps the named Container sizes to their max-widths.
var containerSizes = map[string]string{
	"xs": "540px",
	"sm": "720px",
	"md": "960px",
	"lg": "1140px",
	"xl": "1320px",
}

// Container centers content horizontally under a named max-width, with md
// horizontal padding unless the props say otherwise.
type Container struct {
	core
	size  any
	fluid bool
}

// NewContainer creates a container at the md size.
func NewContainer() *Container {
	return &Container{}
}

// WithSize picks the max-width: a named size (xs through xl), a literal
// length, or a responsive mapping of either.
func (c *Container) WithSize(v any) *Container {
	c.size = v
	return c
}

// Fluid removes the max-width cap.
func (c *Container) Fluid() *Container {
	c.fluid = true
	return c
}

// WithProps sets the shorthand props.
func (c *Container) WithProps(p style.Props) *Container {
	c.props = p
	return c
}

// WithCSS merges explicit CSS entries; later calls overwrite earlier keys.
func (c *Container) WithCSS(css style.CSS) *Container {
	c.setCSS(css)
	return c
}

// WithClass appends a literal class to every compile result.
func (c *Container) WithClass(name string) *Container {
	c.class = name
	return c
}

// NoReset drops the box-sizing reset class from compile results.
func (c *Container) NoReset() *Container {
	c.noReset = true
	return c
}

// WithContainerWidth pins the width this component compiles at.
func (c *Container) WithContainerWidth(width int) *Container {
	c.override = &width
	return c
}

// WithCompiler overrides the process-wide compiler for this component.
func (c *Container) WithCompiler(comp *style.Compiler) *Container {
	c.compiler = comp
	return c
}

// Class compiles the component at the given width.
func (c *Container) Class(width int) string {
	w := c.effectiveWidth(width)
	preset := style.CSS{
		"margin-left":  "auto",
		"margin-right": "auto",
	}
	preset["max-width"] = c.maxWidth(w)
	// Default horizontal padding yields to any padding set through props.
	if c.props.P == nil && c.props.Px == nil && c.props.Pl == nil && c.props.Pr == nil {
		preset["padding-left"] = c.comp().SpacingAt("md", w)
		preset["padding-right"] = c.comp().SpacingAt("md", w)
	}
	return c.compile(preset, w)
}

func (c *Container) maxWidth(width int) any {
	if c.fluid {
		return "100%"
	}
	size := c.comp().ResolveAt(c.size, width)
	if size == nil {
		return containerSizes["md"]
	}
	if name, ok := size.(string); ok {
		if mapped, ok := containerSizes[name]; ok {
			return mapped
		}
	}
	return size
}

// Space is an empty spacer: width and height only, both spacing-scale
// substituted.
type Space struct {
	core
	w any
	h any
}

// NewSpace creates a spacer.
func NewSpace() *Space {
	return &Space{}
}

// WithW sets the spacer width; spacing-scale keys are substituted.
func (s *Space) WithW(v any) *Space {
	s.w = v
	return s
}

// WithH sets the spacer height; spacing-scale keys are substituted.
func (s *Space) WithH(v any) *Space {
	s.h = v
	return s
}

// WithClass appends a literal class to every compile result.
func (s *Space) WithClass(name string) *Space {
	s.class = name
	return s
}

// NoReset drops the box-sizing reset class from compile results.
func (s *Space) NoReset() *Space {
	s.noReset = true
	return s
}

// WithContainerWidth pins the width this component compiles at.
func (s *Space) WithContainerWidth(width int) *Space {
	s.override = &width
	return s
}

// WithCompiler overrides the process-wide compiler for this component.
func (s *Space) WithCompiler(c *style.Compiler) *Space {
	s.compiler = c
	return s
}

// Class compiles the component at the given width.
func (s *Space) Class(width int) string {
	w := s.effectiveWidth(width)
	preset := style.CSS{}
	if v := s.comp().SpacingAt(s.w, w); v != nil {
		preset["width"] = v
	}
	if v := s.comp().SpacingAt(s.h, w); v != nil {
		preset["height"] = v
	}
	return s.compile(preset, w)
}
