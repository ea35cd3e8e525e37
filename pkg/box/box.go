// Package box provides the layout components: declarative wrappers that
// compile box-model props into class identifiers at a given container width.
//
// Every component carries the same base surface (props, explicit CSS, a
// literal class, an optional container-width override, a reset toggle) plus
// its own defining declarations: Flex and Stack arrange children with
// flexbox, Grid and its variants with CSS grid, Container centers content at
// a named max-width, Space is an empty spacer. Components are thin and
// stateless; all resolution and merging happens in the style compiler.
//
// The package also owns the combined configuration surface: programmatic
// Configure/ResetConfig over the breakpoint table and spacing scale, a YAML
// theme file loader, and a debounced file watcher for hot reload.
package box

import (
	"github.com/boxkit/boxkit/pkg/style"
)

// core is the shared component state. Concrete components embed it and
// re-expose the setters with their own receiver type to keep call chains
// fluent.
type core struct {
	props    style.Props
	css      style.CSS
	class    string
	noReset  bool
	override *int
	compiler *style.Compiler
}

func (c *core) comp() *style.Compiler {
	if c.compiler != nil {
		return c.compiler
	}
	return style.Default()
}

// effectiveWidth applies the container-width override, when present, over
// the width the caller measured.
func (c *core) effectiveWidth(width int) int {
	if c.override != nil {
		return *c.override
	}
	return width
}

// OverrideWidth reports the explicit container width, when one was set. An
// override supersedes measurement entirely and its value is used as-is,
// zeroes and negatives included.
func (c *core) OverrideWidth() (int, bool) {
	if c.override == nil {
		return 0, false
	}
	return *c.override, true
}

func (c *core) setCSS(css style.CSS) {
	if c.css == nil {
		c.css = make(style.CSS, len(css))
	}
	for k, v := range css {
		c.css[k] = v
	}
}

// compile merges the component preset under the user's explicit CSS and runs
// the request. width must already be the effective width.
func (c *core) compile(preset style.CSS, width int) string {
	css := preset
	if len(c.css) > 0 {
		merged := make(style.CSS, len(preset)+len(c.css))
		for k, v := range preset {
			merged[style.NormalizeProp(k)] = v
		}
		for k, v := range c.css {
			merged[style.NormalizeProp(k)] = v
		}
		css = merged
	}
	return c.comp().Compile(style.Request{
		Props: c.props,
		CSS:   css,
		Width: width,
		Reset: !c.noReset,
		Class: c.class,
	})
}

// Box is the base primitive: props and explicit CSS with no preset
// declarations of its own.
type Box struct {
	core
}

// NewBox creates an empty Box.
func NewBox() *Box {
	return &Box{}
}

// WithProps sets the shorthand props.
func (b *Box) WithProps(p style.Props) *Box {
	b.props = p
	return b
}

// WithCSS merges explicit CSS entries; later calls overwrite earlier keys.
func (b *Box) WithCSS(css style.CSS) *Box {
	b.setCSS(css)
	return b
}

// WithClass appends a literal class to every compile result.
func (b *Box) WithClass(name string) *Box {
	b.class = name
	return b
}

// NoReset drops the box-sizing reset class from compile results.
func (b *Box) NoReset() *Box {
	b.noReset = true
	return b
}

// WithContainerWidth pins the width this component compiles at, superseding
// any measured width.
func (b *Box) WithContainerWidth(width int) *Box {
	b.override = &width
	return b
}

// WithCompiler overrides the process-wide compiler for this component.
func (b *Box) WithCompiler(c *style.Compiler) *Box {
	b.compiler = c
	return b
}

// Class compiles the component at the given width and returns its class
// list.
func (b *Box) Class(width int) string {
	return b.compile(nil, b.effectiveWidth(width))
}
