package style

import (
	"sort"
	"strings"

	"github.com/boxkit/boxkit/pkg/breakpoint"
	"github.com/boxkit/boxkit/pkg/responsive"
	"github.com/boxkit/boxkit/pkg/spacing"
)

// Request is one transient compilation input: the two prop layers, the width
// to resolve responsive values against, whether to include the reset layer,
// and a literal class to append to the result.
type Request struct {
	Props Props
	CSS   CSS
	Width int
	Reset bool
	Class string
}

// Compiler resolves and merges prop layers into declarations and exchanges
// them for class identifiers. The zero value is not usable; construct with
// NewCompiler.
//
// Breakpoint and spacing lookups are injected so tests and multi-tenant
// hosts can pin their own tables; NewCompiler wires the process-wide
// managers.
type Compiler struct {
	sheet       Sheet
	breakpoints func() breakpoint.Table
	spacing     func(any) any
}

// NewCompiler returns a Compiler over the given sheet, reading the global
// breakpoint table and spacing scale at each compilation.
func NewCompiler(sheet Sheet) *Compiler {
	return &Compiler{
		sheet:       sheet,
		breakpoints: breakpoint.Get,
		spacing:     spacing.Resolve,
	}
}

// WithBreakpoints overrides the breakpoint source and returns the receiver.
func (c *Compiler) WithBreakpoints(fn func() breakpoint.Table) *Compiler {
	c.breakpoints = fn
	return c
}

// WithSpacing overrides the spacing substitution and returns the receiver.
func (c *Compiler) WithSpacing(fn func(any) any) *Compiler {
	c.spacing = fn
	return c
}

// Sheet returns the backend this compiler submits declarations to.
func (c *Compiler) Sheet() Sheet { return c.sheet }

// Compile produces the class list for one request: reset class first (when
// requested), then the generated class (when the merged declaration is
// non-empty), then the caller's literal class, joined by single spaces.
//
// An empty merge never reaches the sheet, so vacuous rules are not issued.
func (c *Compiler) Compile(req Request) string {
	d := c.Declarations(req.Props, req.CSS, req.Width)

	classes := make([]string, 0, 3)
	if req.Reset {
		if rs, ok := c.sheet.(interface{ EnsureReset() }); ok {
			rs.EnsureReset()
		}
		classes = append(classes, ResetClass)
	}
	if len(d) > 0 {
		if class := c.sheet.ClassFor(d); class != "" {
			classes = append(classes, class)
		}
	}
	if req.Class != "" {
		classes = append(classes, req.Class)
	}
	return strings.Join(classes, " ")
}

// Declarations resolves and merges the two layers at the given width without
// consulting the sheet. Shorthands expand broad-to-specific; explicit
// entries overlay them and win every collision.
func (c *Compiler) Declarations(props Props, css CSS, width int) Decl {
	bp := c.breakpoints()
	d := make(Decl)

	for _, sh := range shorthands {
		v := sh.value(&props)
		if v == nil {
			continue
		}
		r := responsive.Resolve(v, width, bp)
		if r == nil {
			continue
		}
		if sh.spacing {
			r = c.spacing(r)
		}
		for _, prop := range sh.targets {
			d[prop] = r
		}
	}

	// Sorted key walk keeps the overlay deterministic even when a CSS map
	// spells one property two ways.
	keys := make([]string, 0, len(css))
	for k := range css {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		v := css[k]
		if v == nil {
			continue
		}
		r := responsive.Resolve(v, width, bp)
		if r == nil {
			continue
		}
		d[NormalizeProp(k)] = r
	}

	return d
}

// ResolveAt resolves one responsive value against this compiler's breakpoint
// table at the given width. Components use it for prop values that shape
// declarations indirectly, such as a column count.
func (c *Compiler) ResolveAt(v any, width int) any {
	return responsive.Resolve(v, width, c.breakpoints())
}

// SpacingAt resolves a responsive value and then substitutes spacing-scale
// keys, for component props that take spacing values outside the margin and
// padding families (gaps, gutters).
func (c *Compiler) SpacingAt(v any, width int) any {
	r := responsive.Resolve(v, width, c.breakpoints())
	if r == nil {
		return nil
	}
	return c.spacing(r)
}

var defaultCompiler = NewCompiler(NewStyleSheet())

// Default returns the process-wide compiler, backed by a shared StyleSheet
// and the global configuration managers.
func Default() *Compiler { return defaultCompiler }

// Compile runs a request through the process-wide compiler.
func Compile(req Request) string { return defaultCompiler.Compile(req) }

// DefaultCSS dumps the process-wide sheet.
func DefaultCSS() string {
	if s, ok := defaultCompiler.sheet.(*StyleSheet); ok {
		return s.CSS()
	}
	return ""
}
