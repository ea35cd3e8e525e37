package box

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/boxkit/boxkit/pkg/style"
)

// Grid lays children out on an explicit CSS grid template.
type Grid struct {
	core
	columns  any
	rows     any
	autoFlow any
	gutter   any
	rowGap   any
	colGap   any
}

// NewGrid creates a grid.
func NewGrid() *Grid {
	return &Grid{}
}

// WithColumns sets grid-template-columns.
func (g *Grid) WithColumns(v any) *Grid {
	g.columns = v
	return g
}

// WithRows sets grid-template-rows.
func (g *Grid) WithRows(v any) *Grid {
	g.rows = v
	return g
}

// WithAutoFlow sets grid-auto-flow.
func (g *Grid) WithAutoFlow(v any) *Grid {
	g.autoFlow = v
	return g
}

// WithGutter sets the gap on both axes; spacing-scale keys are substituted.
func (g *Grid) WithGutter(v any) *Grid {
	g.gutter = v
	return g
}

// WithRowGap sets row-gap; spacing-scale keys are substituted.
func (g *Grid) WithRowGap(v any) *Grid {
	g.rowGap = v
	return g
}

// WithColumnGap sets column-gap; spacing-scale keys are substituted.
func (g *Grid) WithColumnGap(v any) *Grid {
	g.colGap = v
	return g
}

// WithProps sets the shorthand props.
func (g *Grid) WithProps(p style.Props) *Grid {
	g.props = p
	return g
}

// WithCSS merges explicit CSS entries; later calls overwrite earlier keys.
func (g *Grid) WithCSS(css style.CSS) *Grid {
	g.setCSS(css)
	return g
}

// WithClass appends a literal class to every compile result.
func (g *Grid) WithClass(name string) *Grid {
	g.class = name
	return g
}

// NoReset drops the box-sizing reset class from compile results.
func (g *Grid) NoReset() *Grid {
	g.noReset = true
	return g
}

// WithContainerWidth pins the width this component compiles at.
func (g *Grid) WithContainerWidth(width int) *Grid {
	g.override = &width
	return g
}

// WithCompiler overrides the process-wide compiler for this component.
func (g *Grid) WithCompiler(c *style.Compiler) *Grid {
	g.compiler = c
	return g
}

// Class compiles the component at the given width.
func (g *Grid) Class(width int) string {
	w := g.effectiveWidth(width)
	preset := style.CSS{"display": "grid"}
	if g.columns != nil {
		preset["grid-template-columns"] = g.columns
	}
	if g.rows != nil {
		preset["grid-template-rows"] = g.rows
	}
	if g.autoFlow != nil {
		preset["grid-auto-flow"] = g.autoFlow
	}
	if v := g.comp().SpacingAt(g.gutter, w); v != nil {
		preset["gap"] = v
	}
	if v := g.comp().SpacingAt(g.rowGap, w); v != nil {
		preset["row-gap"] = v
	}
	if v := g.comp().SpacingAt(g.colGap, w); v != nil {
		preset["column-gap"] = v
	}
	return g.compile(preset, w)
}

// AreaGrid is a grid defined by named template areas. Areas are given as
// rows of space-separated cell names; each row is quoted into the
// grid-template-areas value. A responsive value may map breakpoints to
// different row sets.
type AreaGrid struct {
	core
	areas   any
	columns any
	rows    any
	gutter  any
}

// NewAreaGrid creates an area grid.
func NewAreaGrid() *AreaGrid {
	return &AreaGrid{}
}

// WithAreas sets the template rows: a []string of rows, a single pre-quoted
// string, or a responsive mapping of either.
func (a *AreaGrid) WithAreas(v any) *AreaGrid {
	a.areas = v
	return a
}

// WithColumns sets grid-template-columns.
func (a *AreaGrid) WithColumns(v any) *AreaGrid {
	a.columns = v
	return a
}

// WithRows sets grid-template-rows.
func (a *AreaGrid) WithRows(v any) *AreaGrid {
	a.rows = v
	return a
}

// WithGutter sets the gap on both axes; spacing-scale keys are substituted.
func (a *AreaGrid) WithGutter(v any) *AreaGrid {
	a.gutter = v
	return a
}

// WithProps sets the shorthand props.
func (a *AreaGrid) WithProps(p style.Props) *AreaGrid {
	a.props = p
	return a
}

// WithCSS merges explicit CSS entries; later calls overwrite earlier keys.
func (a *AreaGrid) WithCSS(css style.CSS) *AreaGrid {
	a.setCSS(css)
	return a
}

// WithClass appends a literal class to every compile result.
func (a *AreaGrid) WithClass(name string) *AreaGrid {
	a.class = name
	return a
}

// NoReset drops the box-sizing reset class from compile results.
func (a *AreaGrid) NoReset() *AreaGrid {
	a.noReset = true
	return a
}

// WithContainerWidth pins the width this component compiles at.
func (a *AreaGrid) WithContainerWidth(width int) *AreaGrid {
	a.override = &width
	return a
}

// WithCompiler overrides the process-wide compiler for this component.
func (a *AreaGrid) WithCompiler(c *style.Compiler) *AreaGrid {
	a.compiler = c
	return a
}

// Class compiles the component at the given width.
func (a *AreaGrid) Class(width int) string {
	w := a.effectiveWidth(width)
	preset := style.CSS{"display": "grid"}
	if areas := formatAreas(a.comp().ResolveAt(a.areas, w)); areas != "" {
		preset["grid-template-areas"] = areas
	}
	if a.columns != nil {
		preset["grid-template-columns"] = a.columns
	}
	if a.rows != nil {
		preset["grid-template-rows"] = a.rows
	}
	if v := a.comp().SpacingAt(a.gutter, w); v != nil {
		preset["gap"] = v
	}
	return a.compile(preset, w)
}

// formatAreas renders a resolved areas value as a grid-template-areas
// literal: each row double-quoted, rows joined by single spaces. Strings
// that already carry quotes pass through untouched.
func formatAreas(v any) string {
	switch rows := v.(type) {
	case nil:
		return ""
	case []string:
		quoted := make([]string, len(rows))
		for i, row := range rows {
			quoted[i] = strconv.Quote(row)
		}
		return strings.Join(quoted, " ")
	case string:
		if strings.Contains(rows, `"`) {
			return rows
		}
		return strconv.Quote(rows)
	default:
		return fmt.Sprint(v)
	}
}

// SimpleGrid is an equal-column grid. The column count may vary per
// breakpoint; alternatively a minimum child width turns it into an auto-fit
// grid.
type SimpleGrid struct {
	core
	cols          any
	minChildWidth any
	spacing       any
	vSpacing      any
}

// NewSimpleGrid creates a simple grid.
func NewSimpleGrid() *SimpleGrid {
	return &SimpleGrid{}
}

// WithCols sets the column count; a responsive value varies it per
// breakpoint.
func (s *SimpleGrid) WithCols(v any) *SimpleGrid {
	s.cols = v
	return s
}

// WithMinChildWidth switches the template to auto-fit columns of at least
// the given width. When set, the column count is ignored.
func (s *SimpleGrid) WithMinChildWidth(v any) *SimpleGrid {
	s.minChildWidth = v
	return s
}

// WithSpacing sets the gap on both axes; spacing-scale keys are substituted.
func (s *SimpleGrid) WithSpacing(v any) *SimpleGrid {
	s.spacing = v
	return s
}

// WithVerticalSpacing sets row-gap separately; spacing-scale keys are
// substituted.
func (s *SimpleGrid) WithVerticalSpacing(v any) *SimpleGrid {
	s.vSpacing = v
	return s
}

// WithProps sets the shorthand props.
func (s *SimpleGrid) WithProps(p style.Props) *SimpleGrid {
	s.props = p
	return s
}

// WithCSS merges explicit CSS entries; later calls overwrite earlier keys.
func (s *SimpleGrid) WithCSS(css style.CSS) *SimpleGrid {
	s.setCSS(css)
	return s
}

// WithClass appends a literal class to every compile result.
func (s *SimpleGrid) WithClass(name string) *SimpleGrid {
	s.class = name
	return s
}

// NoReset drops the box-sizing reset class from compile results.
func (s *SimpleGrid) NoReset() *SimpleGrid {
	s.noReset = true
	return s
}

// WithContainerWidth pins the width this component compiles at.
func (s *SimpleGrid) WithContainerWidth(width int) *SimpleGrid {
	s.override = &width
	return s
}

// WithCompiler overrides the process-wide compiler for this component.
func (s *SimpleGrid) WithCompiler(c *style.Compiler) *SimpleGrid {
	s.compiler = c
	return s
}

// Class compiles the component at the given width.
func (s *SimpleGrid) Class(width int) string {
	w := s.effectiveWidth(width)
	preset := style.CSS{"display": "grid"}
	if template := s.template(w); template != "" {
		preset["grid-template-columns"] = template
	}
	if v := s.comp().SpacingAt(s.spacing, w); v != nil {
		preset["gap"] = v
	}
	if v := s.comp().SpacingAt(s.vSpacing, w); v != nil {
		preset["row-gap"] = v
	}
	return s.compile(preset, w)
}

func (s *SimpleGrid) template(width int) string {
	if s.minChildWidth != nil {
		min := s.comp().ResolveAt(s.minChildWidth, width)
		if min == nil {
			return ""
		}
		if n, ok := asInt(min); ok {
			return fmt.Sprintf("repeat(auto-fit, minmax(%dpx, 1fr))", n)
		}
		return fmt.Sprintf("repeat(auto-fit, minmax(%v, 1fr))", min)
	}

	cols := s.comp().ResolveAt(s.cols, width)
	if cols == nil {
		return ""
	}
	if n, ok := asInt(cols); ok && n > 0 {
		return fmt.Sprintf("repeat(%d, minmax(0, 1fr))", n)
	}
	// A non-numeric count is taken as a literal template.
	return fmt.Sprint(cols)
}

// asInt narrows a resolved scalar to an int when it carries one.
func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case uint:
		return int(n), true
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return int(n), true
	case uint64:
		return int(n), true
	case float64:
		if n == float64(int(n)) {
			return int(n), true
		}
	case float32:
		if n == float32(int(n)) {
			return int(n), true
		}
	}
	return 0, false
}
