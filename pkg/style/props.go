// Package style compiles box-model props into CSS declarations and obtains
// stable class identifiers for them from a stylesheet backend.
//
// A compilation request carries two layers: the shorthand props (a small
// fixed vocabulary of margin, padding, size, and position aliases) and an
// explicit CSS map (the per-property escape hatch). Every value in either
// layer may be a plain scalar or a breakpoint-keyed mapping; the compiler
// resolves each against the current width, substitutes spacing-scale keys in
// the margin and padding families, and merges the layers with the explicit
// map winning every collision. The merged declaration is handed to a Sheet,
// which returns a class identifier that is stable for identical inputs.
package style

// Props is the shorthand layer: the fixed vocabulary of box-model aliases.
// Every field accepts a scalar (string or number) or a breakpoint-keyed
// mapping (responsive.BP). The zero value contributes nothing.
//
// Margin and padding values are passed through the spacing scale after
// responsive resolution, so "md" becomes the scale's md entry while literal
// lengths ("3px", 12) flow through unchanged. Size, inset, and position
// values are never spacing-substituted.
type Props struct {
	// Margins. M sets all four sides, Mx/My the horizontal and vertical
	// pairs, the rest one side each. More specific fields override broader
	// ones when both are set.
	M  any
	Mx any
	My any
	Mt any
	Mr any
	Mb any
	Ml any

	// Paddings, same shape as margins.
	P  any
	Px any
	Py any
	Pt any
	Pr any
	Pb any
	Pl any

	// Sizes.
	W    any
	MinW any
	MaxW any
	H    any
	MinH any
	MaxH any

	// Offsets. Inset sets all four, the named fields override it per side.
	Inset  any
	Top    any
	Right  any
	Bottom any
	Left   any

	// Pos is the CSS position keyword.
	Pos any
}

// CSS is the explicit layer: CSS property name to value. Keys may be written
// in camelCase or kebab-case; they are normalized before merging. Values may
// be scalars or breakpoint-keyed mappings. Explicit entries always win over
// the shorthand layer and are never spacing-substituted.
type CSS map[string]any

// Decl is one finalized style declaration: canonical kebab-case CSS property
// name to a resolved, non-responsive value. It is what a Sheet receives.
type Decl map[string]any

// shorthand describes one Props field: its expansion targets and whether its
// value belongs to the spacing family.
type shorthand struct {
	targets []string
	spacing bool
	value   func(*Props) any
}

// shorthands lists the expansion in application order: broad aliases first,
// so that the specific ones written later override them.
var shorthands = []shorthand{
	{[]string{"margin"}, true, func(p *Props) any { return p.M }},
	{[]string{"margin-left", "margin-right"}, true, func(p *Props) any { return p.Mx }},
	{[]string{"margin-top", "margin-bottom"}, true, func(p *Props) any { return p.My }},
	{[]string{"margin-top"}, true, func(p *Props) any { return p.Mt }},
	{[]string{"margin-right"}, true, func(p *Props) any { return p.Mr }},
	{[]string{"margin-bottom"}, true, func(p *Props) any { return p.Mb }},
	{[]string{"margin-left"}, true, func(p *Props) any { return p.Ml }},

	{[]string{"padding"}, true, func(p *Props) any { return p.P }},
	{[]string{"padding-left", "padding-right"}, true, func(p *Props) any { return p.Px }},
	{[]string{"padding-top", "padding-bottom"}, true, func(p *Props) any { return p.Py }},
	{[]string{"padding-top"}, true, func(p *Props) any { return p.Pt }},
	{[]string{"padding-right"}, true, func(p *Props) any { return p.Pr }},
	{[]string{"padding-bottom"}, true, func(p *Props) any { return p.Pb }},
	{[]string{"padding-left"}, true, func(p *Props) any { return p.Pl }},

	{[]string{"width"}, false, func(p *Props) any { return p.W }},
	{[]string{"min-width"}, false, func(p *Props) any { return p.MinW }},
	{[]string{"max-width"}, false, func(p *Props) any { return p.MaxW }},
	{[]string{"height"}, false, func(p *Props) any { return p.H }},
	{[]string{"min-height"}, false, func(p *Props) any { return p.MinH }},
	{[]string{"max-height"}, false, func(p *Props) any { return p.MaxH }},

	{[]string{"top", "right", "bottom", "left"}, false, func(p *Props) any { return p.Inset }},
	{[]string{"top"}, false, func(p *Props) any { return p.Top }},
	{[]string{"right"}, false, func(p *Props) any { return p.Right }},
	{[]string{"bottom"}, false, func(p *Props) any { return p.Bottom }},
	{[]string{"left"}, false, func(p *Props) any { return p.Left }},

	{[]string{"position"}, false, func(p *Props) any { return p.Pos }},
}
