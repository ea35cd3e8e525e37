// Package responsive resolves style values that may vary per breakpoint
// against a concrete container width.
//
// A responsive value is either a plain scalar, which applies at every width,
// or a BP mapping from breakpoint name to scalar. Resolution is mobile-first:
// of the entries whose breakpoint minimum width does not exceed the current
// width, the one with the largest minimum width wins.
package responsive

import (
	"sort"

	"github.com/boxkit/boxkit/pkg/breakpoint"
)

// BP is a responsive value literal keyed by breakpoint name. It is a type
// alias, so a plain map[string]any works anywhere a BP does.
//
//	style.Props{W: responsive.BP{"base": "100%", "md": 480}}
//
// Entries with a nil value are treated as absent.
type BP = map[string]any

type entry struct {
	name     string
	minWidth int
	value    any
}

// Resolve picks the scalar that applies at the given width.
//
// nil resolves to nil. A non-mapping value resolves to itself unchanged,
// whatever the width: scalars are not subject to breakpoint logic. A mapping
// is resolved by sorting its defined entries ascending by the breakpoint's
// minimum width (names missing from the table read as 0 and therefore always
// qualify) and keeping the last entry whose minimum width is ≤ width. When no
// entry qualifies, which happens when the width sits below every defined
// breakpoint, the result is nil and callers supply their own fallback.
//
// Entries whose breakpoints share a minimum width are ordered by breakpoint
// name; the default table has unique widths, so this only matters for
// hand-built tables.
//
// Resolve is pure: identical inputs produce identical outputs on every call.
func Resolve(value any, width int, table breakpoint.Table) any {
	if value == nil {
		return nil
	}

	mapping, ok := value.(map[string]any)
	if !ok {
		return value
	}

	entries := make([]entry, 0, len(mapping))
	for name, v := range mapping {
		if v == nil {
			continue
		}
		entries = append(entries, entry{name: name, minWidth: table[name], value: v})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].minWidth != entries[j].minWidth {
			return entries[i].minWidth < entries[j].minWidth
		}
		return entries[i].name < entries[j].name
	})

	var resolved any
	for _, e := range entries {
		if e.minWidth <= width {
			resolved = e.value
		}
	}
	return resolved
}

// IsMapping reports whether value would be treated as a per-breakpoint
// mapping by Resolve.
func IsMapping(value any) bool {
	_, ok := value.(map[string]any)
	return ok
}
