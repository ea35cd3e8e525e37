package style

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode"
)

// unitless lists the CSS properties whose bare-number values carry no unit.
// Numbers assigned to any other property are serialized with a px suffix.
var unitless = map[string]struct{}{
	"animation-iteration-count": {},
	"aspect-ratio":              {},
	"column-count":              {},
	"columns":                   {},
	"flex":                      {},
	"flex-grow":                 {},
	"flex-shrink":               {},
	"font-weight":               {},
	"grid-column":               {},
	"grid-column-end":           {},
	"grid-column-start":         {},
	"grid-row":                  {},
	"grid-row-end":              {},
	"grid-row-start":            {},
	"line-height":               {},
	"opacity":                   {},
	"order":                     {},
	"orphans":                   {},
	"scale":                     {},
	"tab-size":                  {},
	"widows":                    {},
	"z-index":                   {},
	"zoom":                      {},
}

// NormalizeProp converts a camelCase property name to its canonical
// kebab-case form. Names already in kebab-case pass through unchanged, so a
// CSS map may freely mix both spellings of the same property without the
// merge treating them as distinct.
func NormalizeProp(name string) string {
	var b strings.Builder
	b.Grow(len(name) + 4)
	for _, r := range name {
		if unicode.IsUpper(r) {
			b.WriteByte('-')
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Serialize renders a declaration to its canonical text form: properties
// sorted, kebab-case, "prop:value" pairs joined by semicolons. Identical
// declarations always serialize identically, which is what makes class
// identifiers stable. Nil-valued entries are dropped; an empty declaration
// serializes to "".
//
// Sorting also emits every broad shorthand ahead of its side-specific
// variants (a property name is a prefix of its variants), so a rule holding
// both margin and margin-top cascades with the specific side winning.
func Serialize(d Decl) string {
	if len(d) == 0 {
		return ""
	}

	props := make([]string, 0, len(d))
	byProp := make(map[string]any, len(d))
	for k, v := range d {
		if v == nil {
			continue
		}
		p := NormalizeProp(k)
		if _, seen := byProp[p]; !seen {
			props = append(props, p)
		}
		byProp[p] = v
	}
	sort.Strings(props)

	var b strings.Builder
	for i, p := range props {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(p)
		b.WriteByte(':')
		b.WriteString(formatValue(p, byProp[p]))
	}
	return b.String()
}

// formatValue renders one value: strings pass through, numbers gain px
// unless the property is unitless, everything else falls back to fmt.
func formatValue(prop string, v any) string {
	switch n := v.(type) {
	case string:
		return n
	case int:
		return withUnit(prop, strconv.Itoa(n))
	case int8, int16, int32, int64:
		return withUnit(prop, fmt.Sprintf("%d", n))
	case uint, uint8, uint16, uint32, uint64:
		return withUnit(prop, fmt.Sprintf("%d", n))
	case float64:
		return withUnit(prop, strconv.FormatFloat(n, 'f', -1, 64))
	case float32:
		return withUnit(prop, strconv.FormatFloat(float64(n), 'f', -1, 32))
	default:
		return fmt.Sprint(v)
	}
}

func withUnit(prop, num string) string {
	if _, ok := unitless[prop]; ok || num == "0" {
		return num
	}
	return num + "px"
}
