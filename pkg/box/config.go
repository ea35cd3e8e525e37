package box

import (
	"github.com/boxkit/boxkit/pkg/breakpoint"
	"github.com/boxkit/boxkit/pkg/spacing"
)

// Config is a partial override of the process-wide configuration. Nil maps
// leave the corresponding table untouched.
type Config struct {
	Breakpoints breakpoint.Table
	Spacing     spacing.Scale
}

// Configure merges the override into the global breakpoint table and spacing
// scale. Supplied keys overwrite, missing keys retain their prior value.
// Configure is total: any value is accepted, including ones that resolve
// surprisingly, such as negative min widths.
func Configure(c Config) {
	if len(c.Breakpoints) > 0 {
		breakpoint.Configure(c.Breakpoints)
	}
	if len(c.Spacing) > 0 {
		spacing.Configure(c.Spacing)
	}
}

// ResetConfig restores both tables to their compiled-in defaults.
func ResetConfig() {
	breakpoint.Reset()
	spacing.Reset()
}

// Breakpoints returns a copy of the current breakpoint table.
func Breakpoints() breakpoint.Table {
	return breakpoint.Get()
}

// SpacingScale returns a copy of the current spacing scale.
func SpacingScale() spacing.Scale {
	return spacing.Get()
}
