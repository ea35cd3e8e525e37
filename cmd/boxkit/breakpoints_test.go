package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/boxkit/boxkit/pkg/box"
)

func TestBreakpointsCommandListsDefaults(t *testing.T) {
	out, err := runCommand(t, "breakpoints")
	require.NoError(t, err)
	require.Contains(t, out, "BREAKPOINT")
	require.Contains(t, out, "base")
	require.Contains(t, out, "640px")
	require.Contains(t, out, "1280px")
	require.Contains(t, out, "SPACING")
	require.Contains(t, out, "1rem")
}

func TestBreakpointsCommandReflectsTheme(t *testing.T) {
	t.Cleanup(box.ResetConfig)

	path := filepath.Join(t.TempDir(), "theme.yaml")
	theme := "breakpoints:\n  tablet: 900\nspacing:\n  md: 2rem\n"
	require.NoError(t, os.WriteFile(path, []byte(theme), 0o644))

	out, err := runCommand(t, "--config", path, "breakpoints")
	require.NoError(t, err)
	require.Contains(t, out, "tablet")
	require.Contains(t, out, "900px")
	require.Contains(t, out, "2rem")
}
