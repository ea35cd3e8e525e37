package tests

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/boxkit/boxkit/pkg/box"
	"github.com/boxkit/boxkit/pkg/measure"
	"github.com/boxkit/boxkit/pkg/responsive"
	"github.com/boxkit/boxkit/pkg/style"
)

func writeTheme(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "theme.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func waitClass(t *testing.T, classes <-chan string) string {
	t.Helper()
	select {
	case class := <-classes:
		return class
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a compiled class")
		return ""
	}
}

func TestIntegrationThemeFileDrivesCompilation(t *testing.T) {
	t.Cleanup(box.ResetConfig)

	path := writeTheme(t, t.TempDir(), "breakpoints:\n  poster: 1800\nspacing:\n  gutter: 2.5rem\n")
	require.NoError(t, box.LoadConfig(path))

	sheet := style.NewStyleSheet()
	card := box.NewBox().
		WithProps(style.Props{P: responsive.BP{"base": "md", "poster": "gutter"}}).
		WithCompiler(style.NewCompiler(sheet))

	narrow := card.Class(800)
	wide := card.Class(2000)
	require.NotEqual(t, narrow, wide)

	css := sheet.CSS()
	require.Contains(t, css, "padding:1rem")
	require.Contains(t, css, "padding:2.5rem")
}

func TestIntegrationMountRecompilesAcrossBreakpoints(t *testing.T) {
	grid := box.NewSimpleGrid().
		WithCols(responsive.BP{"base": 1, "md": 3}).
		WithCompiler(style.NewCompiler(style.NewStyleSheet()))

	el := measure.NewManual(480)
	classes := make(chan string, 8)
	mounted := box.Mount(grid, el, box.MountOptions{
		Debounce: 5 * time.Millisecond,
		OnClass:  func(class string, width int) { classes <- class },
	})
	defer mounted.Close()

	narrow := waitClass(t, classes)

	el.Set(900)
	wide := waitClass(t, classes)
	require.NotEqual(t, narrow, wide)
	require.Equal(t, 900, mounted.Width())

	mounted.Close()
	el.Set(480)
	select {
	case class := <-classes:
		t.Fatalf("callback after close: %q", class)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestIntegrationWatchReloadUpdatesScale(t *testing.T) {
	t.Cleanup(box.ResetConfig)

	dir := t.TempDir()
	path := writeTheme(t, dir, "spacing:\n  md: 1rem\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloaded := make(chan box.FileConfig, 1)
	require.NoError(t, box.WatchConfig(ctx, path, box.WatchOptions{
		Debounce: 5 * time.Millisecond,
		OnReload: func(fc box.FileConfig) { reloaded <- fc },
	}))

	require.NoError(t, os.WriteFile(path, []byte("spacing:\n  md: 9rem\n"), 0o644))

	select {
	case <-reloaded:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for the theme reload")
	}
	require.Equal(t, "9rem", box.SpacingScale()["md"])
}
