package box

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/boxkit/boxkit/pkg/debounce"
	boxerrors "github.com/boxkit/boxkit/pkg/errors"
)

// WatchOptions configures WatchConfig.
type WatchOptions struct {
	// Debounce is the quiet window collapsing editor write bursts into one
	// reload. Zero or negative means the debounce package default.
	Debounce time.Duration

	// OnReload, when set, runs after each successful reapply with the
	// freshly parsed file.
	OnReload func(FileConfig)

	// OnError, when set, receives parse, validation, and watcher errors. A
	// failed reload keeps the previous configuration.
	OnError func(error)

	// Logger receives diagnostics. The zero Logger is valid and silent.
	Logger zerolog.Logger
}

// WatchConfig loads the theme file, then hot-reloads it on every change
// until ctx is canceled. The parent directory is watched rather than the
// file itself so editors that replace the file on save keep triggering.
//
// The initial load is synchronous; its error is returned. Later reload
// failures are reported through OnError and the previous configuration
// stays in effect.
func WatchConfig(ctx context.Context, path string, opts WatchOptions) error {
	if opts.Debounce <= 0 {
		opts.Debounce = debounce.DefaultDuration
	}
	log := opts.Logger

	if err := LoadConfig(path); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return boxerrors.NewWatchError(path, err)
	}

	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return boxerrors.NewWatchError(path, err)
	}

	target := filepath.Clean(path)
	deb := debounce.New(opts.Debounce)

	reload := func() {
		fc, err := ParseConfigFile(path)
		if err != nil {
			log.Warn().Err(err).Str("path", path).Msg("theme reload failed, keeping previous configuration")
			if opts.OnError != nil {
				opts.OnError(err)
			}
			return
		}
		fc.Apply()
		log.Info().Str("path", path).Msg("theme reloaded")
		if opts.OnReload != nil {
			opts.OnReload(fc)
		}
	}

	go func() {
		defer watcher.Close()
		defer deb.Cancel()

		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
					continue
				}
				deb.Trigger(reload)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Warn().Err(err).Str("path", path).Msg("theme watcher error")
				if opts.OnError != nil {
					opts.OnError(boxerrors.NewWatchError(path, err))
				}
			}
		}
	}()

	log.Debug().Str("path", path).Dur("debounce", opts.Debounce).Msg("watching theme file")
	return nil
}
