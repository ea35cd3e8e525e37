// Package logger builds the zerolog instances handed to boxkit's subsystems.
//
// The binary owns exactly one root logger, configured from CLI flags. Library
// packages never import this package; they accept a zerolog.Logger in their
// options and stay silent when given the zero value. For hands out a scoped
// instance with the component recorded on every entry.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options selects the level, format, and destination of the root logger.
type Options struct {
	// Level is a zerolog level name (trace, debug, info, warn, error).
	// Empty means info.
	Level string

	// Pretty switches from JSON lines to the human console format.
	Pretty bool

	// Writer is the destination. Nil means stderr.
	Writer io.Writer
}

// Logger is the binary's root logger. All methods are safe on a nil
// receiver, which behaves as a disabled logger.
type Logger struct {
	base zerolog.Logger
}

// New builds the root logger. An unknown level name is an error.
func New(opts Options) (*Logger, error) {
	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}

	level := zerolog.InfoLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, err
		}
		level = parsed
	}

	if opts.Pretty {
		console := zerolog.NewConsoleWriter()
		console.Out = w
		console.TimeFormat = time.RFC3339
		w = console
	}

	base := zerolog.New(w).Level(level).With().Timestamp().Logger()
	return &Logger{base: base}, nil
}

// Zerolog returns the root zerolog instance.
func (l *Logger) Zerolog() zerolog.Logger {
	if l == nil {
		return zerolog.Nop()
	}
	return l.base
}

// For returns a scoped logger that stamps the component name on every
// entry, so lines from the preview server, the theme watcher, and the
// gallery stay attributable when they interleave.
func (l *Logger) For(component string) zerolog.Logger {
	if l == nil {
		return zerolog.Nop()
	}
	return l.base.With().Str("component", component).Logger()
}

// Info writes one informational entry through the root logger.
func (l *Logger) Info(msg string) {
	if l == nil {
		return
	}
	l.base.Info().Msg(msg)
}

// Error writes one error entry, attaching err when non-nil.
func (l *Logger) Error(err error, msg string) {
	if l == nil {
		return
	}
	evt := l.base.Error()
	if err != nil {
		evt = evt.Err(err)
	}
	evt.Msg(msg)
}
