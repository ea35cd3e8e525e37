package box

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/boxkit/boxkit/pkg/measure"
)

// Compilable is any component this package can mount: it compiles to a class
// list at a width and may carry a container-width override.
type Compilable interface {
	Class(width int) string
	OverrideWidth() (int, bool)
}

// MountOptions configures Mount.
type MountOptions struct {
	// Disabled suppresses measurement; the component compiles at width 0.
	Disabled bool

	// Debounce is the resize quiet window, defaulting to the measure
	// package's frame-length default.
	Debounce time.Duration

	// OnClass, when set, is invoked each time recompilation produces a new
	// class list, including the initial compile.
	OnClass func(class string, width int)

	// Logger receives measurement diagnostics.
	Logger zerolog.Logger
}

// Mounted binds one component to one measured element: every debounced
// width change recompiles the component, and the latest class list is
// always available synchronously.
type Mounted struct {
	target  Compilable
	onClass func(string, int)
	obs     *measure.Observer

	mu       sync.Mutex
	class    string
	width    int
	compiled bool
	closed   bool
}

// Mount compiles target against el's measured width for the lifetime of the
// returned Mounted. When the component carries a container-width override,
// no observation is attached at all: the component compiles once at the
// override value, which is used as-is, zero and negative included.
func Mount(target Compilable, el measure.Element, opts MountOptions) *Mounted {
	m := &Mounted{target: target, onClass: opts.OnClass}

	if w, ok := target.OverrideWidth(); ok {
		m.recompile(w)
		return m
	}

	m.obs = measure.Observe(el, measure.Options{
		Disabled: opts.Disabled,
		Debounce: opts.Debounce,
		OnChange: m.recompile,
		Logger:   opts.Logger,
	})

	// The observer's synchronous first measurement compiles via OnChange
	// when it moves the width off 0; this covers the width-0 start.
	m.mu.Lock()
	needInitial := !m.compiled
	m.mu.Unlock()
	if needInitial {
		m.recompile(m.obs.Width())
	}
	return m
}

// Class returns the most recently compiled class list.
func (m *Mounted) Class() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.class
}

// Width returns the width of the most recent compilation.
func (m *Mounted) Width() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.width
}

// Refresh recompiles at the current width. Call it after reconfiguring the
// breakpoint table or spacing scale, which changes compile results without
// any width change.
func (m *Mounted) Refresh() {
	m.mu.Lock()
	w := m.width
	closed := m.closed
	m.mu.Unlock()
	if closed {
		return
	}
	m.recompile(w)
}

// Close stops observation. The last class list stays readable; no callback
// fires afterwards.
func (m *Mounted) Close() {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	m.closed = true
	m.mu.Unlock()

	if m.obs != nil {
		m.obs.Close()
	}
}

func (m *Mounted) recompile(width int) {
	class := m.target.Class(width)

	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	changed := !m.compiled || class != m.class || width != m.width
	m.compiled = true
	m.class = class
	m.width = width
	m.mu.Unlock()

	if changed && m.onClass != nil {
		m.onClass(class, width)
	}
}
