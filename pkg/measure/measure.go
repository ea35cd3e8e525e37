// Package measure produces a live integer width for an observable element.
//
// An element is anything that can report a border-box width: a terminal, a
// layout region owned by a host framework, or a test fake. Elements that can
// also announce size changes implement ResizeSource; their notifications are
// debounced before the exposed width updates, so continuous resizes do not
// thrash consumers. The very first measurement on attach is synchronous and
// bypasses the debounce, so callers never observe a spurious 0 while a timer
// is pending.
//
// Widths are unit-agnostic: pixels for web targets, cells for terminals.
// The exposed width is 0 whenever measurement is disabled, the element is
// absent or unmeasurable, or observation has been torn down; callers must
// treat 0 as "unknown", not as a real container width.
package measure

import (
	"math"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/boxkit/boxkit/pkg/debounce"
)

// DefaultDebounce is the debounce window applied to resize notifications:
// roughly one frame at 60 Hz.
const DefaultDebounce = 16 * time.Millisecond

// Element is a source whose border-box width can be measured. ok is false
// when the source cannot report a border-box size (for a terminal: the file
// descriptor is not a TTY).
type Element interface {
	BoxWidth() (w float64, ok bool)
}

// ContentSized is an optional Element capability: a content-rect width used
// as a fallback when the border-box size is unavailable.
type ContentSized interface {
	ContentWidth() float64
}

// ResizeSource is an optional Element capability. OnResize registers a
// size-change callback and returns a function that unregisters it. Elements
// without this capability are measured once on attach and never again.
type ResizeSource interface {
	OnResize(fn func()) (stop func())
}

// Options configures an Observer.
type Options struct {
	// Disabled suppresses all measurement; the width stays 0.
	Disabled bool

	// Debounce is the quiet window applied to resize notifications.
	// Zero or negative means DefaultDebounce.
	Debounce time.Duration

	// OnChange, when set, is invoked with the new width every time the
	// exposed width changes, including the initial synchronous measurement
	// and the reset to 0 on disable or Close.
	OnChange func(width int)

	// Logger receives debug diagnostics. The zero Logger is valid and
	// silent.
	Logger zerolog.Logger
}

// Observer tracks the width of one element for the lifetime of a scope.
// Create one with Observe, read it with Width, release it with Close.
type Observer struct {
	el  Element
	opt Options
	deb *debounce.Debouncer
	log zerolog.Logger

	mu       sync.Mutex
	width    int
	disabled bool
	closed   bool
	stop     func()
}

// Observe attaches to el and returns an Observer whose Width tracks the
// element's border-box width. A nil element, or Disabled set, yields an
// Observer permanently reporting 0 until re-enabled or closed.
//
// An explicit caller-supplied width (a container-width override) should not
// go through this package at all: the override supersedes measurement
// entirely, so callers with one simply never create an Observer.
func Observe(el Element, opt Options) *Observer {
	if opt.Debounce <= 0 {
		opt.Debounce = DefaultDebounce
	}
	o := &Observer{
		el:       el,
		opt:      opt,
		deb:      debounce.New(opt.Debounce),
		log:      opt.Logger,
		disabled: opt.Disabled,
	}
	if !o.disabled {
		o.attach()
	}
	return o
}

// ObserveContainer is Observe under its historical name; the two are
// behaviorally identical.
func ObserveContainer(el Element, opt Options) *Observer {
	return Observe(el, opt)
}

// Width returns the current width: the last applied measurement, or 0 while
// disabled, unmeasured, or closed.
func (o *Observer) Width() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.width
}

// SetDisabled toggles measurement. Disabling resets the width to 0, cancels
// any pending debounce timer, and stops observation. Re-enabling re-attaches
// with a fresh synchronous measurement.
func (o *Observer) SetDisabled(disabled bool) {
	o.mu.Lock()
	if o.closed || o.disabled == disabled {
		o.mu.Unlock()
		return
	}
	o.disabled = disabled
	o.mu.Unlock()

	if disabled {
		o.detach()
		o.apply(0)
		return
	}
	o.attach()
}

// Close stops observation and resets the width to 0. No callback fires after
// Close returns. Closing twice is harmless.
func (o *Observer) Close() {
	o.mu.Lock()
	if o.closed {
		o.mu.Unlock()
		return
	}
	o.closed = true
	o.width = 0
	o.mu.Unlock()

	o.detach()
	o.log.Debug().Msg("measure: observer closed")
}

// attach takes the immediate synchronous measurement and, when the element
// can announce resizes, routes its notifications through the debouncer.
func (o *Observer) attach() {
	if o.el == nil {
		return
	}

	// Synchronous first measurement, deliberately not debounced: the first
	// consumer read must see a best-effort width rather than a 0 flash.
	o.apply(measureElement(o.el))

	src, ok := o.el.(ResizeSource)
	if !ok {
		o.log.Debug().Msg("measure: element has no resize source; static measurement only")
		return
	}

	stop := src.OnResize(func() {
		o.deb.Trigger(func() {
			o.mu.Lock()
			dead := o.closed || o.disabled
			o.mu.Unlock()
			if dead {
				return
			}
			o.apply(measureElement(o.el))
		})
	})

	o.mu.Lock()
	if o.closed || o.disabled {
		// Torn down while subscribing; release immediately.
		o.mu.Unlock()
		if stop != nil {
			stop()
		}
		return
	}
	o.stop = stop
	o.mu.Unlock()
}

// detach releases the resize subscription and any pending timer. Safe to
// call on every exit path.
func (o *Observer) detach() {
	o.deb.Cancel()

	o.mu.Lock()
	stop := o.stop
	o.stop = nil
	o.mu.Unlock()

	if stop != nil {
		stop()
	}
}

// apply stores a width and notifies on change.
func (o *Observer) apply(width int) {
	o.mu.Lock()
	if o.closed {
		o.mu.Unlock()
		return
	}
	changed := o.width != width
	o.width = width
	o.mu.Unlock()

	if !changed {
		return
	}
	o.log.Debug().Int("width", width).Msg("measure: width updated")
	if o.opt.OnChange != nil {
		o.opt.OnChange(width)
	}
}

// measureElement reads one width: border-box when the element reports one,
// content width as a fallback, 0 otherwise. Results are floored and clamped
// at 0.
func measureElement(el Element) int {
	if el == nil {
		return 0
	}
	if w, ok := el.BoxWidth(); ok {
		return floorWidth(w)
	}
	if cs, ok := el.(ContentSized); ok {
		return floorWidth(cs.ContentWidth())
	}
	return 0
}

func floorWidth(w float64) int {
	if w <= 0 || math.IsNaN(w) {
		return 0
	}
	return int(math.Floor(w))
}
