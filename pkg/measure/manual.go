package measure

import "sync"

// Manual is an Element fed by the caller instead of by a runtime. It is the
// bridge for host frameworks that deliver sizes as events (a Bubble Tea
// program forwarding WindowSizeMsg, a web host forwarding layout callbacks)
// and the standard fake in tests.
type Manual struct {
	mu    sync.RWMutex
	width float64
	subs  map[int]func()
	next  int
}

// NewManual returns a Manual element reporting width.
func NewManual(width float64) *Manual {
	return &Manual{width: width, subs: make(map[int]func())}
}

// BoxWidth reports the last width passed to Set.
func (m *Manual) BoxWidth() (float64, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.width, true
}

// Set stores a new width and notifies every subscriber.
func (m *Manual) Set(width float64) {
	m.mu.Lock()
	m.width = width
	fns := make([]func(), 0, len(m.subs))
	for _, fn := range m.subs {
		fns = append(fns, fn)
	}
	m.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// OnResize registers fn to run after every Set. The returned stop function
// unregisters it.
func (m *Manual) OnResize(fn func()) (stop func()) {
	m.mu.Lock()
	id := m.next
	m.next++
	m.subs[id] = fn
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		delete(m.subs, id)
		m.mu.Unlock()
	}
}
