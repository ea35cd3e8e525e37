// Package breakpoint defines the process-wide breakpoint table that maps
// breakpoint names to the minimum container widths at which they apply.
//
// The table is read on every responsive resolution, so access goes through a
// Manager that guards it with a read-mostly lock and hands out copies.
// Configuration writes are expected at application bootstrap only.
package breakpoint

import "sync"

// Table maps a breakpoint name to its minimum width in pixels.
//
// A Table carries no ordering guarantees; resolution sorts entries by width
// before applying them. Looking up a name that is not present yields 0, which
// is exactly the documented fallback for unknown breakpoints: they always
// qualify.
type Table map[string]int

// Default returns the compiled-in breakpoint table.
func Default() Table {
	return Table{
		"base": 0,
		"xs":   480,
		"sm":   640,
		"md":   768,
		"lg":   1024,
		"xl":   1280,
		"xxl":  1536,
	}
}

// Clone returns an independent copy of the table.
func (t Table) Clone() Table {
	if t == nil {
		return Table{}
	}
	out := make(Table, len(t))
	for name, width := range t {
		out[name] = width
	}
	return out
}

// Manager coordinates access to a breakpoint table.
type Manager struct {
	mu    sync.RWMutex
	table Table
}

// NewManager allocates a Manager seeded with the provided table.
func NewManager(table Table) *Manager {
	return &Manager{table: table.Clone()}
}

// Configure merges the supplied entries into the managed table. Supplied
// names overwrite existing entries; names not supplied keep their prior
// value. Values are accepted as-is: no range validation is performed.
func (m *Manager) Configure(partial Table) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.table == nil {
		m.table = Table{}
	}
	for name, width := range partial {
		m.table[name] = width
	}
}

// Reset restores the compiled-in default table.
func (m *Manager) Reset() {
	m.mu.Lock()
	m.table = Default()
	m.mu.Unlock()
}

// Get returns a copy of the managed table. Callers may mutate the result
// freely without affecting the live configuration.
func (m *Manager) Get() Table {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.table.Clone()
}

// The package-level manager backs the plain Configure/Reset/Get functions so
// applications that want a single global table get one without wiring.
var defaultManager = NewManager(Default())

// Configure merges entries into the global breakpoint table.
func Configure(partial Table) {
	defaultManager.Configure(partial)
}

// Reset restores the global table to the compiled-in defaults.
func Reset() {
	defaultManager.Reset()
}

// Get returns a copy of the global breakpoint table.
func Get() Table {
	return defaultManager.Get()
}
