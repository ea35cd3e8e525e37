// Package spacing defines the process-wide spacing scale: a mapping from
// semantic spacing keys (xs, md, xl, ...) to CSS lengths.
//
// Lookup is deliberately forgiving. A value that is not a known key passes
// through unchanged, so literal lengths ("12px", 1.5, "3rem") flow through
// the same props as scale keys without a type-level distinction.
package spacing

import "sync"

// Scale maps a semantic spacing key to a CSS length. Values are strings
// ("1rem") or numbers (pixels, by the serialization convention of the style
// compiler).
type Scale map[string]any

// Default returns the compiled-in spacing scale.
func Default() Scale {
	return Scale{
		"none": "0",
		"xs":   "0.25rem",
		"sm":   "0.5rem",
		"md":   "1rem",
		"lg":   "1.5rem",
		"xl":   "2rem",
		"xxl":  "3rem",
		"xxxl": "4rem",
	}
}

// Clone returns an independent copy of the scale.
func (s Scale) Clone() Scale {
	if s == nil {
		return Scale{}
	}
	out := make(Scale, len(s))
	for key, value := range s {
		out[key] = value
	}
	return out
}

// Lookup substitutes v through the scale: a string key present in the scale
// resolves to its mapped value, anything else is returned unchanged.
func (s Scale) Lookup(v any) any {
	key, ok := v.(string)
	if !ok {
		return v
	}
	if mapped, ok := s[key]; ok {
		return mapped
	}
	return v
}

// Manager coordinates access to a spacing scale.
type Manager struct {
	mu    sync.RWMutex
	scale Scale
}

// NewManager allocates a Manager seeded with the provided scale.
func NewManager(scale Scale) *Manager {
	return &Manager{scale: scale.Clone()}
}

// Configure merges the supplied entries into the managed scale. Supplied
// keys overwrite existing entries; keys not supplied keep their prior value.
func (m *Manager) Configure(partial Scale) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.scale == nil {
		m.scale = Scale{}
	}
	for key, value := range partial {
		m.scale[key] = value
	}
}

// Reset restores the compiled-in default scale.
func (m *Manager) Reset() {
	m.mu.Lock()
	m.scale = Default()
	m.mu.Unlock()
}

// Get returns a copy of the managed scale.
func (m *Manager) Get() Scale {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.scale.Clone()
}

var defaultManager = NewManager(Default())

// Configure merges entries into the global spacing scale.
func Configure(partial Scale) {
	defaultManager.Configure(partial)
}

// Reset restores the global scale to the compiled-in defaults.
func Reset() {
	defaultManager.Reset()
}

// Get returns a copy of the global spacing scale.
func Get() Scale {
	return defaultManager.Get()
}

// Resolve substitutes v through the global scale as it stands at call time.
// Reconfiguring the scale changes what subsequent Resolve calls return.
func Resolve(v any) any {
	defaultManager.mu.RLock()
	defer defaultManager.mu.RUnlock()
	return defaultManager.scale.Lookup(v)
}
