package spacing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupKnownKey(t *testing.T) {
	scale := Default()

	assert.Equal(t, "1rem", scale.Lookup("md"))
	assert.Equal(t, "0", scale.Lookup("none"))
}

func TestLookupPassThrough(t *testing.T) {
	scale := Default()

	assert.Equal(t, 42, scale.Lookup(42), "numbers are raw lengths")
	assert.Equal(t, "not-a-key", scale.Lookup("not-a-key"), "unknown strings are literal CSS values")
	assert.Equal(t, "3px", scale.Lookup("3px"))
}

func TestResolveTracksLiveScale(t *testing.T) {
	t.Cleanup(Reset)

	assert.Equal(t, "1rem", Resolve("md"))

	Configure(Scale{"md": "20px"})
	assert.Equal(t, "20px", Resolve("md"), "Resolve reads the scale at call time, not a snapshot")

	Reset()
	assert.Equal(t, "1rem", Resolve("md"))
}

func TestManagerConfigureMerges(t *testing.T) {
	m := NewManager(Default())

	m.Configure(Scale{"md": "2rem", "hero": "10rem"})

	scale := m.Get()
	assert.Equal(t, "2rem", scale["md"])
	assert.Equal(t, "10rem", scale["hero"])
	assert.Equal(t, "0.5rem", scale["sm"], "untouched keys retain defaults")
}

func TestManagerGetReturnsCopy(t *testing.T) {
	m := NewManager(Default())

	scale := m.Get()
	scale["md"] = "tainted"

	assert.Equal(t, "1rem", m.Get()["md"])
}

func TestManagerReset(t *testing.T) {
	m := NewManager(Default())
	m.Configure(Scale{"md": "tainted"})

	m.Reset()

	assert.Equal(t, Default(), m.Get())
}

func TestSingleEntryScaleDegradesGracefully(t *testing.T) {
	m := NewManager(Scale{"only": "5px"})

	scale := m.Get()
	assert.Equal(t, "5px", scale.Lookup("only"))
	assert.Equal(t, "md", scale.Lookup("md"), "keys outside a sparse scale pass through")
}
