package diff

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnifiedIdenticalInputs(t *testing.T) {
	out := Unified([]byte("a\nb\n"), []byte("a\nb\n"), "old", "new")
	assert.Empty(t, out)
}

func TestUnifiedMarksChangedLines(t *testing.T) {
	old := []byte("margin:0\npadding:1rem\nwidth:50%\n")
	new := []byte("margin:0\npadding:2rem\nwidth:50%\n")

	out := Unified(old, new, "styles.css", "generated")

	require.NotEmpty(t, out)
	assert.Contains(t, out, "--- styles.css")
	assert.Contains(t, out, "+++ generated")
	assert.Contains(t, out, "-padding:1rem")
	assert.Contains(t, out, "+padding:2rem")
	assert.Contains(t, out, " margin:0")
	assert.Contains(t, out, " width:50%")
}

func TestUnifiedReportsPureInsertion(t *testing.T) {
	out := Unified([]byte("a\n"), []byte("a\nb\n"), "old", "new")

	require.NotEmpty(t, out)
	assert.Contains(t, out, "+b")
	assert.NotContains(t, out, "-a")
}

func TestUnifiedIsDeterministic(t *testing.T) {
	old := []byte("one\ntwo\n")
	new := []byte("one\nthree\n")

	first := Unified(old, new, "a", "b")
	second := Unified(old, new, "a", "b")

	assert.Equal(t, first, second)
}

func TestUnifiedTruncatesLongOutput(t *testing.T) {
	var old, new strings.Builder
	for i := 0; i < 12000; i++ {
		fmt.Fprintf(&old, "line-%d\n", i)
		fmt.Fprintf(&new, "changed-%d\n", i)
	}

	out := Unified([]byte(old.String()), []byte(new.String()), "old", "new")

	require.NotEmpty(t, out)
	assert.Contains(t, out, "truncated")
	assert.LessOrEqual(t, len(strings.Split(out, "\n")), maxLines+3)
}
