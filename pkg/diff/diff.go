// Package diff renders unified diffs between two texts. The css command uses
// it to report stylesheet drift in check mode.
package diff

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	maxLines        = 10000
	truncateMessage = "... (diff truncated, exceeds 10,000 lines) ..."
)

// Unified compares two texts line by line and renders a unified-style diff,
// oldLabel and newLabel naming the two sides in the header. It returns the
// empty string when the inputs are identical. Output is deterministic for a
// given pair of inputs, so it is safe to assert on in CI.
func Unified(old, new []byte, oldLabel, newLabel string) string {
	if bytes.Equal(old, new) {
		return ""
	}

	dmp := diffmatchpatch.New()
	c1, c2, lineArray := dmp.DiffLinesToChars(string(old), string(new))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(c1, c2, false), lineArray)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "--- %s\n", oldLabel)
	fmt.Fprintf(&buf, "+++ %s\n", newLabel)
	fmt.Fprintf(&buf, "@@ -1,%d +1,%d @@\n", len(splitLines(string(old))), len(splitLines(string(new))))

	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		}
		for _, line := range splitLines(d.Text) {
			buf.WriteString(prefix)
			buf.WriteString(line)
			buf.WriteByte('\n')
		}
	}

	result := buf.String()
	lines := strings.Split(result, "\n")
	if len(lines) > maxLines {
		return strings.Join(lines[:maxLines], "\n") + "\n" + truncateMessage + "\n"
	}
	return result
}

// splitLines splits on newlines, dropping the empty piece a trailing newline
// leaves behind so each element is one real line.
func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" && strings.HasSuffix(text, "\n") {
		lines = lines[:n-1]
	}
	return lines
}
