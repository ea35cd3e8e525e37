package measure

import (
	"os"

	"golang.org/x/term"
)

// TTY adapts a terminal to the Element interface. The reported width is the
// column count, so pair it with a cell-denominated breakpoint table. On Unix
// platforms the returned element is also a ResizeSource driven by SIGWINCH;
// elsewhere it measures once on attach.
//
// A file that is not a terminal measures as unavailable, which an Observer
// exposes as width 0.
func TTY(f *os.File) Element {
	return &ttyElement{f: f}
}

type ttyElement struct {
	f *os.File
}

func (t *ttyElement) BoxWidth() (float64, bool) {
	if t.f == nil {
		return 0, false
	}
	fd := int(t.f.Fd())
	if !term.IsTerminal(fd) {
		return 0, false
	}
	cols, _, err := term.GetSize(fd)
	if err != nil || cols <= 0 {
		return 0, false
	}
	return float64(cols), true
}
