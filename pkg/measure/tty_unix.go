//go:build !windows

package measure

import (
	"os"
	"os/signal"
	"syscall"
)

// OnResize registers fn against SIGWINCH. Each subscription holds its own
// signal channel, so multiple observers on the same terminal coexist.
func (t *ttyElement) OnResize(fn func()) (stop func()) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGWINCH)
	done := make(chan struct{})

	go func() {
		for {
			select {
			case <-ch:
				fn()
			case <-done:
				return
			}
		}
	}()

	return func() {
		signal.Stop(ch)
		close(done)
	}
}
