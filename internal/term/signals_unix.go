//go:build unix

package term

import (
	"os"
	"os/signal"
	"syscall"
)

// Notify wires process signals to the flags: SIGINT and SIGTERM request
// exit, SIGWINCH requests a resize. The goroutine does nothing but store
// the flags. The returned stop function unregisters the signals and ends
// the goroutine; safe to call once.
func Notify(f *Flags) (stop func()) {
	ch := make(chan os.Signal, 4)
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM, syscall.SIGWINCH)

	done := make(chan struct{})
	go func() {
		for {
			select {
			case sig := <-ch:
				if sig == syscall.SIGWINCH {
					f.RequestResize()
				} else {
					f.RequestExit()
				}
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
