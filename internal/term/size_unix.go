//go:build unix

package term

import (
	"os"

	"golang.org/x/sys/unix"
)

// Size queries the controlling terminal for its dimensions. It probes
// stdout, stdin and stderr before opening /dev/tty, since any of the
// standard streams may be redirected. Every probe failing, or a zero
// dimension, falls back to 80x24.
//
// Size is cheap enough to call every tick; the render loop polls it to
// catch resizes whose SIGWINCH a terminal multiplexer swallowed.
func Size() Geometry {
	for _, f := range []*os.File{os.Stdout, os.Stdin, os.Stderr} {
		if g, ok := winsize(int(f.Fd())); ok {
			return g
		}
	}
	if tty, err := os.Open("/dev/tty"); err == nil {
		defer tty.Close()
		if g, ok := winsize(int(tty.Fd())); ok {
			return g
		}
	}
	return FromPhysical(fallbackCols, fallbackRows)
}

func winsize(fd int) (Geometry, bool) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 || ws.Row == 0 {
		return Geometry{}, false
	}
	return FromPhysical(int(ws.Col), int(ws.Row)), true
}
