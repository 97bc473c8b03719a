package term

import (
	"io"

	"github.com/muesli/termenv"
)

// Screen controls cursor visibility around the animation. The rain draws
// over the normal screen buffer on purpose: the final frame stays in the
// scrollback after exit.
type Screen struct {
	out *termenv.Output
}

// NewScreen wraps w, normally os.Stdout.
func NewScreen(w io.Writer) *Screen {
	return &Screen{out: termenv.NewOutput(w)}
}

// Setup hides the cursor and homes it before the first frame.
func (s *Screen) Setup() {
	s.out.HideCursor()
	s.out.MoveCursor(1, 1)
}

// Restore undoes Setup: reset attributes, show the cursor, home it. Runs on
// every exit path, so a killed animation never leaves the cursor hidden.
func (s *Screen) Restore() {
	s.out.Reset()
	s.out.ShowCursor()
	s.out.MoveCursor(1, 1)
}
