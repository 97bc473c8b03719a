package rain

import (
	"fmt"
	"io"
	"log"
	"time"

	"github.com/mengy007/catrix/internal/term"
)

const ticksPerSecond = 60

// Runner drives the engine at a fixed tick rate, consuming the exit and
// resize flags once per tick at the top of the loop. Flags arrive from
// signal handlers or the size poll; nothing is ever applied mid-render.
type Runner struct {
	engine *Engine
	flags  *term.Flags
	size   func() term.Geometry
	out    io.Writer
	debug  bool
}

// NewRunner wires an engine to its flags, geometry source, and output.
func NewRunner(e *Engine, flags *term.Flags, size func() term.Geometry, out io.Writer, debug bool) *Runner {
	return &Runner{engine: e, flags: flags, size: size, out: out, debug: debug}
}

// Run loops until an exit is requested or a frame write fails. The first
// frame is always a full repaint, as is the first frame after any adopted
// resize. Each tick sleeps until its deadline; a tick that overruns the
// deadline by more than one period restarts the schedule from now instead
// of accumulating a backlog.
func (r *Runner) Run() error {
	period := time.Second / ticksPerSecond
	next := time.Now().Add(period)
	forceFull := true

	for {
		if r.flags.TakeExit() {
			return nil
		}

		// Some multiplexers swallow SIGWINCH; a polled mismatch counts as a
		// resize notification too.
		if g := r.size(); g.Cols != r.engine.Geometry().Cols || g.Rows != r.engine.Geometry().Rows {
			r.flags.RequestResize()
		}
		if r.flags.TakeResize() {
			if err := r.engine.Resize(r.size()); err != nil {
				// Prior buffers stay live; the next request tries again.
				if r.debug {
					log.Printf("resize rejected: %v", err)
				}
			} else {
				forceFull = true
			}
		}

		r.engine.BuildFrame()
		if err := r.engine.Render(r.out, forceFull); err != nil {
			return fmt.Errorf("write frame: %w", err)
		}
		forceFull = false

		r.engine.Step()

		time.Sleep(time.Until(next))
		now := time.Now()
		if now.After(next.Add(period)) {
			if r.debug {
				log.Printf("missed deadline by %v, resetting schedule", now.Sub(next))
			}
			next = now.Add(period)
		} else {
			next = next.Add(period)
		}
	}
}
