package term

import "sync/atomic"

// Flags carries the edge-triggered requests delivered asynchronously to the
// render loop. The notification side only stores booleans; it must not
// allocate, write to the terminal, or touch animation buffers. The loop
// reads-and-clears each flag once per tick at its safe point.
type Flags struct {
	exit   atomic.Bool
	resize atomic.Bool
}

// RequestExit asks the loop to shut down after the current tick.
func (f *Flags) RequestExit() { f.exit.Store(true) }

// RequestResize asks the loop to re-query geometry at the next tick.
func (f *Flags) RequestResize() { f.resize.Store(true) }

// TakeExit reports whether an exit was requested, clearing the flag.
func (f *Flags) TakeExit() bool { return f.exit.Swap(false) }

// TakeResize reports whether a resize was requested, clearing the flag.
func (f *Flags) TakeResize() bool { return f.resize.Swap(false) }
