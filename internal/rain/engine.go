package rain

import (
	"errors"
	"io"
	"log"
	"math/rand"

	"github.com/mengy007/catrix/internal/term"
)

// ErrDegenerateGeometry is returned when a queried terminal size has no
// usable rows or columns. At startup it is fatal; on resize the request is
// simply discarded and prior buffers stay live.
var ErrDegenerateGeometry = errors.New("degenerate terminal geometry")

// Engine owns all animation state: the column models, the current-frame
// grid, the renderer with its previous-frame grid, the geometry they were
// allocated for, and the random source. Exactly one goroutine mutates it,
// running each tick to completion, so no locking exists anywhere here.
type Engine struct {
	geom     term.Geometry
	columns  []*Column
	cur      Grid
	renderer Renderer
	rng      *rand.Rand
	debug    bool
}

// NewEngine allocates initial state for the given geometry. Errors here
// mean the process cannot start.
func NewEngine(geom term.Geometry, rng *rand.Rand, debug bool) (*Engine, error) {
	e := &Engine{rng: rng, debug: debug}
	if err := e.Resize(geom); err != nil {
		return nil, err
	}
	return e, nil
}

// Geometry returns the geometry the current buffers were allocated for.
func (e *Engine) Geometry() term.Geometry { return e.geom }

// Resize adopts a new geometry as one transaction: the replacement column
// set is built before anything is replaced, so a rejected resize leaves
// every prior buffer live and in use. The grids grow and never shrink, and
// the renderer poisons its previous frame on growth, which makes the next
// render a full repaint rather than a diff against stale contents.
func (e *Engine) Resize(geom term.Geometry) error {
	if geom.Cols <= 0 || geom.Rows <= 0 {
		return ErrDegenerateGeometry
	}

	columns := make([]*Column, geom.Cols)
	for i := range columns {
		columns[i] = newColumn(e.rng, geom.Rows)
	}

	e.columns = columns
	e.geom = geom
	e.cur.grow(geom.Cols, geom.Rows)

	if e.debug {
		log.Printf("geometry %dx%d physical, %dx%d logical", geom.PhysCols, geom.PhysRows, geom.Cols, geom.Rows)
	}
	return nil
}

// BuildFrame fills the current grid from simulation state.
func (e *Engine) BuildFrame() {
	buildGrid(e.columns, &e.cur)
}

// Render diffs the current grid against the previous frame and flushes the
// result to w.
func (e *Engine) Render(w io.Writer, forceFull bool) error {
	_, err := e.renderer.Render(w, &e.cur, e.geom.PhysCols, forceFull)
	return err
}

// Step advances every column one tick. It must run after Render so the
// frame on screen always reflects the state from just before this tick's
// mutation.
func (e *Engine) Step() {
	for _, c := range e.columns {
		c.step(e.rng, e.geom.Rows)
	}
}
