// Package term adapts the controlling terminal for the rain renderer:
// geometry queries, cursor visibility, and the signal-driven flags the
// render loop consumes once per tick.
package term

// Geometry holds the physical terminal size and the logical grid derived
// from it. Each logical column renders as two physical cells (a glyph plus
// a spacing cell), so the logical width is ceil(physical/2); the ceiling
// keeps the right-most column alive on odd widths.
type Geometry struct {
	PhysCols int
	PhysRows int
	Cols     int
	Rows     int
}

const (
	fallbackCols = 80
	fallbackRows = 24
)

// FromPhysical derives the logical grid for a physical terminal size.
// Zero or negative dimensions collapse to the 80x24 default.
func FromPhysical(cols, rows int) Geometry {
	if cols <= 0 || rows <= 0 {
		cols, rows = fallbackCols, fallbackRows
	}
	return Geometry{
		PhysCols: cols,
		PhysRows: rows,
		Cols:     (cols + 1) / 2,
		Rows:     rows,
	}
}
