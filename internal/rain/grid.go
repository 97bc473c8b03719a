package rain

// Style tags a cell with one of the fixed rain bands. The zero value is
// blank so a freshly grown grid renders as spaces.
type Style uint8

const (
	StyleBlank Style = iota
	StyleDarkTail
	StyleMidTail
	StyleBrightTail
	StyleNeck
	StyleHead

	styleCount
)

// stylePoison is never produced by the builder; a grid full of it diffs as
// entirely changed against any real frame.
const stylePoison Style = 0xFF

// Cell is one logical grid position: a printable glyph and its band.
// Blank cells always carry a space.
type Cell struct {
	Ch    byte
	Style Style
}

// Grid is a row-major cell buffer. It grows when new geometry needs more
// cells than any earlier one and never shrinks, so repeated small resizes
// reuse the high-water allocation.
type Grid struct {
	cells []Cell
	cols  int
	rows  int
}

func (g *Grid) grow(cols, rows int) {
	n := cols * rows
	if cap(g.cells) < n {
		g.cells = make([]Cell, n)
	} else {
		g.cells = g.cells[:n]
	}
	g.cols, g.rows = cols, rows
}

// poison forces every cell into a state the builder cannot produce, so the
// next diff repaints the whole screen.
func (g *Grid) poison() {
	for i := range g.cells {
		g.cells[i] = Cell{Style: stylePoison}
	}
}

func (g *Grid) at(row, col int) Cell     { return g.cells[row*g.cols+col] }
func (g *Grid) set(row, col int, c Cell) { g.cells[row*g.cols+col] = c }

func (g *Grid) copyFrom(src *Grid) {
	g.grow(src.cols, src.rows)
	copy(g.cells, src.cells)
}

// cellsEqual reports whether repainting cur over prev would be invisible:
// the styles match, and the glyphs match wherever the style draws one.
func cellsEqual(cur, prev Cell) bool {
	if cur.Style != prev.Style {
		return false
	}
	return cur.Style == StyleBlank || cur.Ch == prev.Ch
}
