package rain

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// Worst case a cell costs one cursor move, one SGR and two payload bytes;
// 64 bytes covers that with room to spare.
const (
	bytesPerCell = 64
	bufSlack     = 4096
)

// palette holds one precomputed SGR sequence per band. Blank has none:
// blank runs are plain spaces. 256-color only, no truecolor.
var palette = buildPalette()

var sgrReset = []byte(termenv.CSI + termenv.ResetSeq + "m")

func buildPalette() [styleCount][]byte {
	fg := func(n termenv.ANSI256Color) []byte {
		return []byte(termenv.CSI + n.Sequence(false) + "m")
	}
	var p [styleCount][]byte
	p[StyleDarkTail] = fg(termenv.ANSI256Color(22))
	p[StyleMidTail] = fg(termenv.ANSI256Color(40))
	p[StyleBrightTail] = fg(termenv.ANSI256Color(82))
	p[StyleNeck] = fg(termenv.ANSI256Color(194))
	p[StyleHead] = []byte(termenv.CSI + termenv.BoldSeq + ";" + termenv.ANSI256Color(15).Sequence(false) + "m")
	return p
}

// Renderer converts successive grids into minimal terminal writes. It owns
// the previous-frame grid and the output byte buffer; both grow with the
// largest geometry seen and never shrink.
type Renderer struct {
	prev Grid
	buf  []byte
}

// Render diffs cur against the previous frame, writes the resulting escape
// stream to w in a single flush, and commits cur as the new previous frame.
// The returned count is the number of bytes emitted; an unchanged frame
// emits zero.
//
// Changed cells are grouped into runs: maximal left-to-right sequences in
// one row that need repainting and share a style. Each run costs one cursor
// move plus at most one SGR, so the stream size is proportional to the run
// count rather than to rows*cols. Cells are addressed at physical column
// 2x+1 and each glyph is followed by a spacing cell while it fits inside
// the physical width.
//
// forceFull prepends a full clear + home and repaints every cell. A
// geometry change does not need forceFull for correctness: the previous
// grid is poisoned on growth, which makes every cell diff as changed.
func (rd *Renderer) Render(w io.Writer, cur *Grid, physCols int, forceFull bool) (int, error) {
	if rd.prev.cols != cur.cols || rd.prev.rows != cur.rows {
		rd.prev.grow(cur.cols, cur.rows)
		rd.prev.poison()
	}
	rd.ensureBuf(cur.cols * cur.rows)
	buf := rd.buf[:0]

	if forceFull {
		buf = fmt.Appendf(buf, termenv.CSI+termenv.EraseDisplaySeq, 2)
		buf = fmt.Appendf(buf, termenv.CSI+termenv.CursorPositionSeq, 1, 1)
	}

	styled := false
	for r := 0; r < cur.rows; r++ {
		x := 0
		for x < cur.cols {
			if !forceFull && cellsEqual(cur.at(r, x), rd.prev.at(r, x)) {
				x++
				continue
			}

			style := cur.at(r, x).Style
			end := x + 1
			for end < cur.cols {
				cc := cur.at(r, end)
				if cc.Style != style {
					break
				}
				if !forceFull && cellsEqual(cc, rd.prev.at(r, end)) {
					break
				}
				end++
			}

			buf = fmt.Appendf(buf, termenv.CSI+termenv.CursorPositionSeq, r+1, 2*x+1)
			if style != StyleBlank {
				buf = append(buf, palette[style]...)
				styled = true
			}
			for ; x < end; x++ {
				if style == StyleBlank {
					buf = append(buf, ' ')
				} else {
					buf = append(buf, cur.at(r, x).Ch)
				}
				if 2*x+2 <= physCols {
					buf = append(buf, ' ')
				}
			}
		}
	}

	if styled {
		buf = append(buf, sgrReset...)
	}
	rd.buf = buf

	if len(buf) > 0 {
		if err := writeAll(w, buf); err != nil {
			return len(buf), err
		}
	}
	rd.prev.copyFrom(cur)
	return len(buf), nil
}

// ensureBuf grows the output buffer geometrically up to the worst case for
// the given cell count.
func (rd *Renderer) ensureBuf(cells int) {
	need := cells*bytesPerCell + bufSlack
	if cap(rd.buf) >= need {
		return
	}
	newCap := cap(rd.buf) * 2
	if newCap < need {
		newCap = need
	}
	rd.buf = make([]byte, 0, newCap)
}

// writeAll retries short writes until the frame is fully flushed. A write
// error aborts the frame and is fatal to the caller.
func writeAll(w io.Writer, b []byte) error {
	for len(b) > 0 {
		n, err := w.Write(b)
		if err != nil {
			return err
		}
		b = b[n:]
	}
	return nil
}
