package rain

// buildGrid maps column state into per-cell glyph/style for one frame.
// For a column with head h and trail length t the bands are, checked in
// this order for each row r:
//
//	head:  h-2 < r < h-1    brightest, bold
//	neck:  h-3 < r < h-2    pale transition behind the head
//	tail:  h-t < r < h-2    three sub-bands darkening toward the tail end,
//	                        split at offsets +3 and +1 above h-t; the band
//	                        nearest the head is bright only for emphasized
//	                        columns
//
// Everything else is blank. The glyph shown never depends on the band;
// only its color does.
func buildGrid(cols []*Column, g *Grid) {
	for r := 0; r < g.rows; r++ {
		fr := float64(r)
		for x := 0; x < g.cols; x++ {
			col := cols[x]
			h := col.head
			tailEnd := h - float64(col.trail)

			var style Style
			switch {
			case fr > h-2 && fr < h-1:
				style = StyleHead
			case fr > h-3 && fr < h-2:
				style = StyleNeck
			case fr > tailEnd+3 && fr < h-2:
				if col.emphasis {
					style = StyleBrightTail
				} else {
					style = StyleMidTail
				}
			case fr > tailEnd+1 && fr < h-2:
				style = StyleMidTail
			case fr > tailEnd && fr < h-2:
				style = StyleDarkTail
			}

			if style == StyleBlank {
				g.set(r, x, Cell{Ch: ' ', Style: StyleBlank})
			} else {
				g.set(r, x, Cell{Ch: col.glyphs[r], Style: style})
			}
		}
	}
}
