package rain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testColumn builds a column with fixed state; glyphs cycle A-Z.
func testColumn(rows int, head float64, trail int, emphasis bool) *Column {
	glyphs := make([]byte, rows)
	for i := range glyphs {
		glyphs[i] = byte('A' + i%26)
	}
	return &Column{glyphs: glyphs, speed: 0.5, trail: trail, head: head, emphasis: emphasis}
}

func TestBuildGridBanding(t *testing.T) {
	const rows, colCount = 10, 5

	cols := make([]*Column, colCount)
	for i := range cols {
		cols[i] = testColumn(rows, 0, 1, false) // head at 0: fully blank
	}
	cols[2] = testColumn(rows, 3.5, 4, false)

	var g Grid
	g.grow(colCount, rows)
	buildGrid(cols, &g)

	// Column 2, head 3.5, trail 4: row 2 head, row 1 neck, row 0 dark tail,
	// everything at and below the head's leading edge blank.
	assert.Equal(t, StyleHead, g.at(2, 2).Style)
	assert.Equal(t, StyleNeck, g.at(1, 2).Style)
	assert.Equal(t, StyleDarkTail, g.at(0, 2).Style)
	for r := 3; r < rows; r++ {
		assert.Equal(t, StyleBlank, g.at(r, 2).Style, "row %d", r)
		assert.Equal(t, byte(' '), g.at(r, 2).Ch, "row %d", r)
	}

	// Glyph content is independent of the band.
	assert.Equal(t, byte('C'), g.at(2, 2).Ch)
	assert.Equal(t, byte('B'), g.at(1, 2).Ch)
	assert.Equal(t, byte('A'), g.at(0, 2).Ch)

	// Columns with the head still at the top render blank.
	for _, x := range []int{0, 1, 3, 4} {
		for r := 0; r < rows; r++ {
			require.Equal(t, StyleBlank, g.at(r, x).Style, "col %d row %d", x, r)
		}
	}
}

func TestBuildGridTailThirds(t *testing.T) {
	const rows = 10

	expect := func(t *testing.T, g *Grid, wantBright Style) {
		t.Helper()
		// Head 9.5, trail 9: head row 8, neck row 7, then the trail darkens
		// toward its end at 0.5.
		assert.Equal(t, StyleHead, g.at(8, 0).Style)
		assert.Equal(t, StyleNeck, g.at(7, 0).Style)
		for _, r := range []int{4, 5, 6} {
			assert.Equal(t, wantBright, g.at(r, 0).Style, "row %d", r)
		}
		for _, r := range []int{2, 3} {
			assert.Equal(t, StyleMidTail, g.at(r, 0).Style, "row %d", r)
		}
		assert.Equal(t, StyleDarkTail, g.at(1, 0).Style)
		assert.Equal(t, StyleBlank, g.at(0, 0).Style)
		assert.Equal(t, StyleBlank, g.at(9, 0).Style)
	}

	t.Run("emphasized column brightens the band nearest the head", func(t *testing.T) {
		var g Grid
		g.grow(1, rows)
		buildGrid([]*Column{testColumn(rows, 9.5, 9, true)}, &g)
		expect(t, &g, StyleBrightTail)
	})

	t.Run("plain column keeps it mid", func(t *testing.T) {
		var g Grid
		g.grow(1, rows)
		buildGrid([]*Column{testColumn(rows, 9.5, 9, false)}, &g)
		expect(t, &g, StyleMidTail)
	})
}

func TestBuildGridDeterministic(t *testing.T) {
	const rows, colCount = 16, 8

	cols := make([]*Column, colCount)
	for i := range cols {
		cols[i] = testColumn(rows, float64(i)+0.5, 1+i, i%2 == 0)
	}

	var a, b Grid
	a.grow(colCount, rows)
	b.grow(colCount, rows)
	buildGrid(cols, &a)
	buildGrid(cols, &b)

	assert.Equal(t, a.cells, b.cells, "identical state always builds identical grids")
}
