// Package rain implements the digital-rain animation: per-column falling
// state, the per-tick simulation step, frame construction, and the diff
// renderer that turns two frames into a minimal terminal write.
package rain

import "math/rand"

// charset is the fixed rain alphabet.
const charset = ":-=0123456789!@#$%&#$[]|<>?ODUCQAB"

const (
	minTrailFrac = 0.30
	maxTrailFrac = 0.90
	emphasisOdds = 0.40
	flickerOdds  = 0.01
)

// Column is one vertical stream of falling glyphs. The head coordinate is
// fractional: it advances by speed each tick and the style bands are
// evaluated against it, so streams fall at visibly different rates.
type Column struct {
	glyphs   []byte
	speed    float64
	trail    int
	head     float64
	emphasis bool
}

func newColumn(rng *rand.Rand, rows int) *Column {
	c := &Column{}
	c.reseed(rng, rows)
	return c
}

// reseed redraws every randomized field as one unit. It only runs between
// ticks, so the builder never observes a partially reseeded column. The
// glyph buffer is reused when its capacity allows.
func (c *Column) reseed(rng *rand.Rand, rows int) {
	if cap(c.glyphs) < rows {
		c.glyphs = make([]byte, rows)
	} else {
		c.glyphs = c.glyphs[:rows]
	}
	for r := range c.glyphs {
		c.glyphs[r] = charset[rng.Intn(len(charset))]
	}
	c.speed = (rng.Float64() + 0.1) / 2
	c.trail = trailLength(rng, rows)
	c.head = 0
	c.emphasis = rng.Float64() < emphasisOdds
}

// trailLength picks a trail spanning 30-90% of the row count, at least one.
func trailLength(rng *rand.Rand, rows int) int {
	lo := int(float64(rows) * minTrailFrac)
	hi := int(float64(rows) * maxTrailFrac)
	if lo < 1 {
		lo = 1
	}
	if hi < lo {
		hi = lo
	}
	return lo + rng.Intn(hi-lo+1)
}

// step flickers glyphs, advances the head, and reseeds the column once the
// entire trail has scrolled past the last row. The flicker applies to every
// row whether or not it is inside the visible trail, which keeps the rng
// call count per tick a pure function of geometry.
func (c *Column) step(rng *rand.Rand, rows int) {
	for r := range c.glyphs {
		if rng.Float64() < flickerOdds {
			c.glyphs[r] = charset[rng.Intn(len(charset))]
		}
	}
	c.head += c.speed
	if c.head > float64(rows+c.trail) {
		c.reseed(rng, rows)
	}
}
