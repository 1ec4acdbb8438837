package systems

import (
	"github.com/lixenwraith/digital-rain/constants"
	"github.com/lixenwraith/digital-rain/content"
	"github.com/lixenwraith/digital-rain/engine"
	"github.com/lixenwraith/digital-rain/render"
)

// RainSystem advances every column and draws its head and trail
type RainSystem struct {
	glyphs *content.GlyphPool
}

// NewRainSystem creates a rain system sampling from glyphs
func NewRainSystem(glyphs *content.GlyphPool) *RainSystem {
	return &RainSystem{glyphs: glyphs}
}

// Priority returns the system's priority
func (s *RainSystem) Priority() int {
	return constants.PriorityRain
}

// Update ticks every column timer and draws the columns that fire this frame
func (s *RainSystem) Update(frame *engine.Frame) {
	state := frame.State
	height := state.Height

	for x := range state.Columns {
		col := &state.Columns[x]
		col.Fired = false

		if height <= 0 {
			continue
		}

		col.Timer += constants.ColumnTick
		if col.Timer < col.Speed {
			continue
		}
		col.Timer = 0

		y := col.Position
		s.drawColumn(frame, x, y, height)

		col.Fired = true
		col.Head = y
		col.Position = (y + 1) % height
	}
}

// drawColumn writes a fresh head glyph and fresh trail glyphs above it.
// Trail rows wrap to the bottom of the grid
func (s *RainSystem) drawColumn(frame *engine.Frame, x, y, height int) {
	rng := frame.State.Rand
	buf := frame.Buffer

	buf.Set(x, y, s.glyphs.Sample(rng), render.StyleHead)
	for i := 1; i < constants.TrailLength; i++ {
		ty := ((y-i)%height + height) % height
		buf.Set(x, ty, s.glyphs.Sample(rng), render.StyleTrail)
	}
}
