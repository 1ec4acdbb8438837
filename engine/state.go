package engine

import (
	"math/rand"

	"github.com/lixenwraith/digital-rain/constants"
	"github.com/lixenwraith/digital-rain/content"
)

// Column is one falling rain column
type Column struct {
	Position int     // Next head row, always in [0, height) while height > 0
	Speed    float64 // Fire threshold, lower falls faster
	Timer    float64 // Virtual time accumulated since the last fire

	// Per-frame output of the rain, read by the message overlay
	Fired bool // Column drew this frame
	Head  int  // Row the head was drawn at when Fired
}

// NewColumn creates a column at a random row with a random speed
func NewColumn(rng *rand.Rand, height int) Column {
	c := Column{
		Speed: constants.ColumnSpeedMin + rng.Float64()*(constants.ColumnSpeedMax-constants.ColumnSpeedMin),
	}
	if height > 0 {
		c.Position = rng.Intn(height)
	}
	return c
}

// AnimationState is the whole mutable state of the effect.
// It is owned by the frame loop and handed to each system by pointer, one frame at a time
type AnimationState struct {
	Width, Height int
	Columns       []Column
	Overlay       Overlay
	Messages      *content.MessageRotation
	Rand          *rand.Rand
	Frame         uint64
}

// NewAnimationState creates columns for the given grid and lays out the first message
func NewAnimationState(width, height int, messages *content.MessageRotation, rng *rand.Rand) *AnimationState {
	s := &AnimationState{
		Messages: messages,
		Rand:     rng,
	}
	s.Resize(width, height)

	idx, text := messages.Current()
	s.Overlay.Reset(idx, text, s.Width, s.Height)
	return s
}

// Resize reconciles the column collection with the current grid.
// Columns beyond the new width are dropped, missing ones are created fresh, and
// positions are wrapped into the new height. Returns true if anything changed
func (s *AnimationState) Resize(width, height int) bool {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	if width == s.Width && height == s.Height && len(s.Columns) == width {
		return false
	}

	if height != s.Height {
		for i := range s.Columns {
			if height > 0 {
				s.Columns[i].Position %= height
			} else {
				s.Columns[i].Position = 0
			}
		}
	}

	if width < len(s.Columns) {
		s.Columns = s.Columns[:width]
	}
	for len(s.Columns) < width {
		s.Columns = append(s.Columns, NewColumn(s.Rand, height))
	}

	s.Width = width
	s.Height = height
	return true
}

// NextMessage selects the following message round-robin and lays it out for the current grid
func (s *AnimationState) NextMessage() {
	idx, text := s.Messages.Next()
	s.Overlay.Reset(idx, text, s.Width, s.Height)
}
