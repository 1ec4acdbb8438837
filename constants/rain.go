package constants

import "time"

// Column Animation Constants
const (
	// ColumnTick is the virtual time added to every column timer per frame
	ColumnTick = 0.05

	// ColumnSpeedMin and ColumnSpeedMax bound the per-column fire threshold.
	// A column fires once its timer reaches its speed, so lower is faster
	ColumnSpeedMin = 0.02
	ColumnSpeedMax = 0.12

	// TrailLength counts the head, trail cells are drawn at offsets 1..TrailLength-1
	TrailLength = 6
)

// Frame Timing Constants
const (
	// FrameDelayMs is the sleep between two frames
	FrameDelayMs = 50

	// FrameDelay is the sleep between two frames
	FrameDelay = FrameDelayMs * time.Millisecond

	// DissolveStepDelayMs is the extra sleep added to each frame that dissolves a column
	DissolveStepDelayMs = 30

	// DissolveStepDelay is the extra sleep added to each frame that dissolves a column
	DissolveStepDelay = DissolveStepDelayMs * time.Millisecond
)

// Message Timing Constants
const (
	// HoldDuration is how long a fully revealed message stays before dissolving
	HoldDuration = 4 * time.Second

	// PauseBetween is the bookkeeping pause recorded after a message dissolves
	PauseBetween = 2 * time.Second
)

// QuitRunes are the keys that end the animation
var QuitRunes = []rune{'q', 'Q'}
