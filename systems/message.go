package systems

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/digital-rain/constants"
	"github.com/lixenwraith/digital-rain/engine"
	"github.com/lixenwraith/digital-rain/render"
)

// MessageSystem runs the hidden message overlay: it locks message columns as
// rain heads pass the message row, holds the revealed message, dissolves it one
// column at a time and then rotates to the next message
type MessageSystem struct {
	player engine.AudioPlayer
	logger *zap.Logger
}

// NewMessageSystem creates the overlay system.
// player may be nil if audio is disabled
func NewMessageSystem(player engine.AudioPlayer, logger *zap.Logger) *MessageSystem {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MessageSystem{
		player: player,
		logger: logger,
	}
}

// Priority returns the system's priority
func (s *MessageSystem) Priority() int {
	return constants.PriorityMessage
}

// Update advances the overlay state machine and draws locked glyphs
func (s *MessageSystem) Update(frame *engine.Frame) {
	state := frame.State
	o := &state.Overlay
	now := frame.Now

	if o.NeedsLayout(state.Width, state.Height) {
		o.Relayout(state.Width, state.Height)
		s.logger.Debug("message relayout",
			zap.String("message", o.Text),
			zap.Int("row", o.Row),
			zap.Int("start", o.Start),
			zap.Stringer("phase", o.Phase))
	}

	if o.Phase.Revealing() {
		s.lockColumns(state)
		if o.BeginHold(now) {
			s.logger.Debug("message revealed", zap.Int("index", o.Index), zap.String("message", o.Text))
			s.play(engine.SoundReveal)
		} else if o.EndPause(now) {
			s.logger.Debug("pause elapsed", zap.Int("index", o.Index))
		}
	}

	if o.BeginDissolve(now) {
		s.logger.Debug("message dissolving", zap.Int("index", o.Index))
	}

	if _, _, ok := o.DissolveStep(state.Rand); ok {
		frame.RequestDelay(constants.DissolveStepDelay)
		s.play(engine.SoundDissolve)
	}

	if o.Dissolved() {
		state.NextMessage()
		o.BeginPause(now)
		s.logger.Debug("next message",
			zap.Int("index", o.Index),
			zap.String("message", o.Text),
			zap.Int("row", o.Row),
			zap.Int("start", o.Start))
	}

	s.drawLocked(frame)
}

// lockColumns locks every message column whose head fired this frame at or below the message row
func (s *MessageSystem) lockColumns(state *engine.AnimationState) {
	o := &state.Overlay
	for x := range o.Columns {
		if x >= len(state.Columns) {
			continue
		}
		col := state.Columns[x]
		if col.Fired && col.Head >= o.Row {
			o.Lock(x)
		}
	}
}

// drawLocked draws each locked column's message rune at its fade emphasis
func (s *MessageSystem) drawLocked(frame *engine.Frame) {
	o := &frame.State.Overlay
	for x, stage := range o.Locked {
		frame.Buffer.Set(x, o.Row, o.Columns[x], render.GetStyleForFadeStage(stage))
	}
}

func (s *MessageSystem) play(sound engine.SoundType) {
	if s.player != nil {
		s.player.Play(sound)
	}
}
