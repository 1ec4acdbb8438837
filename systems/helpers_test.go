package systems

import (
	"math/rand"
	"time"

	"github.com/lixenwraith/digital-rain/constants"
	"github.com/lixenwraith/digital-rain/content"
	"github.com/lixenwraith/digital-rain/engine"
	"github.com/lixenwraith/digital-rain/render"
)

// frameHarness steps rain and message systems against a simulated clock
// the same way the frame loop does, without a screen
type frameHarness struct {
	state   *engine.AnimationState
	buffer  *render.RenderBuffer
	rain    *RainSystem
	message *MessageSystem
	now     time.Time
	number  uint64
}

var harnessEpoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func newFrameHarness(width, height int, seed int64, player engine.AudioPlayer, messages ...string) *frameHarness {
	if len(messages) == 0 {
		messages = constants.Messages
	}
	rng := rand.New(rand.NewSource(seed))
	state := engine.NewAnimationState(width, height, content.NewMessageRotation(messages), rng)
	return &frameHarness{
		state:   state,
		buffer:  render.NewRenderBuffer(width, height),
		rain:    NewRainSystem(content.NewGlyphPool()),
		message: NewMessageSystem(player, nil),
		now:     harnessEpoch,
	}
}

// resize changes the grid the next step will see
func (h *frameHarness) resize(width, height int) {
	h.state.Resize(width, height)
	h.buffer.Resize(width, height)
}

// step runs one frame and advances the clock by the frame delay plus any requested delay
func (h *frameHarness) step() *engine.Frame {
	h.buffer.Clear()
	frame := &engine.Frame{
		State:  h.state,
		Buffer: h.buffer,
		Now:    h.now,
		Number: h.number,
	}
	h.rain.Update(frame)
	h.message.Update(frame)

	h.now = h.now.Add(constants.FrameDelay + frame.ExtraDelay())
	h.number++
	return frame
}

// runUntil steps until cond holds or limit frames pass, returning the frames stepped
func (h *frameHarness) runUntil(limit int, cond func() bool) (int, bool) {
	for i := 0; i < limit; i++ {
		if cond() {
			return i, true
		}
		h.step()
	}
	return limit, cond()
}

// recordingPlayer counts played cues
type recordingPlayer struct {
	counts map[engine.SoundType]int
}

func newRecordingPlayer() *recordingPlayer {
	return &recordingPlayer{counts: make(map[engine.SoundType]int)}
}

func (p *recordingPlayer) Play(sound engine.SoundType) {
	p.counts[sound]++
}
