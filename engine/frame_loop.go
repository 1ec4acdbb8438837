package engine

import (
	"context"
	"sort"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/digital-rain/constants"
	"github.com/lixenwraith/digital-rain/render"
)

// InputHandler decides from a terminal event whether the loop keeps running
type InputHandler interface {
	HandleEvent(ev tcell.Event) bool
}

// FrameLoop is the single-threaded animation loop.
// Each frame reads the grid size, runs every system in priority order against a
// cleared buffer, flushes, sleeps, then checks pending input without blocking
type FrameLoop struct {
	surface render.Surface
	buffer  *render.RenderBuffer
	state   *AnimationState
	systems []System
	clock   TimeProvider
	events  <-chan tcell.Event
	input   InputHandler
	logger  *zap.Logger

	frameDelay time.Duration
}

// NewFrameLoop creates a loop drawing state onto surface.
// events may be nil when no input source exists
func NewFrameLoop(
	surface render.Surface,
	state *AnimationState,
	clock TimeProvider,
	events <-chan tcell.Event,
	input InputHandler,
	logger *zap.Logger,
) *FrameLoop {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FrameLoop{
		surface:    surface,
		buffer:     render.NewRenderBuffer(state.Width, state.Height),
		state:      state,
		clock:      clock,
		events:     events,
		input:      input,
		logger:     logger,
		frameDelay: constants.FrameDelay,
	}
}

// AddSystem registers a system, keeping systems ordered by priority
func (l *FrameLoop) AddSystem(s System) {
	l.systems = append(l.systems, s)
	sort.SliceStable(l.systems, func(i, j int) bool {
		return l.systems[i].Priority() < l.systems[j].Priority()
	})
}

// Buffer returns the render buffer systems draw into
func (l *FrameLoop) Buffer() *render.RenderBuffer {
	return l.buffer
}

// Run steps frames until the input handler asks to quit or ctx is done.
// A quit returns nil, cancellation returns ctx.Err(). Both take effect only
// between frames
func (l *FrameLoop) Run(ctx context.Context) error {
	l.logger.Info("frame loop started",
		zap.Int("width", l.state.Width),
		zap.Int("height", l.state.Height),
		zap.Int("systems", len(l.systems)))

	for {
		if err := ctx.Err(); err != nil {
			l.logger.Info("frame loop cancelled", zap.Uint64("frames", l.state.Frame))
			return err
		}
		if !l.Step() {
			l.logger.Info("frame loop quit", zap.Uint64("frames", l.state.Frame))
			return nil
		}
	}
}

// Step renders one frame and reports whether the loop should continue
func (l *FrameLoop) Step() bool {
	width, height := l.surface.Size()
	if l.state.Resize(width, height) {
		l.logger.Debug("grid resized", zap.Int("width", width), zap.Int("height", height))
	}

	if w, h := l.buffer.Bounds(); w != width || h != height {
		l.buffer.Resize(width, height)
	} else {
		l.buffer.Clear()
	}

	frame := &Frame{
		State:  l.state,
		Buffer: l.buffer,
		Now:    l.clock.Now(),
		Number: l.state.Frame,
	}
	for _, s := range l.systems {
		s.Update(frame)
	}

	l.buffer.Flush(l.surface)
	l.clock.Sleep(l.frameDelay + frame.ExtraDelay())
	l.state.Frame++

	return l.pollInput()
}

// pollInput drains pending events without blocking
func (l *FrameLoop) pollInput() bool {
	for {
		select {
		case ev, ok := <-l.events:
			if !ok {
				l.logger.Debug("event source closed")
				return false
			}
			if l.input != nil && !l.input.HandleEvent(ev) {
				return false
			}
		default:
			return true
		}
	}
}
