package engine

import (
	"time"

	"github.com/lixenwraith/digital-rain/render"
)

// System is one per-frame update step
type System interface {
	Update(frame *Frame)
	Priority() int // Lower values run first
}

// Frame carries everything a system needs for one frame
type Frame struct {
	State  *AnimationState
	Buffer *render.RenderBuffer
	Now    time.Time // Wall-clock read once at frame start
	Number uint64

	extraDelay time.Duration
}

// RequestDelay adds d to the sleep after this frame
func (f *Frame) RequestDelay(d time.Duration) {
	f.extraDelay += d
}

// ExtraDelay returns the sleep requested on top of the frame delay
func (f *Frame) ExtraDelay() time.Duration {
	return f.extraDelay
}
