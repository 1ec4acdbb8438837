package engine

// SoundType identifies an audio cue
type SoundType int

const (
	SoundReveal   SoundType = iota // Message fully revealed
	SoundDissolve                  // One dissolve step
)

// AudioPlayer plays cues without blocking the frame
type AudioPlayer interface {
	Play(sound SoundType)
}
