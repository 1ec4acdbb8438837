package constants

import "time"

// Audio Constants
const (
	// AudioSampleRate is the playback rate in Hz
	AudioSampleRate = 48000

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// AudioMasterVolume scales every cue
	AudioMasterVolume = 0.5
)

// Reveal chime: two rising sine notes
const (
	RevealNote1Duration = 120 * time.Millisecond
	RevealNote2Duration = 260 * time.Millisecond
	RevealAttack        = 5 * time.Millisecond
	RevealRelease       = 150 * time.Millisecond
	RevealVolume        = 0.6
)

// Dissolve tick: a very short noise burst per dissolve step
const (
	DissolveSoundDuration = 25 * time.Millisecond
	DissolveSoundAttack   = 2 * time.Millisecond
	DissolveSoundRelease  = 15 * time.Millisecond
	DissolveSoundVolume   = 0.15
)
