package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/digital-rain/constants"
	"github.com/lixenwraith/digital-rain/engine"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s with a linear attack and release
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// math.Log2(0) is -Inf, so 0 volume is expressed as silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateRevealSound generates a two-note rising chime for a revealed message
func CreateRevealSound(rate beep.SampleRate) beep.Streamer {
	// E5 then A5
	n1 := NewOscillator(659.25, constants.RevealNote1Duration, WaveSine, rate)
	n1Shaped := NewEnvelope(n1, constants.RevealNote1Duration, constants.RevealAttack, constants.RevealNote1Duration/2, rate)

	n2 := NewOscillator(880.0, constants.RevealNote2Duration, WaveSine, rate)
	n2Shaped := NewEnvelope(n2, constants.RevealNote2Duration, constants.RevealAttack, constants.RevealRelease, rate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), constants.RevealVolume*constants.AudioMasterVolume)
}

// CreateDissolveSound generates a short crackle for one dissolve step
func CreateDissolveSound(rate beep.SampleRate) beep.Streamer {
	noise := NewOscillator(0, constants.DissolveSoundDuration, WaveNoise, rate)
	shaped := NewEnvelope(noise, constants.DissolveSoundDuration, constants.DissolveSoundAttack, constants.DissolveSoundRelease, rate)
	return newVolume(shaped, constants.DissolveSoundVolume*constants.AudioMasterVolume)
}

// GetSoundEffect returns the streamer for a cue, nil for unknown cues
func GetSoundEffect(sound engine.SoundType, rate beep.SampleRate) beep.Streamer {
	switch sound {
	case engine.SoundReveal:
		return CreateRevealSound(rate)
	case engine.SoundDissolve:
		return CreateDissolveSound(rate)
	default:
		return nil
	}
}
