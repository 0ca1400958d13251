// Package audio synthesizes the game's sound cues with beep. All cues
// are generated oscillators, no sample assets involved.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

const sampleRate = beep.SampleRate(22050)

// FadeShape selects the fade-out curve applied to a cue.
type FadeShape int

const (
	FadeLinear    FadeShape = iota // 1 - p
	FadeRoot                       // 1 - sqrt(p)
	FadeQuadratic                  // 1 - p*p
)

// oscillator generates a fixed-frequency sine for a bounded duration.
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	rate     beep.SampleRate
}

// NewOscillator creates a sine oscillator that stops after duration.
func NewOscillator(freq float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		val := math.Sin(2 * math.Pi * o.phase)
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// sweep generates a sine whose frequency glides from startFreq to
// endFreq over the duration. The phase accumulator keeps the wave
// continuous while the frequency moves.
type sweep struct {
	startFreq float64
	endFreq   float64
	phase     float64
	duration  int
	position  int
	rate      beep.SampleRate
}

// NewSweep creates a frequency-gliding sine oscillator.
func NewSweep(startFreq, endFreq float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &sweep{
		startFreq: startFreq,
		endFreq:   endFreq,
		duration:  rate.N(duration),
		rate:      rate,
	}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.duration {
			return i, i > 0
		}

		progress := float64(s.position) / float64(s.duration)
		freq := s.startFreq + (s.endFreq-s.startFreq)*progress

		val := math.Sin(2 * math.Pi * s.phase)
		samples[i][0] = val
		samples[i][1] = val

		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// fade applies a fade-out envelope over the whole duration.
type fade struct {
	streamer beep.Streamer
	shape    FadeShape
	position int
	total    int
}

// NewFade wraps a streamer with a fade-out of the given shape.
func NewFade(s beep.Streamer, duration time.Duration, shape FadeShape, rate beep.SampleRate) beep.Streamer {
	return &fade{
		streamer: s,
		shape:    shape,
		total:    rate.N(duration),
	}
}

func (f *fade) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if f.position >= f.total {
			return i, i > 0
		}

		progress := float64(f.position) / float64(f.total)
		var vol float64
		switch f.shape {
		case FadeRoot:
			vol = 1 - math.Sqrt(progress)
		case FadeQuadratic:
			vol = 1 - progress*progress
		default:
			vol = 1 - progress
		}
		if vol < 0 {
			vol = 0
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		f.position++
	}

	return n, ok
}

func (f *fade) Err() error { return f.streamer.Err() }

// newVolume scales a streamer. math.Log2(0) is -Inf, so zero volume
// switches to silent instead.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Cue identifies one of the game's sound effects.
type Cue int

const (
	CueEat Cue = iota
	CuePowerUp
	CueCollision
	CueLevelUp
)

// CreateEatSound generates the short blip played on every meal.
func CreateEatSound(rate beep.SampleRate) beep.Streamer {
	const duration = 100 * time.Millisecond
	osc := NewOscillator(800, duration, rate)
	return newVolume(NewFade(osc, duration, FadeLinear, rate), 0.125)
}

// CreatePowerUpSound generates the rising chirp for slow or boost
// pickups.
func CreatePowerUpSound(rate beep.SampleRate) beep.Streamer {
	const duration = 150 * time.Millisecond
	sw := NewSweep(600, 1000, duration, rate)
	return newVolume(NewFade(sw, duration, FadeRoot, rate), 0.1)
}

// CreateCollisionSound generates the low crash for fatal outcomes,
// three detuned lows mixed together.
func CreateCollisionSound(rate beep.SampleRate) beep.Streamer {
	const duration = 200 * time.Millisecond
	mixed := beep.Mix(
		newVolume(NewOscillator(220, duration, rate), 0.4),
		newVolume(NewOscillator(150, duration, rate), 0.4),
		newVolume(NewOscillator(100, duration, rate), 0.2),
	)
	return newVolume(NewFade(mixed, duration, FadeLinear, rate), 0.15)
}

// CreateLevelUpSound generates a C major chord for level transitions.
func CreateLevelUpSound(rate beep.SampleRate) beep.Streamer {
	const duration = 300 * time.Millisecond
	mixed := beep.Mix(
		newVolume(NewOscillator(523, duration, rate), 0.33),
		newVolume(NewOscillator(659, duration, rate), 0.33),
		newVolume(NewOscillator(784, duration, rate), 0.33),
	)
	return newVolume(NewFade(mixed, duration, FadeQuadratic, rate), 0.14)
}

// CreateCueSound returns the streamer for the given cue, nil for an
// unknown one.
func CreateCueSound(cue Cue, rate beep.SampleRate) beep.Streamer {
	switch cue {
	case CueEat:
		return CreateEatSound(rate)
	case CuePowerUp:
		return CreatePowerUpSound(rate)
	case CueCollision:
		return CreateCollisionSound(rate)
	case CueLevelUp:
		return CreateLevelUpSound(rate)
	default:
		return nil
	}
}
