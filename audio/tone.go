package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
)

// fadeSamples softens tone edges to avoid clicks
const fadeSamples = 256

// tone generates a fixed-length wave with a short linear fade at both ends
type tone struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewTone creates a finite streamer for one note
func NewTone(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &tone{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	if t.position >= t.duration {
		return 0, false
	}

	for i := range samples {
		if t.position >= t.duration {
			return i, true
		}

		var val float64
		switch t.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * t.phase)
		case WaveSquare:
			if t.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		}
		val *= t.envelope()

		samples[i][0] = val
		samples[i][1] = val

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// envelope returns the gain at the current position
func (t *tone) envelope() float64 {
	fade := min(fadeSamples, t.duration/2)
	if fade == 0 {
		return 1
	}
	switch {
	case t.position < fade:
		return float64(t.position) / float64(fade)
	case t.position >= t.duration-fade:
		return float64(t.duration-t.position) / float64(fade)
	default:
		return 1
	}
}
