package parameter

import "time"

// Chime Settings
const (
	// AudioSampleRate for the beep speaker
	AudioSampleRate = 48000

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond

	// ChimeDuration is the length of the per-generation tone
	ChimeDuration = 120 * time.Millisecond

	// ChimeBaseFreq is the tone for a population with no colorblind members
	ChimeBaseFreq = 220.0

	// ChimeFreqSpan is added to the base frequency at a fully colorblind population
	ChimeFreqSpan = 660.0

	// ChimeVolume is the beep effects.Volume level (base 2, negative is quieter)
	ChimeVolume = -1.5

	// ExtinctionBuzzFreq is the low tone played when the population dies out
	ExtinctionBuzzFreq = 90.0

	// ExtinctionBuzzDuration is the length of the extinction tone
	ExtinctionBuzzDuration = 400 * time.Millisecond
)
