// Package audio plays a short chime per generation whose pitch follows the
// colorblind share of the population
package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/colorsim/parameter"
	"github.com/lixenwraith/colorsim/population"
	"github.com/lixenwraith/colorsim/report"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// SoundManager is a population observer backed by the beep speaker
// Every method is safe to call before Initialize and becomes a no-op
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	extinct     bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker; failure leaves the manager silent
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	sm.initialized = false
}

// Update chimes for a living population and buzzes once on extinction
func (sm *SoundManager) Update(s population.State) {
	if s.Extinct() {
		sm.mu.Lock()
		first := !sm.extinct
		sm.extinct = true
		sm.mu.Unlock()

		if first {
			sm.PlayExtinction()
		}
		return
	}

	sm.mu.Lock()
	sm.extinct = false
	sm.mu.Unlock()

	sm.PlayChime(report.Percent(s.Colorblind(), s.PopulationSize) / 100.0)
}

// PlayChime plays the generation tone for a colorblind share in [0, 1]
func (sm *SoundManager) PlayChime(share float64) {
	sm.play(NewTone(ChimeFrequency(share), parameter.ChimeDuration, WaveSine, sampleRate))
}

// PlayExtinction plays a low square buzz
func (sm *SoundManager) PlayExtinction() {
	sm.play(NewTone(parameter.ExtinctionBuzzFreq, parameter.ExtinctionBuzzDuration, WaveSquare, sampleRate))
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	vol := &effects.Volume{
		Streamer: s,
		Base:     2,
		Volume:   parameter.ChimeVolume,
	}

	speaker.Lock()
	sm.mixer.Add(vol)
	speaker.Unlock()
}

// ChimeFrequency maps a colorblind share onto the chime pitch, clamping to [0, 1]
func ChimeFrequency(share float64) float64 {
	share = max(0, min(1, share))
	return parameter.ChimeBaseFreq + share*parameter.ChimeFreqSpan
}
