package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)

	tickLength = 40 * time.Millisecond
	tickFreq   = 1400.0
)

// SoundManager plays the spin hum and decay ticks through one mixer on the speaker
// All methods are no-ops until Initialize succeeds
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	hum         *HumGenerator
	humCtrl     *beep.Ctrl
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
		hum:   NewHumGenerator(sampleRate),
	}
}

// Initialize sets up the speaker and starts the silent hum
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}

	sm.humCtrl = &beep.Ctrl{Streamer: sm.hum}
	sm.mixer.Add(sm.humCtrl)
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
// beep has no speaker Close for a shared device, so the mixer is emptied instead
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.humCtrl.Paused = true
	speaker.Unlock()
	speaker.Clear()
	sm.mixer.Clear()
	sm.initialized = false
}

// Update retunes the hum to a spin fraction in [0,1]
func (sm *SoundManager) Update(frac float64) {
	sm.hum.Set(HumFor(frac))
}

// Hum exposes the hum generator for inspection
func (sm *SoundManager) Hum() *HumGenerator {
	return sm.hum
}

// PlayTick mixes in one short click
func (sm *SoundManager) PlayTick() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Add(beep.Take(sampleRate.N(tickLength), NewTickGenerator(sampleRate, tickFreq)))
	speaker.Unlock()
}
