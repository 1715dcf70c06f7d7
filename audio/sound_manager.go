package audio

import (
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/vi-factory/world"
)

const (
	sampleRate = beep.SampleRate(48000)
)

// SoundManager plays event cues through a single mixer on the speaker
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	enabled     bool
	gain        float64
}

// NewSoundManager creates a manager; gain is the base-2 volume exponent (0 unchanged)
func NewSoundManager(gain float64) *SoundManager {
	return &SoundManager{
		mixer:   &beep.Mixer{},
		enabled: true,
		gain:    gain,
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup drops queued cues and closes the speaker
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

// SetEnabled mutes or unmutes future cues
func (sm *SoundManager) SetEnabled(on bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.enabled = on
}

// Enabled reports whether cues are audible
func (sm *SoundManager) Enabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.enabled
}

// Toggle flips the enabled state and returns the new value
func (sm *SoundManager) Toggle() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.enabled = !sm.enabled
	return sm.enabled
}

// Play queues c on the mixer. No-op before Initialize or while muted.
func (sm *SoundManager) Play(c Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || !sm.enabled {
		return
	}

	s := newCueStreamer(c, sampleRate, sm.gain)
	if s == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// Listener returns a world listener that plays the cue for each event
func (sm *SoundManager) Listener() world.Listener {
	return world.ListenerFunc(func(ev world.Event) {
		if c := CueFor(ev); c != CueNone {
			log.Printf("[audio] %s on %s", c, ev.Type)
			sm.Play(c)
		}
	})
}
