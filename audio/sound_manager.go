package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/pin0513/mido-learning-sub001/court"
	"github.com/pin0513/mido-learning-sub001/session"
)

const speakerBufferDuration = 100 * time.Millisecond

// SoundManager plays drill cues through a shared mixer
// Every method is safe to call before Initialize or after Cleanup
type SoundManager struct {
	mu          sync.Mutex
	cfg         *Config
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a sound manager, a nil cfg uses DefaultConfig
func NewSoundManager(cfg *Config) *SoundManager {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the speaker; returns ErrDisabled when audio is switched off
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.cfg.Enabled {
		return ErrDisabled
	}
	if sm.initialized {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(speakerBufferDuration)); err != nil {
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
	// beep has no speaker Close, an empty mixer is silent
	sm.initialized = false
}

// Play queues a cue on the mixer
func (sm *SoundManager) Play(t SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	s := GetSoundEffect(t, sm.cfg)
	if s == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// HandleEvent is a session.Listener playing the cue for e
func (sm *SoundManager) HandleEvent(e session.Event) {
	if t, ok := SoundForEvent(e); ok {
		sm.Play(t)
	}
}

// SoundForEvent maps a session event to its cue
func SoundForEvent(e session.Event) (SoundType, bool) {
	switch e.Type {
	case session.EventStarted:
		return SoundStart, true
	case session.EventStopped:
		return SoundStop, true
	case session.EventCompleted:
		return SoundComplete, true
	case session.EventShotSelected:
		return SoundShot, true
	case session.EventLightChanged:
		switch e.Position.Zone {
		case court.Front:
			return SoundCueFront, true
		case court.Mid:
			return SoundCueMid, true
		case court.Back:
			return SoundCueBack, true
		}
	}
	return 0, false
}
