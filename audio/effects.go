package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Cue timings
const (
	cueDuration     = 180 * time.Millisecond
	cueAttack       = 5 * time.Millisecond
	cueRelease      = 120 * time.Millisecond
	startNoteDur    = 90 * time.Millisecond
	stopDuration    = 250 * time.Millisecond
	shotDuration    = 60 * time.Millisecond
	completeNoteDur = 160 * time.Millisecond
	completeRelease = 100 * time.Millisecond
	shortAttack     = 3 * time.Millisecond
	shortRelease    = 40 * time.Millisecond
)

// Cue pitches: higher means closer to the net
const (
	frontCueHz = 1046.50 // C6
	midCueHz   = 783.99  // G5
	backCueHz  = 523.25  // C5
	shotHz     = 1760.0
	stopHz     = 220.0
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveTriangle
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
		case WaveTriangle:
			val = 4*math.Abs(o.phase-0.5) - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
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

// NewEnvelope creates an attack/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: max(total-att-rel, 0),
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
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a volume effect
// math.Log2(0) is -Inf, so 0 volume is made silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

func tone(freq float64, d, attack, release time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, d, wave, rate), d, attack, release, rate)
}

// CreateCueSound generates the light-change ping, pitched by depth
func CreateCueSound(freq float64, vol float64, rate beep.SampleRate) beep.Streamer {
	fund := tone(freq, cueDuration, cueAttack, cueRelease, WaveSine, rate)
	over := tone(freq*2, cueDuration, cueAttack, cueRelease/2, WaveSine, rate)
	return newVolume(beep.Mix(newVolume(fund, 0.7), newVolume(over, 0.3)), vol)
}

// CreateStartSound generates a rising three-note arpeggio
func CreateStartSound(vol float64, rate beep.SampleRate) beep.Streamer {
	return newVolume(beep.Seq(
		tone(backCueHz, startNoteDur, shortAttack, shortRelease, WaveTriangle, rate),
		tone(midCueHz, startNoteDur, shortAttack, shortRelease, WaveTriangle, rate),
		tone(frontCueHz, startNoteDur, shortAttack, shortRelease, WaveTriangle, rate),
	), vol)
}

// CreateStopSound generates a low falling thud
func CreateStopSound(vol float64, rate beep.SampleRate) beep.Streamer {
	return newVolume(tone(stopHz, stopDuration, shortAttack, stopDuration/2, WaveTriangle, rate), vol)
}

// CreateShotSound generates a short click for a picked shot
func CreateShotSound(vol float64, rate beep.SampleRate) beep.Streamer {
	return newVolume(tone(shotHz, shotDuration, shortAttack, shortRelease, WaveSquare, rate), vol)
}

// CreateCompleteSound generates a two-note chime for a finished set
func CreateCompleteSound(vol float64, rate beep.SampleRate) beep.Streamer {
	return newVolume(beep.Seq(
		tone(987.77, completeNoteDur, shortAttack, completeRelease, WaveSquare, rate),      // B5
		tone(1318.51, completeNoteDur*2, shortAttack, completeRelease*2, WaveSquare, rate), // E6
	), vol*0.5)
}

// GetSoundEffect returns the streamer for soundType, nil for unknown types
func GetSoundEffect(soundType SoundType, cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	if soundType < 0 || soundType >= soundTypeCount {
		return nil
	}
	vol := cfg.EffectVolumes[soundType] * cfg.MasterVolume
	switch soundType {
	case SoundStart:
		return CreateStartSound(vol, rate)
	case SoundCueFront:
		return CreateCueSound(frontCueHz, vol, rate)
	case SoundCueMid:
		return CreateCueSound(midCueHz, vol, rate)
	case SoundCueBack:
		return CreateCueSound(backCueHz, vol, rate)
	case SoundShot:
		return CreateShotSound(vol, rate)
	case SoundComplete:
		return CreateCompleteSound(vol, rate)
	case SoundStop:
		return CreateStopSound(vol, rate)
	}
	return nil
}
