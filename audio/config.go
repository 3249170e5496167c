package audio

// Config controls the cue player
type Config struct {
	Enabled      bool
	MasterVolume float64 // 0.0-1.0
	SampleRate   int
	// EffectVolumes scales individual cues relative to the master volume
	EffectVolumes [soundTypeCount]float64
}

// DefaultConfig returns the audio defaults
func DefaultConfig() *Config {
	cfg := &Config{
		Enabled:      true,
		MasterVolume: 0.6,
		SampleRate:   48000,
	}
	for i := range cfg.EffectVolumes {
		cfg.EffectVolumes[i] = 1.0
	}
	cfg.EffectVolumes[SoundShot] = 0.5
	return cfg
}

// WithVolume returns a copy with the master volume clamped to [0, 1]
func (c Config) WithVolume(v float64) *Config {
	c.MasterVolume = min(max(v, 0), 1)
	return &c
}
