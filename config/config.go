package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/pin0513/mido-learning-sub001/audio"
	"github.com/pin0513/mido-learning-sub001/court"
	"github.com/pin0513/mido-learning-sub001/session"
)

// EnvPrefix is prepended to every environment override, e.g. FOOTWORK_INTERVAL_MS
const EnvPrefix = "FOOTWORK"

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid configuration")

// ZonesConfig enables drill zones at launch
type ZonesConfig struct {
	Front bool `mapstructure:"front"`
	Mid   bool `mapstructure:"mid"`
	Back  bool `mapstructure:"back"`
}

// AudioConfig holds cue player settings
type AudioConfig struct {
	Enabled bool    `mapstructure:"enabled"`
	Volume  float64 `mapstructure:"volume"`
}

// LogConfig holds the rotating debug log settings
type LogConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	Level      string `mapstructure:"level"`
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
}

// Config is the trainer configuration
type Config struct {
	Mode            string      `mapstructure:"mode"`
	Side            string      `mapstructure:"side"`
	Home            string      `mapstructure:"home"`
	PanelOpen       bool        `mapstructure:"panel_open"`
	Zones           ZonesConfig `mapstructure:"zones"`
	IntervalMs      int         `mapstructure:"interval_ms"`
	SetTarget       int         `mapstructure:"set_target"`
	FrameIntervalMs int         `mapstructure:"frame_interval_ms"`
	// Seed fixes the random source when non-zero
	Seed  uint64      `mapstructure:"seed"`
	Audio AudioConfig `mapstructure:"audio"`
	Log   LogConfig   `mapstructure:"log"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("mode", "random")
	v.SetDefault("side", "home")
	v.SetDefault("home", "left")
	v.SetDefault("panel_open", true)

	v.SetDefault("zones.front", true)
	v.SetDefault("zones.mid", true)
	v.SetDefault("zones.back", true)

	v.SetDefault("interval_ms", 2000)
	v.SetDefault("set_target", 0)
	v.SetDefault("frame_interval_ms", 33)
	v.SetDefault("seed", 0)

	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.volume", 0.6)

	v.SetDefault("log.enabled", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "footwork.log")
	v.SetDefault("log.max_size_mb", 5)
	v.SetDefault("log.max_backups", 3)
}

// Load reads defaults, the optional config file at path and FOOTWORK_ environment overrides
// An empty path skips the file
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	return &cfg, nil
}

// Validate rejects values the session cannot run with
func (c *Config) Validate() error {
	var errs []error
	if _, err := session.ParseMode(c.Mode); err != nil {
		errs = append(errs, err)
	}
	if _, err := court.ParseSide(c.Side); err != nil {
		errs = append(errs, err)
	}
	if _, err := court.ParseOrientation(c.Home); err != nil {
		errs = append(errs, err)
	}
	if !c.Zones.Front && !c.Zones.Mid && !c.Zones.Back {
		errs = append(errs, errors.New("at least one zone must be enabled"))
	}
	if c.IntervalMs <= 0 {
		errs = append(errs, fmt.Errorf("interval_ms must be positive, got %d", c.IntervalMs))
	}
	if c.FrameIntervalMs <= 0 {
		errs = append(errs, fmt.Errorf("frame_interval_ms must be positive, got %d", c.FrameIntervalMs))
	}
	if c.SetTarget < 0 {
		errs = append(errs, fmt.Errorf("set_target must not be negative, got %d", c.SetTarget))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio.volume must be within [0, 1], got %g", c.Audio.Volume))
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	if c.Log.Enabled && c.Log.File == "" {
		errs = append(errs, errors.New("log.file is required when logging is enabled"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}
	return nil
}

// SessionSettings converts a validated config into session launch settings
func (c *Config) SessionSettings() (session.Settings, error) {
	mode, err := session.ParseMode(c.Mode)
	if err != nil {
		return session.Settings{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	side, err := court.ParseSide(c.Side)
	if err != nil {
		return session.Settings{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	home, err := court.ParseOrientation(c.Home)
	if err != nil {
		return session.Settings{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return session.Settings{
		PanelOpen: c.PanelOpen,
		Side:      side,
		Home:      home,
		Zones: court.ZoneActivation{
			court.Front: c.Zones.Front,
			court.Mid:   c.Zones.Mid,
			court.Back:  c.Zones.Back,
		},
		Interval:      time.Duration(c.IntervalMs) * time.Millisecond,
		Mode:          mode,
		SetTarget:     c.SetTarget,
		FrameInterval: time.Duration(c.FrameIntervalMs) * time.Millisecond,
	}, nil
}

// AudioSettings converts the audio section into a cue player config
func (c *Config) AudioSettings() *audio.Config {
	cfg := audio.DefaultConfig().WithVolume(c.Audio.Volume)
	cfg.Enabled = c.Audio.Enabled
	return cfg
}
