package logging

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/pin0513/mido-learning-sub001/config"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Setup builds the application logger from cfg
// The screen owns stdout, so an enabled logger only writes to the rotating file
// Disabled logging returns a Nop logger and a no-op closer
func Setup(cfg config.LogConfig) (zerolog.Logger, io.Closer, error) {
	if !cfg.Enabled {
		return zerolog.Nop(), nopCloser{}, nil
	}

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, err
	}

	if dir := filepath.Dir(cfg.File); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return zerolog.Nop(), nopCloser{}, err
		}
	}

	file := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB, // megabytes
		MaxBackups: cfg.MaxBackups,
	}

	logger := zerolog.New(zerolog.ConsoleWriter{
		Out:        file,
		TimeFormat: time.RFC3339,
		NoColor:    true,
	}).Level(level).With().Timestamp().Logger()

	logger.Info().Str("loglevel", level.String()).Str("file", cfg.File).Msg("Logging set up")
	return logger, file, nil
}
