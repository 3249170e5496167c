package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/pin0513/mido-learning-sub001/app"
	"github.com/pin0513/mido-learning-sub001/audio"
	"github.com/pin0513/mido-learning-sub001/config"
	"github.com/pin0513/mido-learning-sub001/core"
	"github.com/pin0513/mido-learning-sub001/logging"
	"github.com/pin0513/mido-learning-sub001/session"
)

var (
	configFlag = flag.String("config", "", "Path to a TOML config file")
	modeFlag   = flag.String("mode", "", "Drill mode: random, sequential, manual, tactic")
	debugFlag  = flag.Bool("debug", false, "Enable debug logging to the configured log file")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the trainer crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "footwork: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return err
	}
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, logCloser, err := logging.Setup(cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	defer logCloser.Close()

	settings, err := cfg.SessionSettings()
	if err != nil {
		return err
	}

	sounds := audio.NewSoundManager(cfg.AudioSettings())
	switch err := sounds.Initialize(); {
	case errors.Is(err, audio.ErrDisabled):
		logger.Info().Msg("audio disabled")
	case err != nil:
		logger.Warn().Err(err).Msg("audio initialization failed, continuing without audio")
	}
	defer sounds.Cleanup()

	opts := []session.Option{
		session.WithLogger(logger),
		session.WithListener(app.FanOut(sounds.HandleEvent, app.EventLogger(logger))),
	}
	if cfg.Seed != 0 {
		opts = append(opts, session.WithRand(rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))))
	}
	sess := session.New(settings, opts...)
	defer sess.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()
	core.SetTerminalReset(screen.Fini)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logStartup(logger, cfg)
	trainer := app.New(screen, sess, settings.FrameInterval, logger)
	if err := trainer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	logger.Info().Msg("trainer stopped")
	return nil
}

// applyFlags lets command-line flags override file and environment values
func applyFlags(cfg *config.Config) {
	if *modeFlag != "" {
		cfg.Mode = *modeFlag
	}
	if *debugFlag {
		cfg.Log.Enabled = true
		cfg.Log.Level = zerolog.DebugLevel.String()
	}
}

func logStartup(logger zerolog.Logger, cfg *config.Config) {
	logger.Info().
		Str("mode", cfg.Mode).
		Str("side", cfg.Side).
		Str("home", cfg.Home).
		Int("interval_ms", cfg.IntervalMs).
		Int("set_target", cfg.SetTarget).
		Bool("audio", cfg.Audio.Enabled).
		Msg("footwork trainer starting")
}
