package app

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/pin0513/mido-learning-sub001/core"
	"github.com/pin0513/mido-learning-sub001/render"
	"github.com/pin0513/mido-learning-sub001/render/renderers"
	"github.com/pin0513/mido-learning-sub001/session"
)

const hiddenHint = "Footwork trainer hidden, press p to open or q to quit"

// App hosts the trainer in a terminal: one goroutine owns rendering and input
type App struct {
	screen tcell.Screen
	sess   *session.Session
	orch   *render.Orchestrator
	input  *InputHandler
	log    zerolog.Logger

	frameInterval time.Duration
	hintShown     bool
}

// New wires the render pipeline and key bindings around an initialised screen
func New(screen tcell.Screen, sess *session.Session, frameInterval time.Duration, log zerolog.Logger) *App {
	if frameInterval <= 0 {
		frameInterval = session.DefaultFrameInterval
	}
	screen.SetStyle(tcell.StyleDefault.Background(render.RGBToTcell(render.RgbBackground)))

	orch := render.NewOrchestrator(screen)
	help := renderers.RegisterAll(orch)

	return &App{
		screen:        screen,
		sess:          sess,
		orch:          orch,
		input:         NewInputHandler(sess, help),
		log:           log,
		frameInterval: frameInterval,
	}
}

// HandleEvent applies one terminal event and returns false when the app should exit
func (a *App) HandleEvent(ev tcell.Event) bool {
	if _, ok := ev.(*tcell.EventResize); ok {
		w, h := a.screen.Size()
		a.orch.Resize(w, h)
		a.hintShown = false
		a.log.Debug().Int("width", w).Int("height", h).Msg("screen resized")
		return true
	}
	return a.input.HandleEvent(ev)
}

// Frame draws the current session state, or the reopen hint once while the panel is hidden
func (a *App) Frame() {
	w, h := a.screen.Size()
	st := a.sess.Snapshot()
	if a.orch.RenderFrame(render.NewContext(w, h, st)) {
		a.hintShown = false
		return
	}
	if !st.PanelOpen && !a.hintShown {
		a.drawHiddenHint(w, h)
		a.hintShown = true
	}
}

func (a *App) drawHiddenHint(w, h int) {
	buf := a.orch.Buffer()
	if bw, bh := buf.Bounds(); bw != w || bh != h {
		buf.Resize(w, h)
	}
	buf.Clear()
	buf.Text(1, 0, hiddenHint, render.RgbHudDim, false)
	buf.FlushTo(a.screen)
	a.screen.Show()
}

// Run processes input and renders frames until quit or ctx is cancelled
// The caller owns the screen and finalises it after Run returns
func (a *App) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 64)
	done := make(chan struct{})
	defer close(done)

	// Input polling stays on its own goroutine since PollEvent blocks
	core.Go(func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	})

	frameTicker := time.NewTicker(a.frameInterval)
	defer frameTicker.Stop()

	a.log.Info().Dur("frame", a.frameInterval).Msg("trainer running")
	a.Frame()

	for {
		select {
		case <-ctx.Done():
			a.log.Info().Msg("trainer cancelled")
			return ctx.Err()
		case ev := <-events:
			if !a.HandleEvent(ev) {
				a.log.Info().Msg("trainer quit")
				return nil
			}
			// Redraw immediately so key presses do not wait for the next tick
			a.Frame()
		case <-frameTicker.C:
			a.Frame()
		}
	}
}
