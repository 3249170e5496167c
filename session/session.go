package session

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/pin0513/mido-learning-sub001/court"
	"github.com/pin0513/mido-learning-sub001/engine"
	"github.com/pin0513/mido-learning-sub001/tactic"
)

// DefaultFrameInterval drives the pulse animation at roughly 30 fps
const DefaultFrameInterval = 33 * time.Millisecond

// Settings is the initial configuration of a session
type Settings struct {
	PanelOpen     bool
	Side          court.Side
	Home          court.Orientation
	Zones         court.ZoneActivation
	Interval      time.Duration
	Mode          Mode
	SetTarget     int
	FrameInterval time.Duration
}

// DefaultSettings returns the launch configuration
func DefaultSettings() Settings {
	return Settings{
		PanelOpen:     true,
		Side:          court.Home,
		Home:          court.Left,
		Zones:         court.AllZones(),
		Interval:      2000 * time.Millisecond,
		Mode:          Random,
		FrameInterval: DefaultFrameInterval,
	}
}

// Option customises a Session
type Option func(*Session)

// WithScheduler replaces the real-time scheduler
func WithScheduler(s engine.Scheduler) Option {
	return func(sess *Session) { sess.sched = s }
}

// WithClock replaces the wall clock used for elapsed time
func WithClock(c engine.TimeProvider) Option {
	return func(sess *Session) { sess.clock = c }
}

// WithRand sets the random source for light and scenario selection
func WithRand(r *rand.Rand) Option {
	return func(sess *Session) { sess.rng = r }
}

// WithLogger sets the session logger
func WithLogger(l zerolog.Logger) Option {
	return func(sess *Session) { sess.log = l }
}

// WithListener registers the event listener
func WithListener(l Listener) Option {
	return func(sess *Session) { sess.listener = l }
}

// Session is the drill scheduler and single owner of State
// All operations are synchronous and never block on timers
type Session struct {
	mu sync.Mutex
	st State

	frameInterval time.Duration
	sched         engine.Scheduler
	clock         engine.TimeProvider
	rng           *rand.Rand
	advisor       *tactic.Advisor
	log           zerolog.Logger
	listener      Listener

	advanceTask engine.Task
	frameTask   engine.Task
	// epoch invalidates callbacks from cancelled tasks that already fired
	epoch uint64

	pending []Event
}

// New creates an idle session
func New(cfg Settings, opts ...Option) *Session {
	s := &Session{
		frameInterval: cfg.FrameInterval,
		log:           zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.sched == nil {
		s.sched = engine.NewTickerScheduler()
	}
	if s.clock == nil {
		s.clock = engine.NewMonotonicTimeProvider()
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if s.frameInterval <= 0 {
		s.frameInterval = DefaultFrameInterval
	}
	s.advisor = tactic.NewAdvisor(s.rng)

	zones := cfg.Zones
	if zones == nil {
		zones = court.AllZones()
	}
	interval := cfg.Interval
	if interval <= 0 {
		interval = DefaultSettings().Interval
	}
	s.st = State{
		PanelOpen:      cfg.PanelOpen,
		Side:           cfg.Side,
		Home:           cfg.Home,
		Zones:          zones.Clone(),
		Interval:       interval,
		Mode:           cfg.Mode,
		SetTarget:      max(cfg.SetTarget, 0),
		CurrentLight:   NoLight,
		PulseDirection: 1,
	}
	return s
}

// do runs fn under the lock and then delivers the events it queued
func (s *Session) do(fn func()) {
	s.mu.Lock()
	fn()
	events := s.pending
	s.pending = nil
	listener := s.listener
	s.mu.Unlock()

	if listener == nil {
		return
	}
	for _, e := range events {
		listener(e)
	}
}

func (s *Session) emit(e Event) {
	e.Mode = s.st.Mode
	e.SetCount = s.st.SetCount
	s.pending = append(s.pending, e)
}

// Start begins cycling lights; no-op when running or no zone is active
func (s *Session) Start() {
	s.do(s.startLocked)
}

// Stop cancels both timers and clears the light; idempotent
func (s *Session) Stop() {
	s.do(s.stopLocked)
}

// Toggle flips the running state
func (s *Session) Toggle() {
	s.do(func() {
		if s.st.Running {
			s.stopLocked()
		} else {
			s.startLocked()
		}
	})
}

// Advance counts a set and selects the next light; no-op unless running
func (s *Session) Advance() {
	s.do(s.advanceLocked)
}

// Close stops the session for good
func (s *Session) Close() {
	s.Stop()
}

// Snapshot returns a copy of the current state
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.st.Clone()
	switch {
	case s.st.Running:
		c.Elapsed = s.clock.Now().Sub(s.st.StartedAt)
	case !s.st.StartedAt.IsZero() && !s.st.haltAt.IsZero():
		c.Elapsed = s.st.haltAt.Sub(s.st.StartedAt)
	}
	return c
}

// TogglePanel shows or hides the trainer; hiding stops a running drill
func (s *Session) TogglePanel() {
	s.do(func() {
		s.st.PanelOpen = !s.st.PanelOpen
		if !s.st.PanelOpen && s.st.Running {
			s.stopLocked()
		}
		s.log.Debug().Bool("open", s.st.PanelOpen).Msg("panel toggled")
	})
}

// SetSide selects which side of the net is trained
func (s *Session) SetSide(side court.Side) {
	s.do(func() {
		if s.st.Side == side {
			return
		}
		s.reconfigure("side", func(st *State) { st.Side = side })
	})
}

// SetHome selects which absolute end of the hall is home
func (s *Session) SetHome(home court.Orientation) {
	s.do(func() {
		if s.st.Home == home {
			return
		}
		s.reconfigure("home", func(st *State) { st.Home = home })
	})
}

// ToggleZone flips one zone; disabling the last zone leaves the session stopped
func (s *Session) ToggleZone(z court.Zone) {
	s.do(func() {
		s.reconfigure("zones", func(st *State) { st.Zones.Toggle(z) })
	})
}

// SetMode changes the drill mode
func (s *Session) SetMode(m Mode) {
	s.do(func() {
		if s.st.Mode == m {
			return
		}
		s.reconfigure("mode", func(st *State) { st.Mode = m })
	})
}

// SetIntervalPreset changes the advancement interval; non-positive values are ignored
func (s *Session) SetIntervalPreset(d time.Duration) {
	s.do(func() {
		if d <= 0 || s.st.Interval == d {
			return
		}
		s.reconfigure("interval", func(st *State) { st.Interval = d })
	})
}

// SetTarget updates the set target without restarting; negative values are ignored
func (s *Session) SetTarget(n int) {
	s.do(func() {
		if n < 0 {
			return
		}
		s.st.SetTarget = n
		s.log.Debug().Int("target", n).Msg("set target changed")
	})
}

// SelectShot records the trainee's answer for the current tactic scenario
// Labels that are not candidates of the scenario are ignored
func (s *Session) SelectShot(label string) {
	s.do(func() {
		if s.st.Mode != Tactic || s.st.Scenario == nil {
			return
		}
		shot := tactic.RecordShotChoice(*s.st.Scenario, s.st.TacticShot, label)
		if shot == s.st.TacticShot {
			return
		}
		s.st.TacticShot = shot
		s.emit(Event{Type: EventShotSelected, Shot: shot})
	})
}

// reconfigure applies mutate as a clean restart: stop, mutate, start if it was running
func (s *Session) reconfigure(what string, mutate func(*State)) {
	wasRunning := s.st.Running
	s.stopLocked()
	mutate(&s.st)
	s.log.Debug().
		Str("changed", what).
		Str("mode", s.st.Mode.String()).
		Str("side", s.st.Side.String()).
		Int("zones", s.st.Zones.Count()).
		Dur("interval", s.st.Interval).
		Bool("restart", wasRunning).
		Msg("session reconfigured")
	if wasRunning {
		s.startLocked()
	}
}

func (s *Session) startLocked() {
	if s.st.Running {
		return
	}
	active := s.st.ActivePositions()
	if len(active) == 0 {
		s.log.Debug().Msg("start ignored, no active zones")
		return
	}

	s.st.SetCount = 0
	s.st.SequentialIndex = 0
	s.st.TacticShot = ""
	s.st.Scenario = nil
	s.st.Complete = false
	s.st.CurrentLight = NoLight
	s.st.PulsePhase = 0
	s.st.PulseDirection = 1
	s.st.StartedAt = s.clock.Now()
	s.st.haltAt = time.Time{}
	s.st.Running = true

	s.epoch++
	epoch := s.epoch
	s.emit(Event{Type: EventStarted})
	s.selectLocked(active)

	if s.st.Mode.Timed() {
		s.advanceTask = s.sched.Every(s.st.Interval, func() {
			s.do(func() {
				if s.epoch == epoch {
					s.advanceLocked()
				}
			})
		})
	}
	s.frameTask = s.sched.Every(s.frameInterval, func() {
		s.do(func() {
			if s.epoch == epoch && s.st.Running {
				s.st.PulsePhase, s.st.PulseDirection = NextPulse(s.st.PulsePhase, s.st.PulseDirection)
			}
		})
	})

	s.log.Debug().
		Str("mode", s.st.Mode.String()).
		Int("active", len(active)).
		Dur("interval", s.st.Interval).
		Int("target", s.st.SetTarget).
		Msg("session started")
}

// haltLocked cancels both tasks and leaves the displayed light untouched
func (s *Session) haltLocked() {
	if s.advanceTask != nil {
		s.advanceTask.Cancel()
		s.advanceTask = nil
	}
	if s.frameTask != nil {
		s.frameTask.Cancel()
		s.frameTask = nil
	}
	s.epoch++
	if s.st.Running {
		s.st.haltAt = s.clock.Now()
	}
	s.st.Running = false
}

func (s *Session) stopLocked() {
	wasRunning := s.st.Running
	s.haltLocked()
	s.st.CurrentLight = NoLight
	s.st.TacticShot = ""
	s.st.Scenario = nil
	s.st.Complete = false
	s.st.PulsePhase = 0
	s.st.PulseDirection = 1
	if wasRunning {
		s.emit(Event{Type: EventStopped})
		s.log.Debug().Int("sets", s.st.SetCount).Msg("session stopped")
	}
}

func (s *Session) advanceLocked() {
	if !s.st.Running {
		return
	}
	active := s.st.ActivePositions()
	if len(active) == 0 {
		s.stopLocked()
		return
	}

	s.st.SetCount++
	// The target check precedes selection so the light that completed the set stays lit
	if s.st.SetTarget > 0 && s.st.SetCount >= s.st.SetTarget {
		s.haltLocked()
		s.st.Complete = true
		last, _ := s.st.Light()
		s.emit(Event{Type: EventCompleted, Position: last})
		s.log.Debug().Int("sets", s.st.SetCount).Msg("set target reached")
		return
	}
	s.selectLocked(active)
}

// selectLocked picks the next light among active, which must not be empty
func (s *Session) selectLocked(active []court.Position) {
	n := len(active)
	var idx int
	switch s.st.Mode {
	case Sequential:
		idx = s.st.SequentialIndex % n
		s.st.SequentialIndex = (idx + 1) % n
	default:
		idx = s.pickOther(n)
	}
	s.st.CurrentLight = idx

	if s.st.Mode == Tactic {
		sc := s.advisor.SelectScenario(active[idx].ID)
		s.st.Scenario = &sc
		s.st.TacticShot = ""
	}
	s.emit(Event{Type: EventLightChanged, Position: active[idx]})
}

// pickOther draws uniformly from [0, n) excluding the current light when n > 1
func (s *Session) pickOther(n int) int {
	cur := s.st.CurrentLight
	if n == 1 {
		return 0
	}
	if cur < 0 || cur >= n {
		return s.rng.IntN(n)
	}
	i := s.rng.IntN(n - 1)
	if i >= cur {
		i++
	}
	return i
}
