package session

import (
	"slices"
	"time"

	"github.com/pin0513/mido-learning-sub001/court"
	"github.com/pin0513/mido-learning-sub001/tactic"
)

// NoLight marks CurrentLight when no position is lit
const NoLight = -1

// PulseStep is the pulse phase change per animation tick
const PulseStep = 0.05

// State is the training session record
// Readers receive copies through Session.Snapshot
type State struct {
	PanelOpen bool
	Side      court.Side
	Home      court.Orientation
	Zones     court.ZoneActivation
	Interval  time.Duration
	Mode      Mode

	SequentialIndex int
	SetCount        int
	SetTarget       int // 0 is unbounded

	// CurrentLight indexes ActivePositions(), NoLight when unset
	CurrentLight   int
	PulsePhase     float64
	PulseDirection int

	Running  bool
	Complete bool

	Scenario   *tactic.Scenario
	TacticShot string

	StartedAt time.Time
	// Elapsed is filled by Snapshot: time since StartedAt, frozen once halted
	Elapsed time.Duration
	haltAt  time.Time
}

// Clone returns a deep copy
func (s State) Clone() State {
	c := s
	c.Zones = s.Zones.Clone()
	if s.Scenario != nil {
		sc := *s.Scenario
		sc.Shots = slices.Clone(s.Scenario.Shots)
		c.Scenario = &sc
	}
	return c
}

// Positions regenerates all six positions for the current side and orientation
func (s State) Positions() []court.Position {
	return court.Positions(s.Side, s.Home)
}

// ActivePositions returns the positions whose zone is enabled
func (s State) ActivePositions() []court.Position {
	return court.ActivePositions(s.Positions(), s.Zones)
}

// Light returns the lit position
func (s State) Light() (court.Position, bool) {
	if s.CurrentLight == NoLight {
		return court.Position{}, false
	}
	active := s.ActivePositions()
	if s.CurrentLight < 0 || s.CurrentLight >= len(active) {
		return court.Position{}, false
	}
	return active[s.CurrentLight], true
}

// NextPulse advances a triangle-wave oscillator by one tick
func NextPulse(phase float64, dir int) (float64, int) {
	if dir == 0 {
		dir = 1
	}
	phase += PulseStep * float64(dir)
	if phase >= 1 {
		return 1, -1
	}
	if phase <= 0 {
		return 0, 1
	}
	return phase, dir
}
