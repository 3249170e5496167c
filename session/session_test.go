package session

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pin0513/mido-learning-sub001/court"
	"github.com/pin0513/mido-learning-sub001/engine"
)

const (
	testInterval = 2000 * time.Millisecond
	testFrame    = 100 * time.Millisecond
)

type harness struct {
	sess   *Session
	sched  *engine.ManualScheduler
	events []Event
}

func newHarness(t *testing.T, mutate func(*Settings)) *harness {
	t.Helper()
	cfg := DefaultSettings()
	cfg.Interval = testInterval
	cfg.FrameInterval = testFrame
	if mutate != nil {
		mutate(&cfg)
	}
	h := &harness{sched: engine.NewManualScheduler(time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC))}
	h.sess = New(cfg,
		WithScheduler(h.sched),
		WithClock(h.sched),
		WithRand(rand.New(rand.NewPCG(7, 11))),
		WithListener(func(e Event) { h.events = append(h.events, e) }),
	)
	return h
}

func zones(active ...court.Zone) court.ZoneActivation {
	z := court.ZoneActivation{}
	for _, a := range active {
		z[a] = true
	}
	return z
}

func lightID(t *testing.T, st State) string {
	t.Helper()
	p, ok := st.Light()
	require.True(t, ok, "expected a lit position")
	return p.ID
}

// assertZoneInvariant checks that a lit position always belongs to an enabled zone
func assertZoneInvariant(t *testing.T, st State) {
	t.Helper()
	if st.CurrentLight == NoLight {
		return
	}
	p, ok := st.Light()
	require.True(t, ok, "CurrentLight %d out of active range", st.CurrentLight)
	assert.True(t, st.Zones.Active(p.Zone), "light %s in inactive zone", p.ID)
}

func TestStartRequiresActiveZone(t *testing.T) {
	h := newHarness(t, func(c *Settings) { c.Zones = zones() })

	h.sess.Start()

	st := h.sess.Snapshot()
	assert.False(t, st.Running)
	assert.Equal(t, NoLight, st.CurrentLight)
	assert.Empty(t, h.sched.Live())
	assert.Empty(t, h.events)
}

func TestStartArmsTasks(t *testing.T) {
	tests := []struct {
		mode      Mode
		wantTimer bool
	}{
		{Random, true},
		{Sequential, true},
		{Manual, false},
		{Tactic, false},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			h := newHarness(t, func(c *Settings) { c.Mode = tt.mode })
			h.sess.Start()

			assert.Len(t, h.sched.LiveWithInterval(testFrame), 1, "frame loop")
			if tt.wantTimer {
				assert.Len(t, h.sched.LiveWithInterval(testInterval), 1, "advancement timer")
			} else {
				assert.Empty(t, h.sched.LiveWithInterval(testInterval), "advancement timer")
			}

			st := h.sess.Snapshot()
			assert.True(t, st.Running)
			assert.Zero(t, st.SetCount)
			assertZoneInvariant(t, st)
		})
	}
}

func TestStartIsIdempotent(t *testing.T) {
	h := newHarness(t, nil)
	h.sess.Start()
	first := h.sess.Snapshot()

	h.sess.Start()

	assert.Len(t, h.sched.Live(), 2)
	assert.Equal(t, first.CurrentLight, h.sess.Snapshot().CurrentLight)
}

func TestStopIsIdempotent(t *testing.T) {
	h := newHarness(t, nil)
	h.sess.Start()
	h.sched.Advance(3 * testInterval)

	h.sess.Stop()
	once := h.sess.Snapshot()
	h.sess.Stop()
	twice := h.sess.Snapshot()

	assert.Equal(t, once, twice)
	assert.False(t, twice.Running)
	assert.Equal(t, NoLight, twice.CurrentLight)
	assert.Empty(t, twice.TacticShot)
	assert.Empty(t, h.sched.Live(), "both tasks must be cancelled")
}

func TestStoppedSessionIgnoresTime(t *testing.T) {
	h := newHarness(t, nil)
	h.sess.Start()
	h.sess.Stop()
	before := h.sess.Snapshot()

	h.sched.Advance(10 * testInterval)

	after := h.sess.Snapshot()
	assert.Equal(t, before.SetCount, after.SetCount)
	assert.Equal(t, before.PulsePhase, after.PulsePhase)
}

func TestSequentialCompleteness(t *testing.T) {
	h := newHarness(t, func(c *Settings) {
		c.Mode = Sequential
		c.Zones = zones(court.Front, court.Back)
		c.Side = court.Home
	})

	h.sess.Start()
	got := []string{lightID(t, h.sess.Snapshot())}
	for i := 0; i < 4; i++ {
		h.sess.Advance()
		st := h.sess.Snapshot()
		assertZoneInvariant(t, st)
		got = append(got, lightID(t, st))
	}

	assert.Equal(t, []string{"front-left", "front-right", "back-left", "back-right", "front-left"}, got)
}

func TestSequentialTimerAdvances(t *testing.T) {
	h := newHarness(t, func(c *Settings) { c.Mode = Sequential })
	h.sess.Start()

	var got []string
	for i := 0; i < court.PositionCount; i++ {
		got = append(got, lightID(t, h.sess.Snapshot()))
		h.sched.Advance(testInterval)
	}

	assert.Equal(t, []string{"front-left", "front-right", "mid-left", "mid-right", "back-left", "back-right"}, got)
	assert.Equal(t, court.PositionCount, h.sess.Snapshot().SetCount)
}

func TestNoImmediateRepeat(t *testing.T) {
	for _, mode := range []Mode{Random, Manual, Tactic} {
		t.Run(mode.String(), func(t *testing.T) {
			h := newHarness(t, func(c *Settings) { c.Mode = mode })
			h.sess.Start()

			prev := h.sess.Snapshot().CurrentLight
			seen := map[int]bool{prev: true}
			for i := 0; i < 300; i++ {
				h.sess.Advance()
				st := h.sess.Snapshot()
				require.NotEqual(t, prev, st.CurrentLight, "repeat at step %d", i)
				assertZoneInvariant(t, st)
				prev = st.CurrentLight
				seen[prev] = true
			}
			assert.Len(t, seen, court.PositionCount)
		})
	}
}

func TestSingleActivePositionRepeats(t *testing.T) {
	for _, mode := range Modes {
		t.Run(mode.String(), func(t *testing.T) {
			h := newHarness(t, func(c *Settings) { c.Mode = mode })
			h.sess.Start()
			one := h.sess.Snapshot().ActivePositions()[:1]

			for i := 0; i < 5; i++ {
				h.sess.mu.Lock()
				h.sess.selectLocked(one)
				got := h.sess.st.CurrentLight
				h.sess.mu.Unlock()
				assert.Equal(t, 0, got)
			}
		})
	}
}

func TestSetTargetTermination(t *testing.T) {
	h := newHarness(t, func(c *Settings) {
		c.Mode = Random
		c.SetTarget = 3
	})
	h.sess.Start()

	h.sched.Advance(2 * testInterval)
	mid := h.sess.Snapshot()
	require.True(t, mid.Running)
	require.Equal(t, 2, mid.SetCount)

	h.sched.Advance(testInterval)
	st := h.sess.Snapshot()
	assert.False(t, st.Running)
	assert.True(t, st.Complete)
	assert.Equal(t, 3, st.SetCount)
	// The light that completed the set stays displayed
	assert.Equal(t, mid.CurrentLight, st.CurrentLight)
	assert.Empty(t, h.sched.Live())

	require.NotEmpty(t, h.events)
	last := h.events[len(h.events)-1]
	assert.Equal(t, EventCompleted, last.Type)
	assert.Equal(t, 3, last.SetCount)
}

func TestAdvanceAfterCompletionHasNoEffect(t *testing.T) {
	h := newHarness(t, func(c *Settings) {
		c.Mode = Manual
		c.SetTarget = 3
	})
	h.sess.Start()
	for i := 0; i < 3; i++ {
		h.sess.Advance()
	}
	done := h.sess.Snapshot()
	require.False(t, done.Running)
	require.Equal(t, 3, done.SetCount)

	h.sess.Advance()

	assert.Equal(t, done, h.sess.Snapshot())
}

func TestAdvanceWhileIdleHasNoEffect(t *testing.T) {
	h := newHarness(t, func(c *Settings) { c.Mode = Manual })
	before := h.sess.Snapshot()

	h.sess.Advance()

	assert.Equal(t, before, h.sess.Snapshot())
}

func TestManualModeIgnoresTimer(t *testing.T) {
	h := newHarness(t, func(c *Settings) { c.Mode = Manual })
	h.sess.Start()
	first := h.sess.Snapshot().CurrentLight

	h.sched.Advance(5 * testInterval)

	st := h.sess.Snapshot()
	assert.Zero(t, st.SetCount)
	assert.Equal(t, first, st.CurrentLight)

	h.sched.Advance(testFrame)
	assert.NotEqual(t, st.PulsePhase, h.sess.Snapshot().PulsePhase, "frame loop still runs")
}

func TestToggleZoneRestarts(t *testing.T) {
	h := newHarness(t, func(c *Settings) { c.Mode = Random })
	h.sess.Start()
	h.sched.Advance(2 * testInterval)

	for i := 0; i < 20; i++ {
		h.sess.ToggleZone(court.Mid)
		st := h.sess.Snapshot()
		assert.True(t, st.Running)
		assert.Zero(t, st.SetCount, "restart resets the count")
		assertZoneInvariant(t, st)
		assert.Len(t, h.sched.Live(), 2, "restart must not stack timers")
		h.sched.Advance(testInterval)
	}
}

func TestAllZonesOffStops(t *testing.T) {
	h := newHarness(t, func(c *Settings) { c.Zones = zones(court.Back) })
	h.sess.Start()

	h.sess.ToggleZone(court.Back)

	st := h.sess.Snapshot()
	assert.False(t, st.Running)
	assert.Equal(t, NoLight, st.CurrentLight)
	assert.Empty(t, h.sched.Live())
}

func TestAdvanceWithEmptyActiveSetStops(t *testing.T) {
	h := newHarness(t, func(c *Settings) { c.Mode = Manual })
	h.sess.Start()

	// Bypass reconfigure to reach the empty-set guard in advance
	h.sess.mu.Lock()
	h.sess.st.Zones = zones()
	h.sess.mu.Unlock()
	h.sess.Advance()

	st := h.sess.Snapshot()
	assert.False(t, st.Running)
	assert.Equal(t, NoLight, st.CurrentLight)
	assert.Zero(t, st.SetCount)
}

func TestReconfigureWhileIdleDoesNotStart(t *testing.T) {
	h := newHarness(t, nil)

	h.sess.SetMode(Sequential)
	h.sess.SetSide(court.Away)
	h.sess.SetHome(court.Right)
	h.sess.SetIntervalPreset(1500 * time.Millisecond)
	h.sess.ToggleZone(court.Front)

	st := h.sess.Snapshot()
	assert.False(t, st.Running)
	assert.Equal(t, Sequential, st.Mode)
	assert.Equal(t, court.Away, st.Side)
	assert.Equal(t, court.Right, st.Home)
	assert.Equal(t, 1500*time.Millisecond, st.Interval)
	assert.False(t, st.Zones.Active(court.Front))
	assert.Empty(t, h.sched.Live())
}

func TestReconfigureClearsCompletedLight(t *testing.T) {
	h := newHarness(t, func(c *Settings) {
		c.Mode = Manual
		c.SetTarget = 1
	})
	h.sess.Start()
	h.sess.Advance()
	require.True(t, h.sess.Snapshot().Complete)

	h.sess.ToggleZone(court.Front)

	st := h.sess.Snapshot()
	assert.False(t, st.Complete)
	assert.Equal(t, NoLight, st.CurrentLight)
}

func TestIntervalChangeRearmsTimer(t *testing.T) {
	h := newHarness(t, nil)
	h.sess.Start()

	h.sess.SetIntervalPreset(3000 * time.Millisecond)

	assert.Empty(t, h.sched.LiveWithInterval(testInterval))
	assert.Len(t, h.sched.LiveWithInterval(3000*time.Millisecond), 1)
	assert.True(t, h.sess.Snapshot().Running)
}

func TestSetModeToManualDisarmsTimer(t *testing.T) {
	h := newHarness(t, nil)
	h.sess.Start()

	h.sess.SetMode(Manual)

	assert.Empty(t, h.sched.LiveWithInterval(testInterval))
	assert.Len(t, h.sched.LiveWithInterval(testFrame), 1)
}

func TestSetTargetDoesNotRestart(t *testing.T) {
	h := newHarness(t, nil)
	h.sess.Start()
	h.sched.Advance(2 * testInterval)
	before := h.sess.Snapshot()

	h.sess.SetTarget(10)

	st := h.sess.Snapshot()
	assert.True(t, st.Running)
	assert.Equal(t, 10, st.SetTarget)
	assert.Equal(t, before.SetCount, st.SetCount)
	assert.Equal(t, before.CurrentLight, st.CurrentLight)

	h.sess.SetTarget(-1)
	assert.Equal(t, 10, h.sess.Snapshot().SetTarget)
}

func TestPulseBounds(t *testing.T) {
	h := newHarness(t, nil)
	h.sess.Start()

	rising := true
	for i := 0; i < 500; i++ {
		h.sched.Advance(testFrame)
		st := h.sess.Snapshot()
		require.GreaterOrEqual(t, st.PulsePhase, 0.0)
		require.LessOrEqual(t, st.PulsePhase, 1.0)
		if st.PulsePhase == 1 {
			rising = false
		}
	}
	assert.False(t, rising, "phase should reach the top of the wave")
}

func TestNextPulse(t *testing.T) {
	tests := []struct {
		name      string
		phase     float64
		dir       int
		wantPhase float64
		wantDir   int
	}{
		{"rising", 0.5, 1, 0.55, 1},
		{"falling", 0.5, -1, 0.45, -1},
		{"top flips", 0.97, 1, 1, -1},
		{"bottom flips", 0.03, -1, 0, 1},
		{"zero direction rises", 0, 0, 0.05, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, d := NextPulse(tt.phase, tt.dir)
			assert.InDelta(t, tt.wantPhase, p, 1e-9)
			assert.Equal(t, tt.wantDir, d)
		})
	}
}

func TestTacticScenarioLifecycle(t *testing.T) {
	h := newHarness(t, func(c *Settings) { c.Mode = Tactic })
	h.sess.Start()

	st := h.sess.Snapshot()
	require.NotNil(t, st.Scenario)
	shots := st.Scenario.Shots

	h.sess.SelectShot(shots[1])
	assert.Equal(t, shots[1], h.sess.Snapshot().TacticShot)

	h.sess.SelectShot(shots[0])
	assert.Equal(t, shots[0], h.sess.Snapshot().TacticShot, "new choice replaces the old one")

	h.sess.SelectShot("not a shot")
	assert.Equal(t, shots[0], h.sess.Snapshot().TacticShot)

	h.sess.Advance()
	st = h.sess.Snapshot()
	assert.Empty(t, st.TacticShot, "advance clears the recorded shot")
	assert.NotNil(t, st.Scenario)

	h.sess.Stop()
	st = h.sess.Snapshot()
	assert.Nil(t, st.Scenario)
	assert.Empty(t, st.TacticShot)
}

func TestSelectShotOutsideTacticMode(t *testing.T) {
	h := newHarness(t, func(c *Settings) { c.Mode = Manual })
	h.sess.Start()

	h.sess.SelectShot("Net kill")

	st := h.sess.Snapshot()
	assert.Empty(t, st.TacticShot)
	assert.Nil(t, st.Scenario)
}

func TestSnapshotIsCopy(t *testing.T) {
	h := newHarness(t, func(c *Settings) { c.Mode = Tactic })
	h.sess.Start()

	st := h.sess.Snapshot()
	st.Zones[court.Front] = false
	st.Scenario.Shots[0] = "mutated"

	again := h.sess.Snapshot()
	assert.True(t, again.Zones.Active(court.Front))
	assert.NotEqual(t, "mutated", again.Scenario.Shots[0])
}

func TestTogglePanelStopsSession(t *testing.T) {
	h := newHarness(t, nil)
	h.sess.Start()

	h.sess.TogglePanel()

	st := h.sess.Snapshot()
	assert.False(t, st.PanelOpen)
	assert.False(t, st.Running)
	assert.Empty(t, h.sched.Live())

	h.sess.TogglePanel()
	st = h.sess.Snapshot()
	assert.True(t, st.PanelOpen)
	assert.False(t, st.Running, "opening the panel does not start a drill")
}

func TestToggle(t *testing.T) {
	h := newHarness(t, nil)

	h.sess.Toggle()
	assert.True(t, h.sess.Snapshot().Running)

	h.sess.Toggle()
	assert.False(t, h.sess.Snapshot().Running)
}

func TestElapsedFreezesOnStop(t *testing.T) {
	h := newHarness(t, nil)
	h.sess.Start()
	h.sched.Advance(5 * time.Second)
	assert.Equal(t, 5*time.Second, h.sess.Snapshot().Elapsed)

	h.sess.Stop()
	h.sched.Advance(3 * time.Second)
	assert.Equal(t, 5*time.Second, h.sess.Snapshot().Elapsed)
}

func TestEventOrder(t *testing.T) {
	h := newHarness(t, func(c *Settings) { c.Mode = Manual })

	h.sess.Start()
	h.sess.Advance()
	h.sess.Stop()

	var types []EventType
	for _, e := range h.events {
		types = append(types, e.Type)
	}
	assert.Equal(t, []EventType{EventStarted, EventLightChanged, EventLightChanged, EventStopped}, types)
	assert.Equal(t, 1, h.events[2].SetCount)
	assert.NotEmpty(t, h.events[1].Position.ID)
}

func TestListenerMayCallSession(t *testing.T) {
	sched := engine.NewManualScheduler(time.Unix(0, 0))
	var sess *Session
	var seen []State
	sess = New(DefaultSettings(),
		WithScheduler(sched),
		WithClock(sched),
		WithRand(rand.New(rand.NewPCG(1, 1))),
		WithListener(func(e Event) {
			// Would deadlock if events were delivered under the session lock
			seen = append(seen, sess.Snapshot())
			if e.Type == EventLightChanged && len(seen) > 3 {
				sess.Stop()
			}
		}),
	)

	sess.Start()
	for i := 0; i < 5; i++ {
		sess.Advance()
	}

	assert.False(t, sess.Snapshot().Running)
	assert.NotEmpty(t, seen)
}

func TestRealTimeScheduler(t *testing.T) {
	sched := engine.NewTickerScheduler()
	cfg := DefaultSettings()
	cfg.Interval = 5 * time.Millisecond
	cfg.FrameInterval = time.Millisecond
	sess := New(cfg, WithScheduler(sched))

	sess.Start()
	require.Eventually(t, func() bool {
		return sess.Snapshot().SetCount >= 3
	}, 2*time.Second, time.Millisecond)
	sess.Close()
	sched.Wait()

	st := sess.Snapshot()
	assert.False(t, st.Running)
	assert.Equal(t, NoLight, st.CurrentLight)
}

func TestParseMode(t *testing.T) {
	for _, m := range Modes {
		got, err := ParseMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
	_, err := ParseMode("chaos")
	assert.Error(t, err)
}

func TestNextPreset(t *testing.T) {
	assert.Equal(t, 2500*time.Millisecond, NextPreset(IntervalPresets, 2000*time.Millisecond, 1))
	assert.Equal(t, 4000*time.Millisecond, NextPreset(IntervalPresets, 1000*time.Millisecond, -1))
	assert.Equal(t, 1000*time.Millisecond, NextPreset(IntervalPresets, 4000*time.Millisecond, 1))
	assert.Equal(t, 1000*time.Millisecond, NextPreset(IntervalPresets, 1234*time.Millisecond, 1))
	assert.Equal(t, 0, NextPreset(TargetPresets, 50, 1))
	assert.Equal(t, 10, NextPreset(TargetPresets, 0, 1))
}
