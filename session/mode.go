package session

import (
	"fmt"
	"time"
)

// Mode decides how the next light is chosen and what drives advancement
type Mode uint8

const (
	Random Mode = iota
	Sequential
	Manual
	Tactic
	modeCount
)

// Modes lists every drill mode in menu order
var Modes = [modeCount]Mode{Random, Sequential, Manual, Tactic}

func (m Mode) String() string {
	switch m {
	case Random:
		return "random"
	case Sequential:
		return "sequential"
	case Manual:
		return "manual"
	case Tactic:
		return "tactic"
	}
	return fmt.Sprintf("Mode(%d)", uint8(m))
}

// Timed reports whether the interval timer drives advancement in this mode
// Manual and tactic modes only advance on an explicit Advance call
func (m Mode) Timed() bool {
	return m == Random || m == Sequential
}

// ParseMode converts a config/flag string into a Mode
func ParseMode(s string) (Mode, error) {
	for _, m := range Modes {
		if m.String() == s {
			return m, nil
		}
	}
	return Random, fmt.Errorf("unknown mode %q", s)
}

// Interval presets offered by the settings panel
var IntervalPresets = []time.Duration{
	1000 * time.Millisecond,
	1500 * time.Millisecond,
	2000 * time.Millisecond,
	2500 * time.Millisecond,
	3000 * time.Millisecond,
	4000 * time.Millisecond,
}

// TargetPresets are the set-target choices, 0 is unbounded
var TargetPresets = []int{0, 10, 20, 30, 50}

// NextPreset returns the preset after cur, wrapping; step may be negative
// A value that is not a preset snaps to the first entry
func NextPreset[T comparable](presets []T, cur T, step int) T {
	idx := -1
	for i, p := range presets {
		if p == cur {
			idx = i
			break
		}
	}
	if idx < 0 {
		return presets[0]
	}
	n := len(presets)
	return presets[((idx+step)%n+n)%n]
}
