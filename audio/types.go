package audio

import (
	"errors"
)

// SoundType represents the trainer cues
type SoundType int

const (
	SoundStart    SoundType = iota // Drill started
	SoundCueFront                  // Light moved to a front position
	SoundCueMid                    // Light moved to a mid position
	SoundCueBack                   // Light moved to a back position
	SoundShot                      // Tactic shot picked
	SoundComplete                  // Set target reached
	SoundStop                      // Drill stopped
	soundTypeCount
)

// Sentinel errors
var (
	ErrDisabled = errors.New("audio disabled")
)
