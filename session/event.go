package session

import (
	"fmt"

	"github.com/pin0513/mido-learning-sub001/court"
)

// EventType identifies a session notification
type EventType uint8

const (
	EventStarted EventType = iota
	EventStopped
	EventLightChanged
	EventCompleted
	EventShotSelected
)

func (e EventType) String() string {
	switch e {
	case EventStarted:
		return "started"
	case EventStopped:
		return "stopped"
	case EventLightChanged:
		return "light"
	case EventCompleted:
		return "completed"
	case EventShotSelected:
		return "shot"
	}
	return fmt.Sprintf("EventType(%d)", uint8(e))
}

// Event is delivered to the listener after the session lock is released
type Event struct {
	Type     EventType
	Mode     Mode
	Position court.Position // EventLightChanged, EventCompleted
	SetCount int
	Shot     string // EventShotSelected
}

// Listener receives session events, it must not block
type Listener func(Event)
