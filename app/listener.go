package app

import (
	"github.com/rs/zerolog"

	"github.com/pin0513/mido-learning-sub001/session"
)

// FanOut delivers each event to every non-nil listener in order
func FanOut(listeners ...session.Listener) session.Listener {
	return func(e session.Event) {
		for _, l := range listeners {
			if l != nil {
				l(e)
			}
		}
	}
}

// EventLogger records session events at debug level
func EventLogger(log zerolog.Logger) session.Listener {
	return func(e session.Event) {
		ev := log.Debug().
			Str("event", e.Type.String()).
			Str("mode", e.Mode.String()).
			Int("sets", e.SetCount)
		switch e.Type {
		case session.EventLightChanged, session.EventCompleted:
			ev = ev.Str("position", e.Position.ID)
		case session.EventShotSelected:
			ev = ev.Str("shot", e.Shot)
		}
		ev.Msg("session event")
	}
}
