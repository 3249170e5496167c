package app

import (
	"github.com/gdamore/tcell/v2"

	"github.com/pin0513/mido-learning-sub001/court"
	"github.com/pin0513/mido-learning-sub001/render/renderers"
	"github.com/pin0513/mido-learning-sub001/session"
)

// InputHandler maps key presses onto session operations
type InputHandler struct {
	sess *session.Session
	help *renderers.HelpRenderer
}

// NewInputHandler creates a new input handler
func NewInputHandler(sess *session.Session, help *renderers.HelpRenderer) *InputHandler {
	return &InputHandler{
		sess: sess,
		help: help,
	}
}

// HandleEvent processes a tcell event and returns false if the app should exit
func (h *InputHandler) HandleEvent(ev tcell.Event) bool {
	if ev, ok := ev.(*tcell.EventKey); ok {
		return h.handleKeyEvent(ev)
	}
	return true
}

func (h *InputHandler) handleKeyEvent(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return false
	case tcell.KeyEnter:
		h.sess.Advance()
		return true
	case tcell.KeyRune:
	default:
		return true
	}

	r := ev.Rune()
	switch r {
	case 'q':
		return false
	case 'p':
		h.sess.TogglePanel()
		return true
	case '?':
		if h.help != nil {
			h.help.Toggle()
		}
		return true
	}

	st := h.sess.Snapshot()
	// Panel controls are only reachable while the panel is shown
	if !st.PanelOpen {
		return true
	}

	switch r {
	case ' ':
		h.sess.Toggle()
	case 'n':
		h.sess.Advance()
	case 's':
		h.sess.SetSide(st.Side.Opposite())
	case 'o':
		h.sess.SetHome(st.Home.Flip())
	case 'f':
		h.sess.ToggleZone(court.Front)
	case 'm':
		h.sess.ToggleZone(court.Mid)
	case 'b':
		h.sess.ToggleZone(court.Back)
	case '1', '2', '3', '4':
		h.sess.SetMode(session.Modes[r-'1'])
	case '[':
		h.sess.SetIntervalPreset(session.NextPreset(session.IntervalPresets, st.Interval, -1))
	case ']':
		h.sess.SetIntervalPreset(session.NextPreset(session.IntervalPresets, st.Interval, 1))
	case 't':
		h.sess.SetTarget(session.NextPreset(session.TargetPresets, st.SetTarget, 1))
	default:
		h.handleShotKey(r, st)
	}
	return true
}

// handleShotKey answers the tactic scenario with the candidate bound to r
func (h *InputHandler) handleShotKey(r rune, st session.State) {
	idx := int(r - renderers.FirstShotKey)
	if idx < 0 || idx >= renderers.MaxShotKeys || st.Scenario == nil {
		return
	}
	if idx >= len(st.Scenario.Shots) {
		return
	}
	h.sess.SelectShot(st.Scenario.Shots[idx])
}
