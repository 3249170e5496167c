package renderers

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/pin0513/mido-learning-sub001/court"
	"github.com/pin0513/mido-learning-sub001/render"
	"github.com/pin0513/mido-learning-sub001/session"
)

// StatusRenderer draws the status bar on the top row
type StatusRenderer struct{}

// NewStatusRenderer creates a status bar renderer
func NewStatusRenderer() *StatusRenderer {
	return &StatusRenderer{}
}

// Render implements render.Renderer
func (s *StatusRenderer) Render(ctx render.Context, buf *render.Buffer) {
	bg := render.RgbStatusIdle
	switch {
	case ctx.State.Complete:
		bg = render.RgbStatusDone
	case ctx.State.Running:
		bg = render.RgbStatusRunning
	}
	buf.FillRow(0, 0, ctx.Width-1, bg)
	buf.Text(0, 0, StatusLine(ctx.State), render.RgbStatusText, false)
}

// StatusLine formats the session summary shown in the status bar
func StatusLine(st session.State) string {
	parts := []string{
		statusLabel(st),
		st.Mode.String(),
		intervalText(st),
		repText(st),
		fmt.Sprintf("%s side, home %s", st.Side, st.Home),
		"zones " + zonesText(st.Zones),
	}
	if st.Elapsed > 0 {
		parts = append(parts, clockText(st.Elapsed))
	}
	return " " + strings.Join(parts, " | ") + " "
}

func statusLabel(st session.State) string {
	switch {
	case st.Complete:
		return "DONE"
	case st.Running:
		return "RUNNING"
	}
	return "READY"
}

func intervalText(st session.State) string {
	if !st.Mode.Timed() {
		return "manual advance"
	}
	return "every " + humanize.FtoaWithDigits(st.Interval.Seconds(), 2) + "s"
}

func repText(st session.State) string {
	target := humanize.Comma(int64(st.SetTarget))
	switch {
	case st.Complete:
		return humanize.Comma(int64(st.SetCount)) + " reps done"
	case st.Running:
		rep := humanize.Ordinal(st.SetCount+1) + " rep"
		if st.SetTarget > 0 {
			rep += " of " + target
		}
		return rep
	case st.SetTarget > 0:
		return "target " + target
	}
	return "no target"
}

// zonesText renders enabled zones as initials, '-' for disabled ones
func zonesText(z court.ZoneActivation) string {
	var sb strings.Builder
	for _, zone := range court.Zones {
		if z.Active(zone) {
			sb.WriteByte(strings.ToUpper(zone.String())[0])
		} else {
			sb.WriteByte('-')
		}
	}
	return sb.String()
}

func clockText(d time.Duration) string {
	d = d.Truncate(time.Second)
	return fmt.Sprintf("%02d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}
