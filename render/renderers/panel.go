package renderers

import (
	"fmt"

	"github.com/pin0513/mido-learning-sub001/render"
	"github.com/pin0513/mido-learning-sub001/session"
)

// FirstShotKey is the key bound to the first candidate shot, the rest follow in order
const FirstShotKey = '5'

// MaxShotKeys is the number of candidate shots reachable from the keyboard
const MaxShotKeys = 5

// PanelRenderer draws the target caption and the tactic prompt above the help row
type PanelRenderer struct{}

// NewPanelRenderer creates a target/tactic panel renderer
func NewPanelRenderer() *PanelRenderer {
	return &PanelRenderer{}
}

// Render implements render.Renderer
func (p *PanelRenderer) Render(ctx render.Context, buf *render.Buffer) {
	top := ctx.Height - render.PanelRows
	if top < render.StatusRows {
		return
	}
	for y := top; y < ctx.Height-1; y++ {
		buf.FillRow(y, 0, ctx.Width-1, render.RgbPanelBg)
	}

	st := ctx.State
	caption, color := targetCaption(ctx)
	buf.Text(1, top, caption, color, true)

	if st.Mode == session.Tactic && st.Scenario != nil {
		buf.Text(1, top+1, "Opponent: "+st.Scenario.Opponent, render.RgbHudText, false)
		x := 1
		for i, shot := range st.Scenario.Shots {
			if i >= MaxShotKeys {
				break
			}
			label := fmt.Sprintf("[%c] %s", FirstShotKey+rune(i), shot)
			if shot == st.TacticShot {
				x = buf.Text(x, top+2, label, render.RgbShotPicked, true)
			} else {
				x = buf.Text(x, top+2, label, render.RgbHudText, false)
			}
			x += 2
		}
		return
	}
	if st.Running && !st.Mode.Timed() {
		buf.Text(1, top+1, "Press enter or n for the next position", render.RgbHudDim, false)
	}
}

func targetCaption(ctx render.Context) (string, render.RGB) {
	st := ctx.State
	lit, ok := st.Light()
	switch {
	case ok && st.Complete:
		return "Set complete on " + lit.Label, render.RgbLightComplete
	case ok:
		return "Target: " + lit.Label, render.RgbLightActive
	case len(ctx.Active) == 0:
		return "Enable a zone (f/m/b) to start", render.RgbHudDim
	}
	return "Press space to start", render.RgbHudText
}
