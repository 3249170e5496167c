package renderers

import (
	"math"

	"github.com/pin0513/mido-learning-sub001/geometry"
	"github.com/pin0513/mido-learning-sub001/render"
)

// Pulse envelope of the lit target: radius = base * (PulseBase + phase*PulseRange)
const (
	PulseBase  = 1.6
	PulseRange = 1.0
)

// Glyphs for unlit positions
const (
	runeIdle     = '●'
	runeInactive = '·'
)

// LightRadius returns the lit target radius in rows for a pulse phase
func LightRadius(base, phase float64) float64 {
	return base * (PulseBase + phase*PulseRange)
}

// BaseRadius scales the light size with the court area height
func BaseRadius(area geometry.Rect) float64 {
	return max(1, area.H/20)
}

// LightsRenderer draws one light per drill position
type LightsRenderer struct{}

// NewLightsRenderer creates a position lights renderer
func NewLightsRenderer() *LightsRenderer {
	return &LightsRenderer{}
}

// Render implements render.Renderer
// Inactive zones are dimmed, active ones neutral, the lit one large and labelled
func (l *LightsRenderer) Render(ctx render.Context, buf *render.Buffer) {
	if ctx.Court.Empty() {
		return
	}
	lit := -1
	for i, p := range ctx.Positions {
		x, y := ctx.PositionCell(p)
		switch {
		case ctx.IsLit(p):
			lit = i
		case ctx.IsActive(p):
			buf.SetFgOnly(x, y, runeIdle, render.RgbLightIdle, false)
		default:
			buf.SetFgOnly(x, y, runeInactive, render.RgbLightDim, false)
		}
	}
	// Lit target last so its glow covers neighbours
	if lit >= 0 {
		p := ctx.Positions[lit]
		x, y := ctx.PositionCell(p)
		color := render.PulseColor(ctx.State.PulsePhase)
		if ctx.State.Complete {
			color = render.RgbLightComplete
		}
		r := LightRadius(BaseRadius(ctx.Court), ctx.State.PulsePhase)
		drawDisc(buf, x, y, r, color)
		buf.Text(x-len(p.Short)/2, y, p.Short, render.RgbStatusText, true)
	}
}

// drawDisc paints a glow disc of radius r rows; cells are about twice as tall as wide
func drawDisc(buf *render.Buffer, cx, cy int, r float64, color render.RGB) {
	ry := int(math.Ceil(r))
	rx := int(math.Ceil(2 * r))
	for dy := -ry; dy <= ry; dy++ {
		for dx := -rx; dx <= rx; dx++ {
			d := math.Hypot(float64(dx)/2, float64(dy))
			if d > r {
				continue
			}
			alpha := 1 - 0.6*(d/r)
			buf.Set(cx+dx, cy+dy, 0, render.RGB{}, color, render.BlendAlphaBg, alpha)
		}
	}
}
