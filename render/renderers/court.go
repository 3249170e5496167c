package renderers

import (
	"math"

	"github.com/pin0513/mido-learning-sub001/geometry"
	"github.com/pin0513/mido-learning-sub001/render"
)

// CourtRenderer fills the hall floor and the perspective court surface
type CourtRenderer struct{}

// NewCourtRenderer creates a court surface renderer
func NewCourtRenderer() *CourtRenderer {
	return &CourtRenderer{}
}

// Render implements render.Renderer
func (c *CourtRenderer) Render(ctx render.Context, buf *render.Buffer) {
	area := ctx.Court
	if area.Empty() {
		return
	}
	top := int(area.Y)
	bottom := int(area.Y+area.H) - 1
	for y := top; y <= bottom; y++ {
		buf.FillRow(y, 0, ctx.Width-1, render.RgbCourtOuter)
	}

	p := ctx.Projector
	nearY, farY := p.NearLeft.Y, p.FarLeft.Y
	if nearY <= farY {
		return
	}
	for y := int(math.Ceil(farY)); y <= int(nearY); y++ {
		v := (nearY - float64(y)) / (nearY - farY)
		left := geometry.Lerp(p.NearLeft, p.FarLeft, v)
		right := geometry.Lerp(p.NearRight, p.FarRight, v)
		buf.FillRow(y, int(math.Round(left.X)), int(math.Round(right.X)), render.RgbCourtSurface)
	}
}
