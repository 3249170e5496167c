package render

import (
	"math"

	"github.com/pin0513/mido-learning-sub001/court"
	"github.com/pin0513/mido-learning-sub001/geometry"
	"github.com/pin0513/mido-learning-sub001/session"
)

// Screen layout rows outside the court area
const (
	StatusRows = 1
	PanelRows  = 4
)

// Context provides frame state for renderers, passed by value
type Context struct {
	// Screen dimensions (terminal size)
	Width  int
	Height int

	State session.State

	// Positions holds all six drill positions, Active the enabled subset
	Positions []court.Position
	Active    []court.Position

	Court     geometry.Rect
	Projector geometry.Projector
}

// NewContext derives the frame layout and positions for a state snapshot
// A zero-sized surface yields a context with an empty court area
func NewContext(width, height int, st session.State) Context {
	ctx := Context{
		Width:  width,
		Height: height,
		State:  st,
	}
	if width <= 0 || height <= 0 {
		return ctx
	}
	ctx.Positions = st.Positions()
	ctx.Active = court.ActivePositions(ctx.Positions, st.Zones)
	ctx.Court = CourtArea(width, height)
	if !ctx.Court.Empty() {
		ctx.Projector = geometry.NewCourtProjector(ctx.Court)
	}
	return ctx
}

// CourtArea returns the drawing area left for the court between status row and panel
func CourtArea(width, height int) geometry.Rect {
	return geometry.Rect{
		X: 0,
		Y: StatusRows,
		W: float64(width),
		H: float64(height - StatusRows - PanelRows),
	}
}

// Visible reports whether a frame should be drawn at all
func (c Context) Visible() bool {
	return c.State.PanelOpen && c.Width > 0 && c.Height > 0
}

// PositionCell projects a drill position onto a screen cell
func (c Context) PositionCell(p court.Position) (int, int) {
	pt := geometry.PositionToScreen(c.Projector, p, c.State.Side, c.State.Home)
	return int(math.Round(pt.X)), int(math.Round(pt.Y))
}

// UVCell projects normalized court coordinates onto a screen cell
func (c Context) UVCell(u, v float64) (int, int) {
	pt := c.Projector.Project(u, v)
	return int(math.Round(pt.X)), int(math.Round(pt.Y))
}

// IsActive reports whether p belongs to an enabled zone
func (c Context) IsActive(p court.Position) bool {
	return c.State.Zones.Active(p.Zone)
}

// IsLit reports whether p is the current light
func (c Context) IsLit(p court.Position) bool {
	lit, ok := c.State.Light()
	return ok && lit.ID == p.ID
}
