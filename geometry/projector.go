package geometry

// Point is a screen-space coordinate
type Point struct {
	X, Y float64
}

// Lerp interpolates linearly between a and b
func Lerp(a, b Point, t float64) Point {
	return Point{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
	}
}

// Rect is an axis-aligned drawing area
type Rect struct {
	X, Y, W, H float64
}

// Empty reports whether the area has no drawable surface
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Projector maps normalized court coordinates onto a perspective trapezoid
// u spans the court width left to right, v spans baseline (0) to net (1)
// Pure given its four corners; callers clamp u/v when needed
type Projector struct {
	NearLeft, NearRight Point // Baseline edge
	FarLeft, FarRight   Point // Net edge, narrower for depth
}

// Trapezoid proportions relative to the drawing area
const (
	nearInset = 0.04 // Horizontal inset of the baseline corners
	farInset  = 0.24 // Horizontal inset of the net corners
	farTop    = 0.06 // Vertical offset of the net edge from the area top
)

// NewCourtProjector computes the trapezoid corners for a drawing area
// Must be recomputed whenever the surface size changes
func NewCourtProjector(area Rect) Projector {
	nearY := area.Y + area.H - 1
	farY := area.Y + area.H*farTop
	return Projector{
		NearLeft:  Point{area.X + area.W*nearInset, nearY},
		NearRight: Point{area.X + area.W*(1-nearInset) - 1, nearY},
		FarLeft:   Point{area.X + area.W*farInset, farY},
		FarRight:  Point{area.X + area.W*(1-farInset) - 1, farY},
	}
}

// Project returns the screen point for (u, v) by bilinear interpolation
func (p Projector) Project(u, v float64) Point {
	near := Lerp(p.NearLeft, p.NearRight, u)
	far := Lerp(p.FarLeft, p.FarRight, u)
	return Lerp(near, far, v)
}

// Clamp01 limits v to [0, 1]
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
