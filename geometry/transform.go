package geometry

import "github.com/pin0513/mido-learning-sub001/court"

// CourtToUV converts a position's court metres into projector space
// The trained half is always drawn from behind its own baseline, so the
// trainee's left lands on screen left whichever end of the hall is trained
func CourtToUV(x, y float64, side court.Side, home court.Orientation) (u, v float64) {
	v = x / court.HalfLength
	if court.TrainedEnd(side, home) == court.Left {
		// Facing +X: trainee's left is the upper sideline
		u = 1 - y/court.Width
	} else {
		u = y / court.Width
	}
	return Clamp01(u), Clamp01(v)
}

// PositionToScreen projects a drill position through p
func PositionToScreen(p Projector, pos court.Position, side court.Side, home court.Orientation) Point {
	u, v := CourtToUV(pos.X, pos.Y, side, home)
	return p.Project(u, v)
}

// LineKind classifies court markings for styling
type LineKind uint8

const (
	LineBoundary LineKind = iota
	LineService
	LineNet
)

// Line is a court marking in (u, v) space
type Line struct {
	U0, V0 float64
	U1, V1 float64
	Kind   LineKind
}

// Canonical (u, v) values of the half-court markings
var (
	SinglesU      = court.SinglesInset / court.Width
	LongServiceV  = court.LongServiceFromBaseline / court.HalfLength
	ShortServiceV = (court.HalfLength - court.ShortServiceFromNet) / court.HalfLength
)

// Lines returns every half-court marking
func Lines() []Line {
	return []Line{
		// Doubles sidelines
		{0, 0, 0, 1, LineBoundary},
		{1, 0, 1, 1, LineBoundary},
		// Singles sidelines
		{SinglesU, 0, SinglesU, 1, LineBoundary},
		{1 - SinglesU, 0, 1 - SinglesU, 1, LineBoundary},
		// Baseline and doubles long service line
		{0, 0, 1, 0, LineBoundary},
		{0, LongServiceV, 1, LongServiceV, LineService},
		// Short service line and centre line
		{0, ShortServiceV, 1, ShortServiceV, LineService},
		{0.5, 0, 0.5, ShortServiceV, LineService},
		{0, 1, 1, 1, LineNet},
	}
}
