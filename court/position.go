package court

import "fmt"

// Zone is a depth band on the trained half
type Zone uint8

const (
	Front Zone = iota
	Mid
	Back
	zoneCount
)

// Zones lists every zone in document order
var Zones = [zoneCount]Zone{Front, Mid, Back}

func (z Zone) String() string {
	switch z {
	case Front:
		return "front"
	case Mid:
		return "mid"
	case Back:
		return "back"
	}
	return fmt.Sprintf("Zone(%d)", uint8(z))
}

// ZoneActivation records which zones take part in the drill
type ZoneActivation map[Zone]bool

// AllZones returns an activation with every zone enabled
func AllZones() ZoneActivation {
	return ZoneActivation{Front: true, Mid: true, Back: true}
}

// Active reports whether zone z is enabled, missing keys count as disabled
func (za ZoneActivation) Active(z Zone) bool {
	return za[z]
}

// Toggle flips zone z
func (za ZoneActivation) Toggle(z Zone) {
	za[z] = !za[z]
}

// Count returns the number of enabled zones
func (za ZoneActivation) Count() int {
	n := 0
	for _, z := range Zones {
		if za[z] {
			n++
		}
	}
	return n
}

// Clone returns an independent copy
func (za ZoneActivation) Clone() ZoneActivation {
	out := make(ZoneActivation, len(Zones))
	for _, z := range Zones {
		out[z] = za[z]
	}
	return out
}

// Lateral is the trainee-relative left/right of a position
type Lateral uint8

const (
	LateralLeft Lateral = iota
	LateralRight
)

func (l Lateral) String() string {
	if l == LateralLeft {
		return "left"
	}
	return "right"
}

// Position is one of the six drill targets
// X is the distance from the trained baseline toward the net, Y the across-court
// distance from the court's absolute lower sideline
type Position struct {
	ID      string
	X, Y    float64
	Zone    Zone
	Lateral Lateral
	Label   string // Full display label
	Short   string // Two-letter tag for small lights
}

type anchor struct {
	zone     Zone
	depth    float64 // From the trained baseline
	sideline float64 // From the trainee's own sideline
}

// anchors in document order, each expanded into a left/right pair
var anchors = [...]anchor{
	{Front, HalfLength - ShortServiceFromNet, frontLateral},
	{Mid, (HalfLength - ShortServiceFromNet + LongServiceFromBaseline) / 2, midLateral},
	{Back, LongServiceFromBaseline, backLateral},
}

// PositionCount is the fixed number of drill positions
const PositionCount = len(anchors) * 2

// Positions derives the six drill positions for the given configuration
// Order: front-left, front-right, mid-left, mid-right, back-left, back-right
func Positions(side Side, home Orientation) []Position {
	end := TrainedEnd(side, home)
	out := make([]Position, 0, PositionCount)
	for _, a := range anchors {
		for _, lat := range [...]Lateral{LateralLeft, LateralRight} {
			out = append(out, Position{
				ID:      a.zone.String() + "-" + lat.String(),
				X:       a.depth,
				Y:       absoluteY(end, lat, a.sideline),
				Zone:    a.zone,
				Lateral: lat,
				Label:   label(a.zone, lat),
				Short:   short(a.zone, lat),
			})
		}
	}
	return out
}

// absoluteY mirrors a trainee-relative sideline distance into the court frame
// Facing +X from the left end, the trainee's left is the upper sideline
func absoluteY(end Orientation, lat Lateral, fromSideline float64) float64 {
	upper := (end == Left) == (lat == LateralLeft)
	if upper {
		return Width - fromSideline
	}
	return fromSideline
}

// ActivePositions filters positions down to enabled zones, preserving order
func ActivePositions(all []Position, zones ZoneActivation) []Position {
	out := make([]Position, 0, len(all))
	for _, p := range all {
		if zones.Active(p.Zone) {
			out = append(out, p)
		}
	}
	return out
}

// IndexOf returns the index of the position with id, or -1
func IndexOf(ps []Position, id string) int {
	for i, p := range ps {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func label(z Zone, l Lateral) string {
	var depth string
	switch z {
	case Front:
		depth = "Front"
	case Mid:
		depth = "Mid"
	default:
		depth = "Back"
	}
	if l == LateralLeft {
		return depth + " Left"
	}
	return depth + " Right"
}

func short(z Zone, l Lateral) string {
	s := []byte{"FMB"[z], 'L'}
	if l == LateralRight {
		s[1] = 'R'
	}
	return string(s)
}
