package court

import "fmt"

// Badminton court dimensions in metres
const (
	Length     = 13.40
	HalfLength = Length / 2
	Width      = 6.10

	SinglesInset = 0.46 // Singles sideline distance from the doubles sideline

	ShortServiceFromNet     = 1.98 // Short service line distance from the net
	LongServiceFromBaseline = 0.76 // Doubles long service line distance from the baseline
)

// Anchor offsets used to place the six drill positions
const (
	frontLateral = 1.00 // Sideline distance of the front pair (short service depth)
	midLateral   = 0.60 // Sideline distance of the mid pair
	backLateral  = 0.80 // Sideline distance of the back pair (long service depth)
)

// Side identifies which physical half of the net is trained
type Side uint8

const (
	Home Side = iota
	Away
)

func (s Side) String() string {
	switch s {
	case Home:
		return "home"
	case Away:
		return "away"
	}
	return fmt.Sprintf("Side(%d)", uint8(s))
}

// Opposite returns the other side of the net
func (s Side) Opposite() Side {
	if s == Home {
		return Away
	}
	return Home
}

// ParseSide converts a config/flag string into a Side
func ParseSide(s string) (Side, error) {
	switch s {
	case "home":
		return Home, nil
	case "away":
		return Away, nil
	}
	return Home, fmt.Errorf("unknown side %q", s)
}

// Orientation is the absolute end of the hall that counts as "home"
type Orientation uint8

const (
	Left Orientation = iota
	Right
)

func (o Orientation) String() string {
	switch o {
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("Orientation(%d)", uint8(o))
}

// Flip returns the mirrored orientation
func (o Orientation) Flip() Orientation {
	if o == Left {
		return Right
	}
	return Left
}

// ParseOrientation converts a config/flag string into an Orientation
func ParseOrientation(s string) (Orientation, error) {
	switch s {
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	}
	return Left, fmt.Errorf("unknown orientation %q", s)
}

// TrainedEnd returns the absolute end of the court the trainee stands on
// Home side sits on the home orientation, away side on the opposite end
func TrainedEnd(side Side, home Orientation) Orientation {
	if side == Home {
		return home
	}
	return home.Flip()
}
