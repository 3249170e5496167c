package render

import "github.com/gdamore/tcell/v2"

// RGB is an 8-bit colour kept independent of tcell until flush
type RGB struct {
	R, G, B uint8
}

var RGBBlack = RGB{0, 0, 0}

func lerpChannel(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + t*(float64(b)-float64(a)))
}

// Lerp interpolates from a (t=0) to b (t=1), t is clamped
func Lerp(a, b RGB, t float64) RGB {
	switch {
	case t <= 0:
		return a
	case t >= 1:
		return b
	}
	return RGB{
		R: lerpChannel(a.R, b.R, t),
		G: lerpChannel(a.G, b.G, t),
		B: lerpChannel(a.B, b.B, t),
	}
}

// Blend composites src over c with the given opacity
func Blend(c, src RGB, alpha float64) RGB {
	return Lerp(c, src, alpha)
}

// Max keeps the brighter value of each channel
func Max(c, src RGB) RGB {
	return RGB{max(c.R, src.R), max(c.G, src.G), max(c.B, src.B)}
}

func addChannel(a, b uint8) uint8 {
	return uint8(min(int(a)+int(b), 255))
}

// Add sums channels, saturating at 255
func Add(c, src RGB) RGB {
	return RGB{addChannel(c.R, src.R), addChannel(c.G, src.G), addChannel(c.B, src.B)}
}

// RGBToTcell converts to a true-colour tcell.Color
func RGBToTcell(rgb RGB) tcell.Color {
	return tcell.NewRGBColor(int32(rgb.R), int32(rgb.G), int32(rgb.B))
}
