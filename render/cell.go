package render

// Cell is one terminal character in the render buffer
type Cell struct {
	Rune rune
	Fg   RGB
	Bg   RGB
	Bold bool
}

// DefaultBgRGB is the default background color
var DefaultBgRGB = RgbBackground
