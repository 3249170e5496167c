package renderers

import (
	"github.com/pin0513/mido-learning-sub001/geometry"
	"github.com/pin0513/mido-learning-sub001/render"
)

// LinesRenderer draws boundary, service and net markings through the projector
type LinesRenderer struct {
	lines []geometry.Line
}

// NewLinesRenderer creates a court markings renderer
func NewLinesRenderer() *LinesRenderer {
	return &LinesRenderer{lines: geometry.Lines()}
}

// Render implements render.Renderer
func (l *LinesRenderer) Render(ctx render.Context, buf *render.Buffer) {
	if ctx.Court.Empty() {
		return
	}
	for _, line := range l.lines {
		x0, y0 := ctx.UVCell(line.U0, line.V0)
		x1, y1 := ctx.UVCell(line.U1, line.V1)
		drawLine(buf, x0, y0, x1, y1, lineRune(line.Kind, x1-x0, y1-y0), lineColor(line.Kind))
	}
}

func lineColor(k geometry.LineKind) render.RGB {
	switch k {
	case geometry.LineNet:
		return render.RgbNet
	case geometry.LineService:
		return render.RgbLineService
	}
	return render.RgbLineWhite
}

// lineRune picks a glyph from the on-screen slope of a marking
func lineRune(k geometry.LineKind, dx, dy int) rune {
	if k == geometry.LineNet {
		return '═'
	}
	switch {
	case dy == 0:
		return '─'
	case abs(dx)*3 <= abs(dy):
		return '│'
	case (dx < 0) != (dy < 0):
		return '/'
	}
	return '\\'
}

// drawLine uses Bresenham's line algorithm between two cells, endpoints included
func drawLine(buf *render.Buffer, x0, y0, x1, y1 int, r rune, fg render.RGB) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		buf.SetFgOnly(x0, y0, r, fg, false)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
