package renderers

import (
	"github.com/pin0513/mido-learning-sub001/render"
)

const helpText = " space start/stop  n next  1-4 mode  f/m/b zones  s side  o flip  [ ] interval  t target  p panel  ? help  q quit"

// HelpRenderer draws the key bindings on the bottom row
type HelpRenderer struct {
	visible bool
}

// NewHelpRenderer creates a visible help row renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{visible: true}
}

// IsVisible implements render.VisibilityToggle
func (h *HelpRenderer) IsVisible() bool {
	return h.visible
}

// Toggle shows or hides the help row
func (h *HelpRenderer) Toggle() {
	h.visible = !h.visible
}

// Render implements render.Renderer
func (h *HelpRenderer) Render(ctx render.Context, buf *render.Buffer) {
	y := ctx.Height - 1
	if y < render.StatusRows {
		return
	}
	buf.Text(0, y, helpText, render.RgbHudDim, false)
}
