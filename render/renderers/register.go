package renderers

import "github.com/pin0513/mido-learning-sub001/render"

// RegisterAll wires the trainer layers into o and returns the help renderer for toggling
func RegisterAll(o *render.Orchestrator) *HelpRenderer {
	help := NewHelpRenderer()
	o.Register(NewCourtRenderer(), render.PriorityCourt)
	o.Register(NewLinesRenderer(), render.PriorityLines)
	o.Register(NewLightsRenderer(), render.PriorityLights)
	o.Register(NewStatusRenderer(), render.PriorityUI)
	o.Register(NewPanelRenderer(), render.PriorityUI)
	o.Register(help, render.PriorityOverlay)
	return help
}
