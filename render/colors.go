package render

// Palette (Tokyo Night base, indoor-court greens)
var (
	RgbBackground = RGB{26, 27, 38}

	RgbCourtSurface = RGB{22, 92, 70} // Mat green
	RgbCourtOuter   = RGB{34, 40, 58} // Hall floor around the court
	RgbLineWhite    = RGB{230, 230, 230}
	RgbLineService  = RGB{190, 200, 200}
	RgbNet          = RGB{240, 210, 120}

	RgbLightIdle     = RGB{150, 160, 180} // Active zone, not lit
	RgbLightDim      = RGB{70, 75, 90}    // Inactive zone
	RgbLightActive   = RGB{255, 165, 0}   // Lit target
	RgbLightGlow     = RGB{255, 120, 40}
	RgbLightComplete = RGB{120, 230, 120}

	RgbStatusText    = RGB{0, 0, 0}
	RgbStatusRunning = RGB{144, 238, 144}
	RgbStatusIdle    = RGB{135, 206, 250}
	RgbStatusDone    = RGB{255, 192, 203}
	RgbHudText       = RGB{200, 200, 210}
	RgbHudDim        = RGB{110, 115, 130}
	RgbPanelBg       = RGB{36, 40, 59}
	RgbShotPicked    = RGB{255, 255, 0}
)

// PulseColor returns the lit target color for a pulse phase in [0, 1]
func PulseColor(phase float64) RGB {
	return Lerp(RgbLightActive, RgbLightGlow, phase)
}
