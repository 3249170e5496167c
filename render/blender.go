package render

// BlendMode defines compositing operations using a bitmask (Flags | Op)
type BlendMode uint8

// Blend operations
const (
	opReplace uint8 = 0x00
	opAlpha   uint8 = 0x01
	opAdd     uint8 = 0x02
	opMax     uint8 = 0x03
)

// Blend flags
const (
	flagBg uint8 = 0x10 // Apply operation to background
	flagFg uint8 = 0x20 // Apply operation to foreground
)

// Pre-defined blend modes
const (
	BlendReplace = BlendMode(opReplace | flagBg | flagFg)
	BlendAlpha   = BlendMode(opAlpha | flagBg | flagFg)
	BlendAdd     = BlendMode(opAdd | flagBg | flagFg)
	BlendMax     = BlendMode(opMax | flagBg | flagFg)

	BlendFgOnly  = BlendMode(opReplace | flagFg) // Replace fg, keep bg
	BlendAlphaBg = BlendMode(opAlpha | flagBg)   // Glow over the existing background
)

func (m BlendMode) apply(dst, src RGB, alpha float64) RGB {
	switch uint8(m) & 0x0F {
	case opAlpha:
		return Blend(dst, src, alpha)
	case opAdd:
		return Blend(dst, Add(dst, src), alpha)
	case opMax:
		return Blend(dst, Max(dst, src), alpha)
	}
	return src
}
