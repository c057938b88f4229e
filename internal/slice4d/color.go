package slice4d

import "image/color"

// RGBA stores color components; each is nominally in [0,1] but only the
// framebuffer clamps.
type RGBA struct {
	R, G, B, A Real
}

func (c RGBA) Add(d RGBA) RGBA { return RGBA{c.R + d.R, c.G + d.G, c.B + d.B, c.A + d.A} }
func (c RGBA) Mul(s Real) RGBA { return RGBA{c.R * s, c.G * s, c.B * s, c.A * s} }

// clamp01 clamps each channel to [0,1].
func (c RGBA) clamp01() RGBA {
	return RGBA{clamp(c.R, 0, 1), clamp(c.G, 0, 1), clamp(c.B, 0, 1), clamp(c.A, 0, 1)}
}

// NRGBA converts to 8 bits per channel (non-premultiplied).
func (c RGBA) NRGBA() color.NRGBA {
	c = c.clamp01()
	return color.NRGBA{uint8(c.R * 255), uint8(c.G * 255), uint8(c.B * 255), uint8(c.A * 255)}
}

// Colored is implemented by primitives carrying a light/dark color pair.
type Colored interface {
	LightColor() RGBA
	DarkColor() RGBA
}

// Default shape colors.
var (
	DefaultLight = RGBA{1, 1, 1, 1}
	DefaultDark  = RGBA{.2, .2, .2, 1}
)
