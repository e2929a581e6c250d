package quark

import "image/color"

// Color is an RGBA color in 8-bit channels.
type Color struct {
	R, G, B, A uint8
}

func RGB(r, g, b uint8) Color { return Color{R: r, G: g, B: b, A: 0xFF} }

// Scale multiplies the color channels by s clamped to [0,1]. Alpha is kept.
func (c Color) Scale(s float32) Color {
	s = clampF32(s, 0, 1)
	mul := func(ch uint8) uint8 {
		return uint8(float32(ch)*s + 0.5)
	}
	return Color{R: mul(c.R), G: mul(c.G), B: mul(c.B), A: c.A}
}

func (c Color) RGBA8() color.RGBA { return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A} }

func colorFrom(c color.RGBA) Color { return Color{R: c.R, G: c.G, B: c.B, A: c.A} }

func clampF32(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
