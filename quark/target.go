package quark

import "image"

// Target is a minimal pixel target for software rendering.
//
// Implementations should clip out-of-bounds coordinates.
type Target interface {
	Size() (w, h int)
	SetPixel(x, y int, c Color)
	Clear(c Color)
}

// RGBATarget renders into an *image.RGBA.
type RGBATarget struct {
	Img *image.RGBA
}

func NewRGBATarget(w, h int) *RGBATarget {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &RGBATarget{Img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

func (t *RGBATarget) Size() (w, h int) {
	if t == nil || t.Img == nil {
		return 0, 0
	}
	b := t.Img.Bounds()
	return b.Dx(), b.Dy()
}

func (t *RGBATarget) Clear(c Color) {
	if t == nil || t.Img == nil {
		return
	}
	pix := t.Img.Pix
	for i := 0; i+3 < len(pix); i += 4 {
		pix[i+0] = c.R
		pix[i+1] = c.G
		pix[i+2] = c.B
		pix[i+3] = c.A
	}
}

func (t *RGBATarget) SetPixel(x, y int, c Color) {
	if t == nil || t.Img == nil {
		return
	}
	// SetRGBA clips to bounds.
	t.Img.SetRGBA(x, y, c.RGBA8())
}

// At returns the color at (x, y), or the zero Color when out of bounds.
func (t *RGBATarget) At(x, y int) Color {
	if t == nil || t.Img == nil {
		return Color{}
	}
	if !(image.Point{X: x, Y: y}).In(t.Img.Bounds()) {
		return Color{}
	}
	return colorFrom(t.Img.RGBAAt(x, y))
}
