package quark

import (
	"image/color"
	"math"

	"tinygo.org/x/drivers"
)

// Display adapts a Target to drivers.Displayer so tinyfont can draw into it.
type Display struct {
	t Target
}

var _ drivers.Displayer = (*Display)(nil)

func NewDisplay(t Target) *Display {
	return &Display{t: t}
}

func (d *Display) Size() (x, y int16) {
	if d.t == nil {
		return 0, 0
	}
	w, h := d.t.Size()
	return clampInt16(w), clampInt16(h)
}

func clampInt16(v int) int16 {
	return int16(clampInt(v, 0, math.MaxInt16))
}

func (d *Display) SetPixel(x, y int16, c color.RGBA) {
	if d.t == nil {
		return
	}
	d.t.SetPixel(int(x), int(y), colorFrom(c))
}

// Display is a no-op; the host presents the target.
func (d *Display) Display() error { return nil }

func (d *Display) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	if d.t == nil {
		return nil
	}
	w, h := d.t.Size()
	x0 := clampInt(int(x), 0, w)
	y0 := clampInt(int(y), 0, h)
	x1 := clampInt(int(x)+int(width), 0, w)
	y1 := clampInt(int(y)+int(height), 0, h)
	cc := colorFrom(c)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			d.t.SetPixel(px, py, cc)
		}
	}
	return nil
}

func (d *Display) SetRotation(rotation drivers.Rotation) error {
	_ = rotation
	return nil
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
