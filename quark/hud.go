package quark

import (
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// HUD draws lines of text in the top-left corner of a target.
type HUD struct {
	Font    tinyfont.Fonter
	Color   Color
	Margin  int16
	Leading int16
}

func NewHUD() *HUD {
	return &HUD{
		Font:    &proggy.TinySZ8pt7b,
		Color:   RGB(0xee, 0xee, 0xee),
		Margin:  2,
		Leading: 10,
	}
}

// Draw writes lines top to bottom. Lines that do not fit are dropped.
func (h *HUD) Draw(t Target, lines []string) {
	if h == nil || h.Font == nil || t == nil {
		return
	}
	d := NewDisplay(t)
	_, th := d.Size()
	c := h.Color.RGBA8()
	y := h.Margin + h.Leading
	for _, s := range lines {
		if y > th {
			return
		}
		tinyfont.WriteLine(d, h.Font, h.Margin, y, s, c)
		y += h.Leading
	}
}

// Width returns the pixel width of s in the HUD font.
func (h *HUD) Width(s string) int {
	if h == nil || h.Font == nil {
		return 0
	}
	_, outbox := tinyfont.LineWidth(h.Font, s)
	return int(outbox)
}
