//go:build cgo

package host

import (
	"vecmath/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// RunWindow opens a desktop window showing the demo scene.
// It blocks until the window closes or the tick limit is reached.
func RunWindow(cfg Config, log Logger) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	g := &hostGame{s: NewScene(cfg), ticks: cfg.Ticks, log: log}
	ebiten.SetWindowTitle("vecmath (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(cfg.Width*cfg.Scale, cfg.Height*cfg.Scale)
	ebiten.SetTPS(cfg.Hz)
	logf(log, "window %dx%d @%dHz", cfg.Width, cfg.Height, cfg.Hz)

	// RunGame returns nil when Update returns ebiten.Termination.
	return ebiten.RunGame(g)
}

type hostGame struct {
	s     *Scene
	img   *ebiten.Image
	ticks uint64
	log   Logger
}

func (g *hostGame) Update() error {
	g.keys()
	if err := g.s.Step(); err != nil {
		return err
	}
	if g.ticks > 0 && g.s.Tick() >= g.ticks {
		logf(g.log, "stopping after %d ticks", g.s.Tick())
		return ebiten.Termination
	}
	return nil
}

func (g *hostGame) keys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		g.s.AdjustSpeed(0.25)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		g.s.AdjustSpeed(-0.25)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.s.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyW) {
		g.s.ToggleWireframe()
	}
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	frame := g.s.Frame()
	b := frame.Bounds()
	if g.img == nil || g.img.Bounds().Dx() != b.Dx() || g.img.Bounds().Dy() != b.Dy() {
		if g.img != nil {
			g.img.Deallocate()
		}
		g.img = ebiten.NewImage(b.Dx(), b.Dy())
	}
	g.img.WritePixels(frame.Pix)
	screen.DrawImage(g.img, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	b := g.s.Frame().Bounds()
	return b.Dx(), b.Dy()
}
