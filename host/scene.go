package host

import (
	"fmt"
	"image"

	"vecmath/internal/buildinfo"
	"vecmath/quark"
	"vecmath/vec3"
)

const (
	minSpeed = -8
	maxSpeed = 8
)

// Scene is the spinning-cube demo state. Step advances one tick.
type Scene struct {
	r      *quark.Renderer
	t      *quark.RGBATarget
	hud    *quark.HUD
	mesh   quark.Mesh
	axis   vec3.Vec3f
	hz     int
	speed  float32
	angle  float32
	tick   uint64
	tris   int
	paused bool
	lines  []string
}

func NewScene(cfg Config) *Scene {
	r := quark.NewRenderer()
	r.Wireframe = cfg.Wireframe
	hz := cfg.Hz
	if hz <= 0 {
		hz = 60
	}
	return &Scene{
		r:     r,
		t:     quark.NewRGBATarget(cfg.Width, cfg.Height),
		hud:   quark.NewHUD(),
		mesh:  quark.Cube(1.2),
		axis:  vec3.V3f(0.3, 1, 0.2).Unit(),
		hz:    hz,
		speed: clampSpeed(cfg.Speed),
		lines: make([]string, 0, 4),
	}
}

// Step advances the spin by one tick and renders a frame.
//
// Step does not fail; the error result matches the host step callback
// shape (func() error) that RunHeadless and the window loop drive.
func (s *Scene) Step() error {
	s.tick++
	if !s.paused {
		s.angle += s.speed / float32(s.hz)
	}
	s.tris = s.r.Render(s.t, s.mesh, s.axis, s.angle)

	s.lines = append(s.lines[:0],
		"vecmath "+buildinfo.Short(),
		fmt.Sprintf("tick %d  tris %d", s.tick, s.tris),
		fmt.Sprintf("speed %.2f rad/s", s.speed),
		"axis "+s.axis.String(),
	)
	s.hud.Draw(s.t, s.lines)
	return nil
}

func (s *Scene) Frame() *image.RGBA { return s.t.Img }
func (s *Scene) Tick() uint64       { return s.tick }
func (s *Scene) Angle() float32     { return s.angle }
func (s *Scene) Triangles() int     { return s.tris }
func (s *Scene) Speed() float32     { return s.speed }

func (s *Scene) AdjustSpeed(delta float32) { s.speed = clampSpeed(s.speed + delta) }
func (s *Scene) TogglePause()              { s.paused = !s.paused }
func (s *Scene) ToggleWireframe()          { s.r.Wireframe = !s.r.Wireframe }

func clampSpeed(v float32) float32 {
	if v < minSpeed {
		return minSpeed
	}
	if v > maxSpeed {
		return maxSpeed
	}
	return v
}
