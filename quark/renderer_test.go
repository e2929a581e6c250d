package quark

import (
	"math"
	"testing"

	"vecmath/vec3"
)

func newTestRenderer() *Renderer {
	r := NewRenderer()
	r.Light = Light{Ambient: 0.25, Dir: vec3.V3f(0, 0, -1), Amount: 0.75}
	return r
}

func TestRenderFrontFaceOnly(t *testing.T) {
	tgt := NewRGBATarget(64, 64)
	r := newTestRenderer()

	n := r.Render(tgt, Cube(1), vec3.V3f(0, 1, 0), 0)
	if n != 2 {
		t.Fatalf("visible triangles = %d, want 2", n)
	}
	if got := tgt.At(28, 32); got != r.BaseColor {
		t.Fatalf("face pixel = %+v, want %+v", got, r.BaseColor)
	}
	if got := tgt.At(0, 0); got != r.ClearColor {
		t.Fatalf("corner pixel = %+v, want clear color %+v", got, r.ClearColor)
	}
}

func TestRenderRotatedShowsTwoFaces(t *testing.T) {
	tgt := NewRGBATarget(64, 64)
	r := newTestRenderer()

	if n := r.Render(tgt, Cube(1), vec3.V3f(0, 1, 0), math.Pi/4); n != 4 {
		t.Fatalf("visible triangles = %d, want 4", n)
	}
}

func TestRenderWireframeLeavesInterior(t *testing.T) {
	tgt := NewRGBATarget(64, 64)
	r := newTestRenderer()
	r.Wireframe = true

	r.Render(tgt, Cube(1), vec3.V3f(0, 1, 0), 0)
	if got := tgt.At(25, 28); got != r.ClearColor {
		t.Fatalf("interior pixel = %+v, want clear color", got)
	}
}

func TestRenderEmptyTarget(t *testing.T) {
	r := NewRenderer()
	if n := r.Render(NewRGBATarget(0, 0), Cube(1), vec3.V3f(0, 1, 0), 0); n != 0 {
		t.Fatalf("expected nothing rendered, got %d", n)
	}
	if n := r.Render(nil, Cube(1), vec3.V3f(0, 1, 0), 0); n != 0 {
		t.Fatalf("expected nothing rendered for nil target, got %d", n)
	}
}

func TestRenderSkipsBadIndices(t *testing.T) {
	m := Cube(1)
	m.Indices = append(m.Indices, 0, 1, 99)
	r := newTestRenderer()
	if n := r.Render(NewRGBATarget(32, 32), m, vec3.V3f(0, 1, 0), 0); n != 2 {
		t.Fatalf("visible triangles = %d, want 2", n)
	}
}
