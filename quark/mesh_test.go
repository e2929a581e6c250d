package quark

import (
	"math"
	"testing"

	"vecmath/vec3"
)

func near(a, b vec3.Vec3f) bool {
	return a.Sub(b).Length() < 1e-5
}

func TestCubeOutwardNormals(t *testing.T) {
	m := Cube(2)
	if m.Triangles() != 12 {
		t.Fatalf("triangles = %d, want 12", m.Triangles())
	}
	for i := 0; i+2 < len(m.Indices); i += 3 {
		a := m.Vertices[m.Indices[i]]
		b := m.Vertices[m.Indices[i+1]]
		c := m.Vertices[m.Indices[i+2]]
		n := Normal(a, b, c)
		centroid := a.Add(b).Add(c).Mul(1.0 / 3)
		if n.Dot(centroid) <= 0 {
			t.Fatalf("triangle %d normal %v points inward", i/3, n)
		}
		if l := n.Length(); math.Abs(float64(l)-1) > 1e-4 {
			t.Fatalf("triangle %d normal length %v", i/3, l)
		}
	}
}

func TestRotate(t *testing.T) {
	tests := []struct {
		name  string
		v     vec3.Vec3f
		axis  vec3.Vec3f
		angle float32
		want  vec3.Vec3f
	}{
		{"zero angle", vec3.V3f(1, 2, 3), vec3.V3f(0, 1, 0), 0, vec3.V3f(1, 2, 3)},
		{"x to y about z", vec3.V3f(1, 0, 0), vec3.V3f(0, 0, 1), math.Pi / 2, vec3.V3f(0, 1, 0)},
		{"unnormalized axis", vec3.V3f(1, 0, 0), vec3.V3f(0, 0, 5), math.Pi / 2, vec3.V3f(0, 1, 0)},
		{"z to x about y", vec3.V3f(0, 0, 1), vec3.V3f(0, 1, 0), math.Pi / 2, vec3.V3f(1, 0, 0)},
		{"along axis", vec3.V3f(0, 0, 2), vec3.V3f(0, 0, 1), 1.3, vec3.V3f(0, 0, 2)},
		{"zero axis", vec3.V3f(1, 2, 3), vec3.Vec3f{}, 1, vec3.V3f(1, 2, 3)},
		{"tiny axis", vec3.V3f(0, 1, 0), vec3.V3f(0, 0, 1e-5), math.Pi / 2, vec3.V3f(0, 1, 0)},
	}
	for _, tt := range tests {
		if got := Rotate(tt.v, tt.axis, tt.angle); !near(got, tt.want) {
			t.Errorf("%s: got %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestRotatePreservesLength(t *testing.T) {
	v := vec3.V3f(1, -2, 0.5)
	axis := vec3.V3f(1, 1, 0)
	for i := 0; i < 16; i++ {
		got := Rotate(v, axis, float32(i)*0.4)
		if d := math.Abs(float64(got.Length() - v.Length())); d > 1e-5 {
			t.Fatalf("step %d: length drift %v", i, d)
		}
	}
}

func TestRotateShortAxisKeepsLength(t *testing.T) {
	v := vec3.V3f(0, 1, 0)
	for _, axis := range []vec3.Vec3f{vec3.V3f(0, 0, 1e-5), vec3.V3f(5e-5, 5e-5, 0)} {
		got := Rotate(v, axis, math.Pi/2)
		if l := got.Length(); math.Abs(float64(l)-1) > 1e-5 {
			t.Fatalf("axis %v: length %v, want 1", axis, l)
		}
	}
}

func TestLightIntensity(t *testing.T) {
	l := Light{Ambient: 0.2, Dir: vec3.V3f(0, 0, -3), Amount: 0.5}
	if got := l.Intensity(vec3.V3f(0, 0, 1)); math.Abs(float64(got)-0.7) > 1e-6 {
		t.Fatalf("facing light: %v, want 0.7", got)
	}
	if got := l.Intensity(vec3.V3f(0, 0, -1)); math.Abs(float64(got)-0.2) > 1e-6 {
		t.Fatalf("facing away: %v, want ambient 0.2", got)
	}
	if got := (Light{Ambient: 0.4}).Intensity(vec3.V3f(0, 0, 1)); got != 0.4 {
		t.Fatalf("no directional light: %v, want 0.4", got)
	}
}

func TestColorScale(t *testing.T) {
	c := RGB(200, 100, 0)
	if got := c.Scale(0.5); got != RGB(100, 50, 0) {
		t.Fatalf("Scale(0.5) = %+v", got)
	}
	if got := c.Scale(2); got != c {
		t.Fatalf("Scale clamps high: %+v", got)
	}
	if got := c.Scale(-1); got != (Color{A: 0xFF}) {
		t.Fatalf("Scale clamps low: %+v", got)
	}
}
