package quark

import (
	"cmp"
	"slices"

	"vecmath/vec3"

	"github.com/chewxy/math32"
)

// Renderer is a fixed-pipeline software renderer.
//
// Create it once and reuse it to avoid allocations.
type Renderer struct {
	ClearColor Color
	BaseColor  Color
	Light      Light

	// Camera sits at (0, 0, CameraZ) and looks towards the origin.
	CameraZ float32
	FOVYRad float32
	Near    float32

	Wireframe bool

	tris []screenTri
}

type screenTri struct {
	x0, y0, x1, y1, x2, y2 int
	depth                  float32
	c                      Color
}

func NewRenderer() *Renderer {
	return &Renderer{
		ClearColor: RGB(0x10, 0x10, 0x18),
		BaseColor:  RGB(0x4a, 0xa8, 0xdf),
		Light:      DefaultLight(),
		CameraZ:    3,
		FOVYRad:    1,
		Near:       0.05,
	}
}

// Render clears t and draws m rotated around axis by angle. It returns the
// number of triangles that survived culling.
func (r *Renderer) Render(t Target, m Mesh, axis vec3.Vec3f, angle float32) int {
	if r == nil || t == nil {
		return 0
	}
	w, h := t.Size()
	if w <= 0 || h <= 0 {
		return 0
	}
	t.Clear(r.ClearColor)

	cam := vec3.V3f(0, 0, r.CameraZ)
	r.tris = r.tris[:0]

	for i := 0; i+2 < len(m.Indices); i += 3 {
		i0 := int(m.Indices[i+0])
		i1 := int(m.Indices[i+1])
		i2 := int(m.Indices[i+2])
		if i0 >= len(m.Vertices) || i1 >= len(m.Vertices) || i2 >= len(m.Vertices) {
			continue
		}

		a := Rotate(m.Vertices[i0], axis, angle)
		b := Rotate(m.Vertices[i1], axis, angle)
		c := Rotate(m.Vertices[i2], axis, angle)

		n := Normal(a, b, c)
		if n.Dot(cam.Sub(a)) <= 0 {
			continue
		}

		x0, y0, ok0 := r.project(a, w, h)
		x1, y1, ok1 := r.project(b, w, h)
		x2, y2, ok2 := r.project(c, w, h)
		if !ok0 || !ok1 || !ok2 {
			continue
		}

		centroid := a.Add(b).Add(c).Mul(1.0 / 3)
		r.tris = append(r.tris, screenTri{
			x0: x0, y0: y0, x1: x1, y1: y1, x2: x2, y2: y2,
			depth: cam.Sub(centroid).Length(),
			c:     r.BaseColor.Scale(r.Light.Intensity(n)),
		})
	}

	// Painter's order: farthest first.
	slices.SortFunc(r.tris, func(p, q screenTri) int {
		return cmp.Compare(q.depth, p.depth)
	})

	for _, tr := range r.tris {
		if r.Wireframe {
			drawLine(t, tr.x0, tr.y0, tr.x1, tr.y1, tr.c)
			drawLine(t, tr.x1, tr.y1, tr.x2, tr.y2, tr.c)
			drawLine(t, tr.x2, tr.y2, tr.x0, tr.y0, tr.c)
			continue
		}
		fillTriangle(t, w, h, tr.x0, tr.y0, tr.x1, tr.y1, tr.x2, tr.y2, tr.c)
	}
	return len(r.tris)
}

// project maps a world point to screen pixels. Points closer than Near to
// the camera plane are rejected.
func (r *Renderer) project(p vec3.Vec3f, w, h int) (x, y int, ok bool) {
	dist := r.CameraZ - p.Z
	if dist < r.Near {
		return 0, 0, false
	}
	fov := r.FOVYRad
	if fov == 0 {
		fov = 1
	}
	f := 1 / math32.Tan(fov/2)
	aspect := float32(w) / float32(h)

	nx := p.X * f / (aspect * dist)
	ny := p.Y * f / dist

	sx := (nx*0.5 + 0.5) * float32(w-1)
	sy := (1 - (ny*0.5 + 0.5)) * float32(h-1)
	return int(sx + 0.5), int(sy + 0.5), true
}

func drawLine(t Target, x0, y0, x1, y1 int, c Color) {
	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		t.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func fillTriangle(t Target, w, h int, x0, y0, x1, y1, x2, y2 int, c Color) {
	area := edgeFn(x0, y0, x1, y1, x2, y2)
	if area == 0 {
		return
	}
	if area < 0 {
		x1, y1, x2, y2 = x2, y2, x1, y1
	}

	minX := clampInt(min(x0, x1, x2), 0, w-1)
	maxX := clampInt(max(x0, x1, x2), 0, w-1)
	minY := clampInt(min(y0, y1, y2), 0, h-1)
	maxY := clampInt(max(y0, y1, y2), 0, h-1)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			w0 := edgeFn(x1, y1, x2, y2, x, y)
			w1 := edgeFn(x2, y2, x0, y0, x, y)
			w2 := edgeFn(x0, y0, x1, y1, x, y)
			if (w0 | w1 | w2) < 0 {
				continue
			}
			t.SetPixel(x, y, c)
		}
	}
}

func edgeFn(x0, y0, x1, y1, x, y int) int {
	return (x-x0)*(y1-y0) - (y-y0)*(x1-x0)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
