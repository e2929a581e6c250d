package quark

import (
	"vecmath/vec3"

	"github.com/chewxy/math32"
)

// Mesh is an indexed triangle list. Triangles wind counter-clockwise when
// seen from outside.
type Mesh struct {
	Vertices []vec3.Vec3f
	Indices  []uint16
}

// Cube returns an axis-aligned cube centered at the origin.
func Cube(size float32) Mesh {
	h := size / 2
	v := make([]vec3.Vec3f, 8)
	for i := range v {
		v[i] = vec3.V3f(-h, -h, -h)
		if i&1 != 0 {
			v[i].X = h
		}
		if i&2 != 0 {
			v[i].Y = h
		}
		if i&4 != 0 {
			v[i].Z = h
		}
	}
	quads := [6][4]uint16{
		{4, 5, 7, 6}, // +Z
		{1, 0, 2, 3}, // -Z
		{5, 1, 3, 7}, // +X
		{0, 4, 6, 2}, // -X
		{6, 7, 3, 2}, // +Y
		{0, 1, 5, 4}, // -Y
	}
	idx := make([]uint16, 0, len(quads)*6)
	for _, q := range quads {
		idx = append(idx, q[0], q[1], q[2], q[0], q[2], q[3])
	}
	return Mesh{Vertices: v, Indices: idx}
}

// Triangles returns the number of complete triangles in the index list.
func (m Mesh) Triangles() int { return len(m.Indices) / 3 }

// Rotate rotates v around axis by angle radians (right-handed).
//
// An axis shorter than vec3.NormalizeEpsilon has no usable direction and
// leaves v unchanged.
func Rotate(v, axis vec3.Vec3f, angle float32) vec3.Vec3f {
	if axis.Length() < vec3.NormalizeEpsilon {
		return v
	}
	axis.Normalize()
	c := math32.Cos(angle)
	s := math32.Sin(angle)
	return v.Mul(c).
		Add(axis.Cross(v).Mul(s)).
		Add(axis.Mul(axis.Dot(v) * (1 - c)))
}

// Normal returns the unit face normal of triangle a, b, c.
func Normal(a, b, c vec3.Vec3f) vec3.Vec3f {
	n := b.Sub(a).Cross(c.Sub(a))
	n.Normalize()
	return n
}
