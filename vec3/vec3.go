package vec3

import (
	"fmt"
	"math"
)

// Float is the set of component types a Vec3 can hold.
type Float interface {
	~float32 | ~float64
}

// NormalizeEpsilon is the length below which Normalize divides by 1 instead
// of the vector's length.
const NormalizeEpsilon = 0.0001

// Vec3 is a 3D vector.
type Vec3[T Float] struct {
	X, Y, Z T
}

// Vec3f is a float32 vector.
type Vec3f = Vec3[float32]

// Vec3d is a float64 vector.
type Vec3d = Vec3[float64]

func New[T Float](x, y, z T) Vec3[T] { return Vec3[T]{X: x, Y: y, Z: z} }

func Zero[T Float]() Vec3[T] { return Vec3[T]{} }

func V3f(x, y, z float32) Vec3f { return Vec3f{X: x, Y: y, Z: z} }
func V3d(x, y, z float64) Vec3d { return Vec3d{X: x, Y: y, Z: z} }

func (v Vec3[T]) Add(o Vec3[T]) Vec3[T] { return Vec3[T]{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3[T]) Sub(o Vec3[T]) Vec3[T] { return Vec3[T]{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3[T]) Mul(s T) Vec3[T]       { return Vec3[T]{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3[T]) Neg() Vec3[T]          { return Vec3[T]{-v.X, -v.Y, -v.Z} }

func (v Vec3[T]) Dot(o Vec3[T]) T { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

func (v Vec3[T]) Cross(o Vec3[T]) Vec3[T] {
	return Vec3[T]{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Length returns the Euclidean norm. The square root is taken in float64.
func (v Vec3[T]) Length() T {
	return T(math.Sqrt(float64(v.X*v.X + v.Y*v.Y + v.Z*v.Z)))
}

// Normalize scales v to unit length in place.
//
// If the length is within NormalizeEpsilon of zero the divisor becomes 1, so a
// degenerate vector keeps its (near-zero) components rather than turning into
// Inf/NaN. The result is not a unit vector in that case.
func (v *Vec3[T]) Normalize() {
	l := v.Length()
	if l < NormalizeEpsilon && l > -NormalizeEpsilon {
		l = 1
	}
	v.X /= l
	v.Y /= l
	v.Z /= l
}

// Unit returns a normalized copy of v. See Normalize for degenerate input.
func (v Vec3[T]) Unit() Vec3[T] {
	v.Normalize()
	return v
}

// Array returns the components in X, Y, Z order.
func (v Vec3[T]) Array() [3]T { return [3]T{v.X, v.Y, v.Z} }

func (v Vec3[T]) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}
