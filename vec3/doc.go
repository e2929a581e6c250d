// Package vec3 provides a small 3-component vector type for graphics and
// physics code.
//
// Vec3 is generic over the component type. Vec3f (float32) is the common
// instantiation; Vec3d (float64) is available when extra precision is needed.
//
// All methods except Normalize are pure and return new values. Normalize
// scales in place and leaves vectors shorter than NormalizeEpsilon unchanged
// instead of dividing by a near-zero length.
package vec3
