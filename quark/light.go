package quark

import "vecmath/vec3"

// Light is an ambient term plus one directional light.
type Light struct {
	Ambient float32    // 0..1
	Dir     vec3.Vec3f // direction *towards* the scene
	Amount  float32    // 0..1
}

// DefaultLight is a key light from the upper right front.
func DefaultLight() Light {
	return Light{
		Ambient: 0.25,
		Dir:     vec3.V3f(-1, -1, -1).Unit(),
		Amount:  0.75,
	}
}

// Intensity returns the lighting factor for a unit surface normal n.
func (l Light) Intensity(n vec3.Vec3f) float32 {
	amb := clampF32(l.Ambient, 0, 1)
	amount := clampF32(l.Amount, 0, 1)
	if l.Dir == (vec3.Vec3f{}) {
		return amb
	}
	d := n.Dot(l.Dir.Unit().Neg())
	if d < 0 {
		d = 0
	}
	return clampF32(amb+d*amount, 0, 1)
}
