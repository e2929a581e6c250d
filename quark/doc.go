// Package quark is a tiny software renderer used to visualize vec3 math.
//
// It draws a single convex mesh with flat directional lighting into a
// caller-provided Target. There are no matrices: vertices are rotated with
// vector algebra and projected with a fixed pinhole camera on the +Z axis
// looking at the origin.
//
// Pipeline (fixed):
//
//	Rotate → Cull → Shade → Sort → Project → Rasterize.
//
// The renderer reuses its triangle buffer between frames and does not
// allocate in steady state.
package quark
