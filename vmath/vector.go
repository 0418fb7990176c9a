package vmath

import "math"

// Vec2 is a planar vector, X maps to world X and Y maps to world Z
type Vec2 struct {
	X, Y float64
}

func V2Add(a, b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

func V2Sub(a, b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

func V2Scale(v Vec2, s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

func V2Mag(v Vec2) float64 {
	return math.Hypot(v.X, v.Y)
}

// V2ClampMagnitude limits vector to maxMag while preserving direction
// Returns unchanged vector if magnitude <= maxMag
func V2ClampMagnitude(v Vec2, maxMag float64) Vec2 {
	mag := V2Mag(v)
	if mag <= maxMag || mag == 0 {
		return v
	}
	return V2Scale(v, maxMag/mag)
}

// Flatten discards the vertical component
func Flatten(v Vec3) Vec2 {
	return Vec2{v.X, v.Z}
}

// Extrude lifts a planar vector to 3D at height y
func Extrude(v Vec2, y float64) Vec3 {
	return Vec3{v.X, y, v.Y}
}

// Resultant returns the arrow a->b
func Resultant(a, b Vec2) Vec2 {
	return Vec2{b.X - a.X, b.Y - a.Y}
}

// Backtrack returns the origin an arrow pointing at destination would have if it were
// rescaled to length, anchored at destination
// ok is false for a zero-length arrow, the result is then meaningless
func Backtrack(arrow, destination Vec2, length float64) (origin Vec2, ok bool) {
	mag := V2Mag(arrow)
	if mag == 0 || !IsFinite(mag) {
		return destination, false
	}
	scale := length / mag
	return Vec2{destination.X - arrow.X*scale, destination.Y - arrow.Y*scale}, true
}
