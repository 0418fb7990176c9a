package vmath

import "math"

// Yaw is measured in degrees around the vertical axis, clockwise seen from above
// Yaw 0 faces +Z, yaw 90 faces +X

// YawForward returns the unit forward vector for a heading
func YawForward(yaw float64) Vec3 {
	s, c := math.Sincos(DegToRad(yaw))
	return Vec3{X: s, Z: c}
}

// YawRight returns the unit right vector for a heading
func YawRight(yaw float64) Vec3 {
	s, c := math.Sincos(DegToRad(yaw))
	return Vec3{X: c, Z: -s}
}

// RotateYaw rotates a body-frame vector into the world frame
func RotateYaw(v Vec3, yaw float64) Vec3 {
	s, c := math.Sincos(DegToRad(yaw))
	return Vec3{
		X: v.X*c + v.Z*s,
		Y: v.Y,
		Z: -v.X*s + v.Z*c,
	}
}

// InverseRotateYaw rotates a world-frame vector into the body frame
func InverseRotateYaw(v Vec3, yaw float64) Vec3 {
	return RotateYaw(v, -yaw)
}

// RotateAroundY orbits point around the vertical axis through pivot
func RotateAroundY(point, pivot Vec3, degrees float64) Vec3 {
	return V3Add(pivot, RotateYaw(V3Sub(point, pivot), degrees))
}

// YawOf returns the heading of a direction, ignoring its vertical component
func YawOf(dir Vec3) float64 {
	if dir.X == 0 && dir.Z == 0 {
		return 0
	}
	return WrapDegrees(RadToDeg(math.Atan2(dir.X, dir.Z)))
}
