package vmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const tol = 1e-9

func assertVec3(t *testing.T, want, got Vec3) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, tol, "X")
	assert.InDelta(t, want.Y, got.Y, tol, "Y")
	assert.InDelta(t, want.Z, got.Z, tol, "Z")
}

func TestYawFrame(t *testing.T) {
	tests := []struct {
		yaw     float64
		forward Vec3
		right   Vec3
	}{
		{0, Vec3{Z: 1}, Vec3{X: 1}},
		{90, Vec3{X: 1}, Vec3{Z: -1}},
		{180, Vec3{Z: -1}, Vec3{X: -1}},
		{270, Vec3{X: -1}, Vec3{Z: 1}},
	}
	for _, tt := range tests {
		assertVec3(t, tt.forward, YawForward(tt.yaw))
		assertVec3(t, tt.right, YawRight(tt.yaw))
		assertVec3(t, tt.forward, RotateYaw(Vec3{Z: 1}, tt.yaw))
		assertVec3(t, tt.right, RotateYaw(Vec3{X: 1}, tt.yaw))
	}
}

func TestInverseRotateYawRoundTrip(t *testing.T) {
	v := Vec3{X: 1.5, Y: -2, Z: 3.25}
	for _, yaw := range []float64{0, 17, 90, 211, 359} {
		assertVec3(t, v, InverseRotateYaw(RotateYaw(v, yaw), yaw))
	}
}

func TestRotateAroundYKeepsRadius(t *testing.T) {
	pivot := Vec3{X: 3, Y: 1, Z: -2}
	p := Vec3{X: 3, Y: 4, Z: 4}
	r := V3Distance(flatten3(p), flatten3(pivot))
	for _, deg := range []float64{10, 45, 180, 720} {
		q := RotateAroundY(p, pivot, deg)
		assert.InDelta(t, r, V3Distance(flatten3(q), flatten3(pivot)), tol)
		assert.InDelta(t, p.Y, q.Y, tol)
	}
}

// flatten3 zeroes the vertical component for planar distance checks
func flatten3(v Vec3) Vec3 { return Vec3{X: v.X, Z: v.Z} }

func TestWrapDegrees(t *testing.T) {
	assert.InDelta(t, 350.0, WrapDegrees(-10), tol)
	assert.InDelta(t, 0.0, WrapDegrees(360), tol)
	assert.InDelta(t, 90.0, WrapDegrees(810), tol)
}

func TestYawOf(t *testing.T) {
	assert.InDelta(t, 90.0, YawOf(Vec3{X: 2}), tol)
	assert.InDelta(t, 180.0, YawOf(Vec3{Z: -1}), tol)
	assert.Equal(t, 0.0, YawOf(Vec3{Y: 5}))
}

func TestV3SlerpEndpoints(t *testing.T) {
	a := Vec3{X: 4}
	b := Vec3{Z: 2}
	assertVec3(t, a, V3Slerp(a, b, 0))
	assertVec3(t, b, V3Slerp(a, b, 1))

	mid := V3Slerp(a, b, 0.5)
	assert.InDelta(t, 3.0, V3Mag(mid), tol, "magnitude interpolates linearly")
	assert.InDelta(t, 45.0, YawOf(mid), tol, "direction follows the arc")
}

func TestV3SlerpAntiparallelStaysOnArc(t *testing.T) {
	a := Vec3{X: 1}
	b := Vec3{X: -1}
	mid := V3Slerp(a, b, 0.5)
	assert.InDelta(t, 1.0, V3Mag(mid), tol)
	assert.InDelta(t, 0.0, V3Dot(mid, a), tol)
}

func TestV3SlerpZeroVectorIsLinear(t *testing.T) {
	got := V3Slerp(Vec3{}, Vec3{X: 2, Y: 2}, 0.25)
	assertVec3(t, Vec3{X: 0.5, Y: 0.5}, got)
}

func TestBacktrack(t *testing.T) {
	arrow := Vec2{X: 3, Y: 4}
	dest := Vec2{X: 10, Y: 10}

	origin, ok := Backtrack(arrow, dest, 10)
	assert.True(t, ok)
	assert.InDelta(t, 4.0, origin.X, tol)
	assert.InDelta(t, 2.0, origin.Y, tol)
	assert.InDelta(t, 10.0, V2Mag(Resultant(origin, dest)), tol)

	origin, ok = Backtrack(Vec2{}, dest, 10)
	assert.False(t, ok)
	assert.Equal(t, dest, origin)
}

func TestV2ClampMagnitude(t *testing.T) {
	v := V2ClampMagnitude(Vec2{X: 30, Y: 40}, 5)
	assert.InDelta(t, 5.0, V2Mag(v), tol)
	assert.InDelta(t, 3.0, v.X, tol)

	small := Vec2{X: 1, Y: 1}
	assert.Equal(t, small, V2ClampMagnitude(small, 5))
}

func TestNormalizeZero(t *testing.T) {
	assert.Equal(t, Vec3{}, V3Normalize(Vec3{}))
	assert.InDelta(t, 1.0, V3Mag(V3Normalize(Vec3{X: 2, Y: -3, Z: 7})), tol)
}

func TestIsFinite(t *testing.T) {
	assert.True(t, IsFinite(1))
	assert.False(t, IsFinite(math.Inf(1)))
	assert.False(t, IsFinite(math.NaN()))
}
