package core

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Danjb1/hovership/vmath"
)

func TestInputClamped(t *testing.T) {
	in := InputSample{Throttle: 3, Yaw: math.NaN(), JumpHeld: true}.Clamped()
	assert.Equal(t, 1.0, in.Throttle)
	assert.Equal(t, 0.0, in.Yaw)
	assert.True(t, in.JumpHeld)

	in = InputSample{Throttle: -0.5, Yaw: -7}.Clamped()
	assert.Equal(t, -0.5, in.Throttle)
	assert.Equal(t, -1.0, in.Yaw)
}

func TestPoseTransformPoint(t *testing.T) {
	p := Pose{Position: vmath.Vec3{X: 10, Y: 2, Z: 5}, Yaw: 90}
	got := p.TransformPoint(vmath.Vec3{X: 1, Z: 2})
	assert.InDelta(t, 12.0, got.X, 1e-9)
	assert.InDelta(t, 2.0, got.Y, 1e-9)
	assert.InDelta(t, 4.0, got.Z, 1e-9)

	dir := p.InverseTransformDirection(p.TransformDirection(vmath.Vec3{X: 0.3, Z: -1}))
	assert.InDelta(t, 0.3, dir.X, 1e-9)
	assert.InDelta(t, -1.0, dir.Z, 1e-9)
}

func TestGameModeFrozen(t *testing.T) {
	assert.False(t, ModePlaying.Frozen())
	assert.True(t, ModePaused.Frozen())
	assert.True(t, ModeCelebrating.Frozen())
	assert.Equal(t, "celebrating", ModeCelebrating.String())
	assert.Equal(t, "unknown", GameMode(42).String())
}
