package core

import "github.com/Danjb1/hovership/vmath"

// Pose is a world position plus heading in degrees
type Pose struct {
	Position vmath.Vec3
	Yaw      float64
}

func (p Pose) Forward() vmath.Vec3 {
	return vmath.YawForward(p.Yaw)
}

func (p Pose) Right() vmath.Vec3 {
	return vmath.YawRight(p.Yaw)
}

// TransformPoint maps a body-local point to world space
func (p Pose) TransformPoint(local vmath.Vec3) vmath.Vec3 {
	return vmath.V3Add(p.Position, vmath.RotateYaw(local, p.Yaw))
}

// TransformDirection maps a body-local direction to world space
func (p Pose) TransformDirection(local vmath.Vec3) vmath.Vec3 {
	return vmath.RotateYaw(local, p.Yaw)
}

// InverseTransformDirection maps a world direction to the body frame
func (p Pose) InverseTransformDirection(world vmath.Vec3) vmath.Vec3 {
	return vmath.InverseRotateYaw(world, p.Yaw)
}
