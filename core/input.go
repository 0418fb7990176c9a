package core

import "github.com/Danjb1/hovership/vmath"

// InputSample is the per-tick control snapshot
type InputSample struct {
	Throttle    float64 // -1 reverse .. 1 forward
	Yaw         float64 // -1 left .. 1 right
	JumpHeld    bool
	JumpPressed bool // Rising edge this tick
}

// Clamped returns the sample with axes limited to [-1, 1], non-finite axes read as 0
func (in InputSample) Clamped() InputSample {
	in.Throttle = clampAxis(in.Throttle)
	in.Yaw = clampAxis(in.Yaw)
	return in
}

func clampAxis(v float64) float64 {
	if !vmath.IsFinite(v) {
		return 0
	}
	return vmath.Clamp(v, -1, 1)
}
