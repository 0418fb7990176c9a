package physics

import (
	"github.com/Danjb1/hovership/vmath"
)

// CapSpeed limits the velocity vector magnitude to maxSpeed
// Returns true if velocity was clamped
func CapSpeed(vel *vmath.Vec2, maxSpeed float64) bool {
	mag := vmath.V2Mag(*vel)
	if mag <= maxSpeed || mag == 0 {
		return false
	}
	*vel = vmath.V2Scale(*vel, maxSpeed/mag)
	return true
}

// ClampVertical limits vertical speed to [maxFall, maxRise], maxFall being negative
func ClampVertical(vy, maxFall, maxRise float64) float64 {
	return vmath.Clamp(vy, maxFall, maxRise)
}

// ApplyFriction decays a speed by a per-tick multiplier
func ApplyFriction(speed, factor float64) float64 {
	return speed * factor
}
