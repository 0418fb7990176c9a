package parameter

// Ground sensing
const (
	// MaxSlopeGradient is the minimum up-component of a surface normal for it to count as ground
	// 0.5 rejects anything steeper than 60 degrees
	MaxSlopeGradient = 0.5
)

// Global motion limits
const (
	// Gravity is the airborne vertical acceleration, in metres per second squared
	Gravity = -25.0

	// MaxFallSpeedY is the fastest permitted descent, in metres per second
	MaxFallSpeedY = -15.0

	// MaxJumpSpeedY is the fastest permitted ascent, in metres per second
	MaxJumpSpeedY = 7.5

	// Friction is the per-tick forward speed multiplier while grounded with no throttle
	Friction = 0.95

	// AirFriction is the per-tick forward speed multiplier while airborne with no throttle
	AirFriction = 0.975
)

// Hover controller
const (
	// HoverTime is the time, in seconds, the proportional hover correction aims to close the
	// height error in. The correction is recomputed every tick so the real settle time is longer
	HoverTime = 0.1

	// RotationalFriction multiplies yaw rate each tick with no rotational input
	RotationalFriction = 0.9

	// RespawnDepth is how far below the registered ground plane the vehicle may fall
	RespawnDepth = 25.0
)

// Corrective slide
const (
	// SlideMagnitude is the lateral speed, in metres per second, injected to escape a ledge
	SlideMagnitude = 2.0

	// SlideThresholdRatio scales hover height to the clearance allowed under a wing root
	SlideThresholdRatio = 0.5

	// WingtipThresholdRatio scales the wing root clearance down for wing tips
	WingtipThresholdRatio = 0.25
)
