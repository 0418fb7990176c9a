package parameter

// Follow camera
const (
	// CameraSlerpInterval is the fraction of the remaining arc covered per tick
	CameraSlerpInterval = 0.25

	// CameraVerticalMovementTime is the time, in seconds, to reach a new landing height
	CameraVerticalMovementTime = 0.3

	CameraHeight                   = 3.0 // m above the target
	CameraTargetOffsetY            = 1.0 // m, raises the look-at point
	CameraDistance                 = 7.0 // m, resting planar distance
	CameraMinDistanceMultiplier    = 0.8
	CameraMaxDistanceMultiplier    = 1.3
	CameraCelebrationRotationSpeed = 30.0 // deg/s
)
