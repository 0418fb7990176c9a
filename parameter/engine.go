package parameter

import "time"

// Simulation loop
const (
	// FixedTimestep is the physics tick interval (50 Hz)
	FixedTimestep = 20 * time.Millisecond

	// FrameUpdateInterval is the sandbox redraw interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// KeyHoldWindow is how long a key counts as held after its last press or repeat
	// Terminals report no key release
	KeyHoldWindow = 150 * time.Millisecond
)

// Pickups
const (
	ShardPickupRadius = 1.5 // m
	KeyPickupRadius   = 2.0 // m
)
