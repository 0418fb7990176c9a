package event

import "github.com/Danjb1/hovership/core"

// LandedPayload carries the body height at touchdown
type LandedPayload struct {
	Height float64
}

// TeleportedPayload carries the pose the body was reset to
// Restart is set when a level restart caused the reset rather than a fall
type TeleportedPayload struct {
	Pose    core.Pose
	Restart bool
}

type StateChangedPayload struct {
	Previous core.GameMode
	Current  core.GameMode
}

// ShardCollectedPayload reports running shard totals after a pickup
type ShardCollectedPayload struct {
	Value     int
	Collected int
	Total     int
}

type LevelCompletePayload struct {
	Collected int
	Total     int
}
