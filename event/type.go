package event

// EventType represents the type of game event
type EventType int

const (
	// EventLanded fires on the rising edge of the grounded flag
	// Trigger: Simulation after state commit
	// Consumer: CameraTracker, Recorder, sandbox audio | Payload: *LandedPayload
	EventLanded EventType = iota + 1

	// EventTeleported fires when the vehicle is reset to its spawn pose
	// Trigger: Simulation respawn check, Simulation.Restart
	// Consumer: CameraTracker, Recorder | Payload: *TeleportedPayload
	EventTeleported

	// EventStateChanged fires on every game mode transition
	// Trigger: Context mode machine
	// Consumer: CameraTracker, HUD | Payload: *StateChangedPayload
	EventStateChanged

	// EventShardCollected fires when a power shard is picked up
	// Trigger: Context.CollectShard
	// Consumer: HUD, Recorder | Payload: *ShardCollectedPayload
	EventShardCollected

	// EventLevelComplete fires when the level key is collected
	// Trigger: Context.CompleteLevel
	// Consumer: HUD | Payload: *LevelCompletePayload
	EventLevelComplete
)

// GameEvent is a tagged notification delivered through the Bus
type GameEvent struct {
	Type    EventType
	Tick    uint64
	Payload any
}
