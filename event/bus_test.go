package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Danjb1/hovership/core"
	"github.com/Danjb1/hovership/vmath"
)

func TestSubscriptionOrder(t *testing.T) {
	bus := NewBus()
	var got []string
	bus.Subscribe(EventLanded, func(GameEvent) { got = append(got, "a") })
	bus.Subscribe(EventLanded, func(GameEvent) { got = append(got, "b") })
	bus.Subscribe(EventTeleported, func(GameEvent) { got = append(got, "other") })

	bus.Publish(GameEvent{Type: EventLanded})
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestNestedPublishIsQueued(t *testing.T) {
	bus := NewBus()
	var got []string
	bus.Subscribe(EventLanded, func(GameEvent) {
		got = append(got, "landed-1")
		bus.Publish(GameEvent{Type: EventStateChanged})
		bus.Publish(GameEvent{Type: EventTeleported})
		got = append(got, "landed-1 done")
	})
	bus.Subscribe(EventLanded, func(GameEvent) { got = append(got, "landed-2") })
	bus.Subscribe(EventStateChanged, func(GameEvent) { got = append(got, "state") })
	bus.Subscribe(EventTeleported, func(GameEvent) { got = append(got, "teleported") })

	bus.Publish(GameEvent{Type: EventLanded})
	assert.Equal(t, []string{"landed-1", "landed-1 done", "landed-2", "state", "teleported"}, got)

	// Queue drained, next publish dispatches immediately
	got = nil
	bus.Publish(GameEvent{Type: EventTeleported})
	assert.Equal(t, []string{"teleported"}, got)
}

func TestUnsubscribe(t *testing.T) {
	bus := NewBus()
	calls := 0
	id := bus.Subscribe(EventLanded, func(GameEvent) { calls++ })
	require.Equal(t, 1, bus.HandlerCount(EventLanded))

	bus.Unsubscribe(id)
	bus.Unsubscribe(id)
	bus.Publish(GameEvent{Type: EventLanded})
	assert.Zero(t, calls)
	assert.Zero(t, bus.HandlerCount(EventLanded))
}

func TestUnsubscribeDuringDispatch(t *testing.T) {
	bus := NewBus()
	var got []int
	var second SubscriptionID
	bus.Subscribe(EventLanded, func(GameEvent) {
		got = append(got, 1)
		bus.Unsubscribe(second)
	})
	second = bus.Subscribe(EventLanded, func(GameEvent) { got = append(got, 2) })

	bus.Publish(GameEvent{Type: EventLanded})
	bus.Publish(GameEvent{Type: EventLanded})
	assert.Equal(t, []int{1, 2, 1}, got)
}

func TestTypedSubscriptions(t *testing.T) {
	bus := NewBus()

	var height float64
	var pose core.Pose
	var prev, cur core.GameMode
	var shard ShardCollectedPayload
	var complete LevelCompletePayload
	bus.OnLanded(func(h float64) { height = h })
	bus.OnTeleported(func(p core.Pose) { pose = p })
	bus.OnStateChanged(func(p, c core.GameMode) { prev, cur = p, c })
	bus.OnShardCollected(func(p ShardCollectedPayload) { shard = p })
	bus.OnLevelComplete(func(p LevelCompletePayload) { complete = p })

	spawn := core.Pose{Position: vmath.Vec3{Y: 3}, Yaw: 90}
	bus.Publish(GameEvent{Type: EventLanded, Payload: &LandedPayload{Height: 2.5}})
	bus.Publish(GameEvent{Type: EventTeleported, Payload: &TeleportedPayload{Pose: spawn}})
	bus.Publish(GameEvent{Type: EventStateChanged, Payload: &StateChangedPayload{
		Previous: core.ModePlaying, Current: core.ModePaused,
	}})
	bus.Publish(GameEvent{Type: EventShardCollected, Payload: &ShardCollectedPayload{Value: 1, Collected: 2, Total: 5}})
	bus.Publish(GameEvent{Type: EventLevelComplete, Payload: &LevelCompletePayload{Collected: 5, Total: 5}})

	assert.Equal(t, 2.5, height)
	assert.Equal(t, spawn, pose)
	assert.Equal(t, core.ModePlaying, prev)
	assert.Equal(t, core.ModePaused, cur)
	assert.Equal(t, ShardCollectedPayload{Value: 1, Collected: 2, Total: 5}, shard)
	assert.Equal(t, 5, complete.Total)
}

func TestTypedSubscriptionIgnoresWrongPayload(t *testing.T) {
	bus := NewBus()
	called := false
	bus.OnLanded(func(float64) { called = true })
	bus.Publish(GameEvent{Type: EventLanded, Payload: "not a payload"})
	assert.False(t, called)
}

func TestEventNames(t *testing.T) {
	assert.Equal(t, "EventLanded", EventLanded.String())
	assert.Equal(t, "EventType(99)", EventType(99).String())

	et, ok := ParseEventType("teleported")
	assert.True(t, ok)
	assert.Equal(t, EventTeleported, et)

	et, ok = ParseEventType("EventShardCollected")
	assert.True(t, ok)
	assert.Equal(t, EventShardCollected, et)

	_, ok = ParseEventType("explode")
	assert.False(t, ok)
}

func TestTypes(t *testing.T) {
	assert.Equal(t, []EventType{
		EventLanded, EventTeleported, EventStateChanged, EventShardCollected, EventLevelComplete,
	}, Types())
}
