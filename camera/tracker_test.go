package camera

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Danjb1/hovership/core"
	"github.com/Danjb1/hovership/event"
	"github.com/Danjb1/hovership/vmath"
)

const tol = 1e-9

func newTracker(t *testing.T, minY float64, body core.Pose) *Tracker {
	t.Helper()
	tr, err := NewTracker(DefaultConfig(), minY, body)
	require.NoError(t, err)
	return tr
}

func planarDistance(a, b vmath.Vec3) float64 {
	return vmath.V2Mag(vmath.Resultant(vmath.Flatten(a), vmath.Flatten(b)))
}

func TestVerticalChaseStopsExactlyAtTarget(t *testing.T) {
	body := core.Pose{}
	tr := newTracker(t, -100, body)

	tr.Landed(10)
	require.InDelta(t, 10/DefaultConfig().VerticalMovementTime, tr.Follow().VerticalSpeed, tol)

	for i := range 40 {
		tr.Update(body, 0.02)
		assert.LessOrEqual(t, tr.Follow().CurrentTargetY, 10.0, "tick %d overshoots", i)
	}
	assert.Equal(t, 10.0, tr.Follow().CurrentTargetY)
	assert.Equal(t, 0.0, tr.Follow().VerticalSpeed)
	assert.Equal(t, 10.0, tr.Follow().LastGroundedY)
}

func TestVerticalChaseDownwards(t *testing.T) {
	body := core.Pose{Position: vmath.Vec3{Y: 8}}
	tr := newTracker(t, -100, body)

	tr.Landed(2)
	for range 40 {
		tr.Update(body, 0.02)
		assert.GreaterOrEqual(t, tr.Follow().CurrentTargetY, 2.0)
	}
	assert.Equal(t, 2.0, tr.Follow().CurrentTargetY)
}

func TestDestinationReached(t *testing.T) {
	assert.True(t, DestinationReached(10, 9, 10))
	assert.True(t, DestinationReached(10, 9, 11))
	assert.True(t, DestinationReached(10, 11, 9))
	assert.False(t, DestinationReached(10, 8, 9))
	assert.False(t, DestinationReached(10, 12, 11))
}

func TestCorrectFollowDistance(t *testing.T) {
	cfg := DefaultConfig()
	tr := newTracker(t, -100, core.Pose{})
	target := vmath.Vec3{X: 2, Z: 1}

	tr.position = vmath.Vec3{X: 2, Y: 3, Z: -50}
	assert.True(t, tr.CorrectFollowDistance(target, 3))
	assert.InDelta(t, cfg.MaxDistance(), planarDistance(tr.Position(), target), tol)
	assert.Equal(t, 3.0, tr.Position().Y)

	tr.position = vmath.Vec3{X: 2.5, Y: 3, Z: 1}
	assert.True(t, tr.CorrectFollowDistance(target, 3))
	assert.InDelta(t, cfg.MinDistance(), planarDistance(tr.Position(), target), tol)
	assert.Greater(t, tr.Position().X, target.X, "keeps its bearing")

	inBand := vmath.Vec3{X: 2, Y: 3, Z: -6}
	tr.position = inBand
	assert.False(t, tr.CorrectFollowDistance(target, 3))
	assert.Equal(t, inBand, tr.Position())
}

func TestCorrectFollowDistanceDegenerate(t *testing.T) {
	tr := newTracker(t, -100, core.Pose{})
	above := vmath.Vec3{Y: 5}
	tr.position = above
	assert.False(t, tr.CorrectFollowDistance(vmath.Vec3{}, 3))
	assert.Equal(t, above, tr.Position())
}

func TestTeleportSnapsBehindBody(t *testing.T) {
	tr := newTracker(t, -100, core.Pose{})
	tr.Landed(4)

	pose := core.Pose{Position: vmath.Vec3{X: 10, Y: 5, Z: 10}, Yaw: 90}
	tr.Teleported(pose)

	assert.InDelta(t, 3.0, tr.Position().X, tol)
	assert.InDelta(t, 8.0, tr.Position().Y, tol)
	assert.InDelta(t, 10.0, tr.Position().Z, tol)
	assert.InDelta(t, 6.0, tr.LookAt().Y, tol)
	assert.Equal(t, FollowState{CurrentTargetY: 5, DesiredTargetY: 5, LastGroundedY: 4}, tr.Follow())
	assert.Equal(t, vmath.Vec3{}, tr.Velocity())
}

func TestSteadyFollow(t *testing.T) {
	body := core.Pose{}
	tr := newTracker(t, -100, body)
	for range 10 {
		tr.Update(body, 0.02)
	}
	assert.InDelta(t, 0.0, tr.Position().X, tol)
	assert.InDelta(t, 3.0, tr.Position().Y, tol)
	assert.InDelta(t, -7.0, tr.Position().Z, tol)
	assert.InDelta(t, 0.0, vmath.V3Mag(tr.Velocity()), 1e-6)
	assert.InDelta(t, 1.0, tr.LookAt().Y, tol)
}

func TestFollowSwingsBehindTurnedBody(t *testing.T) {
	cfg := DefaultConfig()
	tr := newTracker(t, -100, core.Pose{})
	body := core.Pose{Yaw: 90}

	for i := range 100 {
		tr.Update(body, 0.02)
		d := planarDistance(tr.Position(), body.Position)
		assert.GreaterOrEqual(t, d, cfg.MinDistance()-tol, "tick %d", i)
		assert.LessOrEqual(t, d, cfg.MaxDistance()+tol, "tick %d", i)
		assert.InDelta(t, cfg.Height, tr.Position().Y, tol)
	}
	assert.InDelta(t, -7.0, tr.Position().X, 1e-6)
	assert.InDelta(t, 0.0, tr.Position().Z, 1e-6)
}

func TestFallingBelowMinYSnapsTarget(t *testing.T) {
	tr := newTracker(t, 0, core.Pose{Position: vmath.Vec3{Y: 2}})
	tr.Landed(2)

	body := core.Pose{Position: vmath.Vec3{Y: -5}}
	tr.Update(body, 0.02)
	assert.Equal(t, -5.0, tr.Follow().CurrentTargetY)
	assert.Equal(t, 0.0, tr.Follow().VerticalSpeed)
	assert.InDelta(t, -4.0, tr.LookAt().Y, tol)
	assert.Equal(t, 0.0, tr.Position().Y, "camera never drops below minY")
}

func TestCelebrationOrbit(t *testing.T) {
	body := core.Pose{Position: vmath.Vec3{X: 1, Y: 2, Z: 3}}
	tr := newTracker(t, -100, body)
	tr.SetGameMode(core.ModeCelebrating)
	require.Equal(t, ModeCelebrating, tr.Mode())

	start := tr.Position()
	radius := planarDistance(start, body.Position)
	for range 50 {
		tr.Update(body, 0.02)
		assert.InDelta(t, radius, planarDistance(tr.Position(), body.Position), tol)
		assert.InDelta(t, start.Y, tr.Position().Y, tol)
	}
	assert.Greater(t, vmath.V3Distance(start, tr.Position()), 1.0)
	assert.Greater(t, vmath.V3Mag(tr.Velocity()), 0.0)
}

func TestPausedFreezes(t *testing.T) {
	tr := newTracker(t, -100, core.Pose{})
	tr.SetGameMode(core.ModePaused)

	start := tr.Position()
	tr.Update(core.Pose{Position: vmath.Vec3{X: 20}, Yaw: 180}, 0.02)
	assert.Equal(t, start, tr.Position())
	assert.Equal(t, vmath.Vec3{}, tr.Velocity())

	tr.SetGameMode(core.ModePlaying)
	assert.Equal(t, ModeFollowing, tr.Mode())
}

func TestBusNotifications(t *testing.T) {
	bus := event.NewBus()
	tr := newTracker(t, -100, core.Pose{})
	tr.Attach(bus)

	bus.Publish(event.GameEvent{Type: event.EventStateChanged, Payload: &event.StateChangedPayload{
		Previous: core.ModePlaying, Current: core.ModePaused,
	}})
	assert.Equal(t, ModePaused, tr.Mode())

	bus.Publish(event.GameEvent{Type: event.EventLanded, Payload: &event.LandedPayload{Height: 3}})
	assert.Equal(t, 3.0, tr.Follow().DesiredTargetY)

	pose := core.Pose{Position: vmath.Vec3{Z: 4}}
	bus.Publish(event.GameEvent{Type: event.EventTeleported, Payload: &event.TeleportedPayload{Pose: pose}})
	assert.InDelta(t, -3.0, tr.Position().Z, tol)
}

func TestConfigValidate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero distance", func(c *Config) { c.Distance = 0 }},
		{"inverted band", func(c *Config) { c.MinDistanceMultiplier, c.MaxDistanceMultiplier = 1.5, 1.2 }},
		{"slerp above one", func(c *Config) { c.SlerpInterval = 2 }},
		{"zero movement time", func(c *Config) { c.VerticalMovementTime = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)

			_, err := NewTracker(cfg, 0, core.Pose{})
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}
