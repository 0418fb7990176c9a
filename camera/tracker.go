package camera

import (
	"github.com/Danjb1/hovership/core"
	"github.com/Danjb1/hovership/event"
	"github.com/Danjb1/hovership/vmath"
)

// Mode is the tracker state, changed only by notifications
type Mode uint8

const (
	ModeFollowing Mode = iota
	ModeCelebrating
	ModePaused
)

func (m Mode) String() string {
	switch m {
	case ModeFollowing:
		return "following"
	case ModeCelebrating:
		return "celebrating"
	case ModePaused:
		return "paused"
	default:
		return "unknown"
	}
}

// FollowState is the vertical chase
// DesiredTargetY only moves on landings so the camera does not ripple with the terrain
type FollowState struct {
	CurrentTargetY float64
	DesiredTargetY float64
	VerticalSpeed  float64
	LastGroundedY  float64
}

// Tracker keeps a camera behind and above a body
type Tracker struct {
	cfg  Config
	minY float64

	mode   Mode
	follow FollowState

	position vmath.Vec3
	lookAt   vmath.Vec3
	velocity vmath.Vec3
}

// NewTracker validates cfg and snaps behind body
// minY is the lowest camera height, normally the level ground plane
func NewTracker(cfg Config, minY float64, body core.Pose) (*Tracker, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	t := &Tracker{cfg: cfg, minY: minY}
	t.Teleported(body)
	return t, nil
}

func (t *Tracker) Config() Config { return t.cfg }
func (t *Tracker) Mode() Mode { return t.mode }
func (t *Tracker) Follow() FollowState { return t.follow }
func (t *Tracker) Position() vmath.Vec3 { return t.position }
func (t *Tracker) LookAt() vmath.Vec3 { return t.lookAt }
func (t *Tracker) Velocity() vmath.Vec3 { return t.velocity }

// Landed re-anchors the vertical chase, speed is fixed until the next landing
func (t *Tracker) Landed(height float64) {
	t.follow.LastGroundedY = height
	t.follow.DesiredTargetY = height
	dy := t.follow.DesiredTargetY - t.follow.CurrentTargetY
	t.follow.VerticalSpeed = dy / t.cfg.VerticalMovementTime
}

// Teleported snaps behind the new pose and clears the chase
func (t *Tracker) Teleported(body core.Pose) {
	t.position = t.optimalPosition(body.Position, body.Forward())
	t.lookAt = t.raise(body.Position)
	t.velocity = vmath.Vec3{}
	t.follow.CurrentTargetY = body.Position.Y
	t.follow.DesiredTargetY = body.Position.Y
	t.follow.VerticalSpeed = 0
}

// SetGameMode maps the session mode onto the tracker mode
func (t *Tracker) SetGameMode(m core.GameMode) {
	switch m {
	case core.ModePaused:
		t.mode = ModePaused
		t.velocity = vmath.Vec3{}
	case core.ModeCelebrating:
		t.mode = ModeCelebrating
	default:
		t.mode = ModeFollowing
	}
}

// HandleEvent adapts bus events to the notification methods
func (t *Tracker) HandleEvent(ev event.GameEvent) {
	switch p := ev.Payload.(type) {
	case *event.LandedPayload:
		t.Landed(p.Height)
	case *event.TeleportedPayload:
		t.Teleported(p.Pose)
	case *event.StateChangedPayload:
		t.SetGameMode(p.Current)
	}
}

// Attach subscribes the tracker to the notifications it consumes
func (t *Tracker) Attach(bus *event.Bus) {
	for _, et := range []event.EventType{event.EventLanded, event.EventTeleported, event.EventStateChanged} {
		bus.Subscribe(et, t.HandleEvent)
	}
}

// Update advances the camera once per tick from the committed body pose
func (t *Tracker) Update(body core.Pose, dt float64) {
	prev := t.position

	switch t.mode {
	case ModePaused:
		t.velocity = vmath.Vec3{}
		return
	case ModeCelebrating:
		deg := t.cfg.CelebrationRotationSpeed * dt
		t.position = vmath.RotateAroundY(t.position, body.Position, deg)
		t.lookAt = vmath.RotateAroundY(t.lookAt, body.Position, deg)
	default:
		t.updateFollowing(body, dt)
	}

	if dt > 0 {
		t.velocity = vmath.V3Scale(vmath.V3Sub(t.position, prev), 1/dt)
	}
}

func (t *Tracker) updateFollowing(body core.Pose, dt float64) {
	f := &t.follow
	prevTargetY := f.CurrentTargetY

	// Falling out of the world, follow the body directly
	if body.Position.Y < t.minY {
		f.CurrentTargetY = body.Position.Y
		f.DesiredTargetY = f.CurrentTargetY
		f.VerticalSpeed = 0
	}

	f.CurrentTargetY += f.VerticalSpeed * dt
	if DestinationReached(f.DesiredTargetY, prevTargetY, f.CurrentTargetY) {
		f.CurrentTargetY = f.DesiredTargetY
		f.VerticalSpeed = 0
	}

	target := vmath.V3WithY(body.Position, f.CurrentTargetY)
	t.slerpToOptimal(target, body.Forward())
	t.lookAt = t.raise(target)
}

// DestinationReached reports current at destination or past it coming from prev
func DestinationReached(destination, prev, current float64) bool {
	return current == destination ||
		(prev < destination && current > destination) ||
		(prev > destination && current < destination)
}

func (t *Tracker) slerpToOptimal(target, forward vmath.Vec3) {
	optimal := t.optimalPosition(target, forward)
	toCamera := vmath.V3Sub(t.position, target)
	toOptimal := vmath.V3Sub(optimal, target)

	next := vmath.V3Add(target, vmath.V3Slerp(toCamera, toOptimal, t.cfg.SlerpInterval))

	// The arc passes over the target, hold the optimal height instead
	t.position = vmath.V3WithY(next, optimal.Y)
	t.CorrectFollowDistance(target, optimal.Y)
}

// CorrectFollowDistance slides the camera along its bearing into the distance band
// Returns false when no correction was needed or the bearing is degenerate
func (t *Tracker) CorrectFollowDistance(target vmath.Vec3, height float64) bool {
	flatTarget := vmath.Flatten(target)
	path := vmath.Resultant(vmath.Flatten(t.position), flatTarget)

	var desired float64
	switch mag := vmath.V2Mag(path); {
	case mag > t.cfg.MaxDistance():
		desired = t.cfg.MaxDistance()
	case mag < t.cfg.MinDistance():
		desired = t.cfg.MinDistance()
	default:
		return false
	}

	origin, ok := vmath.Backtrack(path, flatTarget, desired)
	if !ok {
		return false
	}
	t.position = vmath.Extrude(origin, height)
	return true
}

func (t *Tracker) optimalPosition(target, forward vmath.Vec3) vmath.Vec3 {
	p := vmath.V3Sub(target, vmath.V3Scale(forward, t.cfg.Distance))
	return vmath.V3WithY(p, max(p.Y+t.cfg.Height, t.minY))
}

func (t *Tracker) raise(target vmath.Vec3) vmath.Vec3 {
	return vmath.V3WithY(target, target.Y+t.cfg.TargetOffsetY)
}
