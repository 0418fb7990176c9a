package vehicle

import (
	"github.com/Danjb1/hovership/core"
	"github.com/Danjb1/hovership/parameter"
	"github.com/Danjb1/hovership/vmath"
)

// Phase is the locomotion state derived from the grounded flag and jump timer
type Phase uint8

const (
	PhaseGrounded Phase = iota
	PhaseAirborne
	PhaseJumping
)

func (p Phase) String() string {
	switch p {
	case PhaseGrounded:
		return "grounded"
	case PhaseAirborne:
		return "airborne"
	case PhaseJumping:
		return "jumping"
	default:
		return "unknown"
	}
}

// Velocity is the persistent body-frame velocity carried between ticks
type Velocity struct {
	Forward  float64
	Vertical float64
}

// State is the vehicle body, written only by Commit and Respawn
type State struct {
	pose     core.Pose
	velocity Velocity

	// Transient terms of the last tick
	lateral       float64
	hover         float64
	worldVelocity vmath.Vec3

	yawRate float64
	tilt    float64

	grounded           bool
	previouslyGrounded bool
	nearGround         bool

	jumping     bool
	jumpElapsed float64

	slideDirection int
	exhaust        float64

	spawn    core.Pose
	respawnY float64
}

func NewState(spawn core.Pose, respawnY float64) *State {
	s := &State{spawn: spawn, respawnY: respawnY}
	s.reset()
	return s
}

func (s *State) reset() {
	*s = State{
		pose:     s.spawn,
		spawn:    s.spawn,
		respawnY: s.respawnY,
		exhaust:  parameter.ExhaustMinEmission,
	}
}

func (s *State) Pose() core.Pose { return s.pose }
func (s *State) Velocity() Velocity { return s.velocity }
func (s *State) WorldVelocity() vmath.Vec3 { return s.worldVelocity }
func (s *State) YawRate() float64 { return s.yawRate }
func (s *State) Tilt() float64 { return s.tilt }
func (s *State) Grounded() bool { return s.grounded }
func (s *State) PreviouslyGrounded() bool { return s.previouslyGrounded }
func (s *State) Jumping() bool { return s.jumping }
func (s *State) JumpElapsed() float64 { return s.jumpElapsed }
func (s *State) SlideDirection() int { return s.slideDirection }
func (s *State) Spawn() core.Pose { return s.spawn }
func (s *State) RespawnY() float64 { return s.respawnY }
func (s *State) EnginePitch() float64 { return EnginePitch(s.exhaust) }

func (s *State) Phase() Phase {
	switch {
	case s.jumping:
		return PhaseJumping
	case s.grounded:
		return PhaseGrounded
	default:
		return PhaseAirborne
	}
}

// Commit applies a locomotion step and integrates position
// Returns true on the rising edge of grounded, once per touchdown
func (s *State) Commit(step Step, dt float64) (landed bool) {
	s.velocity = Velocity{Forward: step.Forward, Vertical: step.Vertical}
	s.lateral = step.Lateral
	s.hover = step.Hover
	s.worldVelocity = step.WorldVelocity
	s.yawRate = step.YawRate
	s.tilt = step.Tilt
	s.pose.Yaw = step.Yaw
	s.jumping = step.Jumping
	s.jumpElapsed = step.JumpElapsed
	s.slideDirection = step.SlideDirection
	s.nearGround = step.NearGround
	s.exhaust = step.Exhaust

	s.pose.Position = vmath.V3Add(s.pose.Position, vmath.V3Scale(step.WorldVelocity, dt))

	s.previouslyGrounded = s.grounded
	s.grounded = step.Grounded
	return s.grounded && !s.previouslyGrounded
}

// OutOfBounds reports a body below the respawn threshold
func (s *State) OutOfBounds() bool {
	return s.pose.Position.Y < s.respawnY
}

// Respawn returns the body to its spawn pose with all motion cleared
// Returns false when the state is already reset, so repeated calls are no-ops
func (s *State) Respawn() bool {
	fresh := State{spawn: s.spawn, respawnY: s.respawnY}
	fresh.reset()
	if *s == fresh {
		return false
	}
	*s = fresh
	return true
}

// Freeze zeroes the output velocity while the game mode holds the body still
func (s *State) Freeze() {
	s.worldVelocity = vmath.Vec3{}
	s.lateral = 0
	s.hover = 0
	s.yawRate = 0
	s.tilt = 0
}

// Snapshot is a read-only copy of the committed body for renderers and the camera
type Snapshot struct {
	Pose           core.Pose
	Velocity       Velocity
	WorldVelocity  vmath.Vec3
	Phase          Phase
	Grounded       bool
	JumpElapsed    float64
	YawRate        float64
	Tilt           float64
	SlideDirection int
	EnginePitch    float64
}

func (s *State) Snapshot() Snapshot {
	return Snapshot{
		Pose:           s.pose,
		Velocity:       s.velocity,
		WorldVelocity:  s.worldVelocity,
		Phase:          s.Phase(),
		Grounded:       s.grounded,
		JumpElapsed:    s.jumpElapsed,
		YawRate:        s.yawRate,
		Tilt:           s.tilt,
		SlideDirection: s.slideDirection,
		EnginePitch:    s.EnginePitch(),
	}
}
