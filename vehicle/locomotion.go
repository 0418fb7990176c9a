package vehicle

import (
	"github.com/Danjb1/hovership/core"
	"github.com/Danjb1/hovership/parameter"
	"github.com/Danjb1/hovership/physics"
	"github.com/Danjb1/hovership/vmath"
)

// Step is one tick of locomotion output, applied by State.Commit
type Step struct {
	Forward  float64 // Persistent forward speed
	Vertical float64 // Persistent vertical speed, clamped
	Hover    float64 // Transient hover correction
	Lateral  float64 // Transient corrective slide, body frame

	YawRate float64
	Yaw     float64
	Tilt    float64

	Grounded   bool
	NearGround bool
	Aggregate  float64

	Jumping     bool
	JumpElapsed float64

	SlideDirection int // 1 right wing, -1 left wing, 0 none
	Exhaust        float64

	WorldVelocity vmath.Vec3
}

type slideProbe struct {
	offset    physics.ProbeOffset
	threshold float64
}

// Locomotion turns input and ground readings into a velocity step
type Locomotion struct {
	cfg    Config
	sensor *physics.GroundSensor

	ground    []physics.ProbeOffset
	rightWing []slideProbe
	leftWing  []slideProbe
}

func NewLocomotion(cfg Config, sensor *physics.GroundSensor) (*Locomotion, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if sensor == nil {
		return nil, ErrNilSensor
	}

	l := &Locomotion{
		cfg:    cfg,
		sensor: sensor,
		ground: make([]physics.ProbeOffset, len(cfg.GroundProbes)),
	}
	for i, p := range cfg.GroundProbes {
		l.ground[i] = physics.ProbeOffset{X: p.X * cfg.HalfWidth, Z: p.Z * cfg.HalfLength}
	}
	right := make([]physics.ProbeOffset, len(cfg.RightWingProbes))
	for i, p := range cfg.RightWingProbes {
		right[i] = physics.ProbeOffset{X: p.X * cfg.HalfWidth, Z: p.Z * cfg.HalfLength}
	}
	left := physics.MirrorX(right)
	for i, p := range cfg.RightWingProbes {
		threshold := cfg.SlideThreshold()
		if p.Tip {
			threshold = cfg.WingtipThreshold()
		}
		l.rightWing = append(l.rightWing, slideProbe{offset: right[i], threshold: threshold})
		l.leftWing = append(l.leftWing, slideProbe{offset: left[i], threshold: threshold})
	}
	return l, nil
}

func (l *Locomotion) Config() Config {
	return l.cfg
}

// Step computes the next tick from the committed state without mutating it
func (l *Locomotion) Step(s *State, in core.InputSample, dt float64) Step {
	cfg := &l.cfg
	in = in.Clamped()

	// Ground classification
	reading := l.sensor.Sense(s.pose, l.ground, cfg.HoverHeight)
	out := Step{
		Aggregate:  reading.Aggregate,
		NearGround: reading.NearGround,
		Grounded:   reading.Aggregate < cfg.HoverHeight,
	}

	// Hover correction, never persisted
	if out.Grounded && !s.jumping {
		out.Hover = (cfg.HoverHeight - reading.Aggregate) / parameter.HoverTime
	}

	// Jump, the end check sees the time accumulated by previous ticks
	out.Jumping, out.JumpElapsed = s.jumping, s.jumpElapsed
	if out.Grounded && in.JumpPressed && !out.Jumping {
		out.Jumping, out.JumpElapsed = true, 0
	}
	if out.Jumping {
		if l.jumpFinished(out.JumpElapsed, in.JumpHeld) {
			out.Jumping, out.JumpElapsed = false, 0
		} else {
			out.JumpElapsed += dt
		}
	}

	// Vertical
	vertical := s.velocity.Vertical
	if out.Grounded && !s.grounded && !out.Jumping {
		vertical = 0
	}
	switch {
	case out.Jumping:
		vertical += cfg.JumpStrength * dt
	case out.Grounded:
	default:
		vertical += cfg.Gravity * dt
	}
	out.Vertical = physics.ClampVertical(vertical, cfg.MaxFallSpeed, cfg.MaxJumpSpeed)

	// Horizontal
	forward := s.velocity.Forward
	switch {
	case in.Throttle != 0:
		forward += in.Throttle * cfg.Acceleration * dt
	case out.Grounded:
		forward = physics.ApplyFriction(forward, cfg.Friction)
	default:
		forward = physics.ApplyFriction(forward, cfg.AirFriction)
	}
	planar := vmath.Vec2{Y: forward}
	physics.CapSpeed(&planar, cfg.MaxSpeed)
	out.Forward = planar.Y

	// Rotation
	yawRate := s.yawRate
	if in.Yaw != 0 {
		yawRate += in.Yaw * cfg.RotationalAcceleration * dt
	} else {
		yawRate *= parameter.RotationalFriction
	}
	out.YawRate = vmath.Clamp(yawRate, -cfg.MaxRotationSpeed, cfg.MaxRotationSpeed)
	out.Yaw = vmath.WrapDegrees(s.pose.Yaw + out.YawRate*dt)
	out.Tilt = -out.YawRate * cfg.TiltFactor

	// Corrective slide, first qualifying side wins
	if !reading.NearGround {
		switch {
		case l.shouldSlide(s.pose, l.rightWing):
			out.SlideDirection = 1
		case l.shouldSlide(s.pose, l.leftWing):
			out.SlideDirection = -1
		}
	}
	out.Lateral = -float64(out.SlideDirection) * cfg.SlideMagnitude

	out.Exhaust = SpoolExhaust(s.exhaust, in.Throttle > 0, dt)

	local := vmath.Vec3{X: out.Lateral, Y: out.Vertical + out.Hover, Z: out.Forward}
	out.WorldVelocity = vmath.RotateYaw(local, out.Yaw)
	return out
}

func (l *Locomotion) jumpFinished(elapsed float64, held bool) bool {
	if elapsed < l.cfg.MinJumpTime-vmath.Epsilon {
		return false
	}
	if !held {
		return true
	}
	return elapsed >= l.cfg.MaxJumpTime-vmath.Epsilon
}

// shouldSlide reports a wing whose every probe reads inside its clearance
func (l *Locomotion) shouldSlide(pose core.Pose, wing []slideProbe) bool {
	if len(wing) == 0 {
		return false
	}
	for _, p := range wing {
		if !(l.sensor.Probe(pose, p.offset, l.cfg.HoverHeight) < p.threshold) {
			return false
		}
	}
	return true
}
