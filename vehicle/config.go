package vehicle

import (
	"errors"
	"fmt"

	"github.com/Danjb1/hovership/parameter"
	"github.com/Danjb1/hovership/physics"
	"github.com/Danjb1/hovership/vmath"
)

var (
	ErrInvalidConfig = errors.New("vehicle: invalid config")
	ErrNilSensor     = errors.New("vehicle: ground sensor is nil")
)

// WingProbe is a right-wing slide probe as half-extent fractions
// Tip probes use the tighter wing tip clearance
type WingProbe struct {
	X   float64 `mapstructure:"x"`
	Z   float64 `mapstructure:"z"`
	Tip bool    `mapstructure:"tip"`
}

// Config is the flat handling parameter set, supplied once at construction
type Config struct {
	Acceleration           float64 `mapstructure:"acceleration"`
	MaxSpeed               float64 `mapstructure:"maxSpeed"`
	RotationalAcceleration float64 `mapstructure:"rotationalAcceleration"`
	MaxRotationSpeed       float64 `mapstructure:"maxRotationSpeed"`
	JumpStrength           float64 `mapstructure:"jumpStrength"`
	MinJumpTime            float64 `mapstructure:"minJumpTime"`
	MaxJumpTime            float64 `mapstructure:"maxJumpTime"`
	HoverHeight            float64 `mapstructure:"hoverHeight"`
	Gravity                float64 `mapstructure:"gravity"`
	MaxFallSpeed           float64 `mapstructure:"maxFallSpeed"`
	MaxJumpSpeed           float64 `mapstructure:"maxJumpSpeed"`
	Friction               float64 `mapstructure:"friction"`
	AirFriction            float64 `mapstructure:"airFriction"`
	SlideMagnitude         float64 `mapstructure:"slideMagnitude"`
	SlideThresholdRatio    float64 `mapstructure:"slideThresholdRatio"`
	WingtipThresholdRatio  float64 `mapstructure:"wingtipThresholdRatio"`
	MaxSlopeGradient       float64 `mapstructure:"maxSlopeGradient"`

	// Body half-extents the probe fractions are scaled by
	HalfWidth  float64 `mapstructure:"halfWidth"`
	HalfLength float64 `mapstructure:"halfLength"`

	// GroundProbes are fuselage probes as {x, z} half-extent fractions
	GroundProbes    []physics.ProbeOffset `mapstructure:"groundProbes"`
	RightWingProbes []WingProbe           `mapstructure:"rightWingProbes"`

	TiltFactor float64 `mapstructure:"tiltFactor"`
}

// DefaultConfig returns the hovership handling
func DefaultConfig() Config {
	cfg := Config{
		Acceleration:           parameter.Acceleration,
		MaxSpeed:               parameter.MaxSpeed,
		RotationalAcceleration: parameter.RotationalAcceleration,
		MaxRotationSpeed:       parameter.MaxRotationSpeed,
		JumpStrength:           parameter.JumpStrength,
		MinJumpTime:            parameter.MinJumpTime,
		MaxJumpTime:            parameter.MaxJumpTime,
		HoverHeight:            parameter.HoverHeight,
		Gravity:                parameter.Gravity,
		MaxFallSpeed:           parameter.MaxFallSpeedY,
		MaxJumpSpeed:           parameter.MaxJumpSpeedY,
		Friction:               parameter.Friction,
		AirFriction:            parameter.AirFriction,
		SlideMagnitude:         parameter.SlideMagnitude,
		SlideThresholdRatio:    parameter.SlideThresholdRatio,
		WingtipThresholdRatio:  parameter.WingtipThresholdRatio,
		MaxSlopeGradient:       parameter.MaxSlopeGradient,
		HalfWidth:              parameter.BodyHalfWidth,
		HalfLength:             parameter.BodyHalfLength,
		TiltFactor:             parameter.TiltFactor,
	}
	cfg.GroundProbes = ScaleFactors(parameter.HovershipGroundProbes)
	for _, f := range parameter.HovershipWingTipProbes {
		cfg.RightWingProbes = append(cfg.RightWingProbes, WingProbe{X: f[0], Z: f[1], Tip: true})
	}
	for _, f := range parameter.HovershipWingRootProbes {
		cfg.RightWingProbes = append(cfg.RightWingProbes, WingProbe{X: f[0], Z: f[1]})
	}
	return cfg
}

// PlatformerConfig swaps the probe layout for a box body
func PlatformerConfig() Config {
	cfg := DefaultConfig()
	cfg.HalfWidth = 0.5
	cfg.HalfLength = 0.5
	cfg.GroundProbes = ScaleFactors(parameter.PlatformerBoxProbes)
	cfg.RightWingProbes = nil
	cfg.TiltFactor = 0
	return cfg
}

// ScaleFactors converts the parameter probe tables to ProbeOffset fractions
func ScaleFactors(factors [][2]float64) []physics.ProbeOffset {
	return physics.ScaleProbes(factors, 1, 1)
}

// SlideThreshold is the clearance allowed beneath a wing root
func (c Config) SlideThreshold() float64 {
	return c.HoverHeight * c.SlideThresholdRatio
}

// WingtipThreshold is the clearance allowed beneath a wing tip
func (c Config) WingtipThreshold() float64 {
	return c.SlideThreshold() * c.WingtipThresholdRatio
}

func (c Config) Validate() error {
	finite := map[string]float64{
		"acceleration":           c.Acceleration,
		"maxSpeed":               c.MaxSpeed,
		"rotationalAcceleration": c.RotationalAcceleration,
		"maxRotationSpeed":       c.MaxRotationSpeed,
		"jumpStrength":           c.JumpStrength,
		"minJumpTime":            c.MinJumpTime,
		"maxJumpTime":            c.MaxJumpTime,
		"hoverHeight":            c.HoverHeight,
		"gravity":                c.Gravity,
		"maxFallSpeed":           c.MaxFallSpeed,
		"maxJumpSpeed":           c.MaxJumpSpeed,
		"friction":               c.Friction,
		"airFriction":            c.AirFriction,
		"slideMagnitude":         c.SlideMagnitude,
		"slideThresholdRatio":    c.SlideThresholdRatio,
		"wingtipThresholdRatio":  c.WingtipThresholdRatio,
		"maxSlopeGradient":       c.MaxSlopeGradient,
		"halfWidth":              c.HalfWidth,
		"halfLength":             c.HalfLength,
		"tiltFactor":             c.TiltFactor,
	}
	for name, v := range finite {
		if !vmath.IsFinite(v) {
			return fmt.Errorf("%w: %s is not finite", ErrInvalidConfig, name)
		}
	}

	switch {
	case c.HoverHeight < 0:
		return fmt.Errorf("%w: hoverHeight %v is negative", ErrInvalidConfig, c.HoverHeight)
	case c.MinJumpTime < 0:
		return fmt.Errorf("%w: minJumpTime %v is negative", ErrInvalidConfig, c.MinJumpTime)
	case c.MinJumpTime > c.MaxJumpTime:
		return fmt.Errorf("%w: minJumpTime %v exceeds maxJumpTime %v", ErrInvalidConfig, c.MinJumpTime, c.MaxJumpTime)
	case c.MaxSpeed <= 0:
		return fmt.Errorf("%w: maxSpeed %v must be positive", ErrInvalidConfig, c.MaxSpeed)
	case c.MaxRotationSpeed < 0:
		return fmt.Errorf("%w: maxRotationSpeed %v is negative", ErrInvalidConfig, c.MaxRotationSpeed)
	case c.Friction < 0 || c.Friction > 1:
		return fmt.Errorf("%w: friction %v outside [0, 1]", ErrInvalidConfig, c.Friction)
	case c.AirFriction < 0 || c.AirFriction > 1:
		return fmt.Errorf("%w: airFriction %v outside [0, 1]", ErrInvalidConfig, c.AirFriction)
	case c.MaxFallSpeed > 0:
		return fmt.Errorf("%w: maxFallSpeed %v must not be positive", ErrInvalidConfig, c.MaxFallSpeed)
	case c.MaxJumpSpeed < 0:
		return fmt.Errorf("%w: maxJumpSpeed %v is negative", ErrInvalidConfig, c.MaxJumpSpeed)
	case !(c.MaxSlopeGradient > 0 && c.MaxSlopeGradient <= 1):
		return fmt.Errorf("%w: maxSlopeGradient %v outside (0, 1]", ErrInvalidConfig, c.MaxSlopeGradient)
	case c.HalfWidth <= 0 || c.HalfLength <= 0:
		return fmt.Errorf("%w: body extents must be positive", ErrInvalidConfig)
	case len(c.GroundProbes) == 0:
		return fmt.Errorf("%w: no ground probes", ErrInvalidConfig)
	}
	return nil
}
