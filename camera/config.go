package camera

import (
	"errors"
	"fmt"

	"github.com/Danjb1/hovership/parameter"
	"github.com/Danjb1/hovership/vmath"
)

var ErrInvalidConfig = errors.New("camera: invalid config")

// Config holds the follow rig tuning
type Config struct {
	Height                   float64 `mapstructure:"height"`
	TargetOffsetY            float64 `mapstructure:"targetOffsetY"`
	Distance                 float64 `mapstructure:"distance"`
	MinDistanceMultiplier    float64 `mapstructure:"minDistanceMultiplier"`
	MaxDistanceMultiplier    float64 `mapstructure:"maxDistanceMultiplier"`
	CelebrationRotationSpeed float64 `mapstructure:"celebrationRotationSpeed"`
	SlerpInterval            float64 `mapstructure:"slerpInterval"`
	VerticalMovementTime     float64 `mapstructure:"verticalMovementTime"`
}

func DefaultConfig() Config {
	return Config{
		Height:                   parameter.CameraHeight,
		TargetOffsetY:            parameter.CameraTargetOffsetY,
		Distance:                 parameter.CameraDistance,
		MinDistanceMultiplier:    parameter.CameraMinDistanceMultiplier,
		MaxDistanceMultiplier:    parameter.CameraMaxDistanceMultiplier,
		CelebrationRotationSpeed: parameter.CameraCelebrationRotationSpeed,
		SlerpInterval:            parameter.CameraSlerpInterval,
		VerticalMovementTime:     parameter.CameraVerticalMovementTime,
	}
}

func (c Config) MinDistance() float64 { return c.Distance * c.MinDistanceMultiplier }
func (c Config) MaxDistance() float64 { return c.Distance * c.MaxDistanceMultiplier }

func (c Config) Validate() error {
	for name, v := range map[string]float64{
		"height":                   c.Height,
		"targetOffsetY":            c.TargetOffsetY,
		"distance":                 c.Distance,
		"minDistanceMultiplier":    c.MinDistanceMultiplier,
		"maxDistanceMultiplier":    c.MaxDistanceMultiplier,
		"celebrationRotationSpeed": c.CelebrationRotationSpeed,
		"slerpInterval":            c.SlerpInterval,
		"verticalMovementTime":     c.VerticalMovementTime,
	} {
		if !vmath.IsFinite(v) {
			return fmt.Errorf("%w: %s is not finite", ErrInvalidConfig, name)
		}
	}

	switch {
	case c.Distance <= 0:
		return fmt.Errorf("%w: distance %v must be positive", ErrInvalidConfig, c.Distance)
	case c.MinDistanceMultiplier <= 0:
		return fmt.Errorf("%w: minDistanceMultiplier %v must be positive", ErrInvalidConfig, c.MinDistanceMultiplier)
	case c.MinDistanceMultiplier > c.MaxDistanceMultiplier:
		return fmt.Errorf("%w: minDistanceMultiplier %v exceeds maxDistanceMultiplier %v",
			ErrInvalidConfig, c.MinDistanceMultiplier, c.MaxDistanceMultiplier)
	case c.SlerpInterval <= 0 || c.SlerpInterval > 1:
		return fmt.Errorf("%w: slerpInterval %v outside (0, 1]", ErrInvalidConfig, c.SlerpInterval)
	case c.VerticalMovementTime <= 0:
		return fmt.Errorf("%w: verticalMovementTime %v must be positive", ErrInvalidConfig, c.VerticalMovementTime)
	}
	return nil
}
