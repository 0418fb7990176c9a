package level

import (
	"fmt"

	"github.com/Danjb1/hovership/vmath"
)

// SurfaceKind selects the top shape of a Surface
type SurfaceKind string

const (
	KindBox  SurfaceKind = "box"
	KindRamp SurfaceKind = "ramp"
)

// Surface is an axis-aligned solid whose top is flat (box) or inclined (ramp)
// A ramp rises from Min.Y at its Min edge to Max.Y at its Max edge along Axis
type Surface struct {
	Kind SurfaceKind `mapstructure:"kind"`
	Min  vmath.Vec3  `mapstructure:"min"`
	Max  vmath.Vec3  `mapstructure:"max"`
	Axis string      `mapstructure:"axis"` // "x" or "z", ramps only
}

func Box(min, max vmath.Vec3) Surface {
	return Surface{Kind: KindBox, Min: min, Max: max}
}

func Ramp(min, max vmath.Vec3, axis string) Surface {
	return Surface{Kind: KindRamp, Min: min, Max: max, Axis: axis}
}

// Contains reports whether (x, z) lies over the footprint
func (s Surface) Contains(x, z float64) bool {
	return x >= s.Min.X && x <= s.Max.X && z >= s.Min.Z && z <= s.Max.Z
}

// TopAt returns the top height and unit normal at (x, z), ok is false off the footprint
func (s Surface) TopAt(x, z float64) (y float64, normal vmath.Vec3, ok bool) {
	if !s.Contains(x, z) {
		return 0, vmath.Vec3{}, false
	}
	if s.Kind != KindRamp {
		return s.Max.Y, vmath.Up, true
	}

	rise := s.Max.Y - s.Min.Y
	if s.Axis == "z" {
		run := s.Max.Z - s.Min.Z
		k := rise / run
		return s.Min.Y + (z-s.Min.Z)*k, vmath.V3Normalize(vmath.Vec3{Y: 1, Z: -k}), true
	}
	run := s.Max.X - s.Min.X
	k := rise / run
	return s.Min.Y + (x-s.Min.X)*k, vmath.V3Normalize(vmath.Vec3{X: -k, Y: 1}), true
}

func (s Surface) Validate() error {
	for _, v := range []float64{s.Min.X, s.Min.Y, s.Min.Z, s.Max.X, s.Max.Y, s.Max.Z} {
		if !vmath.IsFinite(v) {
			return fmt.Errorf("%w: non-finite extent", ErrInvalidLevel)
		}
	}
	if s.Min.X >= s.Max.X || s.Min.Z >= s.Max.Z || s.Min.Y > s.Max.Y {
		return fmt.Errorf("%w: inverted extents %v..%v", ErrInvalidLevel, s.Min, s.Max)
	}
	switch s.Kind {
	case KindBox:
	case KindRamp:
		if s.Axis != "x" && s.Axis != "z" {
			return fmt.Errorf("%w: ramp axis %q", ErrInvalidLevel, s.Axis)
		}
	default:
		return fmt.Errorf("%w: surface kind %q", ErrInvalidLevel, s.Kind)
	}
	return nil
}
