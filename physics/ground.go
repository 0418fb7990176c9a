package physics

import (
	"errors"
	"math"

	"github.com/Danjb1/hovership/core"
	"github.com/Danjb1/hovership/vmath"
)

var (
	ErrNilRayQuerier = errors.New("physics: ray querier is nil")
	ErrSlopeGradient = errors.New("physics: max slope gradient must be in (0, 1]")
)

// RayHit is the nearest surface under a downward ray
type RayHit struct {
	Distance float64
	Normal   vmath.Vec3
}

// RayQuerier casts a ray straight down from origin
// Implementations return false when nothing lies within maxDistance
type RayQuerier interface {
	CastDown(origin vmath.Vec3, maxDistance float64) (RayHit, bool)
}

// ProbeResult is one probe's reading, Distance is +Inf when nothing qualified
type ProbeResult struct {
	Offset   ProbeOffset
	Distance float64
}

// Hit reports whether the probe found ground
func (r ProbeResult) Hit() bool {
	return !math.IsInf(r.Distance, 1)
}

// GroundReading aggregates a probe set
type GroundReading struct {
	Probes     []ProbeResult
	Aggregate  float64 // Mean of hit distances, +Inf with no hits
	Hits       int
	NearGround bool
}

// GroundSensor samples ground distance below a body through a RayQuerier
type GroundSensor struct {
	rays     RayQuerier
	maxSlope float64
}

func NewGroundSensor(rays RayQuerier, maxSlopeGradient float64) (*GroundSensor, error) {
	if rays == nil {
		return nil, ErrNilRayQuerier
	}
	if !(maxSlopeGradient > 0 && maxSlopeGradient <= 1) {
		return nil, ErrSlopeGradient
	}
	return &GroundSensor{rays: rays, maxSlope: maxSlopeGradient}, nil
}

// Probe casts from the world point of a body-local offset
// Surfaces whose normal up-component is below the slope gradient read as a miss
func (s *GroundSensor) Probe(pose core.Pose, offset ProbeOffset, maxDistance float64) float64 {
	origin := pose.TransformPoint(vmath.Vec3{X: offset.X, Z: offset.Z})
	hit, ok := s.rays.CastDown(origin, maxDistance)
	if !ok || !vmath.IsFinite(hit.Distance) || hit.Distance > maxDistance {
		return math.Inf(1)
	}
	if hit.Normal.Y < s.maxSlope {
		return math.Inf(1)
	}
	return hit.Distance
}

// Sense probes every offset and averages the hits
func (s *GroundSensor) Sense(pose core.Pose, offsets []ProbeOffset, maxDistance float64) GroundReading {
	reading := GroundReading{
		Probes:    make([]ProbeResult, len(offsets)),
		Aggregate: math.Inf(1),
	}

	var total float64
	for i, off := range offsets {
		d := s.Probe(pose, off, maxDistance)
		reading.Probes[i] = ProbeResult{Offset: off, Distance: d}
		if !math.IsInf(d, 1) {
			total += d
			reading.Hits++
		}
	}

	if reading.Hits > 0 {
		reading.Aggregate = total / float64(reading.Hits)
		reading.NearGround = true
	}
	return reading
}
