package physics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Danjb1/hovership/core"
	"github.com/Danjb1/hovership/vmath"
)

// rayFunc adapts a function to RayQuerier
type rayFunc func(origin vmath.Vec3, maxDistance float64) (RayHit, bool)

func (f rayFunc) CastDown(origin vmath.Vec3, maxDistance float64) (RayHit, bool) {
	return f(origin, maxDistance)
}

// slopedByX returns a hit of fixed distance whose normal up-component depends on the origin's X
func slopedByX(distance float64, upByX map[float64]float64) rayFunc {
	return func(origin vmath.Vec3, _ float64) (RayHit, bool) {
		up, ok := upByX[math.Round(origin.X*1000)/1000]
		if !ok {
			return RayHit{}, false
		}
		return RayHit{Distance: distance, Normal: vmath.Vec3{Y: up, X: math.Sqrt(1 - up*up)}}, true
	}
}

func TestNewGroundSensorRejects(t *testing.T) {
	_, err := NewGroundSensor(nil, 0.5)
	assert.ErrorIs(t, err, ErrNilRayQuerier)

	rays := rayFunc(func(vmath.Vec3, float64) (RayHit, bool) { return RayHit{}, false })
	for _, slope := range []float64{0, -0.1, 1.5, math.NaN()} {
		_, err = NewGroundSensor(rays, slope)
		assert.ErrorIs(t, err, ErrSlopeGradient, "slope %v", slope)
	}
}

func TestProbeSlopeFilter(t *testing.T) {
	rays := slopedByX(0.8, map[float64]float64{1: 0.4, 2: 0.6, 3: 0.5})
	s, err := NewGroundSensor(rays, 0.5)
	require.NoError(t, err)

	pose := core.Pose{}
	assert.True(t, math.IsInf(s.Probe(pose, ProbeOffset{X: 1}, 2), 1), "0.4 is too steep")
	assert.Equal(t, 0.8, s.Probe(pose, ProbeOffset{X: 2}, 2), "0.6 counts as ground")
	assert.Equal(t, 0.8, s.Probe(pose, ProbeOffset{X: 3}, 2), "gradient itself counts as ground")
}

func TestSenseExcludesSteepHitsFromAggregate(t *testing.T) {
	distances := map[float64]float64{1: 0.2, 2: 0.6, 3: 0.4}
	rays := rayFunc(func(origin vmath.Vec3, _ float64) (RayHit, bool) {
		x := math.Round(origin.X*1000) / 1000
		d, ok := distances[x]
		if !ok {
			return RayHit{}, false
		}
		up := 1.0
		if x == 1 {
			up = 0.4
		}
		return RayHit{Distance: d, Normal: vmath.Vec3{Y: up}}, true
	})
	s, err := NewGroundSensor(rays, 0.5)
	require.NoError(t, err)

	r := s.Sense(core.Pose{}, []ProbeOffset{{X: 1}, {X: 2}, {X: 3}, {X: 4}}, 1)
	assert.Equal(t, 2, r.Hits)
	assert.True(t, r.NearGround)
	assert.InDelta(t, 0.5, r.Aggregate, 1e-12)
	require.Len(t, r.Probes, 4)
	assert.False(t, r.Probes[0].Hit())
	assert.True(t, r.Probes[1].Hit())
	assert.False(t, r.Probes[3].Hit())
}

func TestSenseNoHits(t *testing.T) {
	rays := rayFunc(func(vmath.Vec3, float64) (RayHit, bool) { return RayHit{}, false })
	s, err := NewGroundSensor(rays, 0.5)
	require.NoError(t, err)

	r := s.Sense(core.Pose{}, []ProbeOffset{{}, {X: 1}}, 1)
	assert.True(t, math.IsInf(r.Aggregate, 1))
	assert.False(t, r.NearGround)
	assert.Zero(t, r.Hits)
}

func TestProbeUsesPoseTransform(t *testing.T) {
	var got vmath.Vec3
	rays := rayFunc(func(origin vmath.Vec3, _ float64) (RayHit, bool) {
		got = origin
		return RayHit{Distance: 0.5, Normal: vmath.Up}, true
	})
	s, err := NewGroundSensor(rays, 0.5)
	require.NoError(t, err)

	// Facing +X, a probe to the right lands on -Z
	pose := core.Pose{Position: vmath.Vec3{X: 10, Y: 2, Z: 5}, Yaw: 90}
	s.Probe(pose, ProbeOffset{X: 1}, 1)
	assert.InDelta(t, 10.0, got.X, 1e-9)
	assert.InDelta(t, 2.0, got.Y, 1e-9)
	assert.InDelta(t, 4.0, got.Z, 1e-9)
}

func TestProbeBeyondRangeIsMiss(t *testing.T) {
	rays := rayFunc(func(vmath.Vec3, float64) (RayHit, bool) {
		return RayHit{Distance: 3, Normal: vmath.Up}, true
	})
	s, err := NewGroundSensor(rays, 0.5)
	require.NoError(t, err)
	assert.True(t, math.IsInf(s.Probe(core.Pose{}, ProbeOffset{}, 1), 1))
}
