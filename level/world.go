package level

import (
	"github.com/Danjb1/hovership/physics"
	"github.com/Danjb1/hovership/vmath"
)

// World answers downward ray queries against a level's surfaces
type World struct {
	surfaces []Surface
}

func NewWorld(surfaces []Surface) *World {
	return &World{surfaces: append([]Surface(nil), surfaces...)}
}

// CastDown reports the highest surface top at or below origin within maxDistance
func (w *World) CastDown(origin vmath.Vec3, maxDistance float64) (physics.RayHit, bool) {
	var best physics.RayHit
	found := false
	for i := range w.surfaces {
		y, normal, ok := w.surfaces[i].TopAt(origin.X, origin.Z)
		if !ok {
			continue
		}
		d := origin.Y - y
		if d < 0 || d > maxDistance {
			continue
		}
		if !found || d < best.Distance {
			best = physics.RayHit{Distance: d, Normal: normal}
			found = true
		}
	}
	return best, found
}

// HeightAt returns the highest surface top under (x, z) regardless of range
func (w *World) HeightAt(x, z float64) (float64, bool) {
	var top float64
	found := false
	for i := range w.surfaces {
		y, _, ok := w.surfaces[i].TopAt(x, z)
		if ok && (!found || y > top) {
			top, found = y, true
		}
	}
	return top, found
}

func (w *World) Surfaces() []Surface {
	return w.surfaces
}
