package vmath

import "math"

const slerpEpsilon = 1e-6

// V3Slerp interpolates direction along the great arc and magnitude linearly
// Zero vectors fall back to linear interpolation
// Antiparallel vectors rotate through an axis orthogonal to a, preferring the vertical axis
func V3Slerp(a, b Vec3, t float64) Vec3 {
	magA, magB := V3Mag(a), V3Mag(b)
	if magA == 0 || magB == 0 {
		return V3Lerp(a, b, t)
	}

	na := V3Scale(a, 1/magA)
	nb := V3Scale(b, 1/magB)
	mag := Lerp(magA, magB, t)
	dot := Clamp(V3Dot(na, nb), -1, 1)

	// Nearly parallel, arc and chord coincide
	if dot > 1-slerpEpsilon {
		return V3Scale(V3Normalize(V3Lerp(na, nb, t)), mag)
	}

	var ortho Vec3
	if dot < -1+slerpEpsilon {
		ortho = V3Cross(Up, na)
		if V3MagSq(ortho) < slerpEpsilon {
			ortho = V3Cross(Vec3{X: 1}, na)
		}
		ortho = V3Normalize(ortho)
	} else {
		ortho = V3Normalize(V3Sub(nb, V3Scale(na, dot)))
	}

	theta := math.Acos(dot) * t
	s, c := math.Sincos(theta)
	dir := V3Add(V3Scale(na, c), V3Scale(ortho, s))
	return V3Scale(dir, mag)
}
