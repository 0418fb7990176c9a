package physics

// ProbeOffset is a body-local sample point in metres, X to the right and Z forward
type ProbeOffset struct {
	X, Z float64
}

// ScaleProbes converts half-extent fractions into body-local offsets
func ScaleProbes(factors [][2]float64, halfWidth, halfLength float64) []ProbeOffset {
	out := make([]ProbeOffset, len(factors))
	for i, f := range factors {
		out[i] = ProbeOffset{X: f[0] * halfWidth, Z: f[1] * halfLength}
	}
	return out
}

// MirrorX reflects probes across the body's longitudinal axis
func MirrorX(probes []ProbeOffset) []ProbeOffset {
	out := make([]ProbeOffset, len(probes))
	for i, p := range probes {
		out[i] = ProbeOffset{X: -p.X, Z: p.Z}
	}
	return out
}
