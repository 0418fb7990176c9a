package audio

import (
	"math"
	"sync/atomic"

	"github.com/gopxl/beep"

	"github.com/Danjb1/hovership/vmath"
)

// EngineHum is an endless sine and saw blend whose pitch follows the engine
// SetPitch may be called from any goroutine, Stream runs on the speaker goroutine
type EngineHum struct {
	rate   beep.SampleRate
	base   float64
	volume float64
	blend  float64 // 0 pure sine, 1 pure saw

	pitch atomic.Uint64 // float64 bits
	phase float64
}

func NewEngineHum(rate beep.SampleRate, baseFrequency, volume float64) *EngineHum {
	h := &EngineHum{
		rate:   rate,
		base:   baseFrequency,
		volume: vmath.Clamp(volume, 0, 1),
		blend:  0.3,
	}
	h.SetPitch(1)
	return h
}

// SetPitch sets the frequency multiplier, non-finite or non-positive values are ignored
func (h *EngineHum) SetPitch(p float64) {
	if !vmath.IsFinite(p) || p <= 0 {
		return
	}
	h.pitch.Store(math.Float64bits(p))
}

func (h *EngineHum) Pitch() float64 {
	return math.Float64frombits(h.pitch.Load())
}

func (h *EngineHum) Stream(samples [][2]float64) (n int, ok bool) {
	freq := h.base * h.Pitch()
	for i := range samples {
		val := (1-h.blend)*wave(WaveSine, h.phase) + h.blend*wave(WaveSaw, h.phase)
		val *= h.volume
		samples[i][0] = val
		samples[i][1] = val
		h.phase = advance(h.phase, freq, h.rate)
	}
	return len(samples), true
}

func (h *EngineHum) Err() error { return nil }
