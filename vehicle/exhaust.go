package vehicle

import (
	"github.com/Danjb1/hovership/parameter"
	"github.com/Danjb1/hovership/vmath"
)

// SpoolExhaust advances the exhaust emission rate, rising under forward throttle and falling otherwise
func SpoolExhaust(rate float64, forward bool, dt float64) float64 {
	if forward {
		rate += parameter.ExhaustSpoolUpRate * dt
	} else {
		rate -= parameter.ExhaustSpoolDownRate * dt
	}
	return vmath.Clamp(rate, parameter.ExhaustMinEmission, parameter.ExhaustMaxEmission)
}

// EnginePitch maps the emission rate onto the engine pitch range
func EnginePitch(rate float64) float64 {
	progress := (rate - parameter.ExhaustMinEmission) /
		(parameter.ExhaustMaxEmission - parameter.ExhaustMinEmission)
	progress = vmath.Clamp(progress, 0, 1)
	return vmath.Lerp(parameter.EngineMinPitch, parameter.EngineMaxPitch, progress)
}
