package parameter

import "time"

// Exhaust spool
const (
	ExhaustSpoolUpRate   = 1000.0 // emission units per second while throttling forward
	ExhaustSpoolDownRate = 2000.0 // emission units per second otherwise
	ExhaustMinEmission   = 100.0
	ExhaustMaxEmission   = 300.0
)

// Engine audio
const (
	AudioSampleRate = 44100

	EngineMinPitch = 0.9
	EngineMaxPitch = 1.1

	// EngineBaseFrequency is the hum fundamental at pitch 1.0, in Hz
	EngineBaseFrequency = 110.0
	EngineVolume        = 0.25

	ThumpDuration  = 120 * time.Millisecond
	ThumpFrequency = 70.0
)
