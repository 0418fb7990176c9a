package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/Danjb1/hovership/parameter"
)

const (
	thumpAttack  = 5 * time.Millisecond
	thumpRelease = 100 * time.Millisecond
)

// Thump is the landing sound: a low sine with a little noise on the attack
func Thump(rate beep.SampleRate) beep.Streamer {
	d := parameter.ThumpDuration

	body := newEnvelope(newOscillator(parameter.ThumpFrequency, d, WaveSine, rate), d, thumpAttack, thumpRelease, rate)
	grit := newEnvelope(newOscillator(0, d, WaveNoise, rate), d, 0, d-thumpAttack, rate)

	return beep.Mix(
		newVolume(body, 0.8),
		newVolume(grit, 0.15),
	)
}
