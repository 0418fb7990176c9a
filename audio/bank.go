package audio

import (
	"sync"

	"github.com/gopxl/beep"

	"github.com/Danjb1/hovership/event"
	"github.com/Danjb1/hovership/parameter"
)

// Bank mixes the engine hum with one-shot effects into a single stream for the speaker
// Safe for one streaming goroutine plus any number of callers
type Bank struct {
	mu    sync.Mutex
	rate  beep.SampleRate
	hum   *EngineHum
	mixer beep.Mixer
}

func NewBank(rate beep.SampleRate) *Bank {
	b := &Bank{
		rate: rate,
		hum:  NewEngineHum(rate, parameter.EngineBaseFrequency, parameter.EngineVolume),
	}
	b.mixer.Add(b.hum)
	return b
}

func (b *Bank) Hum() *EngineHum { return b.hum }

// SetPitch forwards the engine pitch to the hum
func (b *Bank) SetPitch(p float64) { b.hum.SetPitch(p) }

// Landed queues a thump
func (b *Bank) Landed() {
	b.mu.Lock()
	b.mixer.Add(Thump(b.rate))
	b.mu.Unlock()
}

// Attach plays a thump on every landing
func (b *Bank) Attach(bus *event.Bus) {
	bus.OnLanded(func(float64) { b.Landed() })
}

// Playing is the number of live streams, the hum included
func (b *Bank) Playing() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.mixer.Len()
}

func (b *Bank) Stream(samples [][2]float64) (n int, ok bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.mixer.Stream(samples)
}

func (b *Bank) Err() error { return nil }
