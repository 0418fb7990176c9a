package engine

import (
	"context"
	"time"

	"github.com/Danjb1/hovership/core"
)

// InputSource supplies one control sample per tick
type InputSource interface {
	Sample() core.InputSample
}

// InputFunc adapts a function to InputSource
type InputFunc func() core.InputSample

func (f InputFunc) Sample() core.InputSample { return f() }

// Loop drives a Simulation at a fixed timestep from a time.Ticker
// Commands queued with Do run on the loop goroutine between ticks
type Loop struct {
	sim      *Simulation
	step     time.Duration
	commands chan func(*Simulation)
}

func NewLoop(sim *Simulation, step time.Duration) *Loop {
	return &Loop{
		sim:      sim,
		step:     step,
		commands: make(chan func(*Simulation), 16),
	}
}

// Do queues fn to run before the next tick, dropping it when the queue is full
func (l *Loop) Do(fn func(*Simulation)) bool {
	select {
	case l.commands <- fn:
		return true
	default:
		return false
	}
}

// Run ticks until ctx is cancelled, calling observe after every tick
func (l *Loop) Run(ctx context.Context, input InputSource, observe func(Snapshot)) error {
	ticker := time.NewTicker(l.step)
	defer ticker.Stop()

	dt := l.step.Seconds()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-l.commands:
			fn(l.sim)
		case <-ticker.C:
			snap := l.sim.Tick(input.Sample(), dt)
			if observe != nil {
				observe(snap)
			}
		}
	}
}
