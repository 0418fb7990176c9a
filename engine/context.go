package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/Danjb1/hovership/core"
	"github.com/Danjb1/hovership/engine/fsm"
	"github.com/Danjb1/hovership/event"
	"github.com/Danjb1/hovership/parameter"
	"github.com/Danjb1/hovership/vmath"
)

var (
	ErrGroundPlaneMissing    = errors.New("engine: ground plane height not registered")
	ErrGroundPlaneRegistered = errors.New("engine: ground plane height already registered")
)

// Mode triggers
const (
	triggerTogglePause fsm.Trigger = iota + 1
	triggerCompleteLevel
	triggerRestart
)

// Context holds session-wide state shared by the simulation's components
// Single-threaded, owned by the goroutine running Tick
type Context struct {
	bus  *event.Bus
	mode *fsm.Machine[*Context]

	groundY          float64
	groundRegistered bool

	shardsTotal     int
	shardsCollected int

	tick uint64
}

// NewContext creates a context in ModePlaying, publishing on bus (a new bus when nil)
func NewContext(bus *event.Bus) *Context {
	if bus == nil {
		bus = event.NewBus()
	}
	c := &Context{bus: bus, mode: newModeMachine()}
	return c
}

func newModeMachine() *fsm.Machine[*Context] {
	m := fsm.NewMachine[*Context]()
	playing := fsm.StateID(core.ModePlaying)
	paused := fsm.StateID(core.ModePaused)
	celebrating := fsm.StateID(core.ModeCelebrating)

	for _, mode := range []core.GameMode{core.ModePlaying, core.ModePaused, core.ModeCelebrating} {
		m.AddState(fsm.StateID(mode), mode.String())
	}

	// Graph is static, errors here are programming errors
	must := func(err error) {
		if err != nil {
			panic(err)
		}
	}
	must(m.AddTransition(playing, fsm.Transition[*Context]{Trigger: triggerTogglePause, TargetID: paused}))
	must(m.AddTransition(paused, fsm.Transition[*Context]{Trigger: triggerTogglePause, TargetID: playing}))
	must(m.AddTransition(playing, fsm.Transition[*Context]{Trigger: triggerCompleteLevel, TargetID: celebrating}))
	must(m.AddTransition(celebrating, fsm.Transition[*Context]{Trigger: triggerRestart, TargetID: playing}))

	announce := func(c *Context, from, to fsm.StateID) {
		c.Publish(event.EventStateChanged, &event.StateChangedPayload{
			Previous: core.GameMode(from),
			Current:  core.GameMode(to),
		})
	}
	for _, id := range []fsm.StateID{playing, paused, celebrating} {
		must(m.OnEnter(id, announce))
	}
	must(m.Init(playing))
	return m
}

func (c *Context) Bus() *event.Bus { return c.bus }

// Tick is the number of the tick in progress
func (c *Context) Tick() uint64 { return c.tick }

// Publish stamps and dispatches an event
func (c *Context) Publish(t event.EventType, payload any) {
	c.bus.Publish(event.GameEvent{Type: t, Tick: c.tick, Payload: payload})
}

// --- Game mode ---

func (c *Context) Mode() core.GameMode {
	return core.GameMode(c.mode.Current())
}

// TimeInMode is the simulated time spent in the current mode
func (c *Context) TimeInMode() time.Duration {
	return c.mode.TimeInState()
}

func (c *Context) advance(dt float64) {
	c.mode.Update(time.Duration(dt * float64(time.Second)))
}

// TogglePause flips Playing and Paused, returns false in Celebrating
func (c *Context) TogglePause() bool {
	return c.mode.Fire(c, triggerTogglePause)
}

// CompleteLevel enters Celebrating from Playing and announces the result
func (c *Context) CompleteLevel() bool {
	if !c.mode.Fire(c, triggerCompleteLevel) {
		return false
	}
	c.Publish(event.EventLevelComplete, &event.LevelCompletePayload{
		Collected: c.shardsCollected,
		Total:     c.shardsTotal,
	})
	return true
}

// Restart leaves Celebrating with the shard tally cleared
func (c *Context) Restart() bool {
	if !c.mode.Fire(c, triggerRestart) {
		return false
	}
	c.shardsCollected = 0
	return true
}

// --- Ground plane ---

// RegisterGroundPlane records the level's ground height, once
func (c *Context) RegisterGroundPlane(height float64) error {
	if c.groundRegistered {
		return ErrGroundPlaneRegistered
	}
	if !vmath.IsFinite(height) {
		return fmt.Errorf("engine: ground plane height %v is not finite", height)
	}
	c.groundY = height
	c.groundRegistered = true
	return nil
}

func (c *Context) GroundHeight() (float64, error) {
	if !c.groundRegistered {
		return 0, ErrGroundPlaneMissing
	}
	return c.groundY, nil
}

// RespawnThreshold is the height below which the vehicle respawns
func (c *Context) RespawnThreshold() (float64, error) {
	h, err := c.GroundHeight()
	if err != nil {
		return 0, err
	}
	return h - parameter.RespawnDepth, nil
}

// --- Shards ---

func (c *Context) RegisterShard(value int) {
	c.shardsTotal += value
}

// CollectShard adds value to the tally and announces the new totals
func (c *Context) CollectShard(value int) {
	c.shardsCollected += value
	c.Publish(event.EventShardCollected, &event.ShardCollectedPayload{
		Value:     value,
		Collected: c.shardsCollected,
		Total:     c.shardsTotal,
	})
}

// Shards returns the collected and total shard value
func (c *Context) Shards() (collected, total int) {
	return c.shardsCollected, c.shardsTotal
}
