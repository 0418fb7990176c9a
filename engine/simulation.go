package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/Danjb1/hovership/camera"
	"github.com/Danjb1/hovership/core"
	"github.com/Danjb1/hovership/event"
	"github.com/Danjb1/hovership/level"
	"github.com/Danjb1/hovership/physics"
	"github.com/Danjb1/hovership/telemetry"
	"github.com/Danjb1/hovership/vehicle"
)

var (
	ErrNilContext    = errors.New("engine: context is nil")
	ErrNilRayQuerier = errors.New("engine: ray querier is nil")
)

// Options wires a Simulation
// Context and Rays are required, the context must have its ground plane registered
type Options struct {
	Context *Context
	Rays    physics.RayQuerier
	Spawn   core.Pose

	Vehicle vehicle.Config
	Camera  camera.Config

	// Optional
	Pickups  *level.Pickups
	Recorder *telemetry.Recorder
	Logger   zerolog.Logger
}

// Simulation runs the fixed-order tick over one vehicle and its camera
type Simulation struct {
	ctx      *Context
	loco     *vehicle.Locomotion
	state    *vehicle.State
	camera   *camera.Tracker
	pickups  *level.Pickups
	recorder *telemetry.Recorder

	log       zerolog.Logger
	camLog    zerolog.Logger
	carLog    zerolog.Logger
	courseLog zerolog.Logger

	sliding bool
	last    Snapshot
}

// New validates the collaborators and configuration, failing before the first tick
func New(opts Options) (*Simulation, error) {
	if opts.Context == nil {
		return nil, ErrNilContext
	}
	if opts.Rays == nil {
		return nil, ErrNilRayQuerier
	}
	respawnY, err := opts.Context.RespawnThreshold()
	if err != nil {
		return nil, err
	}

	sensor, err := physics.NewGroundSensor(opts.Rays, opts.Vehicle.MaxSlopeGradient)
	if err != nil {
		return nil, fmt.Errorf("ground sensor: %w", err)
	}
	loco, err := vehicle.NewLocomotion(opts.Vehicle, sensor)
	if err != nil {
		return nil, err
	}
	groundY, _ := opts.Context.GroundHeight()
	tracker, err := camera.NewTracker(opts.Camera, groundY, opts.Spawn)
	if err != nil {
		return nil, err
	}

	s := &Simulation{
		ctx:      opts.Context,
		loco:     loco,
		state:    vehicle.NewState(opts.Spawn, respawnY),
		camera:   tracker,
		pickups:  opts.Pickups,
		recorder: opts.Recorder,
		log:      opts.Logger,
	}
	s.camLog = s.log.With().Str("component", "camera").Logger()
	s.carLog = s.log.With().Str("component", "vehicle").Logger()
	s.courseLog = s.log.With().Str("component", "level").Logger()

	bus := s.ctx.Bus()
	tracker.Attach(bus)
	if s.recorder != nil {
		s.recorder.Attach(bus)
	}
	bus.OnStateChanged(func(prev, cur core.GameMode) {
		s.camLog.Info().Stringer("from", prev).Stringer("to", cur).Msg("mode changed")
	})
	bus.OnShardCollected(func(p event.ShardCollectedPayload) {
		s.courseLog.Info().Int("value", p.Value).Int("collected", p.Collected).Int("total", p.Total).Msg("shard collected")
	})
	bus.OnLevelComplete(func(p event.LevelCompletePayload) {
		s.courseLog.Info().Int("collected", p.Collected).Int("total", p.Total).Msg("level complete")
	})

	s.last = s.snapshot(false, false)
	return s, nil
}

// NewFromLevel builds the context, collision world and pickups for lvl, then the Simulation
func NewFromLevel(lvl *level.Level, opts Options) (*Simulation, error) {
	if err := lvl.Validate(); err != nil {
		return nil, err
	}
	ctx := NewContext(nil)
	if err := ctx.RegisterGroundPlane(lvl.GroundPlaneY); err != nil {
		return nil, err
	}
	for _, shard := range lvl.Shards {
		ctx.RegisterShard(shard.Value)
	}
	opts.Context = ctx
	opts.Rays = lvl.World()
	opts.Spawn = lvl.Spawn
	opts.Pickups = level.NewPickups(lvl)
	return New(opts)
}

// Tick advances one fixed step:
// mode check, locomotion, commit, respawn, pickups, landed/teleported events, camera
func (s *Simulation) Tick(in core.InputSample, dt float64) Snapshot {
	s.ctx.tick++
	s.ctx.advance(dt)
	ctx := context.Background()

	mode := s.ctx.Mode()
	if mode.Frozen() {
		s.state.Freeze()
		s.camera.Update(s.state.Pose(), dt)
		if s.recorder != nil {
			s.recorder.RecordFrozenTick(ctx, mode)
		}
		s.last = s.snapshot(false, false)
		return s.last
	}

	step := s.loco.Step(s.state, in, dt)
	landed := s.state.Commit(step, dt)

	teleported := false
	if s.state.OutOfBounds() {
		teleported = s.state.Respawn()
		if teleported {
			s.carLog.Info().Uint64("tick", s.ctx.tick).Msg("out of bounds, respawned")
		}
	}

	s.collectPickups()

	pose := s.state.Pose()
	switch {
	case teleported:
		s.ctx.Publish(event.EventTeleported, &event.TeleportedPayload{Pose: pose})
	case landed:
		s.carLog.Debug().Float64("height", pose.Position.Y).Msg("landed")
		s.ctx.Publish(event.EventLanded, &event.LandedPayload{Height: pose.Position.Y})
	}

	if sliding := step.SlideDirection != 0; sliding != s.sliding {
		s.sliding = sliding
		s.carLog.Debug().Bool("sliding", sliding).Int("direction", step.SlideDirection).Msg("corrective slide")
	}

	s.camera.Update(pose, dt)
	if s.recorder != nil {
		s.recorder.RecordTick(ctx, step)
	}

	s.last = s.snapshot(landed && !teleported, teleported)
	return s.last
}

func (s *Simulation) collectPickups() {
	if s.pickups == nil {
		return
	}
	for _, p := range s.pickups.Collect(s.state.Pose().Position) {
		switch p.Kind {
		case level.PickupShard:
			s.ctx.CollectShard(p.Value)
		case level.PickupKey:
			s.ctx.CompleteLevel()
		}
	}
}

// TogglePause flips between playing and paused
func (s *Simulation) TogglePause() bool {
	return s.ctx.TogglePause()
}

// Restart leaves the celebration, returning the vehicle and pickups to the start
func (s *Simulation) Restart() bool {
	if !s.ctx.Restart() {
		return false
	}
	s.state.Respawn()
	if s.pickups != nil {
		s.pickups.Reset()
	}
	s.ctx.Publish(event.EventTeleported, &event.TeleportedPayload{Pose: s.state.Pose(), Restart: true})
	s.last = s.snapshot(false, true)
	return true
}

func (s *Simulation) Context() *Context { return s.ctx }
func (s *Simulation) State() *vehicle.State { return s.state }
func (s *Simulation) Camera() *camera.Tracker { return s.camera }
func (s *Simulation) Pickups() *level.Pickups { return s.pickups }

// Last returns the most recent snapshot
func (s *Simulation) Last() Snapshot { return s.last }
