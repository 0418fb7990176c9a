package telemetry

import (
	"context"
	"fmt"
	"math"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/Danjb1/hovership/core"
	"github.com/Danjb1/hovership/event"
	"github.com/Danjb1/hovership/vehicle"
)

// Recorder counts simulation activity through OTel instruments
type Recorder struct {
	ticks        metric.Int64Counter
	landings     metric.Int64Counter
	respawns     metric.Int64Counter
	slideTicks   metric.Int64Counter
	shards       metric.Int64Counter
	forwardSpeed metric.Float64Histogram
}

// NewRecorder creates the instruments on m, or on the global meter when m is nil
func NewRecorder(m metric.Meter) (*Recorder, error) {
	if m == nil {
		m = meter()
	}
	r := &Recorder{}

	var err error
	if r.ticks, err = m.Int64Counter("hovership.ticks",
		metric.WithDescription("Simulation ticks by game mode")); err != nil {
		return nil, fmt.Errorf("creating ticks counter: %w", err)
	}
	if r.landings, err = m.Int64Counter("hovership.landings",
		metric.WithDescription("Touchdowns after being airborne")); err != nil {
		return nil, fmt.Errorf("creating landings counter: %w", err)
	}
	if r.respawns, err = m.Int64Counter("hovership.respawns",
		metric.WithDescription("Resets to the spawn pose")); err != nil {
		return nil, fmt.Errorf("creating respawns counter: %w", err)
	}
	if r.slideTicks, err = m.Int64Counter("hovership.slide_ticks",
		metric.WithDescription("Ticks with a corrective slide applied")); err != nil {
		return nil, fmt.Errorf("creating slide counter: %w", err)
	}
	if r.shards, err = m.Int64Counter("hovership.shards",
		metric.WithDescription("Power shard value collected")); err != nil {
		return nil, fmt.Errorf("creating shards counter: %w", err)
	}
	if r.forwardSpeed, err = m.Float64Histogram("hovership.forward_speed",
		metric.WithDescription("Forward speed per active tick"),
		metric.WithUnit("m/s")); err != nil {
		return nil, fmt.Errorf("creating forward speed histogram: %w", err)
	}
	return r, nil
}

// Attach subscribes the recorder to landing, teleport and shard events
// Teleports from a level restart are not respawns
func (r *Recorder) Attach(bus *event.Bus) {
	ctx := context.Background()
	bus.OnLanded(func(float64) { r.landings.Add(ctx, 1) })
	bus.Subscribe(event.EventTeleported, func(ev event.GameEvent) {
		if p, ok := ev.Payload.(*event.TeleportedPayload); ok && !p.Restart {
			r.respawns.Add(ctx, 1)
		}
	})
	bus.OnShardCollected(func(p event.ShardCollectedPayload) { r.shards.Add(ctx, int64(p.Value)) })
}

// RecordTick records an active tick's locomotion output
func (r *Recorder) RecordTick(ctx context.Context, step vehicle.Step) {
	r.ticks.Add(ctx, 1, metric.WithAttributes(attribute.String("mode", core.ModePlaying.String())))
	if step.SlideDirection != 0 {
		r.slideTicks.Add(ctx, 1)
	}
	r.forwardSpeed.Record(ctx, math.Abs(step.Forward))
}

// RecordFrozenTick records a tick skipped by a paused or celebrating mode
func (r *Recorder) RecordFrozenTick(ctx context.Context, mode core.GameMode) {
	r.ticks.Add(ctx, 1, metric.WithAttributes(attribute.String("mode", mode.String())))
}
