package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/Danjb1/hovership/core"
	"github.com/Danjb1/hovership/event"
	"github.com/Danjb1/hovership/vehicle"
)

func collect(t *testing.T, reader *sdkmetric.ManualReader) map[string]metricdata.Aggregation {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	out := make(map[string]metricdata.Aggregation)
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			out[m.Name] = m.Data
		}
	}
	return out
}

func sumOf(t *testing.T, data metricdata.Aggregation) int64 {
	t.Helper()
	sum, ok := data.(metricdata.Sum[int64])
	require.True(t, ok, "want int64 sum, got %T", data)
	var total int64
	for _, dp := range sum.DataPoints {
		total += dp.Value
	}
	return total
}

func TestRecorder(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	rec, err := NewRecorder(provider.Meter("test"))
	require.NoError(t, err)

	bus := event.NewBus()
	rec.Attach(bus)

	ctx := context.Background()
	rec.RecordTick(ctx, vehicle.Step{Forward: 5})
	rec.RecordTick(ctx, vehicle.Step{Forward: -3, SlideDirection: -1})
	rec.RecordFrozenTick(ctx, core.ModePaused)

	bus.Publish(event.GameEvent{Type: event.EventLanded, Payload: &event.LandedPayload{Height: 1}})
	bus.Publish(event.GameEvent{Type: event.EventTeleported, Payload: &event.TeleportedPayload{}})
	bus.Publish(event.GameEvent{Type: event.EventTeleported, Payload: &event.TeleportedPayload{Restart: true}})
	bus.Publish(event.GameEvent{Type: event.EventShardCollected, Payload: &event.ShardCollectedPayload{Value: 2}})

	got := collect(t, reader)
	assert.Equal(t, int64(3), sumOf(t, got["hovership.ticks"]))
	assert.Equal(t, int64(1), sumOf(t, got["hovership.slide_ticks"]))
	assert.Equal(t, int64(1), sumOf(t, got["hovership.landings"]))
	assert.Equal(t, int64(1), sumOf(t, got["hovership.respawns"]))
	assert.Equal(t, int64(2), sumOf(t, got["hovership.shards"]))

	hist, ok := got["hovership.forward_speed"].(metricdata.Histogram[float64])
	require.True(t, ok)
	require.Len(t, hist.DataPoints, 1)
	assert.Equal(t, uint64(2), hist.DataPoints[0].Count)
	assert.Equal(t, 8.0, hist.DataPoints[0].Sum)

	ticks := got["hovership.ticks"].(metricdata.Sum[int64])
	assert.Len(t, ticks.DataPoints, 2, "one series per mode")
}

func TestNewRecorderGlobalMeter(t *testing.T) {
	rec, err := NewRecorder(nil)
	require.NoError(t, err)
	rec.RecordTick(context.Background(), vehicle.Step{})
}
