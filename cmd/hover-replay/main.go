// hover-replay drives the simulation headless from a scripted input pattern
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/Danjb1/hovership/config"
	"github.com/Danjb1/hovership/core"
	"github.com/Danjb1/hovership/engine"
	"github.com/Danjb1/hovership/event"
	"github.com/Danjb1/hovership/logging"
	"github.com/Danjb1/hovership/telemetry"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "hover-replay: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	flags := pflag.NewFlagSet("hover-replay", pflag.ContinueOnError)
	cfgPath := flags.String("config", "", "TOML settings file")
	flags.String("level", "", "TOML level file, built-in course when empty")
	flags.Int("ticks", 0, "number of fixed steps to run")
	flags.String("log-level", "", "trace, debug, info, warn or error")
	events := flags.StringSlice("events", nil, "event types to trace at debug, all when empty (e.g. landed,teleported)")
	if err := flags.Parse(os.Args[1:]); err != nil {
		return err
	}

	settings, err := config.Load(*cfgPath, flags)
	if err != nil {
		return err
	}
	settings.Log.Format = logging.FormatJSON
	settings.Log.Output = os.Stderr
	log, err := logging.New(settings.Log)
	if err != nil {
		return err
	}

	traced, err := traceTypes(*events)
	if err != nil {
		return err
	}

	lvl, err := settings.LoadLevel()
	if err != nil {
		return err
	}

	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	defer provider.Shutdown(context.Background())

	recorder, err := telemetry.NewRecorder(provider.Meter("hover-replay"))
	if err != nil {
		return err
	}

	sim, err := engine.NewFromLevel(lvl, engine.Options{
		Vehicle:  settings.Vehicle,
		Camera:   settings.Camera,
		Recorder: recorder,
		Logger:   log,
	})
	if err != nil {
		return err
	}
	traceEvents(sim.Context().Bus(), log, traced)

	log.Info().Str("level", lvl.Name).Int("ticks", settings.Sim.Ticks).Dur("timestep", settings.Sim.Timestep).Msg("replay started")

	dt := settings.Sim.Timestep.Seconds()
	var prev bool
	for i := range settings.Sim.Ticks {
		in := script(i)
		in.JumpPressed = in.JumpHeld && !prev
		prev = in.JumpHeld
		sim.Tick(in, dt)
	}

	if err := logMetrics(context.Background(), reader, log); err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(sim.Last())
}

// script is a lap of the built-in course: accelerate, hop, weave
func script(tick int) core.InputSample {
	in := core.InputSample{Throttle: 1}
	switch phase := tick % 250; {
	case phase >= 60 && phase < 80:
		in.JumpHeld = true
	case phase >= 120 && phase < 150:
		in.Yaw = 0.6
	case phase >= 170 && phase < 200:
		in.Yaw = -0.6
	case phase >= 230:
		in.Throttle = 0
	}
	return in
}

// traceTypes resolves event names, every registered type when names is empty
func traceTypes(names []string) ([]event.EventType, error) {
	if len(names) == 0 {
		return event.Types(), nil
	}
	out := make([]event.EventType, 0, len(names))
	for _, name := range names {
		et, ok := event.ParseEventType(strings.TrimSpace(name))
		if !ok {
			return nil, fmt.Errorf("unknown event type %q", name)
		}
		out = append(out, et)
	}
	return out, nil
}

// traceEvents logs the given bus events at debug
func traceEvents(bus *event.Bus, log zerolog.Logger, types []event.EventType) {
	l := logging.Component(log, "bus")
	for _, et := range types {
		bus.Subscribe(et, func(ev event.GameEvent) {
			l.Debug().Stringer("type", ev.Type).Uint64("tick", ev.Tick).Interface("payload", ev.Payload).Msg("event")
		})
	}
}

// logMetrics collects once and logs each counter total
func logMetrics(ctx context.Context, reader *sdkmetric.ManualReader, log zerolog.Logger) error {
	var rm metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &rm); err != nil {
		return fmt.Errorf("collect metrics: %w", err)
	}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			switch data := m.Data.(type) {
			case metricdata.Sum[int64]:
				var total int64
				for _, dp := range data.DataPoints {
					total += dp.Value
				}
				log.Info().Str("metric", m.Name).Int64("total", total).Msg("counter")
			case metricdata.Histogram[float64]:
				for _, dp := range data.DataPoints {
					mean := 0.0
					if dp.Count > 0 {
						mean = dp.Sum / float64(dp.Count)
					}
					log.Info().Str("metric", m.Name).Uint64("count", dp.Count).Float64("mean", mean).Msg("histogram")
				}
			}
		}
	}
	return nil
}
