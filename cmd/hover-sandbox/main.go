// hover-sandbox is a top-down terminal visualiser for driving the hovership
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/Danjb1/hovership/audio"
	"github.com/Danjb1/hovership/config"
	"github.com/Danjb1/hovership/core"
	"github.com/Danjb1/hovership/engine"
	"github.com/Danjb1/hovership/logging"
	"github.com/Danjb1/hovership/parameter"
	"github.com/Danjb1/hovership/telemetry"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			handleCrash(r)
		}
	}()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "hover-sandbox: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	flags := pflag.NewFlagSet("hover-sandbox", pflag.ContinueOnError)
	cfgPath := flags.String("config", "", "TOML settings file")
	logFile := flags.String("log-file", "", "write logs here, the terminal is busy")
	flags.String("level", "", "TOML level file, built-in course when empty")
	flags.Bool("sound", false, "play the engine hum")
	flags.String("log-level", "", "trace, debug, info, warn or error")
	if err := flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	settings, err := config.Load(*cfgPath, flags)
	if err != nil {
		return err
	}

	log := logging.Nop()
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		settings.Log.Output = f
		settings.Log.NoColor = true
		if log, err = logging.New(settings.Log); err != nil {
			return err
		}
	}

	lvl, err := settings.LoadLevel()
	if err != nil {
		return err
	}
	recorder, err := telemetry.NewRecorder(nil)
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
	groundY, _ := sim.Context().GroundHeight()

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	crashScreen = screen
	defer screen.Fini()
	screen.HideCursor()

	var bank *audio.Bank
	if settings.Sim.Sound {
		bank = startAudio(log)
		if bank != nil {
			defer speaker.Close()
			bank.Attach(sim.Context().Bus())
		}
	}

	keys := newHeldKeys(parameter.KeyHoldWindow)
	loop := engine.NewLoop(sim, settings.Sim.Timestep)
	frames := make(chan frame, 1)
	observe := func(s engine.Snapshot) {
		if bank != nil {
			bank.SetPitch(s.Vehicle.EnginePitch)
		}
		f := frame{snap: s}
		if p := sim.Pickups(); p != nil {
			f.shards = p.Remaining()
			if k, ok := p.Key(); ok {
				f.key = &k
			}
		}
		publishLatest(frames, f)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	loopDone := make(chan error, 1)
	goSafe(func() { loopDone <- loop.Run(ctx, keys, observe) })

	events := make(chan tcell.Event, 100)
	goSafe(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	})

	log.Info().Str("level", lvl.Name).Bool("sound", bank != nil).Msg("sandbox started")

	v := &view{screen: screen, world: lvl.World(), groundY: groundY, name: lvl.Name}
	latest := frame{snap: sim.Last()}
	ticker := time.NewTicker(parameter.FrameUpdateInterval)
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			if !handleEvent(ev, keys, loop, screen) {
				cancel()
				<-loopDone
				log.Info().Uint64("tick", latest.snap.Tick).Msg("sandbox stopped")
				return nil
			}
		case f := <-frames:
			latest = f
		case <-ticker.C:
			v.draw(latest)
		case err := <-loopDone:
			return err
		}
	}
}

// handleEvent returns false when the user quits
func handleEvent(ev tcell.Event, keys *heldKeys, loop *engine.Loop, screen tcell.Screen) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if c, ok := controlFor(ev); ok {
			keys.Press(c)
			return true
		}
		if ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case 'q', 'Q':
				return false
			case 'p', 'P':
				keys.Release()
				loop.Do(func(s *engine.Simulation) { s.TogglePause() })
			case 'r', 'R':
				keys.Release()
				loop.Do(func(s *engine.Simulation) {
					if s.Context().Mode() == core.ModeCelebrating {
						s.Restart()
					}
				})
			}
		}
	case *tcell.EventResize:
		screen.Sync()
	}
	return true
}

// publishLatest replaces any unread frame, the renderer only wants the newest
func publishLatest(ch chan frame, f frame) {
	select {
	case ch <- f:
		return
	default:
	}
	select {
	case <-ch:
	default:
	}
	ch <- f
}

// startAudio opens the speaker and plays the bank, nil when no device is available
func startAudio(log zerolog.Logger) *audio.Bank {
	rate := beep.SampleRate(parameter.AudioSampleRate)
	if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
		log.Warn().Err(err).Msg("audio initialization failed, running silent")
		return nil
	}
	bank := audio.NewBank(rate)
	speaker.Play(bank)
	return bank
}
