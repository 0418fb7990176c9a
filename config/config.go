package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/Danjb1/hovership/camera"
	"github.com/Danjb1/hovership/level"
	"github.com/Danjb1/hovership/logging"
	"github.com/Danjb1/hovership/parameter"
	"github.com/Danjb1/hovership/vehicle"
)

// EnvPrefix namespaces environment overrides, HOVERSHIP_VEHICLE_MAXSPEED sets vehicle.maxSpeed
const EnvPrefix = "HOVERSHIP"

var ErrInvalidSettings = errors.New("config: invalid settings")

// SimSettings drives the fixed-step loop
type SimSettings struct {
	Timestep time.Duration `mapstructure:"timestep"`
	Ticks    int           `mapstructure:"ticks"` // headless run length
	Sound    bool          `mapstructure:"sound"`
}

// Settings is everything a command needs to build a simulation
type Settings struct {
	Vehicle vehicle.Config  `mapstructure:"vehicle"`
	Camera  camera.Config   `mapstructure:"camera"`
	Sim     SimSettings     `mapstructure:"sim"`
	Log     logging.Options `mapstructure:"log"`

	// Level is a TOML level file, empty for the built-in course
	Level string `mapstructure:"level"`
}

func Defaults() Settings {
	return Settings{
		Vehicle: vehicle.DefaultConfig(),
		Camera:  camera.DefaultConfig(),
		Sim: SimSettings{
			Timestep: parameter.FixedTimestep,
			Ticks:    500,
		},
		Log: logging.DefaultOptions(),
	}
}

// flagKeys maps command-line flags onto settings keys
var flagKeys = map[string]string{
	"level":      "level",
	"sound":      "sim.sound",
	"ticks":      "sim.ticks",
	"timestep":   "sim.timestep",
	"log-level":  "log.level",
	"log-format": "log.format",
}

// Load layers defaults, the TOML file at path, HOVERSHIP_ environment variables and flags,
// in increasing priority, then validates the result
// An empty path skips the file
func Load(path string, flags *pflag.FlagSet) (*Settings, error) {
	v := viper.New()
	if err := setDefaults(v, Defaults()); err != nil {
		return nil, err
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var s Settings
	if err := v.UnmarshalExact(&s); err != nil {
		return nil, fmt.Errorf("decode settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// setDefaults registers every leaf key so environment overrides can find them
func setDefaults(v *viper.Viper, d Settings) error {
	sections := map[string]any{
		"vehicle": d.Vehicle,
		"camera":  d.Camera,
		"sim":     d.Sim,
		"log":     d.Log,
	}
	for section, value := range sections {
		var m map[string]any
		if err := mapstructure.Decode(value, &m); err != nil {
			return fmt.Errorf("defaults %s: %w", section, err)
		}
		for key, val := range m {
			v.SetDefault(section+"."+key, val)
		}
	}
	v.SetDefault("level", d.Level)
	return nil
}

func (s *Settings) Validate() error {
	if err := s.Vehicle.Validate(); err != nil {
		return err
	}
	if err := s.Camera.Validate(); err != nil {
		return err
	}
	if s.Sim.Timestep <= 0 {
		return fmt.Errorf("%w: sim.timestep %v must be positive", ErrInvalidSettings, s.Sim.Timestep)
	}
	if s.Sim.Ticks < 0 {
		return fmt.Errorf("%w: sim.ticks %d is negative", ErrInvalidSettings, s.Sim.Ticks)
	}
	if _, err := logging.ParseLevel(s.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}
	if _, err := logging.ParseFormat(s.Log.Format); err != nil {
		return fmt.Errorf("%w: log.format: %w", ErrInvalidSettings, err)
	}
	return nil
}

// LoadLevel reads the configured level file or returns the built-in course
func (s *Settings) LoadLevel() (*level.Level, error) {
	if s.Level == "" {
		return level.Builtin(), nil
	}
	return level.Load(s.Level)
}
