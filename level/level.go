package level

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"github.com/Danjb1/hovership/core"
	"github.com/Danjb1/hovership/vmath"
)

var ErrInvalidLevel = errors.New("level: invalid level")

// Shard is a power shard pickup
type Shard struct {
	Position vmath.Vec3 `mapstructure:"position"`
	Value    int        `mapstructure:"value"`
}

// Level is a playable map
type Level struct {
	Name string `mapstructure:"name"`

	// GroundPlaneY is the level's reference ground height, respawn depth is measured from it
	GroundPlaneY float64 `mapstructure:"groundPlaneY"`

	Spawn    core.Pose   `mapstructure:"spawn"`
	Surfaces []Surface   `mapstructure:"surfaces"`
	Shards   []Shard     `mapstructure:"shards"`
	Key      *vmath.Vec3 `mapstructure:"key"`
}

func (l *Level) Validate() error {
	if l.Name == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidLevel)
	}
	if !vmath.IsFinite(l.GroundPlaneY) {
		return fmt.Errorf("%w: ground plane height is not finite", ErrInvalidLevel)
	}
	if len(l.Surfaces) == 0 {
		return fmt.Errorf("%w: no surfaces", ErrInvalidLevel)
	}
	for i, s := range l.Surfaces {
		if err := s.Validate(); err != nil {
			return fmt.Errorf("surface %d: %w", i, err)
		}
	}
	p := l.Spawn.Position
	if !vmath.IsFinite(p.X) || !vmath.IsFinite(p.Y) || !vmath.IsFinite(p.Z) || !vmath.IsFinite(l.Spawn.Yaw) {
		return fmt.Errorf("%w: spawn is not finite", ErrInvalidLevel)
	}
	for i, s := range l.Shards {
		if s.Value <= 0 {
			return fmt.Errorf("%w: shard %d has value %d", ErrInvalidLevel, i, s.Value)
		}
	}
	return nil
}

// World builds the collision world for the level's surfaces
func (l *Level) World() *World {
	return NewWorld(l.Surfaces)
}

// Load reads a TOML level file
func Load(path string) (*Level, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read level %s: %w", path, err)
	}

	var l Level
	if err := v.Unmarshal(&l); err != nil {
		return nil, fmt.Errorf("decode level %s: %w", path, err)
	}
	if err := l.Validate(); err != nil {
		return nil, fmt.Errorf("level %s: %w", path, err)
	}
	return &l, nil
}

// Builtin is the demo course: start pad, ramp, upper deck, a narrow beam over the void and the key island
func Builtin() *Level {
	key := vmath.Vec3{X: 0, Y: 5, Z: 104}
	return &Level{
		Name:         "proving-ground",
		GroundPlaneY: 0,
		Spawn:        core.Pose{Position: vmath.Vec3{Y: 1}},
		Surfaces: []Surface{
			Box(vmath.Vec3{X: -10, Y: -2, Z: -10}, vmath.Vec3{X: 10, Y: 0, Z: 30}),
			Ramp(vmath.Vec3{X: -6, Y: 0, Z: 30}, vmath.Vec3{X: 6, Y: 4, Z: 46}, "z"),
			Box(vmath.Vec3{X: -12, Y: 0, Z: 46}, vmath.Vec3{X: 12, Y: 4, Z: 70}),
			Box(vmath.Vec3{X: -1, Y: 2, Z: 70}, vmath.Vec3{X: 1, Y: 4, Z: 92}),
			Box(vmath.Vec3{X: -8, Y: 2, Z: 92}, vmath.Vec3{X: 8, Y: 4, Z: 110}),
			// Too steep to count as ground, slides the ship off
			Ramp(vmath.Vec3{X: 10, Y: 0, Z: 0}, vmath.Vec3{X: 12, Y: 6, Z: 30}, "x"),
		},
		Shards: []Shard{
			{Position: vmath.Vec3{Y: 1, Z: 20}, Value: 1},
			{Position: vmath.Vec3{X: 8, Y: 5, Z: 58}, Value: 1},
			{Position: vmath.Vec3{X: -8, Y: 5, Z: 58}, Value: 1},
			{Position: vmath.Vec3{Y: 5, Z: 81}, Value: 2},
		},
		Key: &key,
	}
}
