package engine

import (
	"time"

	"github.com/Danjb1/hovership/camera"
	"github.com/Danjb1/hovership/core"
	"github.com/Danjb1/hovership/vehicle"
	"github.com/Danjb1/hovership/vmath"
)

// CameraSnapshot is the committed camera pose
type CameraSnapshot struct {
	Position vmath.Vec3
	LookAt   vmath.Vec3
	Velocity vmath.Vec3
	Heading  float64 // yaw of the view direction, degrees
	Mode     camera.Mode
}

// Snapshot is the read-only result of a tick for renderers and observers
type Snapshot struct {
	Tick     uint64
	Mode     core.GameMode
	ModeTime time.Duration // spent in Mode, including this tick
	Vehicle  vehicle.Snapshot
	Camera   CameraSnapshot

	ShardsCollected int
	ShardsTotal     int

	// Edges raised this tick
	Landed     bool
	Teleported bool
}

func (s *Simulation) snapshot(landed, teleported bool) Snapshot {
	collected, total := s.ctx.Shards()
	return Snapshot{
		Tick:     s.ctx.Tick(),
		Mode:     s.ctx.Mode(),
		ModeTime: s.ctx.TimeInMode(),
		Vehicle:  s.state.Snapshot(),
		Camera: CameraSnapshot{
			Position: s.camera.Position(),
			LookAt:   s.camera.LookAt(),
			Velocity: s.camera.Velocity(),
			Heading:  vmath.YawOf(vmath.V3Sub(s.camera.LookAt(), s.camera.Position())),
			Mode:     s.camera.Mode(),
		},
		ShardsCollected: collected,
		ShardsTotal:     total,
		Landed:          landed,
		Teleported:      teleported,
	}
}
