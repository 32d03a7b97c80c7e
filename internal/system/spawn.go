package system

import (
	"math"
	"math/rand"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/rudearena/server/internal/core/event"
	coresys "github.com/rudearena/server/internal/core/system"
	"github.com/rudearena/server/internal/world"
	"go.uber.org/zap"
)

// SpawnSystem adds one enemy every world.SpawnInterval seconds of simulated
// time while fewer than world.SpawnCap are alive. The timer only restarts
// on a successful spawn, so a freed slot is refilled on the next tick once
// the interval has passed. Phase 4 (Spawn).
type SpawnSystem struct {
	world *world.State
	rng   *rand.Rand
	bus   *event.Bus
	log   *zap.Logger
}

func NewSpawnSystem(ws *world.State, rng *rand.Rand, bus *event.Bus, log *zap.Logger) *SpawnSystem {
	return &SpawnSystem{world: ws, rng: rng, bus: bus, log: log}
}

func (s *SpawnSystem) Phase() coresys.Phase { return coresys.PhaseSpawn }

func (s *SpawnSystem) Update(_ time.Duration) {
	if s.world.Now-s.world.LastSpawn < world.SpawnInterval {
		return
	}
	if s.world.EnemyCount() >= world.SpawnCap {
		return
	}
	s.world.LastSpawn = s.world.Now
	pos := RingPosition(s.world.Player.Position, s.rng)
	e := s.world.SpawnEnemy(pos)
	event.Emit(s.bus, event.EnemySpawned{EntityID: e.ID, X: e.Position.X, Y: e.Position.Y, Z: e.Position.Z})
	s.log.Debug("enemy spawned",
		zap.Uint64("enemy", uint64(e.ID)),
		zap.Float64("x", e.Position.X),
		zap.Float64("z", e.Position.Z),
		zap.Int("alive", s.world.EnemyCount()))
}

// RingPosition picks a point on a ring around center with a uniform angle
// and a radius in [SpawnMinRadius, SpawnMinRadius+SpawnRadiusVar).
func RingPosition(center world.Vec3, rng *rand.Rand) world.Vec3 {
	angle := rng.Float64() * math.Pi * 2
	radius := world.SpawnMinRadius + rng.Float64()*world.SpawnRadiusVar
	offset := cp.Vector{X: math.Sin(angle), Y: math.Cos(angle)}.Mult(radius)
	return world.FromPlanar(center.Planar().Add(offset), world.EnemyHeight)
}
