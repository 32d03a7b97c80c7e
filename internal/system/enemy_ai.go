package system

import (
	"time"

	"github.com/rudearena/server/internal/core/event"
	coresys "github.com/rudearena/server/internal/core/system"
	"github.com/rudearena/server/internal/world"
	"go.uber.org/zap"
)

// EnemyAISystem moves every living enemy straight at the player, sweeps out
// dead ones and applies melee contact. Phase 3 (Enemy).
//
// Contact is not throttled: each enemy in range hurts the player on every
// tick, and several enemies stack.
type EnemyAISystem struct {
	world *world.State
	bus   *event.Bus
	log   *zap.Logger
}

func NewEnemyAISystem(ws *world.State, bus *event.Bus, log *zap.Logger) *EnemyAISystem {
	return &EnemyAISystem{world: ws, bus: bus, log: log}
}

func (s *EnemyAISystem) Phase() coresys.Phase { return coresys.PhaseEnemy }

func (s *EnemyAISystem) Update(dt time.Duration) {
	d := seconds(dt)
	p := s.world.Player
	s.world.EachEnemyReverse(func(e *world.Enemy) bool {
		if e.Dead {
			s.world.RemoveEnemy(e.ID)
			return true
		}
		Chase(e, p.Position, d)
		if InContact(p, e) {
			health := ApplyContact(p, e)
			event.Emit(s.bus, event.PlayerDamaged{Amount: world.ContactDamage, Health: health, Source: e.ID})
			if health <= 0 && !s.world.GameOver {
				s.world.GameOver = true
				event.Emit(s.bus, event.PlayerDied{Kills: s.world.Kills, Time: s.world.Now})
				s.log.Info("player died",
					zap.Int("kills", s.world.Kills),
					zap.Float64("survived", s.world.Now))
			}
		}
		return true
	})
}

// Chase moves e toward target on its own level at e.Speed.
func Chase(e *world.Enemy, target world.Vec3, dt float64) {
	dir := world.PlanarDirection(e.Position, target)
	e.Position = e.Position.Add(world.FromPlanar(dir.Mult(e.Speed*dt), 0))
}
