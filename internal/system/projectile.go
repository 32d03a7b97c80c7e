package system

import (
	"time"

	"github.com/rudearena/server/internal/core/event"
	coresys "github.com/rudearena/server/internal/core/system"
	"github.com/rudearena/server/internal/world"
	"go.uber.org/zap"
)

// ProjectileSystem moves projectiles, resolves their hits on enemies in the
// same pass and expires them. Phase 2 (Projectile).
type ProjectileSystem struct {
	world *world.State
	bus   *event.Bus
	log   *zap.Logger
}

func NewProjectileSystem(ws *world.State, bus *event.Bus, log *zap.Logger) *ProjectileSystem {
	return &ProjectileSystem{world: ws, bus: bus, log: log}
}

func (s *ProjectileSystem) Phase() coresys.Phase { return coresys.PhaseProjectile }

func (s *ProjectileSystem) Update(dt time.Duration) {
	d := seconds(dt)
	s.world.EachProjectile(func(p *world.Projectile) bool {
		Integrate(p, d)
		hit := s.resolveHit(p)
		p.Life -= d
		if hit || p.Life <= 0 || p.Position.Y < 0 {
			s.world.RemoveProjectile(p.ID)
		}
		return true
	})
}

// Integrate moves p by its velocity, then applies gravity when flagged.
func Integrate(p *world.Projectile, dt float64) {
	p.Position = p.Position.AddScaled(p.Velocity, dt)
	if p.Gravity {
		p.Velocity.Y -= world.Gravity * dt
	}
}

// resolveHit damages the first enemy in range and reports whether p hit.
func (s *ProjectileSystem) resolveHit(p *world.Projectile) bool {
	e := FirstHit(s.world, p.Position)
	if e == nil {
		return false
	}
	killed := e.TakeDamage(world.ProjectileDamage, s.world.Now)
	event.Emit(s.bus, event.EnemyHit{EntityID: e.ID, Projectile: p.ID, Health: e.Health})
	if killed {
		s.world.Kills++
		s.world.RemoveEnemy(e.ID)
		event.Emit(s.bus, event.EnemyKilled{EntityID: e.ID, Kills: s.world.Kills})
		s.log.Debug("enemy killed",
			zap.Uint64("enemy", uint64(e.ID)),
			zap.String("weapon", p.Weapon),
			zap.Int("kills", s.world.Kills))
	}
	return true
}
