package system

import "github.com/rudearena/server/internal/world"

// FirstHit returns the first living enemy within world.HitRadius of pos, or
// nil. Enemies are scanned newest first and the scan stops at the first
// match; it does not look for the nearest enemy.
func FirstHit(ws *world.State, pos world.Vec3) *world.Enemy {
	var hit *world.Enemy
	ws.EachEnemyReverse(func(e *world.Enemy) bool {
		if e.Dead {
			return true
		}
		if pos.Distance(e.Position) < world.HitRadius {
			hit = e
			return false
		}
		return true
	})
	return hit
}

// InContact reports whether a living enemy is close enough to hurt the player.
func InContact(p *world.Player, e *world.Enemy) bool {
	return !e.Dead && p.Position.Distance(e.Position) < world.ContactRadius
}

// ApplyContact deals contact damage and knocks the player away from e along
// the floor plane, then re-clamps to the arena. It returns the new health.
func ApplyContact(p *world.Player, e *world.Enemy) int {
	health := p.Damage(world.ContactDamage)
	push := world.PlanarDirection(e.Position, p.Position).Mult(world.KnockbackDist)
	p.Position = p.Position.Add(world.FromPlanar(push, 0))
	p.ClampToArena()
	return health
}
