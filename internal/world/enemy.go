package world

import "github.com/rudearena/server/internal/core/ecs"

// Enemy is a melee chaser. Once Dead it never comes back.
type Enemy struct {
	ID         ecs.EntityID
	Position   Vec3
	Health     int
	Speed      float64
	Dead       bool
	FlashUntil float64 // sim time the hit flash ends
}

func newEnemy(id ecs.EntityID, pos Vec3) *Enemy {
	pos.Y = EnemyHeight
	return &Enemy{
		ID:       id,
		Position: pos,
		Health:   EnemyHealth,
		Speed:    EnemySpeed,
	}
}

// TakeDamage applies amount at sim time now and reports whether this call
// killed the enemy. Hitting a dead enemy does nothing and reports false.
func (e *Enemy) TakeDamage(amount int, now float64) bool {
	if e.Dead {
		return false
	}
	e.Health -= amount
	e.FlashUntil = now + EnemyFlashTime
	if e.Health <= 0 {
		e.Dead = true
		return true
	}
	return false
}

// Flashing reports whether the hit flash is showing at now.
func (e *Enemy) Flashing(now float64) bool {
	return !e.Dead && now < e.FlashUntil
}
