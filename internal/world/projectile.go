package world

import "github.com/rudearena/server/internal/core/ecs"

type ProjectileKind int

const (
	ProjectileThrown ProjectileKind = iota // solid object, falls under gravity
	ProjectileInsult                       // flying text, no gravity
)

func (k ProjectileKind) String() string {
	switch k {
	case ProjectileThrown:
		return "thrown"
	case ProjectileInsult:
		return "insult"
	}
	return "unknown"
}

// Projectile is a live shot. Life only ever goes down.
type Projectile struct {
	ID       ecs.EntityID
	Kind     ProjectileKind
	Weapon   string
	Text     string
	Position Vec3
	Velocity Vec3
	Life     float64
	Gravity  bool
}
