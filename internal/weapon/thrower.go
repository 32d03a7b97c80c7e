package weapon

import (
	"math"
	"math/rand"

	"github.com/rudearena/server/internal/data"
	"github.com/rudearena/server/internal/world"
)

// Thrower flicks a solid object that arcs under gravity, like a cigarette
// butt. Each shot jitters the aim by up to half the spread on X and Y.
type Thrower struct {
	tmpl   data.WeaponTemplate
	cd     cooldown
	clock  float64 // accumulated idle time for the sway
	recoil float64 // sim time the flick pose ends
}

func NewThrower(t data.WeaponTemplate) *Thrower {
	return &Thrower{tmpl: t, cd: cooldown{rate: t.FireRate}}
}

func (w *Thrower) Name() string { return w.tmpl.Name }

func (w *Thrower) CanFire(now float64) bool { return w.cd.ready(now) }

func (w *Thrower) gate() *cooldown { return &w.cd }

func (w *Thrower) Fire(now float64, shooter *world.Player, rng *rand.Rand) world.Projectile {
	w.cd.trigger(now)
	w.recoil = now + RecoilTime

	dir := shooter.Aim()
	dir.X += (rng.Float64() - 0.5) * w.tmpl.Spread
	dir.Y += (rng.Float64() - 0.5) * w.tmpl.Spread

	return world.Projectile{
		Kind:     world.ProjectileThrown,
		Weapon:   w.tmpl.Name,
		Position: muzzle(shooter, w.tmpl.MuzzleOffset),
		Velocity: dir.Scale(w.tmpl.Speed),
		Life:     w.tmpl.Lifetime,
		Gravity:  w.tmpl.Gravity,
	}
}

func (w *Thrower) Update(dt float64) {
	if dt > 0 {
		w.clock += dt
	}
}

// Pose is the idle sway plus the flick offset while recoiling.
func (w *Thrower) Pose(now float64) world.Vec3 {
	p := world.Vec3{
		X: math.Cos(w.clock) * 0.01,
		Y: math.Sin(w.clock*1.5) * 0.015,
	}
	if now < w.recoil {
		p.Y -= 0.05
	}
	return p
}
