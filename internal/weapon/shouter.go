package weapon

import (
	"math/rand"

	"github.com/rudearena/server/internal/data"
	"github.com/rudearena/server/internal/world"
)

// Shouter throws a flying insult. No spread, no gravity.
type Shouter struct {
	tmpl   data.WeaponTemplate
	cd     cooldown
	lines  []string
	picker LinePicker
	recoil float64
}

func NewShouter(t data.WeaponTemplate, lines []string, picker LinePicker) *Shouter {
	return &Shouter{
		tmpl:   t,
		cd:     cooldown{rate: t.FireRate},
		lines:  lines,
		picker: picker,
	}
}

func (w *Shouter) Name() string { return w.tmpl.Name }

func (w *Shouter) CanFire(now float64) bool { return w.cd.ready(now) }

func (w *Shouter) gate() *cooldown { return &w.cd }

func (w *Shouter) Fire(now float64, shooter *world.Player, rng *rand.Rand) world.Projectile {
	w.cd.trigger(now)
	w.recoil = now + RecoilTime

	aim := shooter.Aim()
	return world.Projectile{
		Kind:     world.ProjectileInsult,
		Weapon:   w.tmpl.Name,
		Text:     w.line(rng.Float64()),
		Position: muzzle(shooter, w.tmpl.MuzzleOffset),
		Velocity: aim.Scale(w.tmpl.Speed),
		Life:     w.tmpl.Lifetime,
		Gravity:  w.tmpl.Gravity,
	}
}

func (w *Shouter) line(roll float64) string {
	if w.picker == nil {
		idx := int(roll * float64(len(w.lines)))
		if idx >= len(w.lines) {
			idx = len(w.lines) - 1
		}
		return w.lines[idx]
	}
	return w.picker.FormatInsult(w.lines[w.picker.PickInsult(len(w.lines), roll)])
}

func (w *Shouter) Update(float64) {}

// Pose tips the megaphone while recoiling.
func (w *Shouter) Pose(now float64) world.Vec3 {
	if now < w.recoil {
		return world.Vec3{Y: 0.2}
	}
	return world.Vec3{}
}
