package weapon

import (
	"fmt"
	"math/rand"

	"github.com/rudearena/server/internal/data"
	"github.com/rudearena/server/internal/world"
)

// RecoilTime is how long the fire animation offset stays applied.
const RecoilTime = 0.1

// Weapon is anything the player can fire. The caller checks CanFire before
// Fire; Fire always produces exactly one projectile.
type Weapon interface {
	Name() string
	CanFire(now float64) bool
	Fire(now float64, shooter *world.Player, rng *rand.Rand) world.Projectile
	// Update advances the idle animation by dt seconds.
	Update(dt float64)
}

// Animated is implemented by weapons with a visible view-model pose.
type Animated interface {
	// Pose returns the view-model offset from its rest position at now.
	Pose(now float64) world.Vec3
}

// LinePicker chooses and decorates insult lines.
type LinePicker interface {
	PickInsult(count int, roll float64) int
	FormatInsult(text string) string
}

// cooldown gates firing by a minimum interval. A weapon that has never
// fired is always ready.
type cooldown struct {
	rate  float64
	last  float64
	fired bool
}

func (c *cooldown) ready(now float64) bool {
	return !c.fired || now-c.last > c.rate
}

func (c *cooldown) trigger(now float64) {
	c.last = now
	c.fired = true
}

// gated is implemented by weapons with a cooldown.
type gated interface {
	gate() *cooldown
}

// carryCooldown copies the last shot from one weapon to its rebuilt
// replacement. The replacement keeps its own rate.
func carryCooldown(from, to Weapon) {
	f, ok := from.(gated)
	if !ok {
		return
	}
	t, ok := to.(gated)
	if !ok {
		return
	}
	src, dst := f.gate(), t.gate()
	dst.last, dst.fired = src.last, src.fired
}

// FromTemplate builds a weapon for t. Insult weapons draw from lines, using
// picker when non-nil.
func FromTemplate(t data.WeaponTemplate, lines []string, picker LinePicker) (Weapon, error) {
	switch t.Kind {
	case "thrown":
		return NewThrower(t), nil
	case "insult":
		if len(lines) == 0 {
			return nil, fmt.Errorf("weapon %s: no insult lines", t.Name)
		}
		return NewShouter(t, lines, picker), nil
	}
	return nil, fmt.Errorf("weapon %s: unknown kind %q", t.Name, t.Kind)
}

// muzzle returns the spawn point offset ahead of the shooter's eye.
func muzzle(shooter *world.Player, offset float64) world.Vec3 {
	return shooter.Position.AddScaled(shooter.Aim(), offset)
}
