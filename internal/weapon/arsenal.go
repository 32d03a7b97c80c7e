package weapon

import (
	"fmt"
	"math/rand"

	"github.com/rudearena/server/internal/data"
	"github.com/rudearena/server/internal/world"
)

// Arsenal holds the player's weapons and the equipped slot. Each weapon
// keeps the switch key it was built for.
type Arsenal struct {
	weapons []Weapon
	slots   []int
	current int
}

// NewArsenal keys the weapons 1, 2, 3... in argument order.
func NewArsenal(weapons ...Weapon) *Arsenal {
	slots := make([]int, len(weapons))
	for i := range slots {
		slots[i] = i + 1
	}
	return &Arsenal{weapons: weapons, slots: slots}
}

// Build creates one weapon per template, in slot order, keyed by the
// template's slot.
func Build(tbl *data.WeaponTable, lines []string, picker LinePicker) (*Arsenal, error) {
	a := &Arsenal{
		weapons: make([]Weapon, 0, tbl.Count()),
		slots:   make([]int, 0, tbl.Count()),
	}
	for _, t := range tbl.All() {
		w, err := FromTemplate(t, lines, picker)
		if err != nil {
			return nil, fmt.Errorf("build arsenal: %w", err)
		}
		a.weapons = append(a.weapons, w)
		a.slots = append(a.slots, t.Slot)
	}
	return a, nil
}

func (a *Arsenal) Len() int { return len(a.weapons) }

// Current returns the equipped weapon, or nil for an empty arsenal.
func (a *Arsenal) Current() Weapon {
	if len(a.weapons) == 0 {
		return nil
	}
	return a.weapons[a.current]
}

// Index returns the 0-based position of the equipped weapon.
func (a *Arsenal) Index() int { return a.current }

// Slot returns the switch key of the equipped weapon, or 0 when empty.
func (a *Arsenal) Slot() int {
	if len(a.slots) == 0 {
		return 0
	}
	return a.slots[a.current]
}

// Switch equips the weapon at position i (0-based). Out-of-range
// positions are ignored.
func (a *Arsenal) Switch(i int) bool {
	if i < 0 || i >= len(a.weapons) {
		return false
	}
	a.current = i
	return true
}

// SwitchSlot equips the weapon bound to switch key slot. Unbound keys are
// ignored.
func (a *Arsenal) SwitchSlot(slot int) bool {
	for i, s := range a.slots {
		if s == slot {
			return a.Switch(i)
		}
	}
	return false
}

// Replace swaps in a new weapon set. A weapon whose name survives keeps
// its cooldown, and stays equipped if it was.
func (a *Arsenal) Replace(other *Arsenal) {
	var equipped string
	if w := a.Current(); w != nil {
		equipped = w.Name()
	}
	prev := make(map[string]Weapon, len(a.weapons))
	for _, w := range a.weapons {
		prev[w.Name()] = w
	}
	for _, w := range other.weapons {
		if old, ok := prev[w.Name()]; ok {
			carryCooldown(old, w)
		}
	}

	a.weapons, a.slots = other.weapons, other.slots
	a.current = 0
	for i, w := range a.weapons {
		if w.Name() == equipped {
			a.current = i
			break
		}
	}
}

// Update relays idle time to the equipped weapon.
func (a *Arsenal) Update(dt float64) {
	if w := a.Current(); w != nil {
		w.Update(dt)
	}
}

// TryFire fires the equipped weapon if its cooldown allows.
func (a *Arsenal) TryFire(now float64, shooter *world.Player, rng *rand.Rand) (world.Projectile, bool) {
	w := a.Current()
	if w == nil || !w.CanFire(now) {
		return world.Projectile{}, false
	}
	return w.Fire(now, shooter, rng), true
}
