package system

import (
	"math/rand"
	"time"

	"github.com/rudearena/server/internal/core/event"
	coresys "github.com/rudearena/server/internal/core/system"
	"github.com/rudearena/server/internal/weapon"
	"github.com/rudearena/server/internal/world"
	"go.uber.org/zap"
)

// WeaponSystem applies weapon switches, relays idle time to the equipped
// weapon and turns fire requests into projectiles. Phase 1 (Weapon).
type WeaponSystem struct {
	world   *world.State
	arsenal *weapon.Arsenal
	input   *world.Intent
	rng     *rand.Rand
	bus     *event.Bus
	log     *zap.Logger
}

// NewWeaponSystem reads fire and switch requests from *input every tick.
func NewWeaponSystem(ws *world.State, arsenal *weapon.Arsenal, input *world.Intent, rng *rand.Rand, bus *event.Bus, log *zap.Logger) *WeaponSystem {
	return &WeaponSystem{world: ws, arsenal: arsenal, input: input, rng: rng, bus: bus, log: log}
}

func (s *WeaponSystem) Phase() coresys.Phase { return coresys.PhaseWeapon }

func (s *WeaponSystem) Update(dt time.Duration) {
	if slot := s.input.Switch; slot > 0 && slot != s.arsenal.Slot() {
		if s.arsenal.SwitchSlot(slot) {
			event.Emit(s.bus, event.WeaponSwitched{Slot: slot, Weapon: s.arsenal.Current().Name()})
		}
	}

	s.arsenal.Update(seconds(dt))

	if !s.input.Fire {
		return
	}
	tmpl, ok := s.arsenal.TryFire(s.world.Now, s.world.Player, s.rng)
	if !ok {
		return
	}
	p := s.world.AddProjectile(tmpl)
	event.Emit(s.bus, event.ProjectileFired{EntityID: p.ID, Weapon: p.Weapon, Text: p.Text, Gravity: p.Gravity})
	s.log.Debug("fired", zap.String("weapon", p.Weapon), zap.String("text", p.Text))
}
