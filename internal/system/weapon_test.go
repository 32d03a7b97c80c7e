package system

import (
	"testing"
	"time"

	"github.com/rudearena/server/internal/core/event"
	"github.com/rudearena/server/internal/data"
	"github.com/rudearena/server/internal/weapon"
	"github.com/rudearena/server/internal/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeaponSystemFiresAndSwitches(t *testing.T) {
	f := newFixture(t)
	arsenal, err := weapon.Build(data.DefaultWeapons(), []string{"oi"}, nil)
	require.NoError(t, err)
	var in world.Intent
	sys := NewWeaponSystem(f.ws, arsenal, &in, testRNG(), f.bus, f.log)
	fired := collect[event.ProjectileFired](f.bus)
	switched := collect[event.WeaponSwitched](f.bus)

	in.Fire = true
	sys.Update(frame)
	assert.Equal(t, 1, f.ws.ProjectileCount())

	// Cooldown holds back the held trigger.
	f.ws.Advance(0.25)
	sys.Update(frame)
	assert.Equal(t, 1, f.ws.ProjectileCount())

	in.Switch = 2
	f.ws.Advance(0.1)
	sys.Update(frame)
	assert.Equal(t, 2, f.ws.ProjectileCount())

	in.Fire = false
	in.Switch = 9
	sys.Update(time.Second)
	assert.Equal(t, "insult", arsenal.Current().Name())

	f.bus.Flush()
	require.Len(t, *fired, 2)
	assert.Equal(t, "cigarette", (*fired)[0].Weapon)
	assert.True(t, (*fired)[0].Gravity)
	assert.Equal(t, "insult", (*fired)[1].Weapon)
	assert.Equal(t, "oi", (*fired)[1].Text)
	require.Len(t, *switched, 1)
	assert.Equal(t, 2, (*switched)[0].Slot)
}

func TestWeaponSwitchUsesSlotKeys(t *testing.T) {
	f := newFixture(t)
	tbl := data.DefaultWeapons()
	// Rebind insult from key 2 to key 3.
	all := tbl.All()
	all[1].Slot = 3
	arsenal, err := weapon.Build(tbl, []string{"oi"}, nil)
	require.NoError(t, err)
	var in world.Intent
	sys := NewWeaponSystem(f.ws, arsenal, &in, testRNG(), f.bus, f.log)
	switched := collect[event.WeaponSwitched](f.bus)

	in.Switch = 2
	sys.Update(frame)
	assert.Equal(t, "cigarette", arsenal.Current().Name())

	in.Switch = 3
	sys.Update(frame)
	assert.Equal(t, "insult", arsenal.Current().Name())

	sys.Update(frame)
	f.bus.Flush()
	require.Len(t, *switched, 1)
	assert.Equal(t, 3, (*switched)[0].Slot)
}
