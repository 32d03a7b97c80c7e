package game

import (
	"math/rand"
	"time"

	"github.com/rudearena/server/internal/core/event"
	coresys "github.com/rudearena/server/internal/core/system"
	"github.com/rudearena/server/internal/system"
	"github.com/rudearena/server/internal/weapon"
	"github.com/rudearena/server/internal/world"
	"go.uber.org/zap"
)

// InputSource reports the player's intent once per tick.
type InputSource interface {
	Poll() world.Intent
}

// Unlocker is implemented by input sources that hold the lock themselves
// and must be told when the game releases it (game over).
type Unlocker interface {
	Unlock()
}

// Game owns the world and drives one simulation step per Step call.
type Game struct {
	world   *world.State
	bus     *event.Bus
	runner  *coresys.Runner
	arsenal *weapon.Arsenal
	input   InputSource
	log     *zap.Logger

	intent world.Intent // read by the weapon system during Tick
	locked bool
}

// New wires the per-tick systems in their fixed order: movement, weapon,
// projectiles (with hit scan), enemies (chase, sweep, contact), spawn and
// id cleanup.
func New(input InputSource, arsenal *weapon.Arsenal, rng *rand.Rand, bus *event.Bus, log *zap.Logger) *Game {
	ws := world.NewState()
	g := &Game{
		world:   ws,
		bus:     bus,
		runner:  coresys.NewRunner(),
		arsenal: arsenal,
		input:   input,
		log:     log,
	}
	g.runner.Register(system.NewMovementSystem(ws))
	g.runner.Register(system.NewWeaponSystem(ws, arsenal, &g.intent, rng, bus, log))
	g.runner.Register(system.NewProjectileSystem(ws, bus, log))
	g.runner.Register(system.NewEnemyAISystem(ws, bus, log))
	g.runner.Register(system.NewSpawnSystem(ws, rng, bus, log))
	g.runner.Register(system.NewCleanupSystem(ws.ECS()))
	log.Debug("systems registered", zap.Int("count", g.runner.Len()), zap.Strings("order", g.runner.Order()))
	return g
}

func (g *Game) World() *world.State          { return g.world }
func (g *Game) Bus() *event.Bus              { return g.bus }
func (g *Game) Arsenal() *weapon.Arsenal     { return g.arsenal }
func (g *Game) SetRenderer(r world.Renderer) { g.world.SetRenderer(r) }

// Locked reports whether the simulation was running after the last Step.
func (g *Game) Locked() bool { return g.locked }

// WeaponPose is the equipped weapon's view-model offset at the current
// simulated time, or zero for weapons without one.
func (g *Game) WeaponPose() world.Vec3 {
	if a, ok := g.arsenal.Current().(weapon.Animated); ok {
		return a.Pose(g.world.Now)
	}
	return world.Vec3{}
}

// Step advances the simulation by delta. Negative deltas count as zero.
// Nothing moves while the input is unlocked or the game is over; a
// restart request is only honoured once the player has died.
func (g *Game) Step(delta time.Duration) {
	if delta < 0 {
		delta = 0
	}
	defer g.bus.Flush()

	in := g.input.Poll()
	if in.Restart && g.world.GameOver {
		g.Reset()
		in.Locked = true
	}
	g.setLocked(in.Locked && !g.world.GameOver)
	if !g.locked {
		return
	}

	g.intent = in
	g.world.Player.ApplyIntent(in)
	g.world.Advance(delta.Seconds())
	g.runner.Tick(delta)

	if g.world.GameOver {
		g.setLocked(false)
		if u, ok := g.input.(Unlocker); ok {
			u.Unlock()
		}
	}
}

// Reset restores the initial state and publishes GameReset.
// Subscribers see it on the next flush.
func (g *Game) Reset() {
	g.world.Reset()
	g.intent = world.Intent{}
	event.Emit(g.bus, event.GameReset{})
	g.log.Info("game reset")
}

// ReplaceWeapons swaps in a rebuilt arsenal between ticks.
func (g *Game) ReplaceWeapons(a *weapon.Arsenal) {
	g.arsenal.Replace(a)
	g.log.Info("weapons reloaded", zap.Int("count", g.arsenal.Len()))
}

func (g *Game) setLocked(locked bool) {
	if locked == g.locked {
		return
	}
	g.locked = locked
	event.Emit(g.bus, event.Paused{Paused: !locked})
}
