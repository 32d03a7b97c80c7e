package system

import (
	"math"
	"testing"
	"time"

	"github.com/rudearena/server/internal/core/ecs"
	"github.com/rudearena/server/internal/core/event"
	"github.com/rudearena/server/internal/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingRenderer struct {
	world.NopRenderer
	enemyRemovals map[ecs.EntityID]int
}

func (r *countingRenderer) RemoveEnemy(id ecs.EntityID) { r.enemyRemovals[id]++ }

func TestChaseStaysLevel(t *testing.T) {
	e := &world.Enemy{Position: world.Vec3{X: 10, Y: world.EnemyHeight}, Speed: world.EnemySpeed}
	Chase(e, world.Vec3{Y: world.EyeHeight}, 1.0)
	assert.InDelta(t, 7.0, e.Position.X, 1e-9)
	assert.Equal(t, world.EnemyHeight, e.Position.Y)

	// Standing on the target: no movement, no NaN.
	e.Position = world.Vec3{Y: world.EnemyHeight}
	Chase(e, world.Vec3{Y: world.EyeHeight}, 1.0)
	assert.Equal(t, world.Vec3{Y: world.EnemyHeight}, e.Position)
}

func TestEnemiesChaseThePlayer(t *testing.T) {
	f := newFixture(t)
	sys := NewEnemyAISystem(f.ws, f.bus, f.log)
	e := f.ws.SpawnEnemy(world.Vec3{X: 20, Z: -20})

	before := f.ws.Player.Position.Distance(e.Position)
	sys.Update(time.Second)
	after := f.ws.Player.Position.Distance(e.Position)
	assert.Less(t, after, before)
	assert.InDelta(t, world.EnemySpeed, math.Hypot(20-e.Position.X, -20-e.Position.Z), 1e-9)
}

func TestContactDamageIsUnthrottled(t *testing.T) {
	f := newFixture(t)
	sys := NewEnemyAISystem(f.ws, f.bus, f.log)
	damaged := collect[event.PlayerDamaged](f.bus)
	p := f.ws.Player
	e := f.stationaryEnemy(world.Vec3{})

	// Place the enemy 1.4 away (3D) on the -X side every tick.
	dy := world.EyeHeight - world.EnemyHeight
	planar := math.Sqrt(1.4*1.4 - dy*dy)
	for tick := 0; tick < 3; tick++ {
		start := p.Position
		e.Position = world.Vec3{X: start.X - planar, Y: world.EnemyHeight, Z: start.Z}
		require.InDelta(t, 1.4, start.Distance(e.Position), 1e-9)

		sys.Update(frame)

		assert.InDelta(t, 2.0, p.Position.X-start.X, 1e-9)
		assert.InDelta(t, 0.0, p.Position.Z-start.Z, 1e-9)
		assert.Equal(t, world.EyeHeight, p.Position.Y)
	}
	assert.Equal(t, world.PlayerHealth-30, p.Health)
	f.bus.Flush()
	assert.Len(t, *damaged, 3)
}

func TestKnockbackCanBreakContact(t *testing.T) {
	f := newFixture(t)
	sys := NewEnemyAISystem(f.ws, f.bus, f.log)
	f.stationaryEnemy(world.Vec3{X: 20})
	f.stationaryEnemy(world.Vec3{X: 0.5})
	f.stationaryEnemy(world.Vec3{X: -0.5})

	// The newest enemy pushes the player to x=2, out of reach of the middle one.
	sys.Update(frame)
	assert.Equal(t, world.PlayerHealth-world.ContactDamage, f.ws.Player.Health)
	assert.InDelta(t, 2.0, f.ws.Player.Position.X, 1e-9)
}

func TestContactStacksAcrossEnemies(t *testing.T) {
	f := newFixture(t)
	sys := NewEnemyAISystem(f.ws, f.bus, f.log)
	f.stationaryEnemy(world.Vec3{X: 2.5})
	f.stationaryEnemy(world.Vec3{X: -0.5})

	// Pushed to x=2 by the newest, then back to x=0 by the older one.
	sys.Update(frame)
	assert.Equal(t, world.PlayerHealth-2*world.ContactDamage, f.ws.Player.Health)
	assert.InDelta(t, 0.0, f.ws.Player.Position.X, 1e-9)
}

func TestKnockbackRespectsArena(t *testing.T) {
	f := newFixture(t)
	sys := NewEnemyAISystem(f.ws, f.bus, f.log)
	f.ws.Player.Position.X = world.Limit
	f.stationaryEnemy(world.Vec3{X: world.Limit - 1})

	sys.Update(frame)
	assert.Equal(t, world.Limit, f.ws.Player.Position.X)
	assert.Equal(t, world.PlayerHealth-world.ContactDamage, f.ws.Player.Health)
}

func TestPlayerDiesOnce(t *testing.T) {
	f := newFixture(t)
	sys := NewEnemyAISystem(f.ws, f.bus, f.log)
	died := collect[event.PlayerDied](f.bus)
	f.ws.Player.Health = 15

	e := f.stationaryEnemy(world.Vec3{})
	for i := 0; i < 3; i++ {
		e.Position = f.ws.Player.Position
		e.Position.X += 0.5
		sys.Update(frame)
	}
	f.bus.Flush()

	assert.Equal(t, 0, f.ws.Player.Health)
	assert.True(t, f.ws.GameOver)
	assert.Len(t, *died, 1)
}

func TestDeadEnemySweepIsIdempotent(t *testing.T) {
	f := newFixture(t)
	r := &countingRenderer{enemyRemovals: map[ecs.EntityID]int{}}
	f.ws.SetRenderer(r)
	sys := NewEnemyAISystem(f.ws, f.bus, f.log)

	e := f.stationaryEnemy(world.Vec3{X: 0.5})
	e.Health = 1
	require.True(t, e.TakeDamage(1, 0))
	f.ws.Kills++

	// The damage site removes it, then the sweep sees nothing to do.
	assert.True(t, f.ws.RemoveEnemy(e.ID))
	assert.False(t, f.ws.RemoveEnemy(e.ID))
	sys.Update(frame)
	assert.Equal(t, 1, r.enemyRemovals[e.ID])
	assert.Equal(t, 1, f.ws.Kills)

	// A dead enemy left in the collection is swept without touching the player.
	left := f.stationaryEnemy(world.Vec3{X: 0.5})
	left.TakeDamage(world.EnemyHealth, 0)
	sys.Update(frame)
	sys.Update(frame)
	assert.Equal(t, 1, r.enemyRemovals[left.ID])
	assert.Equal(t, 0, f.ws.EnemyCount())
	assert.Equal(t, world.PlayerHealth, f.ws.Player.Health)
}
