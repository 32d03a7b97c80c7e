package world

import "github.com/rudearena/server/internal/core/ecs"

// Renderer keeps visual proxies in step with the simulation. It is told
// about creation and destruction only; the simulation never reads from it.
// Implementations map entity ids to their own handles.
type Renderer interface {
	AddEnemy(e *Enemy)
	RemoveEnemy(id ecs.EntityID)
	AddProjectile(p *Projectile)
	RemoveProjectile(id ecs.EntityID)
}

// NopRenderer ignores every notification.
type NopRenderer struct{}

func (NopRenderer) AddEnemy(*Enemy)               {}
func (NopRenderer) RemoveEnemy(ecs.EntityID)      {}
func (NopRenderer) AddProjectile(*Projectile)     {}
func (NopRenderer) RemoveProjectile(ecs.EntityID) {}

// State is the simulation context passed to every system. It exclusively
// owns the enemy and projectile collections, keyed by generational ids.
// Accessed only from the game loop goroutine, so there are no locks.
type State struct {
	Player *Player

	// Now is simulated time in seconds. It only advances while the game runs.
	Now       float64
	LastSpawn float64
	Kills     int
	GameOver  bool

	world       *ecs.World
	enemies     *ecs.OrderedStore[Enemy]
	projectiles *ecs.OrderedStore[Projectile]
	renderer    Renderer
}

func NewState() *State {
	s := &State{
		Player:      NewPlayer(),
		world:       ecs.NewWorld(),
		enemies:     ecs.NewOrderedStore[Enemy](),
		projectiles: ecs.NewOrderedStore[Projectile](),
		renderer:    NopRenderer{},
	}
	s.world.Registry().Register(s.enemies)
	s.world.Registry().Register(s.projectiles)
	return s
}

// SetRenderer installs r; nil restores the no-op renderer.
func (s *State) SetRenderer(r Renderer) {
	if r == nil {
		r = NopRenderer{}
	}
	s.renderer = r
}

// ECS exposes the entity world for the cleanup system.
func (s *State) ECS() *ecs.World { return s.world }

// Advance moves simulated time forward. Negative steps are ignored.
func (s *State) Advance(dt float64) {
	if dt > 0 {
		s.Now += dt
	}
}

// ---------- Enemies ----------

// SpawnEnemy adds a living enemy at pos (height is pinned) and shows it.
func (s *State) SpawnEnemy(pos Vec3) *Enemy {
	id := s.world.CreateEntity()
	e := newEnemy(id, pos)
	s.enemies.Set(id, e)
	s.renderer.AddEnemy(e)
	return e
}

// RemoveEnemy takes the enemy out of tracking and rendering in one step.
// Removing an enemy twice is harmless and reports false the second time.
func (s *State) RemoveEnemy(id ecs.EntityID) bool {
	if !s.enemies.Has(id) {
		return false
	}
	s.world.Despawn(id)
	s.renderer.RemoveEnemy(id)
	return true
}

func (s *State) Enemy(id ecs.EntityID) (*Enemy, bool) { return s.enemies.Get(id) }
func (s *State) EnemyCount() int                      { return s.enemies.Len() }

// EachEnemy visits enemies oldest first; fn may remove any enemy.
func (s *State) EachEnemy(fn func(*Enemy) bool) {
	s.enemies.Each(func(_ ecs.EntityID, e *Enemy) bool { return fn(e) })
}

// EachEnemyReverse visits enemies newest first; fn may remove any enemy.
func (s *State) EachEnemyReverse(fn func(*Enemy) bool) {
	s.enemies.EachReverse(func(_ ecs.EntityID, e *Enemy) bool { return fn(e) })
}

// ---------- Projectiles ----------

// AddProjectile assigns p an id, starts tracking it and shows it.
func (s *State) AddProjectile(p Projectile) *Projectile {
	p.ID = s.world.CreateEntity()
	proj := &p
	s.projectiles.Set(p.ID, proj)
	s.renderer.AddProjectile(proj)
	return proj
}

// RemoveProjectile detaches the projectile from tracking and rendering in
// one step. Removing twice is harmless.
func (s *State) RemoveProjectile(id ecs.EntityID) bool {
	if !s.projectiles.Has(id) {
		return false
	}
	s.world.Despawn(id)
	s.renderer.RemoveProjectile(id)
	return true
}

func (s *State) Projectile(id ecs.EntityID) (*Projectile, bool) { return s.projectiles.Get(id) }
func (s *State) ProjectileCount() int                           { return s.projectiles.Len() }

// EachProjectile visits projectiles newest first; fn may remove any projectile.
func (s *State) EachProjectile(fn func(*Projectile) bool) {
	s.projectiles.EachReverse(func(_ ecs.EntityID, p *Projectile) bool { return fn(p) })
}

// ---------- Reset ----------

// Reset clears every enemy and projectile, restores the player and restarts
// the spawn timer from the current time.
func (s *State) Reset() {
	for _, id := range s.enemies.Clear() {
		s.world.Despawn(id)
		s.renderer.RemoveEnemy(id)
	}
	for _, id := range s.projectiles.Clear() {
		s.world.Despawn(id)
		s.renderer.RemoveProjectile(id)
	}
	s.world.FlushReleaseQueue()
	s.Player.Reset()
	s.LastSpawn = s.Now
	s.Kills = 0
	s.GameOver = false
}
