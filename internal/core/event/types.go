package event

import "github.com/rudearena/server/internal/core/ecs"

// PlayerDamaged fires on every contact hit, including the one that kills.
type PlayerDamaged struct {
	Amount int
	Health int
	Source ecs.EntityID
}

// PlayerDied fires once when health reaches zero.
type PlayerDied struct {
	Kills int
	Time  float64
}

// GameReset fires after an explicit restart restored the initial state.
type GameReset struct{}

type EnemySpawned struct {
	EntityID ecs.EntityID
	X, Y, Z  float64
}

type EnemyHit struct {
	EntityID   ecs.EntityID
	Projectile ecs.EntityID
	Health     int
}

type EnemyKilled struct {
	EntityID ecs.EntityID
	Kills    int
}

type ProjectileFired struct {
	EntityID ecs.EntityID
	Weapon   string
	Text     string
	Gravity  bool
}

type WeaponSwitched struct {
	Slot   int
	Weapon string
}

// Paused fires on every transition of the input lock.
type Paused struct {
	Paused bool
}
