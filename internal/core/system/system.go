package system

import "time"

// Phase defines execution ordering within a single tick. Later phases
// observe the results of earlier ones within the same tick.
type Phase int

const (
	PhaseMovement   Phase = iota // 0: player movement from intent
	PhaseWeapon                  // 1: weapon cooldowns, fire, idle animation
	PhaseProjectile              // 2: projectile motion, hits, expiry
	PhaseEnemy                   // 3: chase, dead removal, player contact
	PhaseSpawn                   // 4: spawn timer
	PhaseCleanup                 // 5: release despawned ids
)

func (p Phase) String() string {
	switch p {
	case PhaseMovement:
		return "movement"
	case PhaseWeapon:
		return "weapon"
	case PhaseProjectile:
		return "projectile"
	case PhaseEnemy:
		return "enemy"
	case PhaseSpawn:
		return "spawn"
	case PhaseCleanup:
		return "cleanup"
	}
	return "unknown"
}

// System is the interface every simulation system implements.
type System interface {
	Phase() Phase
	Update(dt time.Duration)
}
