package system

import (
	"time"

	"github.com/rudearena/server/internal/core/ecs"
	coresys "github.com/rudearena/server/internal/core/system"
)

// CleanupSystem returns the ids despawned this tick to the pool.
// Phase 5 (Cleanup).
type CleanupSystem struct {
	world *ecs.World
}

func NewCleanupSystem(world *ecs.World) *CleanupSystem {
	return &CleanupSystem{world: world}
}

func (s *CleanupSystem) Phase() coresys.Phase { return coresys.PhaseCleanup }

func (s *CleanupSystem) Update(_ time.Duration) {
	s.world.FlushReleaseQueue()
}
