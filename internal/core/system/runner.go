package system

import (
	"sort"
	"time"
)

// Runner drives one simulation tick: every registered system runs once,
// movement first and id cleanup last, so later phases see what earlier
// ones did to the world in the same tick. Systems sharing a phase run in
// registration order. Runner is not safe for concurrent use; the frame
// loop owns it.
type Runner struct {
	systems []System
	sorted  bool
}

func NewRunner() *Runner {
	return &Runner{
		systems: make([]System, 0, int(PhaseCleanup)+1),
	}
}

// Register adds s. The phase order is restored lazily on the next Tick.
func (r *Runner) Register(s System) {
	r.systems = append(r.systems, s)
	r.sorted = false
}

// Tick runs every system with the same dt. A zero dt still runs them all.
func (r *Runner) Tick(dt time.Duration) {
	r.ensureSorted()
	for _, s := range r.systems {
		s.Update(dt)
	}
}

// Order returns the phase of each system in the order Tick runs them.
func (r *Runner) Order() []string {
	r.ensureSorted()
	out := make([]string, len(r.systems))
	for i, s := range r.systems {
		out[i] = s.Phase().String()
	}
	return out
}

// Len returns the number of registered systems.
func (r *Runner) Len() int { return len(r.systems) }

func (r *Runner) ensureSorted() {
	if !r.sorted {
		sort.SliceStable(r.systems, func(i, j int) bool {
			return r.systems[i].Phase() < r.systems[j].Phase()
		})
		r.sorted = true
	}
}
