package system

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	name  string
	phase Phase
	log   *[]string
}

func (r recorder) Phase() Phase { return r.phase }
func (r recorder) Update(time.Duration) {
	*r.log = append(*r.log, r.name)
}

func TestRunnerOrdersByPhaseThenRegistration(t *testing.T) {
	var log []string
	r := NewRunner()
	r.Register(recorder{"spawn", PhaseSpawn, &log})
	r.Register(recorder{"enemy-a", PhaseEnemy, &log})
	r.Register(recorder{"move", PhaseMovement, &log})
	r.Register(recorder{"enemy-b", PhaseEnemy, &log})
	r.Register(recorder{"cleanup", PhaseCleanup, &log})
	r.Register(recorder{"proj", PhaseProjectile, &log})
	r.Register(recorder{"weapon", PhaseWeapon, &log})

	r.Tick(16 * time.Millisecond)
	assert.Equal(t, []string{"move", "weapon", "proj", "enemy-a", "enemy-b", "spawn", "cleanup"}, log)
}

func TestRunnerOrderMatchesTick(t *testing.T) {
	var log []string
	r := NewRunner()
	r.Register(recorder{"cleanup", PhaseCleanup, &log})
	r.Register(recorder{"enemy", PhaseEnemy, &log})
	r.Register(recorder{"move", PhaseMovement, &log})

	assert.Equal(t, []string{"movement", "enemy", "cleanup"}, r.Order())
	assert.Equal(t, 3, r.Len())

	r.Tick(0)
	assert.Equal(t, []string{"move", "enemy", "cleanup"}, log)
	assert.Equal(t, "unknown", Phase(42).String())
}
