package system

import (
	"math/rand"
	"testing"
	"time"

	"github.com/rudearena/server/internal/core/event"
	"github.com/rudearena/server/internal/world"
	"go.uber.org/zap"
)

const frame = 16 * time.Millisecond

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(12345))
}

type fixture struct {
	ws  *world.State
	bus *event.Bus
	log *zap.Logger
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	return &fixture{ws: world.NewState(), bus: event.NewBus(), log: zap.NewNop()}
}

// collect subscribes to T and returns a pointer to the delivered events.
func collect[T any](bus *event.Bus) *[]T {
	var got []T
	event.Subscribe(bus, func(ev T) { got = append(got, ev) })
	return &got
}

// stationaryEnemy spawns an enemy that does not chase.
func (f *fixture) stationaryEnemy(pos world.Vec3) *world.Enemy {
	e := f.ws.SpawnEnemy(pos)
	e.Speed = 0
	return e
}
