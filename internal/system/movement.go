package system

import (
	"math"
	"time"

	coresys "github.com/rudearena/server/internal/core/system"
	"github.com/rudearena/server/internal/world"
)

// MovementSystem integrates the player from the current movement flags.
// Phase 0 (Movement).
type MovementSystem struct {
	world *world.State
}

func NewMovementSystem(ws *world.State) *MovementSystem {
	return &MovementSystem{world: ws}
}

func (s *MovementSystem) Phase() coresys.Phase { return coresys.PhaseMovement }

func (s *MovementSystem) Update(dt time.Duration) {
	ResolveMovement(s.world.Player, seconds(dt))
}

// ResolveMovement applies friction, input acceleration and look-relative
// translation, then pins the eye height and clamps to the arena.
// It never fails; bad input only ever clamps.
func ResolveMovement(p *world.Player, dt float64) {
	if dt < 0 {
		dt = 0
	}

	// Friction. The factor is capped at 1 so a long frame stops the player
	// instead of flipping the velocity sign.
	k := math.Min(world.FrictionCoeff*dt, 1)
	p.Velocity.X -= p.Velocity.X * k
	p.Velocity.Z -= p.Velocity.Z * k

	fwd := boolAxis(p.MoveForward, p.MoveBackward)
	right := boolAxis(p.MoveRight, p.MoveLeft)
	if p.MoveForward || p.MoveBackward || p.MoveLeft || p.MoveRight {
		intent := world.Vec3{X: right, Z: fwd}.Normalize()
		p.Velocity.X += intent.X * world.AccelCoeff * dt
		p.Velocity.Z += intent.Z * world.AccelCoeff * dt
	}

	p.Position = p.Position.
		AddScaled(p.RightVec(), p.Velocity.X*dt).
		AddScaled(p.Forward(), p.Velocity.Z*dt)

	p.ClampToArena()
}

func boolAxis(pos, neg bool) float64 {
	v := 0.0
	if pos {
		v++
	}
	if neg {
		v--
	}
	return v
}

// seconds converts a tick duration, clamping negatives to zero.
func seconds(dt time.Duration) float64 {
	if dt < 0 {
		return 0
	}
	return dt.Seconds()
}
