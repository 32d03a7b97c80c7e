package world

import "math"

// Intent is one frame of player input, already decoded from whatever
// device produced it.
type Intent struct {
	Forward, Backward, Left, Right bool

	// Look angles in radians. Yaw 0 faces -Z; positive pitch looks up.
	Yaw, Pitch float64

	Fire    bool // edge trigger: true only on the frame the button went down
	Switch  int  // 1-based weapon slot to equip, 0 = keep current
	Locked  bool // input captured; simulation only advances while true
	Restart bool
}

// Player is the single player. Accessed only from the game loop goroutine.
type Player struct {
	Position Vec3
	// Velocity is kept in the player's local frame: X strafes right,
	// Z advances forward. Y is always zero.
	Velocity Vec3
	Yaw      float64
	Pitch    float64
	Health   int

	MoveForward, MoveBackward, MoveLeft, MoveRight bool
}

func NewPlayer() *Player {
	p := &Player{}
	p.Reset()
	return p
}

// Reset restores full health at the arena origin, standing still.
func (p *Player) Reset() {
	*p = Player{
		Position: Vec3{Y: EyeHeight},
		Health:   PlayerHealth,
	}
}

// ApplyIntent copies movement flags and look angles from in.
func (p *Player) ApplyIntent(in Intent) {
	p.MoveForward = in.Forward
	p.MoveBackward = in.Backward
	p.MoveLeft = in.Left
	p.MoveRight = in.Right
	p.Yaw = in.Yaw
	p.Pitch = in.Pitch
}

func (p *Player) Alive() bool { return p.Health > 0 }

// Damage subtracts amount, never going below zero, and returns the new health.
func (p *Player) Damage(amount int) int {
	p.Health -= amount
	if p.Health < 0 {
		p.Health = 0
	}
	return p.Health
}

// Forward is the unit floor-plane vector the player faces.
func (p *Player) Forward() Vec3 {
	return Vec3{X: -math.Sin(p.Yaw), Z: -math.Cos(p.Yaw)}
}

// RightVec is the unit floor-plane vector to the player's right.
func (p *Player) RightVec() Vec3 {
	return Vec3{X: math.Cos(p.Yaw), Z: -math.Sin(p.Yaw)}
}

// Aim is the unit look direction including pitch.
func (p *Player) Aim() Vec3 {
	c := math.Cos(p.Pitch)
	return Vec3{X: -math.Sin(p.Yaw) * c, Y: math.Sin(p.Pitch), Z: -math.Cos(p.Yaw) * c}
}

// ClampToArena pins the eye height and keeps the player inside the walls.
func (p *Player) ClampToArena() {
	p.Position.Y = EyeHeight
	p.Velocity.Y = 0
	p.Position.X = clamp(p.Position.X, -Limit, Limit)
	p.Position.Z = clamp(p.Position.Z, -Limit, Limit)
}
