package input

import (
	"math"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rudearena/server/internal/world"
)

const (
	// DefaultHold is how long a movement key counts as held after its last
	// press or auto-repeat. Terminals report no key releases.
	DefaultHold = 300 * time.Millisecond

	TurnStep  = math.Pi / 36 // yaw per press
	PitchStep = math.Pi / 72
	MaxPitch  = math.Pi / 3
)

type move int

const (
	moveForward move = iota
	moveBackward
	moveLeft
	moveRight
	moveCount
)

// Keyboard turns tcell key events into intents. Events arrive on the
// screen's event goroutine while Poll runs on the game loop.
type Keyboard struct {
	mu    sync.Mutex
	hold  time.Duration
	clock func() time.Time
	seen  [moveCount]time.Time

	yaw, pitch float64
	locked     bool
	fire       bool // latched until the next Poll
	restart    bool
	slot       int

	quit     chan struct{}
	quitOnce sync.Once
}

func NewKeyboard(hold time.Duration) *Keyboard {
	if hold <= 0 {
		hold = DefaultHold
	}
	return &Keyboard{hold: hold, clock: time.Now, quit: make(chan struct{})}
}

// Quit is closed when the player asks to leave.
func (k *Keyboard) Quit() <-chan struct{} { return k.quit }

// HandleEvent consumes one screen event. Non-key events are ignored.
func (k *Keyboard) HandleEvent(ev tcell.Event) {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return
	}
	k.press(key.Key(), key.Rune())
}

func (k *Keyboard) press(key tcell.Key, r rune) {
	k.mu.Lock()
	defer k.mu.Unlock()
	now := k.clock()

	switch key {
	case tcell.KeyCtrlC:
		k.quitOnce.Do(func() { close(k.quit) })
	case tcell.KeyEscape:
		k.locked = false
		k.seen = [moveCount]time.Time{}
	case tcell.KeyEnter:
		k.locked = true
		k.restart = true
	case tcell.KeyLeft:
		k.yaw += TurnStep
	case tcell.KeyRight:
		k.yaw -= TurnStep
	case tcell.KeyUp:
		k.pitch = math.Min(k.pitch+PitchStep, MaxPitch)
	case tcell.KeyDown:
		k.pitch = math.Max(k.pitch-PitchStep, -MaxPitch)
	case tcell.KeyRune:
		k.typed(r, now)
	}
}

func (k *Keyboard) typed(r rune, now time.Time) {
	switch r {
	case 'w', 'W':
		k.seen[moveForward] = now
	case 's', 'S':
		k.seen[moveBackward] = now
	case 'a', 'A':
		k.seen[moveLeft] = now
	case 'd', 'D':
		k.seen[moveRight] = now
	case 'q', 'Q':
		k.yaw += TurnStep
	case 'e', 'E':
		k.yaw -= TurnStep
	case ' ':
		k.fire = true
	case '1', '2', '3', '4', '5', '6', '7', '8', '9':
		k.slot = int(r - '0')
	}
}

// Poll reports the intent for this tick and consumes the one-shot requests.
func (k *Keyboard) Poll() world.Intent {
	k.mu.Lock()
	defer k.mu.Unlock()
	now := k.clock()
	in := world.Intent{
		Forward:  k.held(moveForward, now),
		Backward: k.held(moveBackward, now),
		Left:     k.held(moveLeft, now),
		Right:    k.held(moveRight, now),
		Yaw:      k.yaw,
		Pitch:    k.pitch,
		Fire:     k.fire,
		Switch:   k.slot,
		Locked:   k.locked,
		Restart:  k.restart,
	}
	k.fire, k.restart, k.slot = false, false, 0
	return in
}

// Unlock drops the lock, as Esc does.
func (k *Keyboard) Unlock() {
	k.mu.Lock()
	k.locked = false
	k.seen = [moveCount]time.Time{}
	k.mu.Unlock()
}

func (k *Keyboard) held(m move, now time.Time) bool {
	t := k.seen[m]
	return !t.IsZero() && now.Sub(t) < k.hold
}
