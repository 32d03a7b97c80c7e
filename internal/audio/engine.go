package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/rudearena/server/internal/core/event"
	"go.uber.org/zap"
)

// Output plays streamers. speaker.Play satisfies it through OutputFunc.
type Output interface {
	Play(s ...beep.Streamer)
}

// OutputFunc adapts a function to Output.
type OutputFunc func(s ...beep.Streamer)

func (f OutputFunc) Play(s ...beep.Streamer) { f(s...) }

// Engine turns game events into cues. It only observes; nothing it does
// feeds back into the simulation.
type Engine struct {
	mu     sync.Mutex
	out    Output
	rate   beep.SampleRate
	volume float64
	muted  bool
	log    *zap.Logger
}

func NewEngine(out Output, rate beep.SampleRate, volume float64, log *zap.Logger) *Engine {
	return &Engine{out: out, rate: rate, volume: volume, log: log}
}

// Subscribe registers the engine's handlers on bus.
func (e *Engine) Subscribe(bus *event.Bus) {
	event.Subscribe(bus, func(ev event.ProjectileFired) {
		if ev.Gravity {
			e.Play(CueFire)
		} else {
			e.Play(CueShout)
		}
	})
	event.Subscribe(bus, func(ev event.EnemyHit) {
		// The kill cue covers the last hit.
		if ev.Health > 0 {
			e.Play(CueHit)
		}
	})
	event.Subscribe(bus, func(event.EnemyKilled) { e.Play(CueKill) })
	event.Subscribe(bus, func(ev event.PlayerDamaged) {
		if ev.Health > 0 {
			e.Play(CueHurt)
		}
	})
	event.Subscribe(bus, func(event.PlayerDied) { e.Play(CueGameOver) })
	event.Subscribe(bus, func(ev event.Paused) { e.SetMuted(ev.Paused) })
	event.Subscribe(bus, func(event.GameReset) { e.SetMuted(false) })
}

// Play synthesizes c and hands it to the output. Nothing plays while muted.
func (e *Engine) Play(c Cue) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.out == nil || e.muted {
		return
	}
	s := Synth(c, e.rate, e.volume)
	if s == nil {
		return
	}
	e.out.Play(s)
	e.log.Debug("cue", zap.Stringer("cue", c))
}

// SetMuted silences cues while the game is paused.
func (e *Engine) SetMuted(muted bool) {
	e.mu.Lock()
	e.muted = muted
	e.mu.Unlock()
}
