package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/rudearena/server/internal/core/event"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testRate = beep.SampleRate(8000)

// drain streams s to the end and returns the sample count and peak level.
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for i := 0; i < 1000; i++ {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			if v := smp[0]; v > peak {
				peak = v
			} else if -v > peak {
				peak = -v
			}
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("streamer never ended")
	return 0, 0
}

func TestOscillatorLength(t *testing.T) {
	osc := newOscillator(440, 100*time.Millisecond, WaveSine, testRate)
	n, peak := drain(t, osc)
	assert.Equal(t, testRate.N(100*time.Millisecond), n)
	assert.LessOrEqual(t, peak, 1.0)
	assert.NoError(t, osc.Err())
}

func TestSquareWaveLevels(t *testing.T) {
	osc := newOscillator(220, 50*time.Millisecond, WaveSquare, testRate)
	buf := make([][2]float64, 64)
	n, ok := osc.Stream(buf)
	require.True(t, ok)
	for _, smp := range buf[:n] {
		assert.Contains(t, []float64{-1, 1}, smp[0])
	}
}

func TestEnvelopeShapesEdges(t *testing.T) {
	d := 100 * time.Millisecond
	env := newEnvelope(newOscillator(0, d, WaveSquare, testRate), d, 10*time.Millisecond, 10*time.Millisecond, testRate)
	buf := make([][2]float64, testRate.N(d))
	n, _ := env.Stream(buf)
	require.Equal(t, len(buf), n)

	assert.Zero(t, buf[0][0])
	assert.Equal(t, 1.0, buf[n/2][0])
	assert.Less(t, buf[n-1][0], 0.05)
}

func TestSilentVolume(t *testing.T) {
	_, peak := drain(t, newVolume(newOscillator(440, 20*time.Millisecond, WaveSquare, testRate), 0))
	assert.Zero(t, peak)
}

func TestEveryCueEnds(t *testing.T) {
	for _, c := range []Cue{CueFire, CueShout, CueHit, CueKill, CueHurt, CueGameOver} {
		t.Run(c.String(), func(t *testing.T) {
			s := Synth(c, testRate, 1)
			require.NotNil(t, s)
			n, peak := drain(t, s)
			assert.Positive(t, n)
			assert.Positive(t, peak)
		})
	}
	assert.Nil(t, Synth(Cue(99), testRate, 1))
}

type recorder struct{ plays int }

func (r *recorder) Play(s ...beep.Streamer) { r.plays += len(s) }

func TestEngineFollowsEvents(t *testing.T) {
	bus := event.NewBus()
	out := &recorder{}
	eng := NewEngine(out, testRate, 0.5, zap.NewNop())
	eng.Subscribe(bus)

	event.Emit(bus, event.ProjectileFired{Gravity: true})
	event.Emit(bus, event.EnemyHit{Health: 2})
	event.Emit(bus, event.EnemyHit{Health: 0})
	event.Emit(bus, event.EnemyKilled{})
	event.Emit(bus, event.PlayerDamaged{Health: 90})
	bus.Flush()
	// The killing hit has no hit cue of its own.
	assert.Equal(t, 4, out.plays)

	// The death cue is emitted before the pause it causes.
	event.Emit(bus, event.PlayerDied{})
	event.Emit(bus, event.Paused{Paused: true})
	bus.Flush()
	assert.Equal(t, 5, out.plays)

	event.Emit(bus, event.ProjectileFired{})
	event.Emit(bus, event.PlayerDied{})
	bus.Flush()
	assert.Equal(t, 5, out.plays, "muted engine stays silent")

	event.Emit(bus, event.GameReset{})
	bus.Flush()
	eng.Play(CueShout)
	assert.Equal(t, 6, out.plays)
}

func TestResumeTickPlaysItsCues(t *testing.T) {
	bus := event.NewBus()
	out := &recorder{}
	eng := NewEngine(out, testRate, 0.5, zap.NewNop())
	eng.Subscribe(bus)

	for i := 0; i < 100; i++ {
		eng.SetMuted(true)
		out.plays = 0
		event.Emit(bus, event.Paused{Paused: false})
		event.Emit(bus, event.ProjectileFired{Gravity: true})
		event.Emit(bus, event.EnemySpawned{})
		event.Emit(bus, event.PlayerDamaged{Health: 50})
		bus.Flush()
		require.Equal(t, 2, out.plays, "fire and hurt cues after unpause")
	}
}

func TestOutputFunc(t *testing.T) {
	var got int
	eng := NewEngine(OutputFunc(func(s ...beep.Streamer) { got += len(s) }), testRate, 1, zap.NewNop())
	eng.Play(CueHit)
	assert.Equal(t, 1, got)
}
