package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
)

// Cue is a sound the game can ask for.
type Cue int

const (
	CueFire Cue = iota
	CueShout
	CueHit
	CueKill
	CueHurt
	CueGameOver
)

func (c Cue) String() string {
	switch c {
	case CueFire:
		return "fire"
	case CueShout:
		return "shout"
	case CueHit:
		return "hit"
	case CueKill:
		return "kill"
	case CueHurt:
		return "hurt"
	case CueGameOver:
		return "game_over"
	}
	return "unknown"
}

// Synth builds a fresh streamer for c at the given linear volume.
// Every call returns a new streamer; they are single use.
func Synth(c Cue, rate beep.SampleRate, volume float64) beep.Streamer {
	var s beep.Streamer
	switch c {
	case CueFire:
		// Flick: short noise burst.
		d := 80 * time.Millisecond
		s = newEnvelope(newOscillator(0, d, WaveNoise, rate), d, 2*time.Millisecond, 60*time.Millisecond, rate)
	case CueShout:
		// Raspberry: falling saw.
		d := 250 * time.Millisecond
		osc := newOscillator(220, d, WaveSaw, rate).withSweep(-400)
		s = newVolume(newEnvelope(osc, d, 10*time.Millisecond, 120*time.Millisecond, rate), 0.6)
	case CueHit:
		d := 60 * time.Millisecond
		s = newEnvelope(newOscillator(660, d, WaveSquare, rate), d, time.Millisecond, 40*time.Millisecond, rate)
		s = newVolume(s, 0.4)
	case CueKill:
		n1 := newOscillator(523.25, 70*time.Millisecond, WaveSquare, rate)
		n2 := newOscillator(783.99, 110*time.Millisecond, WaveSquare, rate)
		s = beep.Seq(
			newEnvelope(n1, 70*time.Millisecond, time.Millisecond, 20*time.Millisecond, rate),
			newEnvelope(n2, 110*time.Millisecond, time.Millisecond, 80*time.Millisecond, rate),
		)
		s = newVolume(s, 0.4)
	case CueHurt:
		d := 150 * time.Millisecond
		thud := newOscillator(90, d, WaveSine, rate).withSweep(-200)
		grit := newOscillator(0, d, WaveNoise, rate)
		s = newEnvelope(beep.Mix(thud, newVolume(grit, 0.3)), d, 2*time.Millisecond, 100*time.Millisecond, rate)
	case CueGameOver:
		s = descend(rate, 392, 330, 262)
	default:
		return nil
	}
	return newVolume(s, volume)
}

// descend plays pure tones one after another, 200ms each.
func descend(rate beep.SampleRate, freqs ...float64) beep.Streamer {
	notes := make([]beep.Streamer, 0, len(freqs))
	for _, f := range freqs {
		tone, err := generators.SineTone(rate, f)
		if err != nil {
			continue
		}
		notes = append(notes, beep.Take(rate.N(200*time.Millisecond), tone))
	}
	return beep.Seq(notes...)
}
