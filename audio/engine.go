// Package audio synthesizes the game's sound effects at startup and plays
// them through the system mixer. There are no audio assets: every effect is
// generated from a waveform recipe and cached as a PCM buffer.
package audio

import (
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"
)

// SoundType selects one of the synthesized effects.
type SoundType int

const (
	SoundLaser SoundType = iota
	SoundHit
	SoundExplosion
	SoundGameOver
	soundTypeCount
)

// Engine owns the speaker and the pre-generated effect buffers. A disabled
// engine (config or a failed speaker init) turns every Play into a no-op so
// the game keeps running silently.
type Engine struct {
	cfg      Config
	format   beep.Format
	buffers  [soundTypeCount]*beep.Buffer
	disabled bool
}

// NewEngine initializes the speaker and synthesizes the effect set.
func NewEngine(cfg Config) *Engine {
	e := &Engine{cfg: cfg}

	if !cfg.Enabled {
		e.disabled = true
		return e
	}

	sr := beep.SampleRate(cfg.SampleRate)
	e.format = beep.Format{SampleRate: sr, NumChannels: 2, Precision: 2}

	if err := speaker.Init(sr, sr.N(time.Second/10)); err != nil {
		log.Printf("audio unavailable: %v", errors.Wrap(err, "speaker init"))
		e.disabled = true
		return e
	}

	for st := SoundType(0); st < soundTypeCount; st++ {
		e.buffers[st] = e.render(st)
	}
	return e
}

// Enabled reports whether effects will actually play.
func (e *Engine) Enabled() bool {
	return !e.disabled
}

// Play queues one effect. Safe to call from the game loop every tick.
func (e *Engine) Play(st SoundType) {
	if e.disabled || st < 0 || st >= soundTypeCount {
		return
	}
	buf := e.buffers[st]
	if buf == nil {
		return
	}
	speaker.Play(buf.Streamer(0, buf.Len()))
}

// render synthesizes one effect into a cached buffer, scaled by the master
// volume.
func (e *Engine) render(st SoundType) *beep.Buffer {
	samples := synthesize(st, e.cfg.SampleRate)
	vol := e.cfg.MasterVolume

	buf := beep.NewBuffer(e.format)
	pos := 0
	buf.Append(beep.StreamerFunc(func(out [][2]float64) (int, bool) {
		if pos >= len(samples) {
			return 0, false
		}
		n := 0
		for i := range out {
			if pos >= len(samples) {
				break
			}
			v := samples[pos] * vol
			out[i][0] = v
			out[i][1] = v
			pos++
			n++
		}
		return n, true
	}))
	return buf
}

// synthesize produces the mono waveform for one effect.
func synthesize(st SoundType, sampleRate int) []float64 {
	sr := float64(sampleRate)
	rng := rand.New(rand.NewSource(int64(st) + 7))

	switch st {
	case SoundLaser:
		// Descending square sweep.
		n := int(sr * 0.12)
		out := make([]float64, n)
		for i := range out {
			t := float64(i) / float64(n)
			freq := 880 - 660*t
			phase := math.Mod(float64(i)*freq/sr, 1)
			v := -0.6
			if phase < 0.5 {
				v = 0.6
			}
			out[i] = v * (1 - t)
		}
		return out

	case SoundHit:
		// Short noise burst.
		n := int(sr * 0.1)
		out := make([]float64, n)
		for i := range out {
			t := float64(i) / float64(n)
			out[i] = (rng.Float64()*2 - 1) * 0.7 * (1 - t) * (1 - t)
		}
		return out

	case SoundExplosion:
		// Long rumble: smoothed noise with a slow decay.
		n := int(sr * 0.5)
		out := make([]float64, n)
		last := 0.0
		for i := range out {
			t := float64(i) / float64(n)
			last += (rng.Float64()*2 - 1) * 0.4
			last *= 0.92
			out[i] = last * (1 - t)
		}
		return out

	case SoundGameOver:
		// Three descending sine notes.
		notes := []float64{392, 311, 233}
		noteLen := int(sr * 0.25)
		out := make([]float64, 0, noteLen*len(notes))
		for _, freq := range notes {
			for i := 0; i < noteLen; i++ {
				t := float64(i) / float64(noteLen)
				v := math.Sin(2*math.Pi*freq*float64(i)/sr) * 0.5 * (1 - t*0.7)
				out = append(out, v)
			}
		}
		return out
	}

	return nil
}
