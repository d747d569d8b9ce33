package audio

import "testing"

func TestDisabledEngineIsInert(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Enabled = false

	e := NewEngine(cfg)
	if e.Enabled() {
		t.Fatal("engine enabled despite config")
	}

	// Every effect must be a safe no-op.
	for st := SoundType(0); st < soundTypeCount; st++ {
		e.Play(st)
	}
	e.Play(SoundType(-1))
	e.Play(soundTypeCount)
}

func TestSynthesizeProducesBoundedWaveforms(t *testing.T) {
	tests := []struct {
		name string
		st   SoundType
	}{
		{"Laser", SoundLaser},
		{"Hit", SoundHit},
		{"Explosion", SoundExplosion},
		{"Game over", SoundGameOver},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			samples := synthesize(tt.st, 44100)
			if len(samples) == 0 {
				t.Fatal("empty waveform")
			}
			for i, v := range samples {
				if v < -1.5 || v > 1.5 {
					t.Fatalf("sample %d out of range: %v", i, v)
				}
			}
			// Effects must fade toward silence.
			if last := samples[len(samples)-1]; last > 0.2 || last < -0.2 {
				t.Errorf("waveform does not decay: final sample %v", last)
			}
		})
	}
}

func TestSynthesizeUnknownTypeIsEmpty(t *testing.T) {
	if samples := synthesize(soundTypeCount, 44100); samples != nil {
		t.Errorf("unknown type produced %d samples", len(samples))
	}
}
