package audio

import "testing"

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if !cfg.Enabled {
		t.Error("audio disabled by default")
	}
	if cfg.MasterVolume != 0.5 {
		t.Errorf("MasterVolume = %v, want 0.5", cfg.MasterVolume)
	}
	if cfg.SampleRate != 44100 {
		t.Errorf("SampleRate = %d, want 44100", cfg.SampleRate)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("LUMARA_AUDIO_ENABLED", "false")
	t.Setenv("LUMARA_MASTER_VOLUME", "80")
	t.Setenv("LUMARA_SAMPLE_RATE", "48000")

	cfg := LoadConfig()
	if cfg.Enabled {
		t.Error("Enabled = true, want false")
	}
	if cfg.MasterVolume != 0.8 {
		t.Errorf("MasterVolume = %v, want 0.8", cfg.MasterVolume)
	}
	if cfg.SampleRate != 48000 {
		t.Errorf("SampleRate = %d, want 48000", cfg.SampleRate)
	}
}

func TestLoadConfigClampsVolume(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  float64
	}{
		{"Over range", "250", 1.0},
		{"Under range", "-10", 0.0},
		{"Zero", "0", 0.0},
		{"Full", "100", 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("LUMARA_MASTER_VOLUME", tt.value)
			if cfg := LoadConfig(); cfg.MasterVolume != tt.want {
				t.Errorf("MasterVolume = %v, want %v", cfg.MasterVolume, tt.want)
			}
		})
	}
}

func TestLoadConfigIgnoresGarbage(t *testing.T) {
	t.Setenv("LUMARA_AUDIO_ENABLED", "maybe")
	t.Setenv("LUMARA_MASTER_VOLUME", "loud")
	t.Setenv("LUMARA_SAMPLE_RATE", "-44100")

	cfg := LoadConfig()
	if cfg != DefaultConfig() {
		t.Errorf("config = %+v, want defaults", cfg)
	}
}
