package audio

import (
	"os"
	"strconv"
)

// Config controls the effect engine.
type Config struct {
	// Enabled turns the whole engine on or off.
	Enabled bool

	// MasterVolume scales every effect, 0.0 to 1.0.
	MasterVolume float64

	// SampleRate in Hz.
	SampleRate int
}

// DefaultConfig returns the standard audio settings.
func DefaultConfig() Config {
	return Config{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   44100,
	}
}

// LoadConfig reads the defaults with environment variable overrides.
// Volume values are clamped to [0, 1].
func LoadConfig() Config {
	cfg := DefaultConfig()

	if enabled := os.Getenv("LUMARA_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Master volume is given as 0-100.
	if volume := os.Getenv("LUMARA_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = float64(val) / 100.0
			if cfg.MasterVolume < 0 {
				cfg.MasterVolume = 0
			}
			if cfg.MasterVolume > 1 {
				cfg.MasterVolume = 1
			}
		}
	}

	if sampleRate := os.Getenv("LUMARA_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}
