package game

import "testing"

func TestDifficultyRampTriggersOncePerThreshold(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BaseGameSpeed = 1.0
	cfg.SpeedIncrement = 0.2
	cfg.DifficultyThreshold = 50
	cfg.ThresholdStep = 50

	s := NewState(cfg)

	s.Score = 49
	if s.ApplyDifficultyRamp(cfg) {
		t.Fatal("ramp fired below the threshold")
	}

	s.Score = 50
	if !s.ApplyDifficultyRamp(cfg) {
		t.Fatal("ramp did not fire at the threshold")
	}
	if s.GameSpeed != 1.2 {
		t.Errorf("GameSpeed = %v, want 1.2", s.GameSpeed)
	}
	if s.NextThreshold != 100 {
		t.Errorf("NextThreshold = %d, want 100", s.NextThreshold)
	}

	// Re-applying at the same score must not fire again.
	if s.ApplyDifficultyRamp(cfg) {
		t.Error("ramp fired twice for the same threshold")
	}
	if s.GameSpeed != 1.2 {
		t.Errorf("GameSpeed after repeat = %v, want 1.2", s.GameSpeed)
	}
}

func TestDifficultyRampCatchesUpAcrossSkippedThresholds(t *testing.T) {
	cfg := DefaultConfig()
	s := NewState(cfg)

	// A large score jump crosses two thresholds at once.
	s.Score = cfg.DifficultyThreshold + cfg.ThresholdStep
	s.ApplyDifficultyRamp(cfg)

	want := cfg.BaseGameSpeed + 2*cfg.SpeedIncrement
	if s.GameSpeed != want {
		t.Errorf("GameSpeed = %v, want %v", s.GameSpeed, want)
	}
	if s.NextThreshold != cfg.DifficultyThreshold+2*cfg.ThresholdStep {
		t.Errorf("NextThreshold = %d", s.NextThreshold)
	}
}

func TestStateReset(t *testing.T) {
	cfg := DefaultConfig()
	s := NewState(cfg)

	s.Mode = ModeGameOver
	s.Score = 300
	s.Lives = 0
	s.Frame = 9999
	s.GameSpeed = 3.0
	s.NextThreshold = 400

	s.Reset(cfg)

	if s.Mode != ModeTitle {
		t.Errorf("Mode = %v, want ModeTitle", s.Mode)
	}
	if s.Score != 0 || s.Frame != 0 {
		t.Errorf("counters not zeroed: score=%d frame=%d", s.Score, s.Frame)
	}
	if s.Lives != cfg.InitialLives {
		t.Errorf("Lives = %d, want %d", s.Lives, cfg.InitialLives)
	}
	if s.GameSpeed != cfg.BaseGameSpeed {
		t.Errorf("GameSpeed = %v, want %v", s.GameSpeed, cfg.BaseGameSpeed)
	}
	if s.NextThreshold != cfg.DifficultyThreshold {
		t.Errorf("NextThreshold = %d, want %d", s.NextThreshold, cfg.DifficultyThreshold)
	}
}
