package game

import (
	"math/rand"
	"testing"
)

func TestDayNightCycleStaysInRange(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DayNightSpeed = 7.3 // awkward step to exercise the wrap
	cfg.FlashChance = 0

	sky := NewSky(rand.New(rand.NewSource(1)))
	for i := 0; i < 1000; i++ {
		sky.Update(cfg)
		if sky.Cycle < 0 || sky.Cycle >= 360 {
			t.Fatalf("cycle = %v after %d updates, want [0, 360)", sky.Cycle, i+1)
		}
	}
}

func TestDayNightCycleWrapsAtBoundary(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DayNightSpeed = 10
	cfg.FlashChance = 0

	sky := NewSky(rand.New(rand.NewSource(1)))
	sky.Cycle = 355

	sky.Update(cfg)
	if sky.Cycle != 5 {
		t.Errorf("cycle = %v after wrap, want 5", sky.Cycle)
	}
}

func TestSkyColorsChangeAcrossTheCycle(t *testing.T) {
	sky := NewSky(rand.New(rand.NewSource(1)))

	sky.Cycle = 0
	midnight := sky.TopColor()
	sky.Cycle = 180
	noon := sky.TopColor()

	if midnight == noon {
		t.Error("midnight and noon zenith colors are identical")
	}
}

func TestSkyFlashDecays(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FlashChance = 1.0 // guaranteed trigger
	cfg.FlashFrames = 5

	sky := NewSky(rand.New(rand.NewSource(1)))
	sky.Update(cfg)
	if sky.FlashTicks != cfg.FlashFrames {
		t.Fatalf("FlashTicks = %d after trigger, want %d", sky.FlashTicks, cfg.FlashFrames)
	}

	// While decaying, no re-trigger happens even at chance 1.
	sky.Update(cfg)
	if sky.FlashTicks != cfg.FlashFrames-1 {
		t.Errorf("FlashTicks = %d, want %d", sky.FlashTicks, cfg.FlashFrames-1)
	}
}
