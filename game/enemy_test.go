package game

import (
	"math/rand"
	"testing"
)

func newTestEnemy(pattern MovementPattern) *Enemy {
	return NewEnemy(400, pattern, rand.New(rand.NewSource(1)))
}

func TestEnemyTwoHitPolicy(t *testing.T) {
	e := newTestEnemy(PatternSine)

	if e.State != StateActive {
		t.Fatalf("new enemy state = %v, want active", e.State)
	}

	e.Hit()
	if e.State != StateAggressive {
		t.Errorf("state after first hit = %v, want aggressive", e.State)
	}
	if e.Hits != 1 {
		t.Errorf("Hits = %d, want 1", e.Hits)
	}

	e.Hit()
	if e.State != StateExploding {
		t.Errorf("state after second hit = %v, want exploding", e.State)
	}
	if !e.KilledByShot {
		t.Error("second hit did not mark the kill for scoring")
	}

	// Further hits while exploding change nothing.
	e.Hit()
	if e.Hits != 2 {
		t.Errorf("Hits after exploding = %d, want 2", e.Hits)
	}
}

func TestEnemyExplosionRemovalTiming(t *testing.T) {
	cfg := DefaultConfig()
	e := newTestEnemy(PatternBob)
	e.Hit()
	e.Hit()

	for i := 0; i < cfg.ExplosionFrames-1; i++ {
		e.Update(cfg, 1.0, 0, 0)
		if e.State == StateDead {
			t.Fatalf("enemy died at explosion tick %d, before frame count %d", i+1, cfg.ExplosionFrames)
		}
	}

	e.Update(cfg, 1.0, 0, 0)
	if e.State != StateDead {
		t.Errorf("state after full explosion = %v, want dead", e.State)
	}
}

func TestEnemyCrashExplosionAwardsNothing(t *testing.T) {
	e := newTestEnemy(PatternDive)
	e.StartCrashExplosion()

	if e.State != StateExploding {
		t.Fatalf("state = %v, want exploding", e.State)
	}
	if e.KilledByShot {
		t.Error("crash explosion must not be marked for scoring")
	}
}

func TestEnemyOffScreenCull(t *testing.T) {
	cfg := DefaultConfig()
	e := newTestEnemy(PatternSine)
	e.Y = float64(cfg.ScreenHeight) + 100

	e.Update(cfg, 1.0, 0, 0)
	if e.State != StateDead {
		t.Errorf("off-screen enemy state = %v, want dead", e.State)
	}
}

func TestEnemyMovementPatterns(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name    string
		pattern MovementPattern
	}{
		{"Sine descends", PatternSine},
		{"Cosine descends", PatternCosine},
		{"Bob descends slowly", PatternBob},
		{"Dive descends", PatternDive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEnemy(tt.pattern)
			startY := e.Y
			for i := 0; i < 200; i++ {
				e.Update(cfg, 1.0, 100, 500)
			}
			if e.Y <= startY {
				t.Errorf("pattern %v did not descend: y %v -> %v", tt.pattern, startY, e.Y)
			}
		})
	}
}

func TestEnemyDiveSteersTowardPlayer(t *testing.T) {
	cfg := DefaultConfig()
	e := newTestEnemy(PatternDive)
	e.X = 600

	for i := 0; i < 120; i++ {
		e.Update(cfg, 1.0, 100, 500)
	}
	if e.X >= 600 {
		t.Errorf("dive enemy did not move toward the player: x = %v", e.X)
	}
}

func TestAggressiveEnemyReloadsFaster(t *testing.T) {
	slow := newTestEnemy(PatternSine)
	fast := newTestEnemy(PatternSine)
	fast.Hit()

	slow.fireCooldown = 0
	fast.fireCooldown = 0
	if _, _, ok := slow.TryFire(); !ok {
		t.Fatal("active enemy with zero cooldown did not fire")
	}
	if _, _, ok := fast.TryFire(); !ok {
		t.Fatal("aggressive enemy with zero cooldown did not fire")
	}

	// Both rngs are seeded identically, so the only difference is the
	// aggressive halving.
	if fast.fireCooldown >= slow.fireCooldown {
		t.Errorf("aggressive cooldown %d not shorter than %d", fast.fireCooldown, slow.fireCooldown)
	}
}
