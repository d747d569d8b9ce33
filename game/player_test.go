package game

import "testing"

func TestPlayerStaysOnCanvas(t *testing.T) {
	cfg := DefaultConfig()
	p := NewPlayer(cfg)

	for i := 0; i < 500; i++ {
		p.Update(InputState{Left: true, Up: true}, cfg)
	}
	if p.X != 0 || p.Y != 0 {
		t.Errorf("player at (%v, %v), want clamped to (0, 0)", p.X, p.Y)
	}

	for i := 0; i < 500; i++ {
		p.Update(InputState{Right: true, Down: true}, cfg)
	}
	wantX := float64(cfg.ScreenWidth) - p.W
	wantY := float64(cfg.ScreenHeight) - p.H
	if p.X != wantX || p.Y != wantY {
		t.Errorf("player at (%v, %v), want clamped to (%v, %v)", p.X, p.Y, wantX, wantY)
	}
}

func TestPlayerHitGracePeriod(t *testing.T) {
	cfg := DefaultConfig()
	p := NewPlayer(cfg)

	if !p.Hit(cfg) {
		t.Fatal("first hit rejected")
	}
	if p.Hit(cfg) {
		t.Error("hit landed during the grace period")
	}

	for i := 0; i < cfg.InvulnerableFrames; i++ {
		p.Update(InputState{}, cfg)
	}
	if !p.Hit(cfg) {
		t.Error("hit rejected after the grace period expired")
	}
}

func TestPlayerExplosionRunsToCompletion(t *testing.T) {
	cfg := DefaultConfig()
	p := NewPlayer(cfg)

	p.StartExplosion()
	if p.State != StateExploding {
		t.Fatalf("state = %v, want exploding", p.State)
	}

	// No movement or firing while dying.
	x := p.X
	p.Update(InputState{Right: true}, cfg)
	if p.X != x {
		t.Error("exploding player moved")
	}
	if _, _, ok := p.TryFire(cfg); ok {
		t.Error("exploding player fired")
	}

	for i := 0; i < cfg.ExplosionFrames; i++ {
		p.Update(InputState{}, cfg)
	}
	if p.State != StateDead {
		t.Errorf("state after explosion = %v, want dead", p.State)
	}
}

func TestPlayerFireCooldown(t *testing.T) {
	cfg := DefaultConfig()
	p := NewPlayer(cfg)

	if _, _, ok := p.TryFire(cfg); !ok {
		t.Fatal("first shot rejected")
	}
	if _, _, ok := p.TryFire(cfg); ok {
		t.Error("second shot ignored the cooldown")
	}

	for i := 0; i < cfg.FireCooldown; i++ {
		p.Update(InputState{}, cfg)
	}
	if _, _, ok := p.TryFire(cfg); !ok {
		t.Error("shot rejected after the cooldown expired")
	}
}
