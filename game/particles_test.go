package game

import (
	"math/rand"
	"testing"
)

func newTestPool(size int) *ParticlePool {
	return NewParticlePool(size, rand.New(rand.NewSource(1)))
}

func TestPoolActivateReusesInactiveSlot(t *testing.T) {
	pool := newTestPool(4)

	p := pool.Activate(10, 20)
	if p == nil {
		t.Fatal("activation returned nil with free slots available")
	}
	if !p.Active {
		t.Error("activated particle is not active")
	}
	if p.X != 10 || p.Y != 20 {
		t.Errorf("particle at (%v, %v), want (10, 20)", p.X, p.Y)
	}
	if pool.Size() != 4 {
		t.Errorf("pool grew to %d on reuse, want 4", pool.Size())
	}
}

func TestPoolGrowsLazilyUpToTwiceInitialSize(t *testing.T) {
	pool := newTestPool(2)

	// Occupy the two pre-allocated slots.
	pool.Activate(0, 0)
	pool.Activate(0, 0)
	if pool.Size() != 2 {
		t.Fatalf("pool size = %d before growth, want 2", pool.Size())
	}

	// Next activations allocate, up to the 2x cap.
	if pool.Activate(0, 0) == nil {
		t.Fatal("pool refused to grow below its cap")
	}
	if pool.Activate(0, 0) == nil {
		t.Fatal("pool refused to grow below its cap")
	}
	if pool.Size() != 4 {
		t.Errorf("pool size = %d, want 4", pool.Size())
	}

	// At the cap with everything active: no allocation, nil result.
	if p := pool.Activate(0, 0); p != nil {
		t.Error("pool allocated beyond twice its initial size")
	}
	if pool.Size() != 4 {
		t.Errorf("pool size = %d after exhaustion, want 4", pool.Size())
	}
}

func TestPoolRecyclesExpiredParticles(t *testing.T) {
	pool := newTestPool(1)

	first := pool.Activate(5, 5)
	if first == nil {
		t.Fatal("activation failed")
	}

	// Run the puff to the end of its life.
	for first.Active {
		first.Update()
	}

	second := pool.Activate(50, 50)
	if second != first {
		t.Error("pool did not reuse the expired particle in place")
	}
	if second.X != 50 || second.Y != 50 {
		t.Errorf("recycled particle at (%v, %v), want (50, 50)", second.X, second.Y)
	}
}

func TestPoolActiveCount(t *testing.T) {
	pool := newTestPool(3)
	if pool.ActiveCount() != 0 {
		t.Fatalf("fresh pool reports %d active", pool.ActiveCount())
	}
	pool.Activate(0, 0)
	pool.Activate(0, 0)
	if pool.ActiveCount() != 2 {
		t.Errorf("ActiveCount = %d, want 2", pool.ActiveCount())
	}
}

func TestFireParticleExpires(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	f := NewFireParticle(100, 100, rng)

	startY := f.Y
	for i := 0; i < 100 && f.Life > 0; i++ {
		f.Update()
	}
	if f.Life > 0 {
		t.Error("fire particle never expired")
	}
	if f.Y >= startY {
		t.Error("fire particle did not rise")
	}
}

func TestExplosionBurstCount(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	burst := NewExplosionBurst(0, 0, 14, rng)
	if len(burst) != 14 {
		t.Errorf("burst size = %d, want 14", len(burst))
	}
	for i := range burst {
		if burst[i].Life <= 0 {
			t.Errorf("particle %d born dead", i)
		}
	}
}
