package game

import (
	"image/color"
	"log"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Particle is a short-lived explosion debris fleck.
type Particle struct {
	X, Y     float64
	VX, VY   float64
	Life     int
	maxLife  int
	Size     float64
	Color    color.NRGBA
}

// NewExplosionBurst creates a radial burst of debris particles at x, y.
func NewExplosionBurst(x, y float64, count int, rng *rand.Rand) []Particle {
	burst := make([]Particle, 0, count)
	for i := 0; i < count; i++ {
		angle := rng.Float64() * 2 * math.Pi
		speed := 1 + rng.Float64()*3
		life := 20 + rng.Intn(20)
		burst = append(burst, Particle{
			X:       x,
			Y:       y,
			VX:      math.Cos(angle) * speed,
			VY:      math.Sin(angle) * speed,
			Life:    life,
			maxLife: life,
			Size:    1.5 + rng.Float64()*2.5,
			Color:   color.NRGBA{R: 255, G: uint8(120 + rng.Intn(100)), B: 40, A: 255},
		})
	}
	return burst
}

// Update advances the debris one tick.
func (p *Particle) Update() {
	p.X += p.VX
	p.Y += p.VY
	p.VY += 0.05 // slight gravity
	p.Life--
}

// Draw renders the debris as a fading dot.
func (p *Particle) Draw(screen *ebiten.Image) {
	if p.Life <= 0 {
		return
	}
	clr := p.Color
	clr.A = uint8(255 * float64(p.Life) / float64(p.maxLife))
	vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(p.Size), clr, true)
}

// FireParticle is a rising flame fleck used for enemy damage trails and the
// burning city fires.
type FireParticle struct {
	X, Y    float64
	VX, VY  float64
	Life    int
	maxLife int
	Size    float64
}

// NewFireParticle creates a flame fleck at x, y.
func NewFireParticle(x, y float64, rng *rand.Rand) FireParticle {
	life := 15 + rng.Intn(15)
	return FireParticle{
		X:       x,
		Y:       y,
		VX:      (rng.Float64() - 0.5) * 0.8,
		VY:      -0.5 - rng.Float64()*1.2,
		Life:    life,
		maxLife: life,
		Size:    2 + rng.Float64()*3,
	}
}

// Update advances the flame one tick; it rises and shrinks.
func (f *FireParticle) Update() {
	f.X += f.VX
	f.Y += f.VY
	f.Size *= 0.96
	f.Life--
}

// Draw renders the flame, shifting from yellow to red as it dies.
func (f *FireParticle) Draw(screen *ebiten.Image) {
	if f.Life <= 0 {
		return
	}
	heat := float64(f.Life) / float64(f.maxLife)
	clr := color.NRGBA{
		R: 255,
		G: uint8(80 + 160*heat),
		B: 30,
		A: uint8(200 * heat),
	}
	vector.DrawFilledCircle(screen, float32(f.X), float32(f.Y), float32(f.Size), clr, true)
}

// SmokeParticle is a drifting puff recycled through the ParticlePool.
type SmokeParticle struct {
	X, Y    float64
	VX, VY  float64
	Life    int
	maxLife int
	Size    float64
	Active  bool

	rng *rand.Rand
}

// Reset re-initializes a pooled puff in place at x, y.
func (s *SmokeParticle) Reset(x, y float64) {
	s.X = x
	s.Y = y
	s.VX = (s.rng.Float64() - 0.5) * 0.5
	s.VY = -0.3 - s.rng.Float64()*0.5
	s.Life = 40 + s.rng.Intn(40)
	s.maxLife = s.Life
	s.Size = 3 + s.rng.Float64()*4
	s.Active = true
}

// Update advances the puff one tick; it drifts up, expands, and fades.
// An expired puff deactivates itself for reuse.
func (s *SmokeParticle) Update() {
	if !s.Active {
		return
	}
	s.X += s.VX
	s.Y += s.VY
	s.Size += 0.08
	s.Life--
	if s.Life <= 0 {
		s.Active = false
	}
}

// Draw renders the puff as translucent gray.
func (s *SmokeParticle) Draw(screen *ebiten.Image) {
	if !s.Active {
		return
	}
	alpha := uint8(90 * float64(s.Life) / float64(s.maxLife))
	clr := color.NRGBA{R: 110, G: 110, B: 120, A: alpha}
	vector.DrawFilledCircle(screen, float32(s.X), float32(s.Y), float32(s.Size), clr, true)
}

// ParticlePool recycles smoke particles. Activation scans for an inactive
// slot and resets it in place; when every slot is busy the pool grows lazily,
// up to twice its initial size. Beyond that cap activation only logs.
type ParticlePool struct {
	particles []*SmokeParticle
	maxSize   int
	rng       *rand.Rand
}

// NewParticlePool creates a pool with the given initial size.
func NewParticlePool(size int, rng *rand.Rand) *ParticlePool {
	pool := &ParticlePool{
		particles: make([]*SmokeParticle, 0, size),
		maxSize:   size * 2,
		rng:       rng,
	}
	for i := 0; i < size; i++ {
		pool.particles = append(pool.particles, &SmokeParticle{rng: rng})
	}
	return pool
}

// Activate hands out a puff at x, y: a recycled inactive one when available,
// a freshly allocated one while the pool is below its cap, otherwise nothing.
func (pool *ParticlePool) Activate(x, y float64) *SmokeParticle {
	for _, p := range pool.particles {
		if !p.Active {
			p.Reset(x, y)
			return p
		}
	}
	if len(pool.particles) < pool.maxSize {
		p := &SmokeParticle{rng: pool.rng}
		p.Reset(x, y)
		pool.particles = append(pool.particles, p)
		return p
	}
	log.Printf("particle pool exhausted (size %d)", pool.maxSize)
	return nil
}

// Update advances every active puff.
func (pool *ParticlePool) Update() {
	for _, p := range pool.particles {
		p.Update()
	}
}

// Draw renders every active puff.
func (pool *ParticlePool) Draw(screen *ebiten.Image) {
	for _, p := range pool.particles {
		p.Draw(screen)
	}
}

// ActiveCount returns the number of live puffs, used by tests and the HUD
// debug line.
func (pool *ParticlePool) ActiveCount() int {
	n := 0
	for _, p := range pool.particles {
		if p.Active {
			n++
		}
	}
	return n
}

// Size returns the current pool length.
func (pool *ParticlePool) Size() int {
	return len(pool.particles)
}
