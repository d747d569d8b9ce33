package game

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// BackdropStar is a twinkling fixed star.
type BackdropStar struct {
	X, Y  float64
	Size  float64
	phase float64
	rate  float64
}

// ShootingStar is a streak spawned on an interval and culled off-canvas.
type ShootingStar struct {
	X, Y   float64
	VX, VY float64
	Life   int
}

// Comet is a slow diagonal drifter with a short tail.
type Comet struct {
	X, Y   float64
	VX, VY float64
	Size   float64
}

// Spaceship is the scripted background cameo: it crosses the upper sky and
// occasionally releases a decorative bolt that never interacts with play.
type Spaceship struct {
	X, Y     float64
	VX       float64
	fireTick int
	bolts    []Projectile
}

// Backdrop owns all decorative sky objects behind the action.
type Backdrop struct {
	stars    []BackdropStar
	shooting []ShootingStar
	comets   []Comet
	ship     Spaceship

	frame int
	rng   *rand.Rand
}

// NewBackdrop seeds the star layer and the cameo ship.
func NewBackdrop(cfg Config, rng *rand.Rand) *Backdrop {
	b := &Backdrop{rng: rng}
	for i := 0; i < cfg.BackdropStars; i++ {
		b.stars = append(b.stars, BackdropStar{
			X:     rng.Float64() * float64(cfg.ScreenWidth),
			Y:     rng.Float64() * float64(cfg.ScreenHeight) * 0.7,
			Size:  0.5 + rng.Float64()*1.5,
			phase: rng.Float64() * 2 * math.Pi,
			rate:  0.02 + rng.Float64()*0.06,
		})
	}
	b.ship = Spaceship{X: -60, Y: 60, VX: 0.6}
	return b
}

// Update advances every decorative object one tick.
func (b *Backdrop) Update(cfg Config, gameSpeed float64) {
	b.frame++

	for i := range b.stars {
		b.stars[i].phase += b.stars[i].rate
	}

	if cfg.ShootingStarInterval > 0 && b.frame%cfg.ShootingStarInterval == 0 {
		b.shooting = append(b.shooting, ShootingStar{
			X:    b.rng.Float64() * float64(cfg.ScreenWidth),
			Y:    b.rng.Float64() * float64(cfg.ScreenHeight) * 0.3,
			VX:   4 + b.rng.Float64()*4,
			VY:   2 + b.rng.Float64()*2,
			Life: 60,
		})
	}
	kept := b.shooting[:0]
	for i := range b.shooting {
		s := &b.shooting[i]
		s.X += s.VX
		s.Y += s.VY
		s.Life--
		if s.Life > 0 && s.X < float64(cfg.ScreenWidth)+20 {
			kept = append(kept, *s)
		}
	}
	b.shooting = kept

	// Rare comet.
	if b.rng.Float64() < 0.0008 && len(b.comets) < 2 {
		b.comets = append(b.comets, Comet{
			X:    -20,
			Y:    b.rng.Float64() * float64(cfg.ScreenHeight) * 0.4,
			VX:   0.4 + b.rng.Float64()*0.4,
			VY:   0.15,
			Size: 2 + b.rng.Float64()*2,
		})
	}
	keptC := b.comets[:0]
	for i := range b.comets {
		c := &b.comets[i]
		c.X += c.VX * gameSpeed
		c.Y += c.VY * gameSpeed
		if c.X < float64(cfg.ScreenWidth)+40 {
			keptC = append(keptC, *c)
		}
	}
	b.comets = keptC

	b.updateShip(cfg)
}

func (b *Backdrop) updateShip(cfg Config) {
	s := &b.ship
	s.X += s.VX
	if s.X > float64(cfg.ScreenWidth)+80 {
		// Re-enter from the left after a while, at a fresh altitude.
		s.X = -80 - b.rng.Float64()*400
		s.Y = 40 + b.rng.Float64()*80
	}

	s.fireTick++
	if s.fireTick >= 150 && s.X > 0 && s.X < float64(cfg.ScreenWidth) {
		s.fireTick = 0
		s.bolts = append(s.bolts, *NewEnemyShot(s.X+16, s.Y+10, 0, 2.5))
	}
	keptB := s.bolts[:0]
	for i := range s.bolts {
		p := &s.bolts[i]
		p.Update(cfg, 1.0)
		if p.State != StateDead {
			keptB = append(keptB, *p)
		}
	}
	s.bolts = keptB
}

// Draw renders stars, streaks, comets, and the cameo ship in that order.
func (b *Backdrop) Draw(screen *ebiten.Image) {
	for i := range b.stars {
		s := &b.stars[i]
		twinkle := 0.6 + 0.4*math.Sin(s.phase)
		alpha := uint8(255 * twinkle)
		vector.DrawFilledCircle(screen, float32(s.X), float32(s.Y), float32(s.Size),
			color.NRGBA{R: 255, G: 255, B: 230, A: alpha}, true)
	}

	for i := range b.shooting {
		s := &b.shooting[i]
		tailX := s.X - s.VX*4
		tailY := s.Y - s.VY*4
		vector.StrokeLine(screen, float32(tailX), float32(tailY), float32(s.X), float32(s.Y),
			2, color.NRGBA{R: 255, G: 255, B: 255, A: 200}, true)
	}

	for i := range b.comets {
		c := &b.comets[i]
		vector.StrokeLine(screen, float32(c.X-c.Size*6), float32(c.Y-c.Size*2),
			float32(c.X), float32(c.Y), 1.5,
			color.NRGBA{R: 170, G: 210, B: 255, A: 120}, true)
		vector.DrawFilledCircle(screen, float32(c.X), float32(c.Y), float32(c.Size),
			color.NRGBA{R: 200, G: 230, B: 255, A: 220}, true)
	}

	b.drawShip(screen)
}

func (b *Backdrop) drawShip(screen *ebiten.Image) {
	s := &b.ship
	// Saucer body with a dome.
	vector.DrawFilledCircle(screen, float32(s.X+16), float32(s.Y+8), 14,
		color.NRGBA{R: 70, G: 80, B: 100, A: 255}, true)
	vector.DrawFilledCircle(screen, float32(s.X+16), float32(s.Y+2), 7,
		color.NRGBA{R: 140, G: 200, B: 220, A: 255}, true)
	for i := range s.bolts {
		p := &s.bolts[i]
		vector.DrawFilledRect(screen, float32(p.X), float32(p.Y), float32(p.W), float32(p.H),
			color.NRGBA{R: 120, G: 255, B: 120, A: 180}, true)
	}
}
