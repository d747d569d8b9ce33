package game

import (
	"image/color"
	"math/rand"

	"github.com/fogleman/gg"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/pkg/errors"
)

// firePoint is a fixed burn site on the skyline.
type firePoint struct {
	x, y float64
}

// City draws the silhouette along the bottom of the canvas and keeps the
// burning-building effect alive: flame flecks at fixed fire points and smoke
// puffs recycled through the shared particle pool.
type City struct {
	silhouette *ebiten.Image
	baseY      float64

	fires []firePoint
	flame []FireParticle
	smoke *ParticlePool

	frame int
	rng   *rand.Rand
}

// NewCity lays out the skyline geometry and the particle pool. The raster
// itself is built later by LoadAssets; until then Draw falls back to flat
// rectangles.
func NewCity(cfg Config, rng *rand.Rand) *City {
	c := &City{
		baseY: float64(cfg.ScreenHeight) - 70,
		smoke: NewParticlePool(cfg.SmokePoolSize, rng),
		rng:   rng,
	}
	// Three burn sites spread across the skyline.
	for _, fx := range []float64{0.18, 0.52, 0.83} {
		c.fires = append(c.fires, firePoint{
			x: fx * float64(cfg.ScreenWidth),
			y: c.baseY + 8 + rng.Float64()*20,
		})
	}
	return c
}

// BuildSilhouette rasterizes the skyline strip.
func (c *City) BuildSilhouette(cfg Config) error {
	w := cfg.ScreenWidth
	h := 70
	dc := gg.NewContext(w, h)

	// Buildings of random widths and heights with lit windows.
	x := 0.0
	for x < float64(w) {
		bw := 30 + c.rng.Float64()*50
		bh := 20 + c.rng.Float64()*45
		dc.DrawRectangle(x, float64(h)-bh, bw, bh)
		dc.SetRGBA255(18, 18, 30, 255)
		dc.Fill()

		for wy := float64(h) - bh + 6; wy < float64(h)-6; wy += 10 {
			for wx := x + 5; wx < x+bw-6; wx += 9 {
				if c.rng.Float64() < 0.35 {
					dc.DrawRectangle(wx, wy, 4, 5)
					dc.SetRGBA255(255, 220, 120, 220)
					dc.Fill()
				}
			}
		}
		x += bw + 2
	}

	img := dc.Image()
	if img == nil {
		return errors.New("empty skyline raster")
	}
	c.silhouette = ebiten.NewImageFromImage(img)
	return nil
}

// Update feeds the fires and advances both particle families, compacting
// dead flames in place.
func (c *City) Update() {
	c.frame++

	for _, f := range c.fires {
		if c.frame%3 == 0 {
			jx := f.x + (c.rng.Float64()-0.5)*10
			c.flame = append(c.flame, NewFireParticle(jx, f.y, c.rng))
		}
		if c.frame%12 == 0 {
			c.smoke.Activate(f.x+(c.rng.Float64()-0.5)*6, f.y-6)
		}
	}

	kept := c.flame[:0]
	for i := range c.flame {
		c.flame[i].Update()
		if c.flame[i].Life > 0 {
			kept = append(kept, c.flame[i])
		}
	}
	c.flame = kept

	c.smoke.Update()
}

// Draw renders the skyline, then smoke behind the flames.
func (c *City) Draw(screen *ebiten.Image, cfg Config) {
	if c.silhouette != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(0, c.baseY)
		screen.DrawImage(c.silhouette, op)
	} else {
		// Raster failed at startup; a flat strip keeps the layout intact.
		vector.DrawFilledRect(screen, 0, float32(c.baseY),
			float32(cfg.ScreenWidth), 70, color.NRGBA{R: 18, G: 18, B: 30, A: 255}, false)
	}

	c.smoke.Draw(screen)
	for i := range c.flame {
		c.flame[i].Draw(screen)
	}
}

// FlameCount returns the live flame fleck count, used by tests.
func (c *City) FlameCount() int {
	return len(c.flame)
}

// SmokePool exposes the pool for tests.
func (c *City) SmokePool() *ParticlePool {
	return c.smoke
}
