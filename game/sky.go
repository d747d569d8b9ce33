package game

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// skyBands is the number of horizontal gradient bands drawn per frame.
const skyBands = 40

// Sky owns the day/night cycle and the random full-screen flash effect.
//
// The cycle is an angle in degrees, advanced by a fixed speed each tick and
// wrapped modulo 360. Invariant: Cycle is always in [0, 360).
type Sky struct {
	Cycle float64

	// FlashTicks counts down while a flash decays.
	FlashTicks int

	// 4-stop palettes: midnight, dawn, noon, dusk. Separate stop sets for
	// the zenith and the horizon give the gradient its depth.
	top     [4]colorful.Color
	horizon [4]colorful.Color

	rng *rand.Rand
}

// NewSky creates the sky starting at midnight.
func NewSky(rng *rand.Rand) *Sky {
	return &Sky{
		top: [4]colorful.Color{
			{R: 0.02, G: 0.02, B: 0.10}, // midnight
			{R: 0.35, G: 0.20, B: 0.35}, // dawn
			{R: 0.25, G: 0.55, B: 0.90}, // noon
			{R: 0.45, G: 0.20, B: 0.25}, // dusk
		},
		horizon: [4]colorful.Color{
			{R: 0.05, G: 0.05, B: 0.18},
			{R: 0.95, G: 0.55, B: 0.30},
			{R: 0.65, G: 0.85, B: 0.98},
			{R: 0.90, G: 0.45, B: 0.20},
		},
		rng: rng,
	}
}

// Update advances the cycle angle and rolls for a flash.
func (s *Sky) Update(cfg Config) {
	s.Cycle = math.Mod(s.Cycle+cfg.DayNightSpeed, 360)

	if s.FlashTicks > 0 {
		s.FlashTicks--
	} else if s.rng.Float64() < cfg.FlashChance {
		s.FlashTicks = cfg.FlashFrames
	}
}

// blendStop interpolates a 4-stop palette at the current cycle angle.
// Each stop covers a 90 degree quadrant.
func (s *Sky) blendStop(stops [4]colorful.Color) colorful.Color {
	seg := s.Cycle / 90.0
	i := int(seg) % 4
	j := (i + 1) % 4
	t := seg - math.Floor(seg)
	return stops[i].BlendRgb(stops[j], t)
}

// TopColor returns the current zenith color.
func (s *Sky) TopColor() color.NRGBA {
	return toNRGBA(s.blendStop(s.top))
}

// HorizonColor returns the current horizon color.
func (s *Sky) HorizonColor() color.NRGBA {
	return toNRGBA(s.blendStop(s.horizon))
}

// Draw paints the gradient as horizontal bands, then the flash overlay.
func (s *Sky) Draw(screen *ebiten.Image, cfg Config) {
	topC := s.blendStop(s.top)
	horC := s.blendStop(s.horizon)

	w := float32(cfg.ScreenWidth)
	bandH := float64(cfg.ScreenHeight) / skyBands
	for i := 0; i < skyBands; i++ {
		t := float64(i) / float64(skyBands-1)
		clr := toNRGBA(topC.BlendRgb(horC, t))
		vector.DrawFilledRect(screen, 0, float32(float64(i)*bandH), w, float32(bandH+1), clr, false)
	}

	if s.FlashTicks > 0 && cfg.FlashFrames > 0 {
		alpha := uint8(200 * float64(s.FlashTicks) / float64(cfg.FlashFrames))
		vector.DrawFilledRect(screen, 0, 0, w, float32(cfg.ScreenHeight),
			color.NRGBA{R: 255, G: 255, B: 255, A: alpha}, false)
	}
}

func toNRGBA(c colorful.Color) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}
