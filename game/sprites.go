package game

import (
	"github.com/fogleman/gg"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"
)

// Atlas holds the sprite frames. The original shipped three pre-drawn sheets
// (player, enemy, projectile); here the equivalent frames are rasterized at
// startup instead of loaded from disk.
type Atlas struct {
	Player    [2]*ebiten.Image
	Enemy     [2]*ebiten.Image
	Shot      *ebiten.Image
	EnemyShot [2]*ebiten.Image
}

// BuildAtlas rasterizes every sprite frame. On error the caller keeps a nil
// atlas and the renderer falls back to flat shapes.
func BuildAtlas() (*Atlas, error) {
	a := &Atlas{}

	for i := 0; i < 2; i++ {
		img, err := renderSprite(48, 48, func(dc *gg.Context) {
			drawPlayerShip(dc, i == 1)
		})
		if err != nil {
			return nil, errors.Wrap(err, "player sprite")
		}
		a.Player[i] = img
	}

	for i := 0; i < 2; i++ {
		img, err := renderSprite(40, 40, func(dc *gg.Context) {
			drawEnemyShip(dc, i == 1)
		})
		if err != nil {
			return nil, errors.Wrap(err, "enemy sprite")
		}
		a.Enemy[i] = img
	}

	shot, err := renderSprite(6, 14, drawPlayerBolt)
	if err != nil {
		return nil, errors.Wrap(err, "shot sprite")
	}
	a.Shot = shot

	for i := 0; i < 2; i++ {
		img, err := renderSprite(8, 14, func(dc *gg.Context) {
			drawEnemyBolt(dc, i == 1)
		})
		if err != nil {
			return nil, errors.Wrap(err, "enemy shot sprite")
		}
		a.EnemyShot[i] = img
	}

	return a, nil
}

// renderSprite rasterizes one frame through gg and converts it for the GPU.
func renderSprite(w, h int, draw func(*gg.Context)) (*ebiten.Image, error) {
	dc := gg.NewContext(w, h)
	draw(dc)
	img := dc.Image()
	if img == nil {
		return nil, errors.New("empty raster")
	}
	return ebiten.NewImageFromImage(img), nil
}

// drawPlayerShip draws Vela's ship: a teal delta hull with a cockpit and a
// thruster flame that alternates between the two frames.
func drawPlayerShip(dc *gg.Context, altFrame bool) {
	// Hull.
	dc.MoveTo(24, 2)
	dc.LineTo(44, 40)
	dc.LineTo(24, 32)
	dc.LineTo(4, 40)
	dc.ClosePath()
	dc.SetRGBA255(60, 190, 180, 255)
	dc.Fill()

	// Cockpit.
	dc.DrawCircle(24, 18, 5)
	dc.SetRGBA255(220, 245, 255, 255)
	dc.Fill()

	// Thruster flame, long or short depending on the frame.
	flame := 8.0
	if altFrame {
		flame = 13.0
	}
	dc.MoveTo(20, 34)
	dc.LineTo(24, 34+flame)
	dc.LineTo(28, 34)
	dc.ClosePath()
	dc.SetRGBA255(255, 170, 40, 230)
	dc.Fill()
}

// drawEnemyShip draws a raider with wings up or down for the flap animation.
func drawEnemyShip(dc *gg.Context, wingsUp bool) {
	wingY := 30.0
	if wingsUp {
		wingY = 22.0
	}

	// Wings.
	dc.MoveTo(2, wingY)
	dc.LineTo(20, 12)
	dc.LineTo(38, wingY)
	dc.LineTo(20, 24)
	dc.ClosePath()
	dc.SetRGBA255(150, 50, 60, 255)
	dc.Fill()

	// Fuselage.
	dc.DrawEllipse(20, 20, 7, 12)
	dc.SetRGBA255(190, 70, 80, 255)
	dc.Fill()

	// Eye.
	dc.DrawCircle(20, 16, 3)
	dc.SetRGBA255(255, 230, 90, 255)
	dc.Fill()
}

func drawPlayerBolt(dc *gg.Context) {
	dc.DrawRoundedRectangle(0, 0, 6, 14, 3)
	dc.SetRGBA255(120, 230, 255, 255)
	dc.Fill()
	dc.DrawRectangle(2, 2, 2, 10)
	dc.SetRGBA255(240, 255, 255, 255)
	dc.Fill()
}

func drawEnemyBolt(dc *gg.Context, altFrame bool) {
	r := 3.5
	if altFrame {
		r = 2.5
	}
	dc.DrawCircle(4, 4, r)
	dc.SetRGBA255(255, 90, 60, 255)
	dc.Fill()
	dc.DrawRectangle(3, 6, 2, 8)
	dc.SetRGBA255(255, 160, 60, 200)
	dc.Fill()
}
