package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// HUD renders the score/lives overlay and the title, pause, and game-over
// screens. With no loaded faces (font init failed) all text is skipped; the
// simulation stays playable.
type HUD struct {
	face    font.Face
	bigFace font.Face
}

// NewHUD parses the bundled typeface at two sizes.
func NewHUD() (*HUD, error) {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, errors.Wrap(err, "parse typeface")
	}

	face, err := opentype.NewFace(tt, &opentype.FaceOptions{Size: 18, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, errors.Wrap(err, "hud face")
	}
	bigFace, err := opentype.NewFace(tt, &opentype.FaceOptions{Size: 42, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, errors.Wrap(err, "title face")
	}

	return &HUD{face: face, bigFace: bigFace}, nil
}

var (
	hudColor   = color.NRGBA{R: 240, G: 240, B: 255, A: 255}
	titleColor = color.NRGBA{R: 120, G: 230, B: 220, A: 255}
)

// DrawHUD draws the in-round score and lives counters.
func (h *HUD) DrawHUD(screen *ebiten.Image, s *State) {
	if h == nil || h.face == nil {
		return
	}
	text.Draw(screen, fmt.Sprintf("Score: %d", s.Score), h.face, 12, 26, hudColor)
	text.Draw(screen, fmt.Sprintf("Lives: %d", s.Lives), h.face, 12, 50, hudColor)
}

// DrawTitle draws the attract-screen title block.
func (h *HUD) DrawTitle(screen *ebiten.Image, cfg Config) {
	if h == nil || h.face == nil {
		return
	}
	cx := cfg.ScreenWidth / 2
	h.centered(screen, "GUARDIANS OF LUMARA", h.bigFace, cx, cfg.ScreenHeight/2-60, titleColor)
	h.centered(screen, "Vela's Voyage", h.face, cx, cfg.ScreenHeight/2-20, hudColor)
	h.centered(screen, "Press Enter or tap to play", h.face, cx, cfg.ScreenHeight/2+40, hudColor)
}

// DrawPaused draws the pause overlay.
func (h *HUD) DrawPaused(screen *ebiten.Image, cfg Config) {
	if h == nil || h.face == nil {
		return
	}
	h.centered(screen, "PAUSED", h.bigFace, cfg.ScreenWidth/2, cfg.ScreenHeight/2, hudColor)
}

// DrawGameOver draws the end screen with the final score.
func (h *HUD) DrawGameOver(screen *ebiten.Image, cfg Config, score int) {
	if h == nil || h.face == nil {
		return
	}
	cx := cfg.ScreenWidth / 2
	h.centered(screen, "GAME OVER", h.bigFace, cx, cfg.ScreenHeight/2-30, titleColor)
	h.centered(screen, fmt.Sprintf("Score: %d", score), h.face, cx, cfg.ScreenHeight/2+10, hudColor)
	h.centered(screen, "Press Enter to restart", h.face, cx, cfg.ScreenHeight/2+50, hudColor)
}

func (h *HUD) centered(screen *ebiten.Image, s string, face font.Face, cx, y int, clr color.Color) {
	bounds := text.BoundString(face, s)
	text.Draw(screen, s, face, cx-bounds.Dx()/2, y, clr)
}
