package main

import (
	"image/color"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"lumara/audio"
	"lumara/game"
	"lumara/starfield"
)

// appMode selects which subsystem owns the frame.
type appMode int

const (
	modeAttract appMode = iota // star field + title
	modeGame                   // full game loop
)

// App is the host shell: it owns the window, decides whether the decorative
// star field or the game loop runs, and routes input between them.
type App struct {
	cfg  game.Config
	mode appMode

	game  *game.Game
	field *starfield.Manager

	lastUpdate time.Time
}

// soundAdapter bridges the simulation's effect triggers to the audio engine.
type soundAdapter struct {
	eng *audio.Engine
}

func (s soundAdapter) Laser()     { s.eng.Play(audio.SoundLaser) }
func (s soundAdapter) Hit()       { s.eng.Play(audio.SoundHit) }
func (s soundAdapter) Explosion() { s.eng.Play(audio.SoundExplosion) }
func (s soundAdapter) GameOver()  { s.eng.Play(audio.SoundGameOver) }

// NewApp wires the subsystems together and preloads the game's assets.
func NewApp(cfg game.Config) *App {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	eng := audio.NewEngine(audio.LoadConfig())
	if !eng.Enabled() {
		log.Print("running silent")
	}

	g := game.New(cfg, soundAdapter{eng: eng}, rng)
	g.LoadAssets()

	field := starfield.New(
		float64(cfg.ScreenWidth), float64(cfg.ScreenHeight),
		starfield.DefaultConfig(),
		func(ev starfield.Event, err error) {
			if err != nil {
				log.Printf("starfield event %d: %v", ev, err)
			}
		},
		rng,
	)
	field.Start()

	return &App{
		cfg:        cfg,
		mode:       modeAttract,
		game:       g,
		field:      field,
		lastUpdate: time.Now(),
	}
}

// Update advances whichever subsystem is active.
func (a *App) Update() error {
	now := time.Now()
	dt := now.Sub(a.lastUpdate).Seconds()
	a.lastUpdate = now
	if dt > 0.1 {
		dt = 0.1
	}

	in := game.ReadInput()

	switch a.mode {
	case modeAttract:
		// Holding Space engages the warp effect on the title screen.
		if in.Fire {
			a.field.Boost()
		} else {
			a.field.Unboost()
		}
		a.field.Step(dt)

		if in.Start {
			a.field.Pause()
			a.game.Start()
			a.mode = modeGame
		}

	case modeGame:
		if a.game.Update(in) {
			a.mode = modeAttract
			a.field.Resume()
		}
	}

	return nil
}

// Draw renders the active subsystem.
func (a *App) Draw(screen *ebiten.Image) {
	switch a.mode {
	case modeAttract:
		screen.Fill(color.NRGBA{R: 4, G: 6, B: 18, A: 255})
		a.field.Draw(screen)
		a.game.DrawTitle(screen)
	case modeGame:
		a.game.Draw(screen)
	}
}

// Layout fixes the logical canvas size; ebiten scales it to the window.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.cfg.ScreenWidth, a.cfg.ScreenHeight
}
