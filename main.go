package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"

	"lumara/game"
)

func main() {
	// Optional .env for local tuning; absence is fine.
	if err := godotenv.Load(); err == nil {
		log.Print("loaded .env overrides")
	}

	cfg := game.ConfigFromEnv()
	app := NewApp(cfg)

	ebiten.SetWindowSize(cfg.ScreenWidth, cfg.ScreenHeight)
	ebiten.SetWindowTitle("Guardians of Lumara: Vela's Voyage")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
