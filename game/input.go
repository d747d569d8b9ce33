package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputState is the sampled control state for one tick. Sampling is kept
// separate from the simulation so tests can drive Update with fabricated
// input.
type InputState struct {
	Left, Right, Up, Down bool

	// Fire is level-triggered (held); the fire cooldown spaces the shots.
	Fire bool

	// Start is edge-triggered: Enter or a click/tap.
	Start bool

	// PauseToggle is edge-triggered: the P key.
	PauseToggle bool
}

var touchIDs []ebiten.TouchID

// ReadInput samples the keyboard, mouse, and touch state.
func ReadInput() InputState {
	touchIDs = inpututil.AppendJustPressedTouchIDs(touchIDs[:0])
	tapped := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) || len(touchIDs) > 0

	return InputState{
		Left:        ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right:       ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Up:          ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW),
		Down:        ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS),
		Fire:        ebiten.IsKeyPressed(ebiten.KeySpace) || ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Start:       inpututil.IsKeyJustPressed(ebiten.KeyEnter) || tapped,
		PauseToggle: inpututil.IsKeyJustPressed(ebiten.KeyP),
	}
}
