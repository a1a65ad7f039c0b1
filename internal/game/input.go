package game

import (
	"raycaster/internal/scene"

	"github.com/hajimehoshi/ebiten/v2"
)

// Key bindings. Each control accepts the arrow key and its WASD twin.
var (
	forwardKeys   = []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp}
	backwardKeys  = []ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown}
	turnLeftKeys  = []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}
	turnRightKeys = []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}
)

const (
	quitKey    = ebiten.KeyEscape
	minimapKey = ebiten.KeyTab
	hudKey     = ebiten.KeyF3
)

func anyPressed(pressed func(ebiten.Key) bool, keys []ebiten.Key) bool {
	for _, key := range keys {
		if pressed(key) {
			return true
		}
	}
	return false
}

// inputFromKeys samples the held movement controls
func inputFromKeys(pressed func(ebiten.Key) bool) scene.InputState {
	return scene.InputState{
		Forward:   anyPressed(pressed, forwardKeys),
		Backward:  anyPressed(pressed, backwardKeys),
		TurnLeft:  anyPressed(pressed, turnLeftKeys),
		TurnRight: anyPressed(pressed, turnRightKeys),
	}
}
