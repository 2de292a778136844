package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

const stickDeadzone = 0.2

// Input reads horizontal intent from the keyboard and the first gamepad.
type Input struct{}

func NewInput() *Input {
	return &Input{}
}

// Axis returns -1 for left, +1 for right. A deflected left stick overrides
// the keys.
func (i *Input) Axis() float64 {
	moveX := 0.0
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		moveX -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		moveX += 1
	}

	if gamepads := ebiten.AppendGamepadIDs(nil); len(gamepads) > 0 {
		leftX := ebiten.StandardGamepadAxisValue(gamepads[0], ebiten.StandardGamepadAxisLeftStickHorizontal)
		if math.Abs(leftX) > stickDeadzone {
			moveX = leftX
		}
	}
	return moveX
}
