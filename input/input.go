// Package input polls the keyboard and standard gamepads into the
// simulation's held-action buffer.
package input

import (
	"github.com/automoto/barr/components"
	cfg "github.com/automoto/barr/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// Binding lists every physical input that holds an action down.
type Binding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// AnalogDeadzone is how far the left stick must tilt to count as a press.
const AnalogDeadzone = 0.35

var Bindings = map[cfg.ActionID]Binding{
	cfg.ActionMoveLeft: {
		Keys:                   []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
	},
	cfg.ActionMoveRight: {
		Keys:                   []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
	},
	cfg.ActionJump: {
		Keys:                   []ebiten.Key{ebiten.KeyW, ebiten.KeySpace, ebiten.KeyArrowUp},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
	},
	cfg.ActionPause: {
		Keys:                   []ebiten.Key{ebiten.KeyP, ebiten.KeyEscape},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterRight},
	},
	cfg.ActionMute: {
		Keys: []ebiten.Key{ebiten.KeyM},
	},
	cfg.ActionRestart: {
		Keys:                   []ebiten.Key{ebiten.KeyR},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterLeft},
	},
	cfg.ActionDebug: {
		Keys: []ebiten.Key{ebiten.KeyF1},
	},
	cfg.ActionFullscreen: {
		Keys: []ebiten.Key{ebiten.KeyF11},
	},
}

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// Poll reads this frame's held actions and pushes them into in.
func Poll(in *components.InputData) {
	var held [cfg.ActionCount]bool

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				held[actionID] = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					held[actionID] = true
				}
			}
		}
	}

	left, right := analogStick(gamepadIDs)
	held[cfg.ActionMoveLeft] = held[cfg.ActionMoveLeft] || left
	held[cfg.ActionMoveRight] = held[cfg.ActionMoveRight] || right

	in.Push(held)
}

// analogStick reads the left stick's horizontal axis from all gamepads.
func analogStick(gamepads []ebiten.GamepadID) (left, right bool) {
	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		h := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if h < -AnalogDeadzone {
			left = true
		}
		if h > AnalogDeadzone {
			right = true
		}
	}
	return
}
