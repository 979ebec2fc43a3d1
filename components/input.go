package components

import (
	cfg "github.com/automoto/barr/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

// Push records a new frame of held actions.
func (in *InputData) Push(held [cfg.ActionCount]bool) {
	in.Previous = in.Current
	in.Current = held
}

func (in *InputData) Action(id cfg.ActionID) ActionState {
	return ActionState{
		Pressed:      in.Current[id],
		JustPressed:  in.Current[id] && !in.Previous[id],
		JustReleased: !in.Current[id] && in.Previous[id],
	}
}

// Controls extracts what the simulation reads from the held actions.
func (in *InputData) Controls() Controls {
	jump := in.Action(cfg.ActionJump)
	return Controls{
		Left:        in.Current[cfg.ActionMoveLeft],
		Right:       in.Current[cfg.ActionMoveRight],
		Jump:        jump.Pressed,
		JumpPressed: jump.JustPressed,
	}
}

var Input = donburi.NewComponentType[InputData]()

// Controls is one frame of player intent. JumpPressed is true only on the
// frame the jump button went down.
type Controls struct {
	Left        bool
	Right       bool
	Jump        bool
	JumpPressed bool
}
