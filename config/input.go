package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionPause
	ActionMute
	ActionRestart
	ActionDebug
	ActionFullscreen
	ActionCount // Must be last - used for array sizing
)

var actionNames = [ActionCount]string{
	ActionNone:       "none",
	ActionMoveLeft:   "left",
	ActionMoveRight:  "right",
	ActionJump:       "jump",
	ActionPause:      "pause",
	ActionMute:       "mute",
	ActionRestart:    "restart",
	ActionDebug:      "debug",
	ActionFullscreen: "fullscreen",
}

func (a ActionID) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}
