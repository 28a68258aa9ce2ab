package core

// Action is a semantic input, abstracted from the physical key that produced it.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - move left
	ActionRight          // D, Right arrow - move right
	ActionRestart        // Space - restart after game over
	ActionQuit           // Q, Ctrl+C - exit
	ActionHelp           // ? - toggle help
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionHelp:
		return "Help"
	default:
		return "Unknown"
	}
}

// KeyKind distinguishes presses from releases.
type KeyKind int

const (
	KeyDown KeyKind = iota
	KeyUp
)

// String returns "down" or "up".
func (k KeyKind) String() string {
	if k == KeyUp {
		return "up"
	}
	return "down"
}

// KeyEvent is a single press or release of an action key.
type KeyEvent struct {
	Action Action
	Kind   KeyKind
}

// Press builds a key-down event.
func Press(a Action) KeyEvent {
	return KeyEvent{Action: a, Kind: KeyDown}
}

// Release builds a key-up event.
func Release(a Action) KeyEvent {
	return KeyEvent{Action: a, Kind: KeyUp}
}
