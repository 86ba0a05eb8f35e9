package core

// Action represents a semantic input action, abstracted from physical keys.
// Pointer presses are delivered separately as surface coordinates.
type Action int

const (
	ActionNone       Action = iota
	ActionUp                // W, Up arrow - paddle moves up
	ActionDown              // S, Down arrow - paddle moves down
	ActionStop              // Space - paddle stops
	ActionPause             // P - pause/unpause
	ActionRestart           // R - start over
	ActionScreenshot        // Ctrl+S - save the screen as text
	ActionHelp              // ? - toggle full help
	ActionQuit              // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionStop:
		return "Stop"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionScreenshot:
		return "Screenshot"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// ActionForKey maps a key name to an action.
// Key names follow Bubble Tea's KeyMsg.String() format ("up", "ctrl+c", "w").
func ActionForKey(key string) Action {
	switch key {
	case "w", "up", "k":
		return ActionUp
	case "s", "down", "j":
		return ActionDown
	case " ", "space":
		return ActionStop
	case "p":
		return ActionPause
	case "r":
		return ActionRestart
	case "ctrl+s":
		return ActionScreenshot
	case "?":
		return ActionHelp
	case "q", "ctrl+c", "esc":
		return ActionQuit
	}
	return ActionNone
}
