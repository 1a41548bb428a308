package core

// Action represents a semantic player intent, abstracted from physical keys.
// Hosts translate their raw input (keys, mouse, browser messages) into actions.
type Action int

const (
	ActionNone       Action = iota
	ActionLeft              // Left, h, a - nudge basket left
	ActionRight             // Right, l, d - nudge basket right
	ActionStart             // Enter, Space - start a round when none is running
	ActionRestart           // R - start a new round at any time
	ActionScoreboard        // Tab - open the leaderboard
	ActionBack              // B, Escape - leave the current screen
	ActionScreenshot        // Ctrl+S - dump the screen to a file
	ActionQuit              // Q, Ctrl+C - exit
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
	case ActionStart:
		return "Start"
	case ActionRestart:
		return "Restart"
	case ActionScoreboard:
		return "Scoreboard"
	case ActionBack:
		return "Back"
	case ActionScreenshot:
		return "Screenshot"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
