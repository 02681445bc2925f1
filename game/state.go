package game

// State identifies which mode the session is in. It gates which
// subsystems run on each tick.
type State int

const (
	// StateMenu shows the title screen with a decorative idle toss.
	StateMenu State = iota

	// StatePlaying runs the full simulation.
	StatePlaying

	// StatePaused keeps the last rendered state on screen while all
	// motion, spawning and input are suspended.
	StatePaused

	// StateGameOver is reached when lives hit zero.
	StateGameOver
)

// String returns a human-readable state name for HUD and logs.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game over"
	default:
		return "unknown"
	}
}
