package rules

const (
	// GameStatusRunning represents a running game
	GameStatusRunning = "running"
	// GameStatusOver represents a game that reached a terminal state, it
	// never goes back to running
	GameStatusOver = "over"
)
