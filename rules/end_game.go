package rules

import "github.com/battlesnakeio/termsnake/state"

// CheckForGameOver checks if the game has reached a terminal state.
func CheckForGameOver(frame *state.Frame) bool {
	return frame == nil || frame.Status == GameStatusOver
}
