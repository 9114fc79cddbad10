package rules

import "github.com/battlesnakeio/termsnake/state"

// Steer buffers a direction change for the next tick. Any number of calls may
// happen between two ticks, the last accepted one wins. Each request is
// checked against the direction the snake actually moved in last, so a quick
// up-then-left while heading right can not turn the snake back on itself.
// Reversing is only allowed while the snake is a single segment.
func Steer(frame *state.Frame, d state.Direction) bool {
	if frame == nil || frame.Snake == nil || !d.Valid() {
		return false
	}
	if frame.Status == GameStatusOver {
		return false
	}
	if len(frame.Snake.Body) > 1 && d == frame.Snake.Direction.Opposite() {
		return false
	}
	frame.NextDirection = d
	return true
}

// Quit ends the game right away. The returned frame is terminal and keeps the
// turn and score of the frame passed in.
func Quit(frame *state.Frame) *state.Frame {
	if frame == nil || frame.Status == GameStatusOver {
		return frame
	}
	next := frame.Clone()
	next.Status = GameStatusOver
	next.Death = &state.Death{
		Turn:  frame.Turn,
		Cause: DeathCauseQuit,
	}
	return next
}
