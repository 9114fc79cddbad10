package rules

import "github.com/battlesnakeio/termsnake/state"

// checkForDeath looks at where the head is about to go and reports if the
// move would kill the snake. Possible causes are wall collision and running
// into any body segment, the tail included, since the move is not committed
// yet.
func checkForDeath(width, height int, turn int64, snake *state.Snake, next state.Point) *state.Death {
	if deathByOutOfBounds(next, width, height) {
		return &state.Death{
			Turn:  turn,
			Cause: DeathCauseWallCollision,
		}
	}

	for _, b := range snake.Body {
		if deathByBodyCollision(next, b) {
			return &state.Death{
				Turn:  turn,
				Cause: DeathCauseSnakeSelfCollision,
			}
		}
	}
	return nil
}

func deathByBodyCollision(head, body state.Point) bool {
	return head.Equal(body)
}

// deathByOutOfBounds is true for any cell that is not part of the interior,
// the border cells are walls.
func deathByOutOfBounds(head state.Point, width, height int) bool {
	return (head.X <= 0) || (head.X >= width-1) || (head.Y <= 0) || (head.Y >= height-1)
}
