// Package render turns game frames into the glyphs shown in the terminal.
package render

import (
	"fmt"

	"github.com/battlesnakeio/termsnake/rules"
	"github.com/battlesnakeio/termsnake/state"
)

// Glyphs used on the board.
const (
	Wall  = '#'
	Head  = 'O'
	Body  = 'o'
	Food  = '*'
	Empty = ' '
)

// Grid returns the board as Height rows of Width runes.
func Grid(game *state.Game, frame *state.Frame) [][]rune {
	grid := make([][]rune, game.Height)
	for y := range grid {
		row := make([]rune, game.Width)
		for x := range row {
			if x == 0 || y == 0 || x == game.Width-1 || y == game.Height-1 {
				row[x] = Wall
			} else {
				row[x] = Empty
			}
		}
		grid[y] = row
	}
	if frame == nil {
		return grid
	}

	if frame.Food != nil {
		set(grid, *frame.Food, Food)
	}
	if frame.Snake != nil {
		// tail first so the head is never hidden by a body segment
		for i := len(frame.Snake.Body) - 1; i >= 0; i-- {
			glyph := Body
			if i == 0 {
				glyph = Head
			}
			set(grid, frame.Snake.Body[i], glyph)
		}
	}
	return grid
}

func set(grid [][]rune, p state.Point, r rune) {
	if p.Y < 0 || p.Y >= len(grid) || p.X < 0 || p.X >= len(grid[p.Y]) {
		return
	}
	grid[p.Y][p.X] = r
}

// StatusLine is shown right under the board.
func StatusLine(frame *state.Frame) string {
	return fmt.Sprintf("Score: %d", frame.Score)
}

// HelpLine lists the controls.
func HelpLine() string {
	return "Use arrow keys to move, 'q' to quit"
}

// GameOverLine is the final message once the frame is terminal.
func GameOverLine(frame *state.Frame) string {
	msg := fmt.Sprintf("Game Over! Final score: %d", frame.Score)
	if frame.Death != nil {
		msg = fmt.Sprintf("%s (%s)", msg, describeCause(frame.Death.Cause))
	}
	return msg
}

func describeCause(cause string) string {
	switch cause {
	case rules.DeathCauseWallCollision:
		return "hit the wall"
	case rules.DeathCauseSnakeSelfCollision:
		return "ran into itself"
	case rules.DeathCauseBoardFull:
		return "board full"
	case rules.DeathCauseQuit:
		return "quit"
	}
	return cause
}
