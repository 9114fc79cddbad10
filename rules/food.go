package rules

import (
	"math/rand"

	"github.com/battlesnakeio/termsnake/state"
)

// getUnoccupiedPoint picks a random interior cell that the snake is not on.
// It returns nil when the board is full.
func getUnoccupiedPoint(width, height int, snake *state.Snake) *state.Point {
	openPoints := getUnoccupiedPoints(width, height, snake)

	if len(openPoints) == 0 {
		return nil
	}

	randIndex := rand.Intn(len(openPoints))

	return &openPoints[randIndex]
}

func getUnoccupiedPoints(width, height int, snake *state.Snake) []state.Point {
	occupied := map[state.Point]bool{}
	if snake != nil {
		for _, b := range snake.Body {
			occupied[b] = true
		}
	}

	numCandidatePoints := interiorCells(width, height) - len(occupied)
	if numCandidatePoints < 0 {
		numCandidatePoints = 0
	}
	candidatePoints := make([]state.Point, 0, numCandidatePoints)

	for x := 1; x < width-1; x++ {
		for y := 1; y < height-1; y++ {
			p := state.Point{X: x, Y: y}
			if !occupied[p] {
				candidatePoints = append(candidatePoints, p)
			}
		}
	}

	return candidatePoints
}

func interiorCells(width, height int) int {
	if width < 3 || height < 3 {
		return 0
	}
	return (width - 2) * (height - 2)
}
