package rules

import (
	"fmt"

	"github.com/battlesnakeio/termsnake/state"
	log "github.com/sirupsen/logrus"
)

// GameTick runs the game one tick and returns the next frame. The frame
// passed in is left untouched.
func GameTick(game *state.Game, lastFrame *state.Frame) (*state.Frame, error) {
	if lastFrame == nil {
		return nil, fmt.Errorf("rules: invalid state, previous frame is nil")
	}
	if lastFrame.Status == GameStatusOver {
		return nil, fmt.Errorf("rules: invalid state, game %s is already over", game.ID)
	}
	if lastFrame.Snake == nil || len(lastFrame.Snake.Body) == 0 {
		return nil, fmt.Errorf("rules: invalid state, snake has no body")
	}

	nextFrame := lastFrame.Clone()
	nextFrame.Turn = lastFrame.Turn + 1
	snake := nextFrame.Snake

	// 1. apply the buffered direction
	if nextFrame.NextDirection.Valid() {
		snake.Direction = nextFrame.NextDirection
	}
	nextFrame.NextDirection = snake.Direction

	// 2. check for death before committing the move
	//    a - wall collision
	//    b - self collision
	head, _ := snake.Head()
	next := head.Add(snake.Direction)
	if death := checkForDeath(game.Width, game.Height, nextFrame.Turn, snake, next); death != nil {
		log.WithFields(log.Fields{
			"GameID": game.ID,
			"Turn":   nextFrame.Turn,
			"Cause":  death.Cause,
			"Score":  nextFrame.Score,
		}).Info("snake died")
		nextFrame.Death = death
		nextFrame.Status = GameStatusOver
		return nextFrame, nil
	}

	// 3. move, growing if the new head lands on food
	ate := nextFrame.Food != nil && next.Equal(*nextFrame.Food)
	snake.Move(ate)
	log.WithFields(log.Fields{
		"GameID":    game.ID,
		"Turn":      nextFrame.Turn,
		"Direction": snake.Direction,
		"Head":      next,
	}).Debug("move")

	if !ate {
		return nextFrame, nil
	}

	// 4. score and replace the eaten food
	nextFrame.Score += game.FoodScore
	nextFrame.Food = getUnoccupiedPoint(game.Width, game.Height, snake)
	log.WithFields(log.Fields{
		"GameID": game.ID,
		"Turn":   nextFrame.Turn,
		"Score":  nextFrame.Score,
		"Length": len(snake.Body),
	}).Info("snake ate")

	if nextFrame.Food == nil {
		log.WithFields(log.Fields{
			"GameID": game.ID,
			"Turn":   nextFrame.Turn,
		}).Info("board is full")
		nextFrame.Death = &state.Death{
			Turn:  nextFrame.Turn,
			Cause: DeathCauseBoardFull,
		}
		nextFrame.Status = GameStatusOver
	}
	return nextFrame, nil
}
