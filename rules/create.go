package rules

import (
	"errors"
	"time"

	"github.com/battlesnakeio/termsnake/state"
	uuid "github.com/satori/go.uuid"
)

const (
	// DefaultWidth is the board width, walls included
	DefaultWidth = 40
	// DefaultHeight is the board height, walls included
	DefaultHeight = 20
	// DefaultTickInterval is the time between two moves
	DefaultTickInterval = 100 * time.Millisecond
	// DefaultFoodScore is added to the score for every food eaten
	DefaultFoodScore = 1
)

// ErrBoardTooSmall is returned when the interior can not fit the snake and a
// piece of food.
var ErrBoardTooSmall = errors.New("rules: board too small")

// CreateRequest holds the parameters of a new game. Zero values fall back to
// the defaults.
type CreateRequest struct {
	Width        int
	Height       int
	TickInterval time.Duration
	FoodScore    int
}

// CreateInitialGame creates a new game and its first frame: a one segment
// snake in the middle of the board heading right, and one piece of food.
func CreateInitialGame(req CreateRequest) (*state.Game, *state.Frame, error) {
	game := &state.Game{
		ID:           uuid.NewV4().String(),
		Width:        req.Width,
		Height:       req.Height,
		TickInterval: req.TickInterval,
		FoodScore:    req.FoodScore,
	}
	if game.Width == 0 {
		game.Width = DefaultWidth
	}
	if game.Height == 0 {
		game.Height = DefaultHeight
	}
	if game.TickInterval <= 0 {
		game.TickInterval = DefaultTickInterval
	}
	if game.FoodScore <= 0 {
		game.FoodScore = DefaultFoodScore
	}

	if interiorCells(game.Width, game.Height) < 2 {
		return nil, nil, ErrBoardTooSmall
	}

	snake := &state.Snake{
		Body: []state.Point{
			{X: game.Width / 2, Y: game.Height / 2},
		},
		Direction: state.DirectionRight,
	}

	frame := &state.Frame{
		Turn:          0,
		Snake:         snake,
		Food:          getUnoccupiedPoint(game.Width, game.Height, snake),
		Status:        GameStatusRunning,
		NextDirection: snake.Direction,
	}

	return game, frame, nil
}
