package rules

import (
	"testing"

	"github.com/battlesnakeio/termsnake/state"
	"github.com/stretchr/testify/require"
)

var commonGame = &state.Game{
	ID:        "game",
	Width:     7,
	Height:    7,
	FoodScore: 1,
}

func runningFrame(snake *state.Snake, food *state.Point) *state.Frame {
	return &state.Frame{
		Snake:         snake,
		Food:          food,
		Status:        GameStatusRunning,
		NextDirection: snake.Direction,
	}
}

func TestGameTickUpdatesTurnCounter(t *testing.T) {
	lastFrame := runningFrame(&state.Snake{
		Body:      []state.Point{{X: 3, Y: 3}},
		Direction: state.DirectionUp,
	}, &state.Point{X: 5, Y: 5})
	lastFrame.Turn = 5

	gt, err := GameTick(commonGame, lastFrame)
	require.NoError(t, err)
	require.Equal(t, int64(6), gt.Turn)
}

func TestGameTickNilFrame(t *testing.T) {
	_, err := GameTick(commonGame, nil)
	require.Error(t, err)
	require.Equal(t, "rules: invalid state, previous frame is nil", err.Error())
}

func TestGameTickEmptySnake(t *testing.T) {
	_, err := GameTick(commonGame, &state.Frame{Status: GameStatusRunning, Snake: &state.Snake{}})
	require.Error(t, err)
}

func TestGameTickAfterGameOver(t *testing.T) {
	lastFrame := runningFrame(&state.Snake{
		Body:      []state.Point{{X: 3, Y: 3}},
		Direction: state.DirectionUp,
	}, nil)
	lastFrame.Status = GameStatusOver

	_, err := GameTick(commonGame, lastFrame)
	require.Error(t, err)
}

func TestGameTickUpdatesSnake(t *testing.T) {
	lastFrame := runningFrame(&state.Snake{
		Body: []state.Point{
			{X: 3, Y: 2},
			{X: 3, Y: 3},
			{X: 3, Y: 4},
		},
		Direction: state.DirectionUp,
	}, &state.Point{X: 5, Y: 5})

	gt, err := GameTick(commonGame, lastFrame)
	require.NoError(t, err)
	require.Equal(t, GameStatusRunning, gt.Status)
	require.Nil(t, gt.Death)
	require.Equal(t, []state.Point{
		{X: 3, Y: 1},
		{X: 3, Y: 2},
		{X: 3, Y: 3},
	}, gt.Snake.Body)
	require.Equal(t, 0, gt.Score)

	// the previous frame is not modified
	require.Equal(t, state.Point{X: 3, Y: 2}, lastFrame.Snake.Body[0])
	require.Equal(t, int64(0), lastFrame.Turn)
}

func TestGameTickLengthInvariantWithoutFood(t *testing.T) {
	game := &state.Game{Width: 40, Height: 20, FoodScore: 1}
	frame := runningFrame(&state.Snake{
		Body: []state.Point{
			{X: 5, Y: 10},
			{X: 4, Y: 10},
			{X: 3, Y: 10},
		},
		Direction: state.DirectionRight,
	}, &state.Point{X: 1, Y: 1})

	for i := 0; i < 20; i++ {
		next, err := GameTick(game, frame)
		require.NoError(t, err)
		require.Equal(t, GameStatusRunning, next.Status)
		require.Len(t, next.Snake.Body, 3)
		require.Equal(t, 0, next.Score)
		frame = next
	}
	head, _ := frame.Snake.Head()
	require.Equal(t, state.Point{X: 25, Y: 10}, head)
}

func TestGameFrameSnakeEats(t *testing.T) {
	// 5x5 interior, one segment snake in the center heading right with food
	// right next to it.
	lastFrame := runningFrame(&state.Snake{
		Body:      []state.Point{{X: 3, Y: 3}},
		Direction: state.DirectionRight,
	}, &state.Point{X: 4, Y: 3})

	gt, err := GameTick(commonGame, lastFrame)
	require.NoError(t, err)
	require.Equal(t, GameStatusRunning, gt.Status)
	require.Equal(t, []state.Point{{X: 4, Y: 3}, {X: 3, Y: 3}}, gt.Snake.Body)
	require.Equal(t, 1, gt.Score)
	require.NotNil(t, gt.Food)
	require.False(t, gt.Snake.Occupies(*gt.Food))
	require.False(t, deathByOutOfBounds(*gt.Food, commonGame.Width, commonGame.Height))
}

func TestGameFrameSnakeEatsUsesFoodScore(t *testing.T) {
	game := &state.Game{Width: 7, Height: 7, FoodScore: 10}
	lastFrame := runningFrame(&state.Snake{
		Body: []state.Point{
			{X: 3, Y: 3},
			{X: 3, Y: 4},
		},
		Direction: state.DirectionUp,
	}, &state.Point{X: 3, Y: 2})
	lastFrame.Score = 20

	gt, err := GameTick(game, lastFrame)
	require.NoError(t, err)
	require.Equal(t, 30, gt.Score)
	require.Len(t, gt.Snake.Body, 3)
}

func TestGameTickLeftWall(t *testing.T) {
	frame := runningFrame(&state.Snake{
		Body:      []state.Point{{X: 3, Y: 3}},
		Direction: state.DirectionLeft,
	}, &state.Point{X: 5, Y: 5})

	var err error
	for turn := 1; turn <= 2; turn++ {
		frame, err = GameTick(commonGame, frame)
		require.NoError(t, err)
		require.Equal(t, GameStatusRunning, frame.Status, "turn %d", turn)
	}
	head, _ := frame.Snake.Head()
	require.Equal(t, state.Point{X: 1, Y: 3}, head)

	frame, err = GameTick(commonGame, frame)
	require.NoError(t, err)
	require.Equal(t, GameStatusOver, frame.Status)
	require.NotNil(t, frame.Death)
	require.Equal(t, DeathCauseWallCollision, frame.Death.Cause)
	require.Equal(t, int64(3), frame.Death.Turn)

	// the fatal move is never committed
	head, _ = frame.Snake.Head()
	require.Equal(t, state.Point{X: 1, Y: 3}, head)
}

func TestGameTickSelfCollision(t *testing.T) {
	lastFrame := runningFrame(&state.Snake{
		Body: []state.Point{
			{X: 2, Y: 2},
			{X: 3, Y: 2},
			{X: 3, Y: 3},
			{X: 2, Y: 3},
			{X: 1, Y: 3},
		},
		Direction: state.DirectionDown,
	}, &state.Point{X: 5, Y: 5})

	gt, err := GameTick(commonGame, lastFrame)
	require.NoError(t, err)
	require.Equal(t, GameStatusOver, gt.Status)
	require.Equal(t, DeathCauseSnakeSelfCollision, gt.Death.Cause)
	require.Len(t, gt.Snake.Body, 5)
}

func TestGameTickAppliesBufferedDirection(t *testing.T) {
	lastFrame := runningFrame(&state.Snake{
		Body: []state.Point{
			{X: 3, Y: 3},
			{X: 2, Y: 3},
		},
		Direction: state.DirectionRight,
	}, &state.Point{X: 5, Y: 5})
	lastFrame.NextDirection = state.DirectionDown

	gt, err := GameTick(commonGame, lastFrame)
	require.NoError(t, err)
	require.Equal(t, state.DirectionDown, gt.Snake.Direction)
	require.Equal(t, state.DirectionDown, gt.NextDirection)
	require.Equal(t, state.Point{X: 3, Y: 4}, gt.Snake.Body[0])
}

func TestGameTickBoardFull(t *testing.T) {
	// 2x1 interior: once the snake eats there is nowhere left for food.
	game := &state.Game{Width: 4, Height: 3, FoodScore: 1}
	lastFrame := runningFrame(&state.Snake{
		Body:      []state.Point{{X: 1, Y: 1}},
		Direction: state.DirectionRight,
	}, &state.Point{X: 2, Y: 1})

	gt, err := GameTick(game, lastFrame)
	require.NoError(t, err)
	require.Equal(t, GameStatusOver, gt.Status)
	require.Equal(t, DeathCauseBoardFull, gt.Death.Cause)
	require.Nil(t, gt.Food)
	require.Equal(t, 1, gt.Score)
	require.Len(t, gt.Snake.Body, 2)
}
