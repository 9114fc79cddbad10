// Package state holds the data that makes up a game of snake: the board
// description and the per tick frames produced by the rules package.
package state

import "time"

// Game describes a single run. Width and Height include the wall border, so
// the playable interior spans 1..Width-2 and 1..Height-2.
type Game struct {
	ID           string
	Width        int
	Height       int
	TickInterval time.Duration
	FoodScore    int
}

// Death records how and when the game ended.
type Death struct {
	Turn  int64
	Cause string
}

// Frame is the full state of the game after a given turn.
type Frame struct {
	Turn  int64
	Snake *Snake
	// Food is nil only once the board has no free cell left.
	Food   *Point
	Score  int
	Status string
	// NextDirection is the buffered direction applied on the next tick.
	NextDirection Direction
	Death         *Death
}

// Clone returns a deep copy of the frame.
func (f *Frame) Clone() *Frame {
	if f == nil {
		return nil
	}
	c := *f
	c.Snake = f.Snake.Clone()
	if f.Food != nil {
		food := *f.Food
		c.Food = &food
	}
	if f.Death != nil {
		death := *f.Death
		c.Death = &death
	}
	return &c
}
