package state

import "fmt"

// Point is a cell on the board. X is the column and Y is the row, both
// counted from the top left corner.
type Point struct {
	X int
	Y int
}

// Equal checks if 2 points are the same x,y coordinate
func (p Point) Equal(other Point) bool {
	return p.X == other.X && p.Y == other.Y
}

// Add returns the point offset by the vector of the given direction.
func (p Point) Add(d Direction) Point {
	dx, dy := d.Vector()
	return Point{X: p.X + dx, Y: p.Y + dy}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}
