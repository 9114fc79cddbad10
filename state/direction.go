package state

// Direction is the way a snake is heading.
type Direction string

const (
	// DirectionUp moves towards row 0
	DirectionUp Direction = "up"
	// DirectionDown moves away from row 0
	DirectionDown Direction = "down"
	// DirectionLeft moves towards column 0
	DirectionLeft Direction = "left"
	// DirectionRight moves away from column 0
	DirectionRight Direction = "right"
)

// Vector returns the unit step for the direction. Unknown directions do not
// move.
func (d Direction) Vector() (dx, dy int) {
	switch d {
	case DirectionUp:
		return 0, -1
	case DirectionDown:
		return 0, 1
	case DirectionLeft:
		return -1, 0
	case DirectionRight:
		return 1, 0
	}
	return 0, 0
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case DirectionUp:
		return DirectionDown
	case DirectionDown:
		return DirectionUp
	case DirectionLeft:
		return DirectionRight
	case DirectionRight:
		return DirectionLeft
	}
	return d
}

// Valid reports whether d is one of the four known directions.
func (d Direction) Valid() bool {
	switch d {
	case DirectionUp, DirectionDown, DirectionLeft, DirectionRight:
		return true
	}
	return false
}
