package state

// Snake is the player. Body[0] is the head, the last element is the tail.
type Snake struct {
	Body      []Point
	Direction Direction
}

// Head returns the first point in the body
func (s *Snake) Head() (Point, bool) {
	if len(s.Body) == 0 {
		return Point{}, false
	}
	return s.Body[0], true
}

// Tail returns the last point in the body
func (s *Snake) Tail() (Point, bool) {
	if len(s.Body) == 0 {
		return Point{}, false
	}
	return s.Body[len(s.Body)-1], true
}

// Occupies reports whether any segment of the snake is on p.
func (s *Snake) Occupies(p Point) bool {
	for _, b := range s.Body {
		if b.Equal(p) {
			return true
		}
	}
	return false
}

// Move puts a new head one step in the snake's direction. The tail is kept
// when grow is true and dropped otherwise.
func (s *Snake) Move(grow bool) {
	h, ok := s.Head()
	if !ok {
		return
	}
	body := make([]Point, 0, len(s.Body)+1)
	body = append(body, h.Add(s.Direction))
	if grow {
		body = append(body, s.Body...)
	} else {
		body = append(body, s.Body[:len(s.Body)-1]...)
	}
	s.Body = body
}

// Clone returns a deep copy, the body slice is not shared.
func (s *Snake) Clone() *Snake {
	if s == nil {
		return nil
	}
	body := make([]Point, len(s.Body))
	copy(body, s.Body)
	return &Snake{Body: body, Direction: s.Direction}
}
