package entity

import (
	"impulse-snake/game/types"
)

// Snake is an ordered body, head first (index 0) and tail last.
type Snake struct {
	Body []types.Point
}

func NewSnake(body []types.Point) *Snake {
	s := &Snake{Body: make([]types.Point, len(body))}
	copy(s.Body, body)
	return s
}

// NewStartingSnake lays out length segments ending at head, trailing off
// opposite to dir.
func NewStartingSnake(head types.Point, dir types.Direction, length int) *Snake {
	back := dir.Opposite().Offset()
	body := make([]types.Point, 0, length)
	p := head
	for i := 0; i < length; i++ {
		body = append(body, p)
		p = p.Add(back)
	}
	return &Snake{Body: body}
}

// Move prepends newHead.
func (s *Snake) Move(newHead types.Point) {
	s.Body = append(s.Body, types.Point{})
	copy(s.Body[1:], s.Body)
	s.Body[0] = newHead
}

func (s *Snake) RemoveTail() {
	if len(s.Body) > 1 {
		s.Body = s.Body[:len(s.Body)-1]
	}
}

func (s *Snake) GetHead() types.Point {
	return s.Body[0]
}

func (s *Snake) GetTail() types.Point {
	return s.Body[len(s.Body)-1]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// Occupies reports whether any segment sits on p. With includeTail false the
// last segment is skipped, since it vacates its cell on a non-growing move.
func (s *Snake) Occupies(p types.Point, includeTail bool) bool {
	body := s.Body
	if !includeTail && len(body) > 0 {
		body = body[:len(body)-1]
	}
	for _, part := range body {
		if part == p {
			return true
		}
	}
	return false
}

// Segments returns a copy of the body.
func (s *Snake) Segments() []types.Point {
	out := make([]types.Point, len(s.Body))
	copy(out, s.Body)
	return out
}
