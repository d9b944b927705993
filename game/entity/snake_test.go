package entity

import (
	"testing"

	"impulse-snake/game/types"

	"github.com/stretchr/testify/assert"
)

func TestNewStartingSnake(t *testing.T) {
	s := NewStartingSnake(types.Point{X: 10, Y: 10}, types.Right, 3)
	assert.Equal(t, []types.Point{{X: 10, Y: 10}, {X: 9, Y: 10}, {X: 8, Y: 10}}, s.Body)

	s = NewStartingSnake(types.Point{X: 4, Y: 4}, types.Up, 2)
	assert.Equal(t, []types.Point{{X: 4, Y: 4}, {X: 4, Y: 5}}, s.Body)
}

func TestMoveAndRemoveTail(t *testing.T) {
	s := NewStartingSnake(types.Point{X: 2, Y: 0}, types.Right, 3)
	s.Move(types.Point{X: 3, Y: 0})
	assert.Equal(t, 4, s.Len())
	assert.Equal(t, types.Point{X: 3, Y: 0}, s.GetHead())
	assert.Equal(t, types.Point{X: 0, Y: 0}, s.GetTail())

	s.RemoveTail()
	assert.Equal(t, []types.Point{{X: 3, Y: 0}, {X: 2, Y: 0}, {X: 1, Y: 0}}, s.Body)
}

func TestRemoveTailKeepsHead(t *testing.T) {
	s := NewSnake([]types.Point{{X: 1, Y: 1}})
	s.RemoveTail()
	assert.Equal(t, 1, s.Len())
}

func TestOccupies(t *testing.T) {
	s := NewStartingSnake(types.Point{X: 2, Y: 0}, types.Right, 3)
	assert.True(t, s.Occupies(types.Point{X: 1, Y: 0}, false))
	assert.False(t, s.Occupies(types.Point{X: 0, Y: 0}, false))
	assert.True(t, s.Occupies(types.Point{X: 0, Y: 0}, true))
}

func TestSegmentsIsACopy(t *testing.T) {
	body := []types.Point{{X: 1, Y: 1}, {X: 1, Y: 2}}
	s := NewSnake(body)
	body[0] = types.Point{}
	seg := s.Segments()
	seg[1] = types.Point{}
	assert.Equal(t, []types.Point{{X: 1, Y: 1}, {X: 1, Y: 2}}, s.Body)
}
