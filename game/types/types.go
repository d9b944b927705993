package types

import (
	"fmt"
	"time"
)

// Game constants
const (
	DefaultGridSize     = 20
	DefaultTickInterval = 150 * time.Millisecond
	MinGridSize         = 5
	InitialLength       = 3
	FoodScore           = 10  // Points per food eaten
	MaxFoodAttempts     = 100 // Random samples before the free-cell scan
)

// Point is a grid cell, 0-indexed.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add offsets p by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// NewSquareGrid returns an n×n grid.
func NewSquareGrid(n int) Grid {
	return Grid{Width: n, Height: n}
}

// Contains reports whether p lies inside [0,Width)×[0,Height).
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Cells is the number of cells on the grid.
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// Direction is one of the four cardinal moves.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

var directionNames = [...]string{
	Up:    "UP",
	Down:  "DOWN",
	Left:  "LEFT",
	Right: "RIGHT",
}

func (d Direction) String() string {
	if d < Up || d > Right {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// Offset returns the one-cell displacement for d. Y grows downward.
func (d Direction) Offset() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	case Right:
		return Point{X: 1, Y: 0}
	default:
		return Point{}
	}
}

// Opposite returns the 180-degree reversal of d.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// TurnLeft returns the direction after a 90-degree counter-clockwise turn.
func (d Direction) TurnLeft() Direction {
	switch d {
	case Up:
		return Left
	case Left:
		return Down
	case Down:
		return Right
	default:
		return Up
	}
}

// TurnRight returns the direction after a 90-degree clockwise turn.
func (d Direction) TurnRight() Direction {
	switch d {
	case Up:
		return Right
	case Right:
		return Down
	case Down:
		return Left
	default:
		return Up
	}
}

func (d Direction) MarshalText() ([]byte, error) {
	if d < Up || d > Right {
		return nil, fmt.Errorf("invalid direction %d", int(d))
	}
	return []byte(directionNames[d]), nil
}

func (d *Direction) UnmarshalText(b []byte) error {
	for i, name := range directionNames {
		if name == string(b) {
			*d = Direction(i)
			return nil
		}
	}
	return fmt.Errorf("unknown direction %q", b)
}

// Status is the session lifecycle state.
type Status int

const (
	Idle Status = iota
	Playing
	GameOver
)

var statusNames = [...]string{
	Idle:     "idle",
	Playing:  "playing",
	GameOver: "gameOver",
}

func (s Status) String() string {
	if s < Idle || s > GameOver {
		return fmt.Sprintf("Status(%d)", int(s))
	}
	return statusNames[s]
}

func (s Status) MarshalText() ([]byte, error) {
	if s < Idle || s > GameOver {
		return nil, fmt.Errorf("invalid status %d", int(s))
	}
	return []byte(statusNames[s]), nil
}

func (s *Status) UnmarshalText(b []byte) error {
	for i, name := range statusNames {
		if name == string(b) {
			*s = Status(i)
			return nil
		}
	}
	return fmt.Errorf("unknown status %q", b)
}

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	default:
		return "none"
	}
}
