// Package ai steers the snake without a player for headless runs.
package ai

import (
	"impulse-snake/game"
	"impulse-snake/game/types"
)

// Action is a turn relative to the current heading.
type Action int

const (
	Straight Action = iota
	Left
	Right
)

// Apply returns the absolute heading after taking a from d.
func (a Action) Apply(d types.Direction) types.Direction {
	switch a {
	case Left:
		return d.TurnLeft()
	case Right:
		return d.TurnRight()
	default:
		return d
	}
}

// Autopilot picks the next heading from a snapshot. Among safe moves it
// prefers those that leave at least a body length of reachable cells, then
// the one closest to the food.
type Autopilot struct {
	grid types.Grid
}

func NewAutopilot(grid types.Grid) *Autopilot {
	return &Autopilot{grid: grid}
}

type candidate struct {
	dir       types.Direction
	distance  int
	reachable int
}

// Decide returns the heading to bank for the next tick. With no safe move it
// keeps going straight.
func (a *Autopilot) Decide(snap game.Snapshot) types.Direction {
	if len(snap.Snake) == 0 {
		return snap.Direction
	}
	head := snap.Head()

	var best *candidate
	roomy := false
	for _, action := range []Action{Straight, Left, Right} {
		dir := action.Apply(snap.Direction)
		next := head.Add(dir.Offset())
		if !a.isSafe(next, snap) {
			continue
		}

		c := &candidate{
			dir:       dir,
			distance:  manhattan(next, snap.Food),
			reachable: a.reachable(next, snap),
		}
		enough := c.reachable >= len(snap.Snake)
		switch {
		case best == nil:
		case enough && !roomy:
		case enough == roomy && c.distance < best.distance:
		case enough == roomy && c.distance == best.distance && c.reachable > best.reachable:
		default:
			continue
		}
		best, roomy = c, enough
	}

	if best == nil {
		return snap.Direction
	}
	return best.dir
}

// isSafe mirrors the engine's collision rule: the tail cell is free unless
// the move eats.
func (a *Autopilot) isSafe(p types.Point, snap game.Snapshot) bool {
	if !a.grid.Contains(p) {
		return false
	}
	body := snap.Snake
	if p != snap.Food {
		body = body[:len(body)-1]
	}
	for _, part := range body {
		if part == p {
			return false
		}
	}
	return true
}

// reachable counts free cells connected to start once the head has moved
// there, flood-filling up to the whole grid.
func (a *Autopilot) reachable(start types.Point, snap game.Snapshot) int {
	blocked := make(map[types.Point]bool, len(snap.Snake))
	body := snap.Snake
	if start != snap.Food {
		body = body[:len(body)-1]
	}
	for _, part := range body {
		blocked[part] = true
	}
	blocked[start] = true

	queue := []types.Point{start}
	count := 1
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, d := range []types.Direction{types.Up, types.Down, types.Left, types.Right} {
			n := p.Add(d.Offset())
			if !a.grid.Contains(n) || blocked[n] {
				continue
			}
			blocked[n] = true
			count++
			queue = append(queue, n)
		}
	}
	return count
}

func manhattan(p1, p2 types.Point) int {
	return abs(p1.X-p2.X) + abs(p1.Y-p2.Y)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
