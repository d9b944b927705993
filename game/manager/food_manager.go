package manager

import (
	"impulse-snake/game/entity"
	"impulse-snake/game/types"

	"golang.org/x/exp/rand"
)

type FoodManager struct {
	grid         types.Grid
	rng          *rand.Rand
	maxAttempts  int
	collisionMgr *CollisionManager
}

func NewFoodManager(grid types.Grid, seed uint64, collisionMgr *CollisionManager) *FoodManager {
	return &FoodManager{
		grid:         grid,
		rng:          rand.New(rand.NewSource(seed)),
		maxAttempts:  types.MaxFoodAttempts,
		collisionMgr: collisionMgr,
	}
}

// GenerateFood picks a uniform random cell not covered by the snake. After
// maxAttempts rejected samples it scans for the next free cell, starting from
// the last sample. The returned flag is false only when the board is full and
// the food had to overlap the snake.
func (fm *FoodManager) GenerateFood(snake *entity.Snake) (types.Point, bool) {
	var food types.Point
	for attempt := 0; attempt < fm.maxAttempts; attempt++ {
		food = fm.randomCell()
		if fm.collisionMgr.ValidateSpawnPosition(food, snake) {
			return food, true
		}
	}

	if free, ok := fm.scanFree(food, snake); ok {
		return free, true
	}
	return food, false
}

func (fm *FoodManager) randomCell() types.Point {
	return types.Point{
		X: fm.rng.Intn(fm.grid.Width),
		Y: fm.rng.Intn(fm.grid.Height),
	}
}

// scanFree walks the grid row-major from start, wrapping once.
func (fm *FoodManager) scanFree(start types.Point, snake *entity.Snake) (types.Point, bool) {
	cells := fm.grid.Cells()
	first := start.Y*fm.grid.Width + start.X
	for i := 0; i < cells; i++ {
		idx := (first + i) % cells
		p := types.Point{X: idx % fm.grid.Width, Y: idx / fm.grid.Width}
		if fm.collisionMgr.ValidateSpawnPosition(p, snake) {
			return p, true
		}
	}
	return types.Point{}, false
}
