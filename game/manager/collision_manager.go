package manager

import (
	"impulse-snake/game/entity"
	"impulse-snake/game/types"
)

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// CheckCollision classifies moving the snake's head onto pos. When willEat is
// set the tail stays put this tick and still blocks; otherwise the tail cell
// is free to enter.
func (cm *CollisionManager) CheckCollision(pos types.Point, snake *entity.Snake, willEat bool) types.CollisionType {
	if cm.IsWallCollision(pos) {
		return types.WallCollision
	}
	if snake != nil && snake.Occupies(pos, willEat) {
		return types.SelfCollision
	}
	return types.NoCollision
}

// IsWallCollision checks if a position lies outside the grid
func (cm *CollisionManager) IsWallCollision(pos types.Point) bool {
	return !cm.grid.Contains(pos)
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food types.Point) bool {
	return pos == food
}

// ValidateSpawnPosition checks if a position is valid for spawning food
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point, snake *entity.Snake) bool {
	if cm.IsWallCollision(pos) {
		return false
	}
	return snake == nil || !snake.Occupies(pos, true)
}
