package manager

import (
	"the-snake/game/entity"
	"the-snake/game/types"
)

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// IsFoodCollision checks if the snake's head is on the apple
func (cm *CollisionManager) IsFoodCollision(snake *entity.Snake, apple *entity.Apple) bool {
	return snake.Head() == apple.Position
}

// IsSelfCollision checks if the head ran into the rest of the body
func (cm *CollisionManager) IsSelfCollision(snake *entity.Snake) bool {
	return snake.HitsItself()
}

// ValidateSpawnPosition checks if a position is valid for placing the apple
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point, snake *entity.Snake) bool {
	if !cm.grid.Contains(pos) {
		return false
	}
	return !snake.Occupies(pos)
}
