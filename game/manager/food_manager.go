package manager

import (
	"the-snake/game/entity"
	"the-snake/game/types"

	"golang.org/x/exp/rand"
)

// MaxSpawnAttempts bounds the random draws before Respawn falls back to
// picking from the free cells directly.
const MaxSpawnAttempts = 64

type FoodManager struct {
	grid         types.Grid
	rng          *rand.Rand
	collisionMgr *CollisionManager
}

func NewFoodManager(grid types.Grid, rng *rand.Rand, collisionMgr *CollisionManager) *FoodManager {
	return &FoodManager{
		grid:         grid,
		rng:          rng,
		collisionMgr: collisionMgr,
	}
}

// Respawn moves the apple to a random cell not covered by the snake. It
// returns false only when the snake fills the whole board, in which case
// the apple stays where it is.
func (fm *FoodManager) Respawn(apple *entity.Apple, snake *entity.Snake) bool {
	for attempt := 0; attempt < MaxSpawnAttempts; attempt++ {
		apple.RandomizePosition(fm.rng)
		if fm.collisionMgr.ValidateSpawnPosition(apple.Position, snake) {
			return true
		}
	}

	free := fm.freeCells(snake)
	if len(free) == 0 {
		return false
	}
	apple.Position = free[fm.rng.Intn(len(free))]
	return true
}

func (fm *FoodManager) freeCells(snake *entity.Snake) []types.Point {
	occupied := make(map[types.Point]struct{}, len(snake.Positions))
	for _, p := range snake.Positions {
		occupied[p] = struct{}{}
	}

	free := make([]types.Point, 0, fm.grid.Cells()-len(occupied))
	for row := 0; row < fm.grid.Rows(); row++ {
		for col := 0; col < fm.grid.Columns(); col++ {
			p := fm.grid.Cell(col, row)
			if _, ok := occupied[p]; !ok {
				free = append(free, p)
			}
		}
	}
	return free
}
