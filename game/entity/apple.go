package entity

import (
	"the-snake/game/types"

	"golang.org/x/exp/rand"
)

type Apple struct {
	Position types.Point
	Color    types.Color
	grid     types.Grid
}

// NewApple creates an apple at a random cell. Callers that need the apple
// off the snake go through FoodManager.Respawn.
func NewApple(grid types.Grid, rng *rand.Rand) *Apple {
	a := &Apple{
		Color: types.AppleColor,
		grid:  grid,
	}
	a.RandomizePosition(rng)
	return a
}

// RandomizePosition moves the apple to a uniformly random cell, drawing the
// column and row independently.
func (a *Apple) RandomizePosition(rng *rand.Rand) {
	a.Position = a.grid.Cell(rng.Intn(a.grid.Columns()), rng.Intn(a.grid.Rows()))
}

func (a *Apple) Draw(surface types.Surface) {
	surface.DrawRect(a.Position, a.grid.Unit, a.Color, true)
	surface.DrawRect(a.Position, a.grid.Unit, types.BorderColor, false)
}
