package ui

import (
	"the-snake/game"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// NewClock paces the loop at rate ticks per second on raylib's timer.
func NewClock(rate int) *game.Ticker {
	return game.NewTicker(rate, rl.GetTime, rl.WaitTime)
}
