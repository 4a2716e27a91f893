package game

import (
	"the-snake/game/types"
)

// EventSource yields the input events that arrived since the last poll.
type EventSource interface {
	PollEvents() []Event
}

// Clock blocks until the next tick boundary.
type Clock interface {
	Tick()
}

// Run drives the game until a quit event arrives. Each iteration waits for
// the tick, applies input, updates the game and redraws it.
func Run(g *Game, surface types.Surface, events EventSource, clock Clock) {
	for {
		clock.Tick()

		if g.HandleEvents(events.PollEvents()) {
			s := g.Stats()
			g.log.Info("quit", "length", g.Snake.Length, "best", s.BestLength, "resets", s.Resets)
			return
		}

		g.Update()
		g.Draw(surface)
	}
}
